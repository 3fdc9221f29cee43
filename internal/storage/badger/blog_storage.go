package badger

import (
	"fmt"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// BlogStorage implements the ContentStore interface for Badger
type BlogStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewBlogStorage creates a new BlogStorage instance
func NewBlogStorage(db *BadgerDB, logger arbor.ILogger) interfaces.ContentStore {
	return &BlogStorage{
		db:     db,
		logger: logger,
	}
}

func (s *BlogStorage) SavePost(post *models.BlogPost) error {
	if post.Slug == "" {
		return fmt.Errorf("post slug is required")
	}
	if post.ID == "" {
		post.ID = post.Slug
	}

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	if post.PublishedAt.IsZero() {
		post.PublishedAt = now
	}

	// Legacy editor posts carry HTML bodies; keep a markdown rendition
	// alongside so downstream text extraction has a clean source.
	if post.ContentMarkdown == "" && looksLikeHTML(post.Content) {
		converter := md.NewConverter("", true, nil)
		converted, err := converter.ConvertString(post.Content)
		if err != nil {
			s.logger.Warn().Err(err).Str("slug", post.Slug).Msg("Failed to convert post HTML to markdown")
		} else {
			post.ContentMarkdown = converted
		}
	}

	if err := s.db.Store().Upsert(post.ID, post); err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (s *BlogStorage) GetPostBySlug(slug string) (*models.BlogPost, error) {
	var posts []models.BlogPost
	if err := s.db.Store().Find(&posts, badgerhold.Where("Slug").Eq(slug)); err != nil {
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	if len(posts) == 0 {
		return nil, interfaces.ErrPostNotFound
	}
	return &posts[0], nil
}

func (s *BlogStorage) ListRecent(n int) ([]*models.BlogPost, error) {
	if n <= 0 {
		return nil, nil
	}

	var posts []models.BlogPost
	query := badgerhold.Where("ID").Ne("").SortBy("PublishedAt").Reverse().Limit(n)
	if err := s.db.Store().Find(&posts, query); err != nil {
		return nil, fmt.Errorf("failed to list recent posts: %w", err)
	}

	result := make([]*models.BlogPost, len(posts))
	for i := range posts {
		result[i] = &posts[i]
	}
	return result, nil
}

func (s *BlogStorage) DeletePost(id string) error {
	if err := s.db.Store().Delete(id, &models.BlogPost{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *BlogStorage) CountPosts() (int, error) {
	count, err := s.db.Store().Count(&models.BlogPost{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return int(count), nil
}

// looksLikeHTML is a cheap check for markup; markdown bodies pass through
func looksLikeHTML(content string) bool {
	trimmed := strings.TrimSpace(content)
	return strings.Contains(trimmed, "<") && strings.Contains(trimmed, ">")
}
