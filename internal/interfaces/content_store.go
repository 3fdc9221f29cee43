package interfaces

import (
	"errors"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// ErrPostNotFound is returned when a blog post lookup finds nothing
var ErrPostNotFound = errors.New("blog post not found")

// ContentStore provides access to the mutable blog content store.
// ListRecent is the only operation the chat pipeline depends on; the
// rest exist for the admin surface that maintains the store.
type ContentStore interface {
	// SavePost inserts or updates a post. Posts without an ID are keyed
	// by slug; HTML content is normalized to markdown on save.
	SavePost(post *models.BlogPost) error

	// GetPostBySlug returns the post with the given slug, or ErrPostNotFound
	GetPostBySlug(slug string) (*models.BlogPost, error)

	// ListRecent returns up to n posts ordered by PublishedAt descending
	ListRecent(n int) ([]*models.BlogPost, error)

	// DeletePost removes a post by ID. Deleting a missing post is not an error.
	DeletePost(id string) error

	// CountPosts returns the number of stored posts
	CountPosts() (int, error)
}
