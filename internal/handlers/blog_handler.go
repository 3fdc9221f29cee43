package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// BlogHandler exposes the blog content store for the admin surface. Saved
// posts become retrieval candidates for the chat pipeline.
type BlogHandler struct {
	store  interfaces.ContentStore
	logger arbor.ILogger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(store interfaces.ContentStore, logger arbor.ILogger) *BlogHandler {
	return &BlogHandler{
		store:  store,
		logger: logger,
	}
}

// UpsertHandler handles PUT /api/blogs requests
func (h *BlogHandler) UpsertHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode blog post")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(post.Slug) == "" || strings.TrimSpace(post.Title) == "" {
		WriteError(w, http.StatusBadRequest, "Slug and title are required")
		return
	}

	if err := h.store.SavePost(&post); err != nil {
		h.logger.Error().Err(err).Str("slug", post.Slug).Msg("Failed to save blog post")
		WriteError(w, http.StatusInternalServerError, "Failed to save blog post")
		return
	}

	h.logger.Info().Str("slug", post.Slug).Msg("Blog post saved")
	WriteJSON(w, http.StatusOK, post)
}

// ListRecentHandler handles GET /api/blogs/recent requests
func (h *BlogHandler) ListRecentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			WriteError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	posts, err := h.store.ListRecent(limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list blog posts")
		WriteError(w, http.StatusInternalServerError, "Failed to list blog posts")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}

// GetBySlugHandler handles GET /api/blogs/{slug} requests
func (h *BlogHandler) GetBySlugHandler(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/blogs/")
	if slug == "" {
		WriteError(w, http.StatusBadRequest, "Slug is required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		post, err := h.store.GetPostBySlug(slug)
		if err != nil {
			if errors.Is(err, interfaces.ErrPostNotFound) {
				WriteError(w, http.StatusNotFound, "Blog post not found")
				return
			}
			h.logger.Error().Err(err).Str("slug", slug).Msg("Failed to load blog post")
			WriteError(w, http.StatusInternalServerError, "Failed to load blog post")
			return
		}
		WriteJSON(w, http.StatusOK, post)

	case http.MethodDelete:
		if err := h.store.DeletePost(slug); err != nil {
			h.logger.Error().Err(err).Str("slug", slug).Msg("Failed to delete blog post")
			WriteError(w, http.StatusInternalServerError, "Failed to delete blog post")
			return
		}
		WriteSuccess(w, "Blog post deleted")

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
