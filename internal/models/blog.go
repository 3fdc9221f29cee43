package models

import "time"

// BlogPost represents a published article in the content store.
// Content may arrive as HTML (legacy editor) or markdown; the store
// normalizes HTML into ContentMarkdown on save.
type BlogPost struct {
	ID              string    `json:"id" badgerhold:"key"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug" badgerhold:"index"`
	Category        string    `json:"category,omitempty"`
	Excerpt         string    `json:"excerpt,omitempty"`
	Content         string    `json:"content,omitempty"`
	ContentMarkdown string    `json:"content_markdown,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	PublishedAt     time.Time `json:"published_at" badgerhold:"index"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}
