package models

// KnowledgeSnippet is a curated fact entry used for grounding answers.
// Snippets are built once at startup from the static corpus definitions
// and are never mutated afterwards, so they are safe for concurrent reads.
type KnowledgeSnippet struct {
	ID          string
	Title       string
	Tags        []string
	Content     string
	TokenCounts map[string]int
}

// ContextItem is a single grounding snippet passed into the prompt.
// Items originate from the knowledge corpus, the blog store, or the
// caller-supplied page descriptor.
type ContextItem struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Source  string   `json:"source,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}
