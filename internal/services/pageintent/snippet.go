package pageintent

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// snippetLimit bounds the synthesized page text so page-heavy screens do
// not crowd out the rest of the prompt
const snippetLimit = 2400

// BuildSnippet synthesizes a grounding context from the caller-supplied
// page descriptor: title, flattened headings, then body content, with
// whitespace collapsed and the result truncated. Descriptors with no
// usable text yield nil, never an error.
func BuildSnippet(page *models.PageDescriptor) *models.ContextItem {
	if page.IsEmpty() {
		return nil
	}

	var parts []string
	if title := strings.TrimSpace(page.Title); title != "" {
		parts = append(parts, title)
	}
	for _, heading := range page.Headings {
		if trimmed := strings.TrimSpace(heading); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if content := strings.TrimSpace(page.Content); content != "" {
		parts = append(parts, content)
	}

	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) > snippetLimit {
		// Rune-based cut so multi-byte content is never split mid-rune
		text = strings.TrimSpace(string([]rune(text)[:snippetLimit]))
	}

	title := strings.TrimSpace(page.Title)
	if title == "" {
		title = "Current page"
	}

	return &models.ContextItem{
		ID:      snippetID(page),
		Title:   title,
		Content: text,
		Source:  strings.TrimSpace(page.URL),
		Tags:    []string{"page"},
	}
}

// snippetID derives a stable context id from the page path or URL
func snippetID(page *models.PageDescriptor) string {
	candidate := strings.TrimSpace(page.Path)
	if candidate == "" {
		if parsed, err := url.Parse(strings.TrimSpace(page.URL)); err == nil {
			candidate = parsed.Path
		}
	}

	slug := slugify(candidate)
	if slug == "" {
		return "page-current"
	}
	return "page-" + slug
}

func slugify(value string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(value) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastDash = false
		case !lastDash:
			sb.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(sb.String(), "-")
}
