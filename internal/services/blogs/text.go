package blogs

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
)

// normalizeWhitespace collapses runs of whitespace into single spaces
func normalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// truncate bounds a summary to limit characters, appending an ellipsis
// marker when content was cut. The limit counts runes, not bytes, so
// multi-byte scripts keep the full budget and are never cut mid-rune.
func truncate(value string, limit int) string {
	clean := normalizeWhitespace(value)
	if clean == "" {
		return ""
	}
	if utf8.RuneCountInString(clean) <= limit {
		return clean
	}
	return strings.TrimSpace(string([]rune(clean)[:limit])) + "..."
}

// plainText strips markup from a post body. HTML bodies are parsed
// directly; anything else is treated as markdown and rendered first so
// link and emphasis syntax does not leak into summaries.
func plainText(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}

	html := trimmed
	if !strings.Contains(trimmed, "<") {
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(trimmed), &buf); err == nil {
			html = buf.String()
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return normalizeWhitespace(trimmed)
	}
	return normalizeWhitespace(doc.Text())
}
