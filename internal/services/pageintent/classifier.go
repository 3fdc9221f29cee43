package pageintent

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// pageWords is the vocabulary a message token may refer to the current
// page with; fuzzy matching tolerates small typos ("pgae", "scren")
var pageWords = []string{"page", "pages", "screen", "section", "tab", "view", "panel", "one"}

// deicticWords point at something in the user's immediate context
var deicticWords = map[string]struct{}{
	"this": {}, "current": {}, "here": {},
}

// fillerWords are ignored when deciding whether a short deictic message
// is entirely about the page
var fillerWords = map[string]struct{}{
	"tell": {}, "me": {}, "about": {}, "now": {}, "this": {}, "current": {},
	"here": {}, "please": {}, "what": {}, "whats": {}, "is": {}, "on": {},
	"the": {}, "a": {}, "an": {}, "of": {}, "explain": {}, "describe": {},
	"page": {}, "pages": {}, "section": {}, "screen": {}, "view": {},
	"tab": {}, "panel": {}, "one": {},
}

// explicitPatterns match unmistakable references to the current page
var explicitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(this|current)\s+(web\s+)?(page|pages|screen|section|tab|view|panel)\b`),
	regexp.MustCompile(`\btell\s+me\s+about\s+this\s+(page|screen|section)\b`),
	regexp.MustCompile(`\bwhat(\s+is|'?s)\s+(on\s+)?this\s+(page|screen|section)\b`),
	regexp.MustCompile(`\bon\s+the\s+current\s+(page|screen|section)\b`),
}

const shortMessageLimit = 80

// AsksAboutPage decides whether the message is asking about the screen
// described by page. Rules are layered and evaluated in order; the first
// match wins. The ordering is deliberate: explicit phrasing first,
// cheap templated short phrases next, fuzzy token rules after, and the
// page's own identifiers as a last resort.
func AsksAboutPage(message string, page *models.PageDescriptor) bool {
	normalized := normalize(message)
	if normalized == "" {
		return false
	}
	tokens := strings.Fields(normalized)

	// Rule 1: explicit phrase patterns
	for _, pattern := range explicitPatterns {
		if pattern.MatchString(normalized) {
			return true
		}
	}

	// Rule 2: templated short phrases
	if utf8.RuneCountInString(normalized) <= shortMessageLimit {
		for _, phrase := range []string{"this one", "now this", "about this"} {
			if strings.Contains(normalized, phrase) {
				return true
			}
		}
		if hasToken(tokens, "now") && hasToken(tokens, "this") {
			return true
		}
	}

	// Rule 3: deictic token plus a near-miss page word
	if containsDeictic(tokens) {
		for _, token := range tokens {
			if nearPageWord(token, 1) {
				return true
			}
		}
	}

	// Rule 4: short deictic messages made up entirely of filler and
	// page-word lookalikes
	if len(tokens) <= 5 && containsDeictic(tokens) {
		matched := true
		for _, token := range tokens {
			if _, filler := fillerWords[token]; filler {
				continue
			}
			if !nearPageWord(token, 2) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}

	// Rule 5: the message names the page itself
	return mentionsPage(normalized, page)
}

// mentionsPage checks whether the message contains the page's own title,
// headings, path, or url, or any of their longer tokens
func mentionsPage(normalized string, page *models.PageDescriptor) bool {
	if page.IsEmpty() {
		return false
	}

	candidates := []string{page.Title, page.Path, page.URL}
	candidates = append(candidates, page.Headings...)

	for _, candidate := range candidates {
		text := normalize(candidate)
		if text == "" {
			continue
		}
		if strings.Contains(normalized, text) {
			return true
		}
		for _, token := range strings.Fields(text) {
			if utf8.RuneCountInString(token) > 4 && strings.Contains(normalized, token) {
				return true
			}
		}
	}
	return false
}

func normalize(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Join(strings.Fields(mapped), " ")
}

func hasToken(tokens []string, want string) bool {
	for _, token := range tokens {
		if token == want {
			return true
		}
	}
	return false
}

func containsDeictic(tokens []string) bool {
	for _, token := range tokens {
		if _, ok := deicticWords[token]; ok {
			return true
		}
	}
	return false
}

func nearPageWord(token string, maxDistance int) bool {
	for _, word := range pageWords {
		if Distance(token, word) <= maxDistance {
			return true
		}
	}
	return false
}
