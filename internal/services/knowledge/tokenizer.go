package knowledge

import (
	"strings"
	"unicode"
)

// stopwords are dropped from every token stream before scoring
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "their": {}, "this": {},
	"to": {}, "with": {}, "you": {}, "your": {},
}

// Tokenize lowercases the text, strips everything that is not a Unicode
// letter or digit, splits on whitespace, and drops stopwords. Empty input
// yields an empty slice; it never fails.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	normalized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	var tokens []string
	for _, token := range strings.Fields(normalized) {
		if _, stop := stopwords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Score sums the per-token occurrence counts over the query tokens and adds
// +2 for each query token that exactly matches a document tag
func Score(queryTokens []string, counts map[string]int, tags []string) int {
	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tagSet[tag] = struct{}{}
	}

	score := 0
	for _, token := range queryTokens {
		score += counts[token]
		if _, ok := tagSet[token]; ok {
			score += 2
		}
	}
	return score
}
