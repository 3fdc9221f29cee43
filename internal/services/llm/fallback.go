package llm

import (
	"strings"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

const emptyFallbackReply = "I'm here to help with Gradus-related questions, but I need a bit more detail to share something useful."

// maxFallbackSentences bounds the page excerpt in a local reply
const maxFallbackSentences = 5

// FallbackReply synthesizes a deterministic local reply when no provider
// produced one. With affirmed page intent the reply is built from the page
// descriptor alone; otherwise it summarizes the merged contexts, or
// apologizes when there is nothing to summarize.
func FallbackReply(contexts []models.ContextItem, page *models.PageDescriptor, pageIntent bool) string {
	if pageIntent && page != nil && !page.IsEmpty() {
		if reply := buildPageReply(page); reply != "" {
			return reply
		}
	}

	if len(contexts) == 0 {
		return emptyFallbackReply
	}

	var lines []string
	for _, context := range contexts {
		lines = append(lines, "- "+context.Content)
	}

	return "Here are some Gradus highlights that may help:\n" +
		strings.Join(lines, "\n") +
		"\n\nFor further detail, explore the relevant section on our website or reach out through the contact page."
}

func buildPageReply(page *models.PageDescriptor) string {
	var parts []string

	title := strings.TrimSpace(page.Title)
	if title != "" {
		parts = append(parts, "You're currently looking at the \""+title+"\" page.")
	}

	headings := make([]string, 0, len(page.Headings))
	for _, heading := range page.Headings {
		heading = strings.TrimSpace(heading)
		if heading != "" {
			headings = append(headings, heading)
		}
	}
	if len(headings) > 0 {
		parts = append(parts, "It covers: "+strings.Join(headings, ", ")+".")
	}

	if excerpt := firstSentences(page.Content, maxFallbackSentences); excerpt != "" {
		parts = append(parts, excerpt)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// firstSentences returns up to n leading sentences of text with whitespace
// collapsed. Sentence boundaries are naive period/question/exclamation
// splits, which is good enough for a degraded-mode excerpt.
func firstSentences(text string, n int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return ""
	}

	var sentences []string
	start := 0
	for i, r := range collapsed {
		if r == '.' || r == '?' || r == '!' {
			sentence := strings.TrimSpace(collapsed[start : i+1])
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = i + 1
			if len(sentences) == n {
				break
			}
		}
	}

	if len(sentences) < n {
		if tail := strings.TrimSpace(collapsed[start:]); tail != "" {
			sentences = append(sentences, tail)
		}
	}

	return strings.Join(sentences, " ")
}
