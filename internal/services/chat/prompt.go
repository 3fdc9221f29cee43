package chat

import (
	"fmt"
	"strings"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

const noSnippetsSentence = "No specific knowledge snippets were matched."

const systemPromptHeader = `You are GradusAI, a helpful assistant for the Gradus India website. Use the provided knowledge base snippets to answer questions about Gradus, Century Finance Limited, programs, mentors, placements, admissions, and recent blog highlights.

Guidelines:
- Base your answer only on the knowledge snippets when they contain the information.
- Never reproduce knowledge-base text verbatim; always rephrase it in your own words.
- If the user asks for something that is not covered, respond honestly that you do not have that information yet and suggest contacting the Gradus team or reading the relevant page.
- Keep responses concise, friendly, and informative.
- When appropriate, mention relevant pages such as About Us, Our Courses, Blogs, or Contact.`

const navigationReference = `Site navigation:
- About Us: company background and the Century Finance Limited story
- Our Courses: program catalogue, curriculum details, and the admission form
- Blogs: market insights, program news, and announcements
- Contact: counsellor support and general enquiries

Program guide by audience:
- Finance and capital-markets aspirants: GradusFinlit
- Technology and AI career builders: GradusX
- Business and leadership track learners: GradusLead`

const reinforcementMessage = "Always speak as GradusAI in a warm, human tone. Rephrase every fact you cite from the knowledge snippets so it sounds freshly worded while staying accurate."

// BuildSystemPrompt renders the main system message from the merged
// context set.
func BuildSystemPrompt(contexts []models.ContextItem) string {
	return systemPromptHeader +
		"\n\n" + navigationReference +
		"\n\nKnowledge Base Snippets:\n" + buildContextPrompt(contexts)
}

func buildContextPrompt(contexts []models.ContextItem) string {
	if len(contexts) == 0 {
		return noSnippetsSentence
	}

	lines := make([]string, 0, len(contexts))
	for i, context := range contexts {
		lines = append(lines, fmt.Sprintf("(%d) %s: %s", i+1, context.Title, context.Content))
	}
	return strings.Join(lines, "\n\n")
}

// buildPageDirective words the page system message directively when intent
// is affirmed, conditionally otherwise.
func buildPageDirective(snippet *models.ContextItem, pageIntent bool) string {
	if snippet == nil {
		return ""
	}
	if pageIntent {
		return fmt.Sprintf("The user is asking about the page they are viewing right now. Answer from snippet %s before any other context.", snippet.ID)
	}
	return fmt.Sprintf("If the user refers to \"this page\" or the current screen, use snippet %s.", snippet.ID)
}

// SanitizeHistory keeps only user/assistant turns with non-empty trimmed
// content, retaining the most recent window entries.
func SanitizeHistory(history []interfaces.Message, window int) []interfaces.Message {
	sanitized := make([]interfaces.Message, 0, len(history))
	for _, turn := range history {
		if turn.Role != "user" && turn.Role != "assistant" {
			continue
		}
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		sanitized = append(sanitized, interfaces.Message{Role: turn.Role, Content: content})
	}

	if window > 0 && len(sanitized) > window {
		sanitized = sanitized[len(sanitized)-window:]
	}
	return sanitized
}

// BuildMessages assembles the full provider input: system prompt, optional
// page directive, sanitized history, reinforcement, and the new user turn.
func BuildMessages(contexts []models.ContextItem, history []interfaces.Message, message string, snippet *models.ContextItem, pageIntent bool, historyWindow int) []interfaces.Message {
	messages := make([]interfaces.Message, 0, len(history)+4)
	messages = append(messages, interfaces.Message{Role: "system", Content: BuildSystemPrompt(contexts)})

	if directive := buildPageDirective(snippet, pageIntent); directive != "" {
		messages = append(messages, interfaces.Message{Role: "system", Content: directive})
	}

	messages = append(messages, SanitizeHistory(history, historyWindow)...)
	messages = append(messages, interfaces.Message{Role: "system", Content: reinforcementMessage})
	messages = append(messages, interfaces.Message{Role: "user", Content: message})

	return messages
}
