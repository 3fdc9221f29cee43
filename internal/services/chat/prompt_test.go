package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

func TestBuildSystemPrompt(t *testing.T) {
	contexts := []models.ContextItem{
		{ID: "a", Title: "Gradus overview", Content: "Gradus is a career initiative."},
		{ID: "b", Title: "Placements", Content: "178 hiring partners."},
	}

	prompt := BuildSystemPrompt(contexts)

	assert.Contains(t, prompt, "You are GradusAI")
	assert.Contains(t, prompt, "Never reproduce knowledge-base text verbatim")
	assert.Contains(t, prompt, "(1) Gradus overview: Gradus is a career initiative.")
	assert.Contains(t, prompt, "(2) Placements: 178 hiring partners.")
	assert.Contains(t, prompt, "Site navigation:")
	assert.Contains(t, prompt, "GradusFinlit")
}

func TestBuildSystemPrompt_NoContexts(t *testing.T) {
	prompt := BuildSystemPrompt(nil)
	assert.Contains(t, prompt, noSnippetsSentence)
}

func TestSanitizeHistory(t *testing.T) {
	history := []interfaces.Message{
		{Role: "user", Content: "  hello  "},
		{Role: "system", Content: "ignored"},
		{Role: "assistant", Content: "hi there"},
		{Role: "user", Content: "   "},
		{Role: "tool", Content: "also ignored"},
	}

	sanitized := SanitizeHistory(history, 8)

	require.Len(t, sanitized, 2)
	assert.Equal(t, interfaces.Message{Role: "user", Content: "hello"}, sanitized[0])
	assert.Equal(t, interfaces.Message{Role: "assistant", Content: "hi there"}, sanitized[1])
}

func TestSanitizeHistory_KeepsMostRecentWindow(t *testing.T) {
	var history []interfaces.Message
	for i := 0; i < 12; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history = append(history, interfaces.Message{Role: role, Content: strings.Repeat("x", i+1)})
	}

	sanitized := SanitizeHistory(history, 8)

	require.Len(t, sanitized, 8)
	assert.Equal(t, strings.Repeat("x", 5), sanitized[0].Content)
	assert.Equal(t, strings.Repeat("x", 12), sanitized[7].Content)
}

func TestBuildMessages_Ordering(t *testing.T) {
	history := []interfaces.Message{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}

	messages := BuildMessages(nil, history, "new question", nil, false, 8)

	require.Len(t, messages, 5)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "user", messages[1].Role)
	assert.Equal(t, "assistant", messages[2].Role)
	assert.Equal(t, "system", messages[3].Role)
	assert.Equal(t, reinforcementMessage, messages[3].Content)
	assert.Equal(t, interfaces.Message{Role: "user", Content: "new question"}, messages[4])
}

func TestBuildMessages_PageDirective(t *testing.T) {
	snippet := &models.ContextItem{ID: "page-pricing", Title: "Pricing"}

	affirmed := BuildMessages(nil, nil, "what is this page", snippet, true, 8)
	require.GreaterOrEqual(t, len(affirmed), 4)
	assert.Equal(t, "system", affirmed[1].Role)
	assert.Contains(t, affirmed[1].Content, "right now")
	assert.Contains(t, affirmed[1].Content, "page-pricing")

	conditional := BuildMessages(nil, nil, "how much does it cost", snippet, false, 8)
	assert.Contains(t, conditional[1].Content, "If the user refers")
	assert.Contains(t, conditional[1].Content, "page-pricing")
}
