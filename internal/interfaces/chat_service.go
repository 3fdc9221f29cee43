package interfaces

import (
	"context"
	"errors"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

// ErrEmptyMessage is returned when a chat request carries no usable message.
// It is the only error the chat service surfaces to callers; all downstream
// failures degrade into a fallback response instead.
var ErrEmptyMessage = errors.New("message is required")

// Message represents a single turn in a chat conversation
type Message struct {
	// Role identifies the message sender: "user", "assistant", or "system"
	Role string `json:"role"`

	// Content contains the text content of the message
	Content string `json:"content"`
}

// ChatRequest represents an incoming chat message with optional history
// and an optional descriptor of the page the user is currently viewing
type ChatRequest struct {
	Message string                 `json:"message"`
	History []Message              `json:"history,omitempty"`
	Page    *models.PageDescriptor `json:"page,omitempty"`
}

// TokenUsage tracks token consumption reported by a provider
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the terminal result of a chat request. Reply is always
// non-empty; degraded quality is signaled through Provider and Error only.
type ChatResponse struct {
	Reply    string               `json:"reply"`
	Contexts []models.ContextItem `json:"contexts"`
	Provider string               `json:"provider"`
	Model    string               `json:"model,omitempty"`
	Usage    *TokenUsage          `json:"usage,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// ChatService routes a user message to a grounded, conversational reply
type ChatService interface {
	// HandleChatMessage processes one message. It fails only when the
	// message is empty; content-store and provider failures are absorbed
	// into a fallback-tagged response.
	HandleChatMessage(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}
