package interfaces

import (
	"context"
)

// Completion is the result of a single provider call
type Completion struct {
	// Text is the generated assistant reply
	Text string

	// Provider names the implementation that produced the text
	Provider string

	// Model is the concrete model id used for the call
	Model string

	// Usage carries token accounting when the provider reports it
	Usage *TokenUsage
}

// Provider defines the strategy interface for external text generation.
// Implementations wrap one vendor SDK each; the chain in services/llm
// composes them into an ordered fallback list.
type Provider interface {
	// Generate performs one completion call over the assembled messages.
	// Transport and API failures return an error; the caller decides how
	// to degrade.
	Generate(ctx context.Context, messages []Message) (*Completion, error)

	// Name returns the provider marker used in response metadata
	Name() string

	// Available reports whether the provider has a credential configured.
	// An unavailable provider is skipped silently, never treated as an error.
	Available() bool

	// Close releases client resources
	Close() error
}
