package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/common"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
)

// ErrNoProviderAvailable signals that no provider has a credential
// configured. Callers treat this as a soft condition and degrade to the
// local responder rather than surfacing an error.
var ErrNoProviderAvailable = errors.New("no text-generation provider is available")

// Chain holds the ordered provider fallback list. The first available
// provider handles the call; on failure the next one is tried.
type Chain struct {
	providers []interfaces.Provider
	logger    arbor.ILogger
}

// NewChain builds providers in the order named by the configuration.
// Unknown provider names are rejected; providers without credentials are
// constructed anyway and skipped at call time.
func NewChain(ctx context.Context, config *common.LLMConfig, logger arbor.ILogger) (*Chain, error) {
	names := config.Providers
	if len(names) == 0 {
		names = []string{"claude", "gemini"}
	}

	providers := make([]interfaces.Provider, 0, len(names))
	for _, name := range names {
		switch name {
		case "claude":
			provider, err := NewClaudeService(&config.Claude, logger)
			if err != nil {
				return nil, fmt.Errorf("failed to create claude provider: %w", err)
			}
			providers = append(providers, provider)
		case "gemini":
			provider, err := NewGeminiService(ctx, &config.Gemini, logger)
			if err != nil {
				return nil, fmt.Errorf("failed to create gemini provider: %w", err)
			}
			providers = append(providers, provider)
		default:
			return nil, fmt.Errorf("unknown provider '%s' in llm.providers", name)
		}
	}

	available := 0
	for _, p := range providers {
		if p.Available() {
			available++
		}
	}

	logger.Info().
		Int("provider_count", len(providers)).
		Int("available_count", available).
		Msg("Provider chain initialized")

	return &Chain{providers: providers, logger: logger}, nil
}

// Available reports whether at least one provider has a credential
func (c *Chain) Available() bool {
	for _, p := range c.providers {
		if p.Available() {
			return true
		}
	}
	return false
}

// Generate calls the first available provider and falls through to the
// next on error. Returns ErrNoProviderAvailable when no provider has a
// credential, or the last provider error when all available ones fail.
func (c *Chain) Generate(ctx context.Context, messages []interfaces.Message) (*interfaces.Completion, error) {
	var lastErr error

	for _, provider := range c.providers {
		if !provider.Available() {
			continue
		}

		completion, err := provider.Generate(ctx, messages)
		if err == nil {
			return completion, nil
		}

		c.logger.Warn().
			Err(err).
			Str("provider", provider.Name()).
			Msg("Provider call failed, trying next in chain")
		lastErr = err
	}

	if lastErr == nil {
		return nil, ErrNoProviderAvailable
	}
	return nil, lastErr
}

// Close releases all provider resources
func (c *Chain) Close() error {
	var firstErr error
	for _, provider := range c.providers {
		if err := provider.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
