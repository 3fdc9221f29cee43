package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/common"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
)

// GeminiService implements the Provider interface using the Google genai SDK.
type GeminiService struct {
	config  *common.GeminiConfig
	logger  arbor.ILogger
	client  *genai.Client
	timeout time.Duration
}

// NewGeminiService creates a Gemini provider. Without an API key the client
// is never constructed and the provider reports itself unavailable.
func NewGeminiService(ctx context.Context, config *common.GeminiConfig, logger arbor.ILogger) (*GeminiService, error) {
	if config.Model == "" {
		config.Model = "gemini-2.5-flash"
	}

	timeout := 30 * time.Second
	if config.Timeout != "" {
		parsed, err := time.ParseDuration(config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout duration '%s': %w", config.Timeout, err)
		}
		timeout = parsed
	}

	service := &GeminiService{
		config:  config,
		logger:  logger,
		timeout: timeout,
	}

	if strings.TrimSpace(config.APIKey) != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  config.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize genai client: %w", err)
		}
		service.client = client
	}

	logger.Debug().
		Str("model", config.Model).
		Dur("timeout", timeout).
		Bool("available", service.Available()).
		Msg("Gemini provider initialized")

	return service, nil
}

// Name returns the provider marker used in response metadata
func (s *GeminiService) Name() string {
	return "gemini"
}

// Available reports whether the client was constructed with a credential
func (s *GeminiService) Available() bool {
	return s.client != nil
}

// Generate performs a single chat completion against the Gemini API.
func (s *GeminiService) Generate(ctx context.Context, messages []interfaces.Message) (*interfaces.Completion, error) {
	if s.client == nil {
		return nil, fmt.Errorf("genai client is not initialized")
	}
	if len(messages) == 0 {
		return nil, fmt.Errorf("messages cannot be empty for chat completion")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startTime := time.Now()

	contents, systemText, err := convertMessagesToGemini(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to convert messages to Gemini format: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(s.config.Temperature),
	}
	if systemText != "" {
		config.SystemInstruction = genai.NewContentFromText(systemText, genai.RoleUser)
	}

	resp, err := s.client.Models.GenerateContent(timeoutCtx, s.config.Model, contents, config)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int("message_count", len(messages)).
			Msg("Gemini chat completion failed")
		return nil, fmt.Errorf("Gemini API call failed: %w", err)
	}

	var text strings.Builder
	if resp != nil && len(resp.Candidates) > 0 {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				break
			}
		}
	}

	if text.Len() == 0 {
		return nil, fmt.Errorf("no response generated from Gemini API")
	}

	var usage *interfaces.TokenUsage
	if resp.UsageMetadata != nil {
		usage = &interfaces.TokenUsage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	s.logger.Debug().
		Int("message_count", len(messages)).
		Int("response_length", text.Len()).
		Dur("duration", time.Since(startTime)).
		Msg("Gemini chat completion completed")

	return &interfaces.Completion{
		Text:     text.String(),
		Provider: s.Name(),
		Model:    s.config.Model,
		Usage:    usage,
	}, nil
}

// Close clears the client reference; genai.Client needs no explicit cleanup.
func (s *GeminiService) Close() error {
	s.logger.Debug().Msg("Closing Gemini provider")
	s.client = nil
	return nil
}

// convertMessagesToGemini maps chat messages to the Gemini content format.
// System messages are pulled out for SystemInstruction.
func convertMessagesToGemini(messages []interfaces.Message) ([]*genai.Content, string, error) {
	hasUserMessage := false
	for _, msg := range messages {
		if msg.Role == "user" {
			hasUserMessage = true
			break
		}
	}
	if !hasUserMessage {
		return nil, "", fmt.Errorf("at least one message must have role 'user'")
	}

	contents := make([]*genai.Content, 0, len(messages))
	var systemText string
	for _, msg := range messages {
		if msg.Role == "system" {
			if systemText == "" {
				systemText = msg.Content
			} else {
				systemText += "\n\n" + msg.Content
			}
			continue
		}

		role := genai.RoleUser
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}

		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		})
	}

	return contents, systemText, nil
}
