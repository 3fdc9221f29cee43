package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/common"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/blogs"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/knowledge"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/llm"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/pageintent"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/smalltalk"
)

// generator is the slice of the provider chain the orchestrator needs
type generator interface {
	Generate(ctx context.Context, messages []interfaces.Message) (*interfaces.Completion, error)
}

// Service orchestrates a chat turn: small-talk short-circuit, retrieval,
// page intent, context merge, prompt assembly, and the provider call with
// local fallback. Each call is stateless; the knowledge index is the only
// shared structure and it is read-only after construction.
type Service struct {
	index     *knowledge.Index
	blogs     *blogs.Builder
	providers generator
	config    *common.ChatConfig
	logger    arbor.ILogger
}

// NewService wires the orchestrator from its collaborators
func NewService(index *knowledge.Index, blogBuilder *blogs.Builder, providers generator, config *common.ChatConfig, logger arbor.ILogger) *Service {
	return &Service{
		index:     index,
		blogs:     blogBuilder,
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// HandleChatMessage routes a user message to a reply. Only an empty
// message is an error; content-store and provider failures degrade to a
// local fallback reply and are reported through the response metadata.
func (s *Service) HandleChatMessage(ctx context.Context, req *interfaces.ChatRequest) (*interfaces.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, interfaces.ErrEmptyMessage
	}

	if reply, ok := smalltalk.Reply(message); ok {
		s.logger.Debug().Msg("Small talk short-circuit")
		return &interfaces.ChatResponse{
			Reply:    reply,
			Contexts: []models.ContextItem{},
			Provider: "smalltalk",
		}, nil
	}

	contexts := s.index.TopContexts(message, s.config.KnowledgeLimit)

	if blogs.HasBlogIntent(message) {
		blogContexts := s.blogs.BuildContexts(message, s.config.BlogLimit)
		contexts = MergeContexts(contexts, blogContexts, s.config.MaxContexts)
	}

	snippet := pageintent.BuildSnippet(req.Page)
	pageAsked := false
	if snippet != nil {
		pageAsked = pageintent.AsksAboutPage(message, req.Page)
		if pageAsked {
			contexts = PromoteToFront(contexts, *snippet, s.config.MaxContexts)
		} else {
			contexts = MergeContexts(contexts, []models.ContextItem{*snippet}, s.config.MaxContexts)
		}
	}

	messages := BuildMessages(contexts, req.History, message, snippet, pageAsked, s.config.HistoryWindow)

	completion, err := s.providers.Generate(ctx, messages)
	if err != nil {
		reply := llm.FallbackReply(contexts, req.Page, pageAsked)

		if errors.Is(err, llm.ErrNoProviderAvailable) {
			// Soft-disable: no credential configured, not an error condition
			s.logger.Debug().Msg("No provider available, using local responder")
			return &interfaces.ChatResponse{
				Reply:    reply,
				Contexts: contexts,
				Provider: "fallback",
			}, nil
		}

		s.logger.Error().Err(err).Msg("Provider call failed, using local responder")
		return &interfaces.ChatResponse{
			Reply:    reply,
			Contexts: contexts,
			Provider: "fallback-error",
			Error:    err.Error(),
		}, nil
	}

	return &interfaces.ChatResponse{
		Reply:    completion.Text,
		Contexts: contexts,
		Provider: completion.Provider,
		Model:    completion.Model,
		Usage:    completion.Usage,
	}, nil
}
