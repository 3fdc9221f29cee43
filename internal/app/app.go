package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/common"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/handlers"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/blogs"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/chat"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/knowledge"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/services/llm"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Storage
	BadgerDB  *badger.BadgerDB
	BlogStore interfaces.ContentStore

	// Retrieval and generation
	KnowledgeIndex *knowledge.Index
	BlogBuilder    *blogs.Builder
	ProviderChain  *llm.Chain
	ChatService    interfaces.ChatService

	// HTTP handlers
	APIHandler  *handlers.APIHandler
	ChatHandler *handlers.ChatHandler
	BlogHandler *handlers.BlogHandler
}

// New wires the application: storage, the knowledge index, the blog
// builder, the provider chain, the orchestrator, and the HTTP handlers.
func New(ctx context.Context, config *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: config,
		Logger: logger,
	}

	db, err := badger.NewBadgerDB(logger, &config.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize badger storage: %w", err)
	}
	a.BadgerDB = db
	a.BlogStore = badger.NewBlogStorage(db, logger)

	if config.Blogs.Seed {
		if err := seedBlogStore(a.BlogStore, logger); err != nil {
			logger.Warn().Err(err).Msg("Blog store seeding failed")
		}
	}

	// The knowledge index is built once here and read-only afterwards
	a.KnowledgeIndex = knowledge.NewIndex(knowledge.DefaultCorpus(), logger)
	a.BlogBuilder = blogs.NewBuilder(a.BlogStore, &config.Blogs, logger)

	chain, err := llm.NewChain(ctx, &config.LLM, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize provider chain: %w", err)
	}
	a.ProviderChain = chain

	if !chain.Available() {
		logger.Warn().Msg("No provider credential configured, chat will run in fallback mode")
	}

	a.ChatService = chat.NewService(a.KnowledgeIndex, a.BlogBuilder, chain, &config.Chat, logger)

	a.APIHandler = handlers.NewAPIHandler()
	a.ChatHandler = handlers.NewChatHandler(a.ChatService, logger)
	a.BlogHandler = handlers.NewBlogHandler(a.BlogStore, logger)

	logger.Info().Msg("Application initialized")
	return a, nil
}

// Close releases application resources
func (a *App) Close() {
	if a.ProviderChain != nil {
		if err := a.ProviderChain.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close provider chain")
		}
	}
	if a.BadgerDB != nil {
		if err := a.BadgerDB.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close badger storage")
		}
	}
}
