package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Server      ServerConfig  `toml:"server"`
	Logging     LoggingConfig `toml:"logging"`
	Storage     StorageConfig `toml:"storage"`
	Blogs       BlogsConfig   `toml:"blogs"`
	Chat        ChatConfig    `toml:"chat"`
	LLM         LLMConfig     `toml:"llm"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"gt=0,lte=65535"`
	Host string `toml:"host" validate:"required"`
	// RateLimit is the sustained chat requests per second allowed per process
	RateLimit float64 `toml:"rate_limit"`
	// RateBurst is the token-bucket burst size for the chat route
	RateBurst int `toml:"rate_burst"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"`
	ResetOnStartup bool   `toml:"reset_on_startup"`
}

// BlogsConfig tunes blog retrieval and ranking. MinScore and RecencyWeight
// are product-tuned constants carried over from the original ranking; they
// are configurable rather than hard-coded so the cutoffs stay reproducible.
type BlogsConfig struct {
	// PublicBaseURL is the site base used to build post permalinks
	PublicBaseURL string `toml:"public_base_url"`
	// MinScore is the relevance cutoff applied when the query has tokens
	MinScore float64 `toml:"min_score"`
	// RecencyWeight scales the recency boost added to the overlap score
	RecencyWeight float64 `toml:"recency_weight"`
	// MinPoolSize is the floor on the candidate pool fetched from the store
	MinPoolSize int `toml:"min_pool_size" validate:"gt=0"`
	// Seed populates the store with starter posts when it is empty
	Seed bool `toml:"seed"`
}

// ChatConfig bounds the retrieval and prompt-assembly stages
type ChatConfig struct {
	// KnowledgeLimit is the number of corpus snippets retrieved per message
	KnowledgeLimit int `toml:"knowledge_limit" validate:"gt=0"`
	// BlogLimit is the number of blog contexts retrieved per message
	BlogLimit int `toml:"blog_limit" validate:"gt=0"`
	// MaxContexts bounds the merged context set
	MaxContexts int `toml:"max_contexts" validate:"gt=0,lte=8"`
	// HistoryWindow is the number of recent conversation turns retained
	HistoryWindow int `toml:"history_window" validate:"gt=0"`
}

// LLMConfig selects and orders the text-generation providers
type LLMConfig struct {
	// Providers is the ordered fallback list; the first provider with a
	// configured credential handles the call
	Providers []string     `toml:"providers"`
	Claude    ClaudeConfig `toml:"claude"`
	Gemini    GeminiConfig `toml:"gemini"`
}

type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float32 `toml:"temperature"`
	Timeout     string  `toml:"timeout"`
}

type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
	Timeout     string  `toml:"timeout"`
}

// DefaultConfig returns the configuration defaults applied before any
// file or environment overrides
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port:      8085,
			Host:      "localhost",
			RateLimit: 5,
			RateBurst: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data/gradus-assist",
			},
		},
		Blogs: BlogsConfig{
			PublicBaseURL: "https://gradusindia.in",
			MinScore:      0.2,
			RecencyWeight: 0.1,
			MinPoolSize:   12,
			Seed:          true,
		},
		Chat: ChatConfig{
			KnowledgeLimit: 4,
			BlogLimit:      5,
			MaxContexts:    7,
			HistoryWindow:  8,
		},
		LLM: LLMConfig{
			Providers: []string{"claude", "gemini"},
			Claude: ClaudeConfig{
				Model:       "claude-sonnet-4-20250514",
				MaxTokens:   1024,
				Temperature: 0.2,
				Timeout:     "60s",
			},
			Gemini: GeminiConfig{
				Model:       "gemini-2.5-flash",
				Temperature: 0.2,
				Timeout:     "60s",
			},
		},
	}
}

// LoadConfig builds the configuration from defaults, then each config file
// in order (later files override earlier ones), then environment variables.
// Missing files are an error; an empty path list is not.
func LoadConfig(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies GRADUS_* environment variables plus the
// conventional vendor key variables on top of file configuration
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRADUS_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GRADUS_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("GRADUS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("GRADUS_BADGER_PATH"); v != "" {
		cfg.Storage.Badger.Path = v
	}
	if v := os.Getenv("GRADUS_WEB_BASE_URL"); v != "" {
		cfg.Blogs.PublicBaseURL = v
	}
	if v := os.Getenv("GRADUS_LLM_PROVIDERS"); v != "" {
		var providers []string
		for _, p := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				providers = append(providers, trimmed)
			}
		}
		if len(providers) > 0 {
			cfg.LLM.Providers = providers
		}
	}

	// Vendor keys: GRADUS_-prefixed variables win over the conventional names
	if v := firstEnv("GRADUS_CLAUDE_API_KEY", "ANTHROPIC_API_KEY"); v != "" {
		cfg.LLM.Claude.APIKey = v
	}
	if v := firstEnv("GRADUS_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"); v != "" {
		cfg.LLM.Gemini.APIKey = v
	}

	cfg.Blogs.PublicBaseURL = strings.TrimRight(cfg.Blogs.PublicBaseURL, "/")
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
