// Package config provides configuration loading for the diagnostic assistant.
package config

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config is the root configuration.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	LLM       LLMConfig       `koanf:"llm"`
	Embedding EmbeddingConfig `koanf:"embedding"`
	Manual    ManualConfig    `koanf:"manual"`
	SCADA     SCADAConfig     `koanf:"scada"`
	Workflow  WorkflowConfig  `koanf:"workflow"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is a zap level string: debug, info, warn, error.
	Level string `koanf:"level"`

	// Format selects the encoder: console or json.
	Format string `koanf:"format"`
}

// LLMConfig configures the chat completion client.
type LLMConfig struct {
	// BaseURL is the OpenAI-compatible endpoint, e.g. Groq's
	// https://api.groq.com/openai/v1.
	BaseURL string `koanf:"base_url"`

	// Model is the chat model name.
	Model string `koanf:"model"`

	// APIKey authenticates against the endpoint.
	APIKey Secret `koanf:"api_key"`

	// Temperature is the sampling temperature.
	Temperature float64 `koanf:"temperature"`

	// Timeout bounds each completion request.
	Timeout Duration `koanf:"timeout"`
}

// EmbeddingConfig configures the embedding endpoint for manual search.
type EmbeddingConfig struct {
	BaseURL string `koanf:"base_url"`
	Model   string `koanf:"model"`
	APIKey  Secret `koanf:"api_key"`
}

// ManualConfig configures the manual search index.
type ManualConfig struct {
	// Path is the persistent vector store directory.
	Path string `koanf:"path"`

	// Collection is the index collection name.
	Collection string `koanf:"collection"`

	// TopK is the default result count for manual searches.
	TopK int `koanf:"top_k"`
}

// SCADAConfig configures the telemetry log store.
type SCADAConfig struct {
	// DBPath is the SQLite database file.
	DBPath string `koanf:"db_path"`
}

// WorkflowConfig configures the orchestration loop.
type WorkflowConfig struct {
	// MaxIterations bounds the execution loop; a human plan edit resets
	// the counter.
	MaxIterations int `koanf:"max_iterations"`
}

// applyDefaults fills in defaults for unset fields.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "llama-3.1-8b-instant"
	}
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.4
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = Duration(60 * time.Second)
	}
	if cfg.Embedding.BaseURL == "" {
		cfg.Embedding.BaseURL = "http://localhost:8080/v1"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "BAAI/bge-small-en-v1.5"
	}
	if cfg.Manual.Path == "" {
		cfg.Manual.Path = "data/vector_store"
	}
	if cfg.Manual.Collection == "" {
		cfg.Manual.Collection = "technical_manuals"
	}
	if cfg.Manual.TopK == 0 {
		cfg.Manual.TopK = 3
	}
	if cfg.SCADA.DBPath == "" {
		cfg.SCADA.DBPath = "data/scada_data.db"
	}
	if cfg.Workflow.MaxIterations == 0 {
		cfg.Workflow.MaxIterations = 5
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level %q: %w", c.Logging.Level, err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging format %q: must be console or json", c.Logging.Format)
	}
	if c.Workflow.MaxIterations <= 0 {
		return fmt.Errorf("workflow max_iterations must be positive, got %d", c.Workflow.MaxIterations)
	}
	if c.Manual.TopK <= 0 {
		return fmt.Errorf("manual top_k must be positive, got %d", c.Manual.TopK)
	}
	return nil
}
