package llm

import (
	"fmt"
	"time"
)

// Config contains configuration for the completion client.
type Config struct {
	// APIKey is the OpenRouter API key
	APIKey string

	// BaseURL is the OpenRouter API base URL
	// Default: https://openrouter.ai/api/v1
	BaseURL string

	// DefaultModel is the model to use when not specified
	// Example: openai/gpt-4o-mini
	DefaultModel string

	// Temperature is the sampling temperature
	// Default: 0.2 (low, favoring determinism)
	Temperature float64

	// Timeout is the HTTP request timeout
	// Default: 60 seconds
	Timeout time.Duration

	// MaxRetries is the total number of completion attempts
	// Default: 3
	MaxRetries int

	// RetryDelay is the fixed delay between attempts
	// Default: 2 seconds
	RetryDelay time.Duration
}

// Validate checks that required config fields are set.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("APIKey is required")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("BaseURL is required")
	}

	if c.DefaultModel == "" {
		return fmt.Errorf("DefaultModel is required")
	}

	return nil
}

// SetDefaults fills in default values for optional fields.
func (c *Config) SetDefaults() {
	if c.Temperature == 0 {
		c.Temperature = 0.2
	}

	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}

	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}

	if c.RetryDelay == 0 {
		c.RetryDelay = 2 * time.Second
	}
}

// ModelConfig contains configuration for a specific model.
type ModelConfig struct {
	// Name is the OpenRouter model identifier
	Name string

	// ContextWindow is the maximum context size in tokens
	ContextWindow int

	// Description is a human-readable description
	Description string
}

// DefaultModels returns the default model configurations.
func DefaultModels() map[string]ModelConfig {
	return map[string]ModelConfig{
		"openai/gpt-4o-mini": {
			Name:          "openai/gpt-4o-mini",
			ContextWindow: 128000,
			Description:   "GPT-4o mini - fast, inexpensive drafts",
		},
		"anthropic/claude-3.5-sonnet": {
			Name:          "anthropic/claude-3.5-sonnet",
			ContextWindow: 200000,
			Description:   "Claude 3.5 Sonnet - balanced performance",
		},
		"google/gemini-2.5-flash": {
			Name:          "google/gemini-2.5-flash",
			ContextWindow: 1000000,
			Description:   "Gemini 2.5 Flash - fast responses",
		},
	}
}
