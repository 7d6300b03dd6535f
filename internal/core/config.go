package core

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	LogLevel         string  // debug, info, warn, error
	OpenRouterAPIKey string  // Required for completion calls
	DefaultModel     string  // Default completion model
	Temperature      float64 // Sampling temperature for completions
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	temperature := 0.2
	if raw := os.Getenv("TEMPERATURE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parse TEMPERATURE %q: %w", raw, err)
		}
		temperature = parsed
	}

	cfg := &Config{
		LogLevel:         logLevel,
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		DefaultModel:     getEnvOrDefault("DEFAULT_MODEL", "openai/gpt-4o-mini"),
		Temperature:      temperature,
	}

	// The API key is validated when the completion client is built, so
	// offline operations (mock runs, tests) work without one.
	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
