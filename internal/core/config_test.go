package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("DEFAULT_MODEL", "")
	t.Setenv("TEMPERATURE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.DefaultModel)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Empty(t, cfg.OpenRouterAPIKey, "missing key is allowed until a client is built")
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DEBUG", "")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("DEFAULT_MODEL", "anthropic/claude-sonnet-4")
	t.Setenv("TEMPERATURE", "0.7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "sk-or-test", cfg.OpenRouterAPIKey)
	assert.Equal(t, "anthropic/claude-sonnet-4", cfg.DefaultModel)
	assert.Equal(t, 0.7, cfg.Temperature)
}

func TestLoadConfig_DebugOverridesLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEBUG", "1")
	t.Setenv("TEMPERATURE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidTemperature(t *testing.T) {
	t.Setenv("TEMPERATURE", "hot")

	_, err := LoadConfig()
	assert.Error(t, err)
}
