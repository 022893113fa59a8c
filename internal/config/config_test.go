package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"BABELDOC_MCP_LOG_LEVEL", "BABELDOC_MCP_TRANSPORT", "BABELDOC_MCP_HTTP_LISTEN",
		"BABELDOC_MCP_HTTP_PATH", "BABELDOC_MCP_SHUTDOWN_TIMEOUT", "BABELDOC_MCP_ENGINE_COMMAND",
		"BABELDOC_MCP_ENGINE_SETTINGS", "BABELDOC_MCP_RATE_PER_MINUTE", "BABELDOC_MCP_IDEMPOTENCY",
		"BABELDOC_MCP_IDEMPOTENCY_TTL", "BABELDOC_MCP_IDEMPOTENCY_MAX_ENTRIES",
	} {
		clearEnv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, ":8080", cfg.HTTPListen)
	assert.Equal(t, "/mcp", cfg.HTTPPath)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "babeldoc", cfg.EngineCommand)
	assert.Empty(t, cfg.EngineSettings)
	assert.Zero(t, cfg.RatePerMinute)
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 256, cfg.CacheMaxEntries)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BABELDOC_MCP_LOG_LEVEL", "debug")
	t.Setenv("BABELDOC_MCP_TRANSPORT", "http")
	t.Setenv("BABELDOC_MCP_HTTP_LISTEN", "127.0.0.1:9090")
	t.Setenv("BABELDOC_MCP_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BABELDOC_MCP_ENGINE_COMMAND", "/opt/babeldoc/bin/babeldoc")
	t.Setenv("BABELDOC_MCP_RATE_PER_MINUTE", "12")
	t.Setenv("BABELDOC_MCP_IDEMPOTENCY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http", cfg.Transport)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTPListen)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "/opt/babeldoc/bin/babeldoc", cfg.EngineCommand)
	assert.Equal(t, 12, cfg.RatePerMinute)
	assert.True(t, cfg.CacheEnabled)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("BABELDOC_MCP_SHUTDOWN_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
}
