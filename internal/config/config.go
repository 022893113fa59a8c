package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server process. Provider
// credentials are intentionally not here: they are re-read per tool call (see
// internal/provider) because they may change between invocations.
type Config struct {
	// LogLevel sets the logger level.
	LogLevel string `env:"BABELDOC_MCP_LOG_LEVEL" envDefault:"info"`
	// Transport selects the server transport ("stdio" or "http").
	Transport string `env:"BABELDOC_MCP_TRANSPORT" envDefault:"stdio"`
	// HTTPListen is the HTTP listen address.
	HTTPListen string `env:"BABELDOC_MCP_HTTP_LISTEN" envDefault:":8080"`
	// HTTPPath is the MCP HTTP endpoint path.
	HTTPPath string `env:"BABELDOC_MCP_HTTP_PATH" envDefault:"/mcp"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"BABELDOC_MCP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// EngineCommand is the BabelDOC engine executable.
	EngineCommand string `env:"BABELDOC_MCP_ENGINE_COMMAND" envDefault:"babeldoc"`
	// EngineSettings is an optional YAML file overriding engine pass-through options.
	EngineSettings string `env:"BABELDOC_MCP_ENGINE_SETTINGS"`
	// RatePerMinute caps translate_pdf dispatches; zero disables the cap.
	RatePerMinute int `env:"BABELDOC_MCP_RATE_PER_MINUTE" envDefault:"0"`
	// CacheEnabled toggles the idempotent response cache for translate calls.
	CacheEnabled bool `env:"BABELDOC_MCP_IDEMPOTENCY" envDefault:"false"`
	// CacheTTL controls how long cached responses are kept.
	CacheTTL time.Duration `env:"BABELDOC_MCP_IDEMPOTENCY_TTL" envDefault:"1h"`
	// CacheMaxEntries limits the cache size.
	CacheMaxEntries int `env:"BABELDOC_MCP_IDEMPOTENCY_MAX_ENTRIES" envDefault:"256"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
