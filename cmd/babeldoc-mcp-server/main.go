package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/app"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/audit"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/config"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/engine"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/idempotency"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/log"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/startup"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/tools"
)

func main() {
	// Provider credentials may live in a local .env; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	settings, err := engine.LoadSettings(cfg.EngineSettings)
	if err != nil {
		logger.Error("load engine settings failed", "error", err)
		os.Exit(1)
	}

	var cache *idempotency.Cache
	if cfg.CacheEnabled {
		cache = idempotency.NewCache(cfg.CacheTTL, cfg.CacheMaxEntries)
	}
	var limiter *rate.Limiter
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RatePerMinute)/60), cfg.RatePerMinute)
	}

	registry := &tools.Registry{
		Logger:   logger,
		Audit:    audit.New(logger),
		Engine:   engine.NewCLI(cfg.EngineCommand, logger),
		Settings: settings,
		Cache:    cache,
		Limiter:  limiter,
	}
	server := registry.Build()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startup.Preflight(ctx, cfg.EngineCommand, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	switch cfg.Transport {
	case "http":
		if err := runHTTP(ctx, cfg, server, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

func runHTTP(ctx context.Context, cfg config.Config, server *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	application, err := app.New(context.Background(), cfg.HTTPListen, cfg.HTTPPath, handler, logger, cfg.ShutdownTimeout)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
