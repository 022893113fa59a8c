package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/time/rate"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/audit"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/engine"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/idempotency"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/protocol"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/provider"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/security"
)

// Registry routes tool calls to their handlers. It is read-only after
// construction and safe for concurrent dispatch.
type Registry struct {
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records tool calls and terminal outcomes.
	Audit audit.Logger
	// Engine starts translation jobs.
	Engine engine.Engine
	// Settings are the engine pass-through options.
	Settings engine.Settings
	// Cache optionally stores successful translate results by argument hash.
	Cache *idempotency.Cache
	// Limiter optionally caps the translate call rate.
	Limiter *rate.Limiter
}

// Build creates the MCP server with the fixed tool catalogue and the language
// catalogue resource.
func (r *Registry) Build() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)

	for _, tool := range []*mcp.Tool{translateTool(), statusTool()} {
		name := tool.Name
		mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
			return textResult(r.Dispatch(ctx, name, args)), nil, nil
		})
	}

	server.AddResource(&mcp.Resource{
		Name:        "Supported languages",
		URI:         LanguagesResourceURI,
		Description: "Language codes the translation engine handles well.",
		MIMEType:    "application/json",
	}, func(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		data, err := json.Marshal(provider.SupportedLanguages)
		if err != nil {
			return nil, fmt.Errorf("serialize language catalogue: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: LanguagesResourceURI, MIMEType: "application/json", Text: string(data)},
			},
		}, nil
	})

	return server
}

// Dispatch routes one call by name and returns the single text payload for
// the caller. It is total: unknown names produce an "Unknown tool" text, and
// no handler failure propagates past it.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) string {
	switch name {
	case ToolTranslatePDF:
		return r.dispatchTranslate(ctx, args)
	case ToolStatus:
		if r.Logger != nil {
			r.Logger.Info("tool call", "tool", ToolStatus)
		}
		return r.status()
	default:
		if r.Logger != nil {
			r.Logger.Warn("unknown tool requested", "tool", name)
		}
		return fmt.Sprintf("Unknown tool: %s", name)
	}
}

func (r *Registry) dispatchTranslate(ctx context.Context, args map[string]any) string {
	correlationID := uuid.NewString()
	if r.Logger != nil {
		r.Logger.Info("tool call", "tool", ToolTranslatePDF, "correlation_id", correlationID, "args", security.RedactArguments(args))
	}
	if r.Audit != nil {
		r.Audit.Record(ctx, audit.Event{Type: "tool_call", Tool: ToolTranslatePDF, CorrelationID: correlationID})
	}

	cacheKey := ""
	if r.Cache != nil {
		key, err := idempotency.Key(ToolTranslatePDF, args)
		if err != nil {
			if r.Logger != nil {
				r.Logger.Warn("cache key build failed", "correlation_id", correlationID, "error", err)
			}
		} else {
			cacheKey = key
		}
	}
	if cacheKey != "" {
		if cached, ok := r.Cache.Get(cacheKey); ok {
			if r.Audit != nil {
				r.Audit.Record(ctx, audit.Event{Type: "cache_hit", Tool: ToolTranslatePDF, CorrelationID: correlationID})
			}
			return cached
		}
	}

	var outcome protocol.Outcome
	if r.Limiter != nil && !r.Limiter.Allow() {
		outcome = protocol.Faultf("translation rate limit exceeded, retry later")
	} else {
		outcome = r.translate(ctx, correlationID, args)
	}

	if r.Audit != nil {
		r.Audit.Record(ctx, audit.Event{
			Type:          "tool_outcome",
			Tool:          ToolTranslatePDF,
			CorrelationID: correlationID,
			Outcome:       outcome.Kind,
			Detail:        outcome.Message,
		})
	}

	text := outcome.Text()
	if cacheKey != "" && !outcome.IsError() {
		r.Cache.Set(cacheKey, text)
	}
	return text
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
