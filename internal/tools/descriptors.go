// Package tools declares the MCP tool catalogue and routes incoming calls to
// their handlers. Every call, whatever happens inside, terminates in exactly
// one text result.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server identity reported to MCP clients.
const (
	ServerName    = "babeldoc-mcp"
	ServerVersion = "1.0.0"
)

// Tool names.
const (
	ToolTranslatePDF = "translate_pdf"
	ToolStatus       = "get_translation_status"
)

// LanguagesResourceURI identifies the static language catalogue resource.
const LanguagesResourceURI = "babeldoc://languages"

func translateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolTranslatePDF,
		Title:       "Translate PDF",
		Description: "Translate a PDF document from one language to another. Supports bilingual (dual) and monolingual output modes. Uses AI-powered translation via OpenRouter or OpenAI.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"input_file": map[string]any{
					"type":        "string",
					"description": "Absolute path to the input PDF file to translate.",
				},
				"output_dir": map[string]any{
					"type":        "string",
					"description": "Directory where the translated PDF(s) will be saved. If not provided, uses the same directory as the input file.",
				},
				"lang_in": map[string]any{
					"type":        "string",
					"description": "Source language code (e.g., 'en' for English, 'zh' for Chinese). Default: 'en'",
					"default":     "en",
				},
				"lang_out": map[string]any{
					"type":        "string",
					"description": "Target language code (e.g., 'vi' for Vietnamese, 'zh' for Chinese, 'ja' for Japanese). Default: 'zh'",
					"default":     "zh",
				},
				"pages": map[string]any{
					"type":        "string",
					"description": "Pages to translate (e.g., '1,2,3', '1-5', '1,3-5,7'). If not set, translates all pages.",
				},
				"no_dual": map[string]any{
					"type":        "boolean",
					"description": "If true, do not output bilingual PDF (side-by-side original and translation). Default: false",
					"default":     false,
				},
				"no_mono": map[string]any{
					"type":        "boolean",
					"description": "If true, do not output monolingual translated PDF. Default: false",
					"default":     false,
				},
				"service": map[string]any{
					"type":        "string",
					"enum":        []any{"openrouter", "openai"},
					"description": "Translation service to use. Default: 'openrouter' (uses env vars for API key)",
					"default":     "openrouter",
				},
				"model": map[string]any{
					"type":        "string",
					"description": "Model to use for translation. If not set, uses model from environment variable or default.",
				},
				"qps": map[string]any{
					"type":        "integer",
					"description": "Queries per second limit for translation API. Default: 4",
					"default":     4,
				},
				"watermark": map[string]any{
					"type":        "boolean",
					"description": "Add watermark to output PDF. Default: true",
					"default":     true,
				},
			},
			"required": []any{"input_file"},
		},
		Annotations: &mcp.ToolAnnotations{
			OpenWorldHint: boolPtr(true),
		},
	}
}

func statusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolStatus,
		Title:       "Translation status",
		Description: "Get information about BabelDOC translation service configuration and supported languages.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}
}

func boolPtr(v bool) *bool { return &v }
