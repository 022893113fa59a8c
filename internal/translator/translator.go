// Package translator holds the per-job translator handle: the resolved
// provider credentials, the language pair, the qps cap forwarded to the
// engine's rate limiter, and token counters readable after the job finishes.
package translator

import (
	"sync/atomic"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/provider"
)

// Usage mirrors the token counters reported in the engine's finish payload.
type Usage struct {
	// TotalTokens is the combined token count.
	TotalTokens int64 `json:"total_tokens"`
	// PromptTokens counts tokens sent to the model.
	PromptTokens int64 `json:"prompt_tokens"`
	// CompletionTokens counts tokens produced by the model.
	CompletionTokens int64 `json:"completion_tokens"`
}

// Translator is created fresh for each translation attempt and owned
// exclusively by that call.
type Translator struct {
	cfg     provider.ServiceConfig
	langIn  string
	langOut string
	qps     int

	total      atomic.Int64
	prompt     atomic.Int64
	completion atomic.Int64
}

// New builds a translator handle from a resolved service configuration.
func New(cfg provider.ServiceConfig, langIn, langOut string, qps int) *Translator {
	return &Translator{
		cfg:     cfg,
		langIn:  langIn,
		langOut: langOut,
		qps:     qps,
	}
}

// Config returns the resolved provider configuration.
func (t *Translator) Config() provider.ServiceConfig {
	return t.cfg
}

// LangIn returns the source language code.
func (t *Translator) LangIn() string { return t.langIn }

// LangOut returns the target language code.
func (t *Translator) LangOut() string { return t.langOut }

// QPS returns the queries-per-second cap for the engine rate limiter.
func (t *Translator) QPS() int { return t.qps }

// Record accumulates token counters reported by the engine.
func (t *Translator) Record(u Usage) {
	t.total.Add(u.TotalTokens)
	t.prompt.Add(u.PromptTokens)
	t.completion.Add(u.CompletionTokens)
}

// Usage returns the token counters accumulated so far. Counters are zero when
// the engine reported no usage, so the fields are always present in results.
func (t *Translator) Usage() Usage {
	return Usage{
		TotalTokens:      t.total.Load(),
		PromptTokens:     t.prompt.Load(),
		CompletionTokens: t.completion.Load(),
	}
}
