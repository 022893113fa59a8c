package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/provider"
)

func TestTranslator_UsageStartsZeroed(t *testing.T) {
	tr := New(provider.ServiceConfig{Service: provider.OpenAI, Model: "gpt-4o-mini"}, "en", "zh", 4)

	usage := tr.Usage()
	assert.Zero(t, usage.TotalTokens)
	assert.Zero(t, usage.PromptTokens)
	assert.Zero(t, usage.CompletionTokens)
}

func TestTranslator_RecordAccumulates(t *testing.T) {
	tr := New(provider.ServiceConfig{Service: provider.OpenRouter}, "en", "zh", 4)

	tr.Record(Usage{TotalTokens: 100, PromptTokens: 70, CompletionTokens: 30})
	tr.Record(Usage{TotalTokens: 10, PromptTokens: 6, CompletionTokens: 4})

	usage := tr.Usage()
	assert.Equal(t, int64(110), usage.TotalTokens)
	assert.Equal(t, int64(76), usage.PromptTokens)
	assert.Equal(t, int64(34), usage.CompletionTokens)
}
