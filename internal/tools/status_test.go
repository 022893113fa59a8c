package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/provider"
)

func TestStatus_Unconfigured(t *testing.T) {
	clearProviderEnv(t)
	r := &Registry{}

	var snapshot provider.Status
	require.NoError(t, json.Unmarshal([]byte(r.status()), &snapshot))

	assert.Equal(t, ServerName, snapshot.Service)
	assert.Equal(t, ServerVersion, snapshot.Version)
	assert.False(t, snapshot.OpenRouterConfigured)
	assert.False(t, snapshot.OpenAIConfigured)
	assert.Equal(t, provider.DefaultOpenRouterModel, snapshot.OpenRouterModel)
	assert.Equal(t, provider.DefaultOpenRouterBaseURL, snapshot.OpenRouterBaseURL)
	assert.Equal(t, provider.DefaultOpenAIModel, snapshot.OpenAIModel)
	assert.NotEmpty(t, snapshot.SupportedLanguages)
}

func TestStatus_ReadsEnvironmentPerCall(t *testing.T) {
	clearProviderEnv(t)
	r := &Registry{}

	var before provider.Status
	require.NoError(t, json.Unmarshal([]byte(r.status()), &before))
	assert.False(t, before.OpenRouterConfigured)

	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("OPENROUTER_MODEL", "anthropic/claude-sonnet-4")

	var after provider.Status
	require.NoError(t, json.Unmarshal([]byte(r.status()), &after))
	assert.True(t, after.OpenRouterConfigured)
	assert.Equal(t, "anthropic/claude-sonnet-4", after.OpenRouterModel)
}

func TestStatus_NeverLeaksKeys(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or-supersecret")
	t.Setenv("OPENAI_API_KEY", "sk-supersecret")

	r := &Registry{}
	text := r.status()

	assert.NotContains(t, text, "supersecret")
}
