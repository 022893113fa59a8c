package protocol

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_ErrorPrefixes(t *testing.T) {
	cases := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{"validation", Validationf("File must be a PDF"), "Validation error: File must be a PDF"},
		{"config shares validation prefix", ConfigErrorf("OPENROUTER_API_KEY environment variable not set"), "Validation error: OPENROUTER_API_KEY environment variable not set"},
		{"engine", EngineError("upstream timeout"), "Translation error: upstream timeout"},
		{"fault", Faultf("no result information available"), "Translation failed: no result information available"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.outcome.Text())
			assert.True(t, tc.outcome.IsError())
		})
	}
}

func TestText_SuccessIsStructuredJSON(t *testing.T) {
	out := Successful(&SuccessRecord{
		Status:    "success",
		InputFile: "/docs/paper.pdf",
		OutputDir: "/docs",
		LangIn:    "en",
		LangOut:   "zh",
		Service:   "openrouter",
		Model:     "google/gemini-2.5-flash",
		Result:    `{"mono_pdf_path":"/docs/paper.zh.pdf"}`,
	})
	assert.False(t, out.IsError())

	text := out.Text()
	for _, prefix := range []string{PrefixValidation, PrefixEngine, PrefixFault} {
		assert.False(t, strings.HasPrefix(text, prefix))
	}

	var decoded SuccessRecord
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	assert.Equal(t, "success", decoded.Status)
	assert.Equal(t, "/docs/paper.pdf", decoded.InputFile)
	assert.Zero(t, decoded.TokenUsage.TotalTokens)
}

func TestSuccessRecord_TokenUsageAlwaysPresent(t *testing.T) {
	data, err := json.Marshal(&SuccessRecord{Status: "success"})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "token_usage")
}

func TestSuccessRecord_TotalPagesOmittedWhenUnknown(t *testing.T) {
	data, err := json.Marshal(&SuccessRecord{Status: "success"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "total_pages")

	data, err = json.Marshal(&SuccessRecord{Status: "success", TotalPages: 12})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_pages":12`)
}
