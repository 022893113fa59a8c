package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probe(t *testing.T, handler http.HandlerFunc) (int, map[string]string) {
	t.Helper()
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthz_AlwaysOK(t *testing.T) {
	h := New("babeldoc-mcp", "1.0.0")

	code, body := probe(t, h.Healthz)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "babeldoc-mcp", body["service"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestReadyz_FollowsLifecycle(t *testing.T) {
	h := New("babeldoc-mcp", "1.0.0")

	code, body := probe(t, h.Readyz)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not ready", body["status"])

	h.SetReady()
	code, body = probe(t, h.Readyz)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body["status"])

	h.SetNotReady()
	code, _ = probe(t, h.Readyz)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
