// Package health serves liveness and readiness probes for the HTTP transport.
package health

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// Handler gates readiness on the server lifecycle. Liveness is unconditional:
// the process answering at all is the signal.
type Handler struct {
	service string
	version string
	ready   atomic.Bool
}

// New returns a health handler reporting the given identity.
func New(service, version string) *Handler {
	return &Handler{service: service, version: version}
}

// SetReady marks the server as accepting MCP traffic.
func (h *Handler) SetReady() {
	h.ready.Store(true)
}

// SetNotReady marks the server as draining.
func (h *Handler) SetNotReady() {
	h.ready.Store(false)
}

// Healthz handles liveness probes.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, "ok")
}

// Readyz handles readiness probes.
func (h *Handler) Readyz(w http.ResponseWriter, _ *http.Request) {
	if h.ready.Load() {
		h.respond(w, http.StatusOK, "ready")
		return
	}
	h.respond(w, http.StatusServiceUnavailable, "not ready")
}

func (h *Handler) respond(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  status,
		"service": h.service,
		"version": h.version,
	})
}
