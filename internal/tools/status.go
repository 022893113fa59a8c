package tools

import (
	"encoding/json"
	"fmt"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/provider"
)

// status reports the environment-derived capability snapshot. It re-reads the
// environment on every call and never touches the engine.
func (r *Registry) status() string {
	envCfg, err := provider.LoadEnv()
	if err != nil {
		return fmt.Sprintf("%sread provider environment: %v", statusErrorPrefix, err)
	}

	snapshot := provider.Snapshot(envCfg, ServerName, ServerVersion)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Sprintf("%sserialize status: %v", statusErrorPrefix, err)
	}
	return string(data)
}

const statusErrorPrefix = "Status unavailable: "
