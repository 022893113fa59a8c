// Package startup runs preflight checks before the server accepts calls.
package startup

import (
	"context"
	"log/slog"
	"os/exec"
	"time"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/executil"
)

const versionProbeTimeout = 10 * time.Second

// Preflight checks that the translation engine is reachable and logs its
// version. A missing or broken engine is reported but never fatal: the
// status tool must stay available and translate calls surface the failure
// per call.
func Preflight(ctx context.Context, engineCommand string, logger *slog.Logger) {
	path, err := exec.LookPath(engineCommand)
	if err != nil {
		logger.Warn("translation engine not found on PATH, translate calls will fail",
			"command", engineCommand, "error", err)
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	output, exitCode, err := executil.Capture(probeCtx, path, "--version")
	if err != nil {
		logger.Warn("translation engine version probe failed",
			"command", path, "exit_code", exitCode, "error", err)
		return
	}
	logger.Info("translation engine ready", "command", path, "version", output)
}
