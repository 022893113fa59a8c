// Package executil runs short-lived diagnostic commands and captures their
// combined output. Translation jobs do not go through here: they need a
// streaming stdout pipe and live in internal/engine.
package executil

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Capture runs name with args and returns trimmed combined output and the
// exit code. The exit code is -1 when the process never started.
func Capture(ctx context.Context, name string, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	err := cmd.Run()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	return strings.TrimSpace(output.String()), exitCode, err
}
