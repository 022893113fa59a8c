package executil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_Success(t *testing.T) {
	output, exitCode, err := Capture(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", output)
	assert.Zero(t, exitCode)
}

func TestCapture_CombinesStderr(t *testing.T) {
	output, exitCode, err := Capture(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)
	assert.Equal(t, "oops", output)
	assert.Equal(t, 3, exitCode)
}

func TestCapture_MissingBinary(t *testing.T) {
	_, exitCode, err := Capture(context.Background(), "definitely-not-a-real-binary-418")
	require.Error(t, err)
	assert.Equal(t, -1, exitCode)
}
