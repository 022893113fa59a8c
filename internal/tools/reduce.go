package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/engine"
)

// reduction is the accumulated state of one fully drained event stream.
// Progress history is kept for diagnostics only and never alters control flow.
type reduction struct {
	history  []string
	errMsg   string
	errSeen  bool
	result   json.RawMessage
	finished bool
}

// reduceStream drains the engine event stream to exhaustion. When the engine
// emits more than one error event, the last one wins: earlier errors are
// treated as superseded because only the terminal state is reported. A non-nil
// error means the stream itself broke, which the caller maps to a fault.
func reduceStream(ctx context.Context, stream engine.Stream, logger *slog.Logger) (reduction, error) {
	var red reduction
	for {
		ev, ok, err := stream.Next(ctx)
		if err != nil {
			return red, err
		}
		if !ok {
			return red, nil
		}

		switch ev.Type {
		case engine.EventProgress:
			red.history = append(red.history, fmt.Sprintf("%s: %d/%d", ev.Stage, ev.StageCurrent, ev.StageTotal))
			if logger != nil {
				logger.Debug("translation progress", "stage", ev.Stage, "current", ev.StageCurrent, "total", ev.StageTotal)
			}
		case engine.EventError:
			red.errSeen = true
			red.errMsg = ev.Error
			if red.errMsg == "" {
				red.errMsg = "Unknown error"
			}
		case engine.EventFinish:
			red.finished = true
			red.result = ev.Result
		default:
			if logger != nil {
				logger.Debug("ignoring unknown engine event", "type", ev.Type)
			}
		}
	}
}
