// Package engine defines the interface to the BabelDOC translation engine:
// the job request, the progress event protocol, and the lazy event stream a
// running job emits. The engine itself (layout detection, OCR, glyph
// placement, PDF assembly) is an external collaborator; this package only
// drives it.
package engine

import (
	"context"
	"encoding/json"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/translator"
)

// Event types emitted by the engine during one job.
const (
	EventProgress = "progress_update"
	EventError    = "error"
	EventFinish   = "finish"
)

// Event is one element of the engine's progress stream.
type Event struct {
	// Type is one of the Event constants.
	Type string `json:"type"`
	// Stage names the pipeline stage for progress updates.
	Stage string `json:"stage,omitempty"`
	// StageCurrent is the current unit within the stage.
	StageCurrent int `json:"stage_current,omitempty"`
	// StageTotal is the stage unit count.
	StageTotal int `json:"stage_total,omitempty"`
	// Error carries the engine error payload for error events.
	Error string `json:"error,omitempty"`
	// Result carries the opaque result payload for finish events.
	Result json.RawMessage `json:"translate_result,omitempty"`
	// TokenUsage carries translator counters attached to finish events.
	TokenUsage *translator.Usage `json:"token_usage,omitempty"`
}

// Job describes one translation request. The output directory must exist
// before the job starts; the engine does not create it.
type Job struct {
	// InputFile is the resolved input PDF path.
	InputFile string
	// OutputDir receives the translated files.
	OutputDir string
	// Pages selects pages to translate; empty means all.
	Pages string
	// NoDual disables the bilingual output document.
	NoDual bool
	// NoMono disables the monolingual output document.
	NoMono bool
	// Watermark marks output documents as machine-translated.
	Watermark bool
	// Translator is the per-job translator handle.
	Translator *translator.Translator
	// Settings are the pass-through engine options.
	Settings Settings
}

// Stream is the lazy, finite, non-restartable event sequence of one job.
type Stream interface {
	// Next returns the next event. ok is false once the stream is exhausted;
	// a non-nil error means the stream itself broke, not that the engine
	// reported a failure through the event protocol.
	Next(ctx context.Context) (ev Event, ok bool, err error)
}

// Engine starts translation jobs.
type Engine interface {
	// Translate starts a job and returns its event stream.
	Translate(ctx context.Context, job *Job) (Stream, error)
}
