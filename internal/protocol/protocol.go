// Package protocol defines the terminal outcome of a tool call and its
// mapping to the single text payload returned to MCP clients.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Outcome kinds.
const (
	KindSuccess    = "success"
	KindValidation = "validation_error"
	KindConfig     = "config_error"
	KindEngine     = "engine_error"
	KindFault      = "fault"
)

// Stable text prefixes distinguishing error categories for the calling agent.
const (
	PrefixValidation = "Validation error: "
	PrefixEngine     = "Translation error: "
	PrefixFault      = "Translation failed: "
)

// TokenUsage reports translator token counters after a finished job.
type TokenUsage struct {
	// TotalTokens is the combined token count.
	TotalTokens int64 `json:"total_tokens"`
	// PromptTokens counts tokens sent to the model.
	PromptTokens int64 `json:"prompt_tokens"`
	// CompletionTokens counts tokens produced by the model.
	CompletionTokens int64 `json:"completion_tokens"`
}

// SuccessRecord is the structured payload returned for a completed translation.
type SuccessRecord struct {
	// Status is always "success".
	Status string `json:"status"`
	// InputFile is the resolved input path.
	InputFile string `json:"input_file"`
	// OutputDir is the directory holding the translated files.
	OutputDir string `json:"output_dir"`
	// LangIn is the source language code.
	LangIn string `json:"lang_in"`
	// LangOut is the target language code.
	LangOut string `json:"lang_out"`
	// Service is the provider profile used.
	Service string `json:"service"`
	// Model is the model used for translation.
	Model string `json:"model"`
	// TotalPages is the page count from the preflight probe, when known.
	TotalPages int `json:"total_pages,omitempty"`
	// Result is the opaque result description reported by the engine.
	Result string `json:"result"`
	// TokenUsage holds translator token counters.
	TokenUsage TokenUsage `json:"token_usage"`
}

// Outcome is the single terminal result of one tool call. Exactly one outcome
// exists per call; Success is set only for KindSuccess.
type Outcome struct {
	// Kind is one of the Kind constants.
	Kind string
	// Message holds the error text for non-success kinds.
	Message string
	// Success holds the structured record for KindSuccess.
	Success *SuccessRecord
}

// Successful builds a success outcome.
func Successful(record *SuccessRecord) Outcome {
	return Outcome{Kind: KindSuccess, Success: record}
}

// Validationf builds a validation error outcome.
func Validationf(format string, args ...any) Outcome {
	return Outcome{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// ConfigErrorf builds a configuration error outcome. It renders with the
// validation prefix so agents always see one of the three stable tags, but the
// kind stays distinct for logs and audit records.
func ConfigErrorf(format string, args ...any) Outcome {
	return Outcome{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// EngineError builds an outcome from an error reported by the engine stream.
func EngineError(message string) Outcome {
	return Outcome{Kind: KindEngine, Message: message}
}

// Faultf builds an outcome for an uncaught failure at the orchestration boundary.
func Faultf(format string, args ...any) Outcome {
	return Outcome{Kind: KindFault, Message: fmt.Sprintf(format, args...)}
}

// Text renders the outcome as the single textual payload returned to the
// caller. It never fails: a success record that cannot be serialized is
// reported as a fault.
func (o Outcome) Text() string {
	switch o.Kind {
	case KindSuccess:
		data, err := json.MarshalIndent(o.Success, "", "  ")
		if err != nil {
			return PrefixFault + fmt.Sprintf("serialize result: %v", err)
		}
		return string(data)
	case KindValidation, KindConfig:
		return PrefixValidation + o.Message
	case KindEngine:
		return PrefixEngine + o.Message
	default:
		return PrefixFault + o.Message
	}
}

// IsError reports whether the outcome is anything other than success.
func (o Outcome) IsError() bool {
	return o.Kind != KindSuccess
}
