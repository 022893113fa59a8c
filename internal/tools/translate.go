package tools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/funstory-ai/babeldoc-mcp-server/internal/engine"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/pathutil"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/protocol"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/provider"
	"github.com/funstory-ai/babeldoc-mcp-server/internal/translator"
)

// translate runs one translation job from argument bag to terminal outcome.
// Every failure path, including panics from engine initialization or stream
// consumption, ends in an outcome; nothing escapes to the dispatcher.
func (r *Registry) translate(ctx context.Context, correlationID string, args map[string]any) (outcome protocol.Outcome) {
	defer func() {
		if p := recover(); p != nil {
			if r.Logger != nil {
				r.Logger.Error("translation panicked", "correlation_id", correlationID, "panic", p)
			}
			outcome = protocol.Faultf("%v", p)
		}
	}()

	parsed, err := parseTranslateArgs(args)
	if err != nil {
		return protocol.Validationf("%s", err)
	}

	inputPath, err := pathutil.Resolve(parsed.InputFile)
	if err != nil {
		if errors.Is(err, pathutil.ErrNotFound) {
			return protocol.Validationf("File not found: %s", parsed.InputFile)
		}
		return protocol.Faultf("resolve input path: %v", err)
	}
	if strings.ToLower(filepath.Ext(inputPath)) != ".pdf" {
		return protocol.Validationf("File must be a PDF")
	}

	envCfg, err := provider.LoadEnv()
	if err != nil {
		return protocol.Faultf("read provider environment: %v", err)
	}
	svc, err := provider.Resolve(parsed.Service, parsed.Model, envCfg)
	if err != nil {
		var missing *provider.MissingKeyError
		if errors.As(err, &missing) {
			return protocol.ConfigErrorf("%s", missing)
		}
		return protocol.Validationf("%s", err)
	}

	outputDir := parsed.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return protocol.Faultf("create output directory %s: %v", outputDir, err)
	}

	pages := probePageCount(inputPath)
	if pages > 0 && r.Logger != nil {
		r.Logger.Info("input probed", "correlation_id", correlationID, "file", inputPath, "pages", pages)
	}

	handle := translator.New(svc, parsed.LangIn, parsed.LangOut, parsed.QPS)
	job := &engine.Job{
		InputFile:  inputPath,
		OutputDir:  outputDir,
		Pages:      parsed.Pages,
		NoDual:     parsed.NoDual,
		NoMono:     parsed.NoMono,
		Watermark:  parsed.Watermark,
		Translator: handle,
		Settings:   r.Settings,
	}

	stream, err := r.Engine.Translate(ctx, job)
	if err != nil {
		return protocol.Faultf("%v", err)
	}

	red, err := reduceStream(ctx, stream, r.Logger)
	if err != nil {
		return protocol.Faultf("%v", err)
	}
	if r.Logger != nil {
		r.Logger.Debug("translation stream drained", "correlation_id", correlationID, "events", len(red.history))
	}

	if red.errSeen {
		return protocol.EngineError(red.errMsg)
	}
	if !red.finished || len(red.result) == 0 {
		return protocol.Faultf("no result information available")
	}

	return protocol.Successful(&protocol.SuccessRecord{
		Status:     "success",
		InputFile:  inputPath,
		OutputDir:  outputDir,
		LangIn:     parsed.LangIn,
		LangOut:    parsed.LangOut,
		Service:    svc.Service,
		Model:      svc.Model,
		TotalPages: pages,
		Result:     string(red.result),
		TokenUsage: protocol.TokenUsage(handle.Usage()),
	})
}

// probePageCount reads the page count for diagnostics. The probe is advisory:
// content validation belongs to the engine, so any failure, including the pdf
// reader's panics on malformed files, yields zero.
func probePageCount(path string) (pages int) {
	defer func() {
		if recover() != nil {
			pages = 0
		}
	}()
	file, reader, err := pdf.Open(path)
	if err != nil {
		return 0
	}
	defer func() { _ = file.Close() }()
	return reader.NumPage()
}
