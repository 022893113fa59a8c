package engine

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// CLI drives the BabelDOC engine as a subprocess. The engine is expected to
// emit its progress protocol as line-delimited JSON events on stdout
// (progress_update, error, finish); anything else on stdout is ignored.
type CLI struct {
	// Command is the engine executable.
	Command string
	// Logger is used for driver diagnostics.
	Logger *slog.Logger
}

// NewCLI returns a subprocess-backed engine.
func NewCLI(command string, logger *slog.Logger) *CLI {
	return &CLI{Command: command, Logger: logger}
}

// Translate starts the engine process and returns its event stream. The
// process is killed when ctx is cancelled; the stream then reports a broken
// stream rather than a terminal event.
func (c *CLI) Translate(ctx context.Context, job *Job) (Stream, error) {
	if job == nil {
		return nil, fmt.Errorf("job is nil")
	}
	if job.Translator == nil {
		return nil, fmt.Errorf("job has no translator")
	}
	if strings.TrimSpace(job.InputFile) == "" {
		return nil, fmt.Errorf("job has no input file")
	}

	cmd := exec.CommandContext(ctx, c.Command, buildArgs(job)...)
	cmd.Env = os.Environ()

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("engine stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start engine %s: %w", c.Command, err)
	}
	if c.Logger != nil {
		c.Logger.Debug("engine started", "command", c.Command, "input", job.InputFile)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	return &cliStream{
		cmd:     cmd,
		scanner: scanner,
		stderr:  &stderr,
		job:     job,
		logger:  c.Logger,
	}, nil
}

type cliStream struct {
	cmd     *exec.Cmd
	scanner *bufio.Scanner
	stderr  *bytes.Buffer
	job     *Job
	logger  *slog.Logger
	done    bool
}

// Next scans engine stdout for the next event. Exhaustion waits for the
// process so a nonzero exit without a terminal event surfaces as a stream
// error, not a silent end.
func (s *cliStream) Next(ctx context.Context) (Event, bool, error) {
	if s.done {
		return Event{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		s.done = true
		_ = s.cmd.Wait()
		return Event{}, false, fmt.Errorf("engine stream: %w", err)
	}

	for s.scanner.Scan() {
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 || line[0] != '{' {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil || ev.Type == "" {
			if s.logger != nil {
				s.logger.Debug("skipping non-event engine output", "line", string(line))
			}
			continue
		}
		if ev.Type == EventFinish && ev.TokenUsage != nil {
			s.job.Translator.Record(*ev.TokenUsage)
		}
		return ev, true, nil
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		_ = s.cmd.Wait()
		return Event{}, false, fmt.Errorf("read engine output: %w", err)
	}
	if err := s.cmd.Wait(); err != nil {
		detail := strings.TrimSpace(s.stderr.String())
		if detail != "" {
			return Event{}, false, fmt.Errorf("engine exited: %v: %s", err, tail(detail, 2048))
		}
		return Event{}, false, fmt.Errorf("engine exited: %w", err)
	}
	return Event{}, false, nil
}

// buildArgs maps the job and its settings onto engine CLI flags.
func buildArgs(job *Job) []string {
	cfg := job.Translator.Config()
	args := []string{
		"--files", job.InputFile,
		"--output", job.OutputDir,
		"--lang-in", job.Translator.LangIn(),
		"--lang-out", job.Translator.LangOut(),
		"--openai",
		"--openai-model", cfg.Model,
		"--openai-api-key", cfg.APIKey,
		"--qps", strconv.Itoa(job.Translator.QPS()),
	}
	if cfg.BaseURL != "" {
		args = append(args, "--openai-base-url", cfg.BaseURL)
	}
	if job.Pages != "" {
		args = append(args, "--pages", job.Pages)
	}
	if job.NoDual {
		args = append(args, "--no-dual")
	}
	if job.NoMono {
		args = append(args, "--no-mono")
	}
	if job.Watermark {
		args = append(args, "--watermark-output-mode", "watermarked")
	} else {
		args = append(args, "--watermark-output-mode", "no_watermark")
	}
	return append(args, settingsArgs(job.Settings)...)
}

func settingsArgs(s Settings) []string {
	var args []string
	flag := func(enabled bool, name string) {
		if enabled {
			args = append(args, name)
		}
	}
	str := func(value, name string) {
		if value != "" {
			args = append(args, name, value)
		}
	}

	args = append(args,
		"--report-interval", strconv.FormatFloat(s.ReportInterval, 'f', -1, 64),
		"--min-text-length", strconv.Itoa(s.MinTextLength),
		"--short-line-split-factor", strconv.FormatFloat(s.ShortLineSplitFactor, 'f', -1, 64),
		"--non-formula-line-iou-threshold", strconv.FormatFloat(s.NonFormulaLineIOUThreshold, 'f', -1, 64),
		"--figure-table-protection-threshold", strconv.FormatFloat(s.FigureTableProtectionThreshold, 'f', -1, 64),
	)

	flag(s.Debug, "--debug")
	flag(s.SplitShortLines, "--split-short-lines")
	flag(s.SkipClean, "--skip-clean")
	flag(s.DualTranslateFirst, "--dual-translate-first")
	flag(s.DisableRichTextTranslate, "--disable-rich-text-translate")
	flag(s.EnhanceCompatibility, "--enhance-compatibility")
	flag(s.UseAlternatingPagesDual, "--use-alternating-pages-dual")
	flag(s.ShowCharBox, "--show-char-box")
	flag(s.SkipScannedDetection, "--skip-scanned-detection")
	flag(s.OCRWorkaround, "--ocr-workaround")
	flag(s.AutoEnableOCRWorkaround, "--auto-enable-ocr-workaround")
	flag(s.AddFormulaPlaceholdHint, "--add-formula-placehold-hint")
	flag(s.DisableSameTextFallback, "--disable-same-text-fallback")
	flag(!s.AutoExtractGlossary, "--no-auto-extract-glossary")
	flag(s.SaveAutoExtractedGlossary, "--save-auto-extracted-glossary")
	flag(s.OnlyIncludeTranslatedPage, "--only-include-translated-page")
	flag(!s.EnableGraphicElementProcess, "--disable-graphic-element-process")
	flag(s.MergeAlternatingLineNumbers, "--merge-alternating-line-numbers")
	flag(s.SkipTranslation, "--skip-translation")
	flag(s.SkipFormRender, "--skip-form-render")
	flag(s.SkipCurveRender, "--skip-curve-render")
	flag(s.OnlyParseGeneratePDF, "--only-parse-generate-pdf")
	flag(s.RemoveNonFormulaLines, "--remove-non-formula-lines")
	flag(s.SkipFormulaOffsetCalculation, "--skip-formula-offset-calculation")
	flag(s.IgnoreCache, "--ignore-cache")

	str(s.Font, "--font")
	str(s.FormularFontPattern, "--formular-font-pattern")
	str(s.FormularCharPattern, "--formular-char-pattern")
	str(s.CustomSystemPrompt, "--custom-system-prompt")
	str(s.WorkingDir, "--working-dir")
	str(s.PrimaryFontFamily, "--primary-font-family")

	if s.PoolMaxWorkers > 0 {
		args = append(args, "--pool-max-workers", strconv.Itoa(s.PoolMaxWorkers))
	}
	if s.TermPoolMaxWorkers > 0 {
		args = append(args, "--term-pool-max-workers", strconv.Itoa(s.TermPoolMaxWorkers))
	}
	for _, glossary := range s.Glossaries {
		args = append(args, "--glossary-files", glossary)
	}
	return args
}

func tail(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[len(s)-max:]
}
