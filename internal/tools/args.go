package tools

import (
	"fmt"
	"math"
)

// Hardcoded argument defaults for translate_pdf.
const (
	defaultLangIn  = "en"
	defaultLangOut = "zh"
	defaultService = "openrouter"
	defaultQPS     = 4
)

// translateArgs is the typed request built from a translate_pdf argument bag.
type translateArgs struct {
	InputFile string
	OutputDir string
	LangIn    string
	LangOut   string
	Pages     string
	NoDual    bool
	NoMono    bool
	Service   string
	Model     string
	QPS       int
	Watermark bool
}

// parseTranslateArgs validates the argument bag against the declared schema
// and applies defaults. It fails fast on the first mismatch so no handler
// logic runs on malformed input.
func parseTranslateArgs(args map[string]any) (translateArgs, error) {
	parsed := translateArgs{
		LangIn:    defaultLangIn,
		LangOut:   defaultLangOut,
		Service:   defaultService,
		QPS:       defaultQPS,
		Watermark: true,
	}

	inputFile, err := stringArg(args, "input_file", "")
	if err != nil {
		return translateArgs{}, err
	}
	if inputFile == "" {
		return translateArgs{}, fmt.Errorf("input_file is required")
	}
	parsed.InputFile = inputFile

	if parsed.OutputDir, err = stringArg(args, "output_dir", ""); err != nil {
		return translateArgs{}, err
	}
	if parsed.LangIn, err = stringArg(args, "lang_in", defaultLangIn); err != nil {
		return translateArgs{}, err
	}
	if parsed.LangOut, err = stringArg(args, "lang_out", defaultLangOut); err != nil {
		return translateArgs{}, err
	}
	if parsed.Pages, err = stringArg(args, "pages", ""); err != nil {
		return translateArgs{}, err
	}
	if parsed.Service, err = stringArg(args, "service", defaultService); err != nil {
		return translateArgs{}, err
	}
	if parsed.Model, err = stringArg(args, "model", ""); err != nil {
		return translateArgs{}, err
	}
	if parsed.NoDual, err = boolArg(args, "no_dual", false); err != nil {
		return translateArgs{}, err
	}
	if parsed.NoMono, err = boolArg(args, "no_mono", false); err != nil {
		return translateArgs{}, err
	}
	if parsed.Watermark, err = boolArg(args, "watermark", true); err != nil {
		return translateArgs{}, err
	}
	if parsed.QPS, err = intArg(args, "qps", defaultQPS); err != nil {
		return translateArgs{}, err
	}
	if parsed.QPS <= 0 {
		return translateArgs{}, fmt.Errorf("qps must be a positive integer")
	}

	return parsed, nil
}

func stringArg(args map[string]any, name, def string) (string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return def, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("argument %s must be a string", name)
	}
	return value, nil
}

func boolArg(args map[string]any, name string, def bool) (bool, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return def, nil
	}
	value, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("argument %s must be a boolean", name)
	}
	return value, nil
}

// intArg accepts both Go ints and the float64 values JSON decoding produces.
func intArg(args map[string]any, name string, def int) (int, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return def, nil
	}
	switch value := raw.(type) {
	case int:
		return value, nil
	case float64:
		if value != math.Trunc(value) {
			return 0, fmt.Errorf("argument %s must be an integer", name)
		}
		return int(value), nil
	default:
		return 0, fmt.Errorf("argument %s must be an integer", name)
	}
}
