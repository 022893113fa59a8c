package engine

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funstory-ai/babeldoc-mcp-server/configs"
)

// Settings are the engine options the adapter does not expose as tool
// arguments. Defaults come from the embedded configs/engine.yaml; operators
// may override individual fields with a YAML overlay file.
type Settings struct {
	// Debug enables engine debug output.
	Debug bool `yaml:"debug"`
	// Font overrides the font file used for rendering.
	Font string `yaml:"font"`
	// FormularFontPattern matches fonts treated as formula fonts.
	FormularFontPattern string `yaml:"formular_font_pattern"`
	// FormularCharPattern matches characters treated as formulas.
	FormularCharPattern string `yaml:"formular_char_pattern"`
	// SplitShortLines splits short lines into separate paragraphs.
	SplitShortLines bool `yaml:"split_short_lines"`
	// ShortLineSplitFactor scales the short-line threshold.
	ShortLineSplitFactor float64 `yaml:"short_line_split_factor"`
	// SkipClean skips the PDF cleanup step.
	SkipClean bool `yaml:"skip_clean"`
	// DualTranslateFirst puts translated pages first in dual output.
	DualTranslateFirst bool `yaml:"dual_translate_first"`
	// DisableRichTextTranslate disables rich text translation.
	DisableRichTextTranslate bool `yaml:"disable_rich_text_translate"`
	// EnhanceCompatibility enables all compatibility fallbacks.
	EnhanceCompatibility bool `yaml:"enhance_compatibility"`
	// UseAlternatingPagesDual alternates original and translated pages.
	UseAlternatingPagesDual bool `yaml:"use_alternating_pages_dual"`
	// ReportInterval is the progress report interval in seconds.
	ReportInterval float64 `yaml:"report_interval"`
	// MinTextLength is the minimum text length to translate.
	MinTextLength int `yaml:"min_text_length"`
	// ShowCharBox draws character boxes (debugging aid).
	ShowCharBox bool `yaml:"show_char_box"`
	// SkipScannedDetection skips scanned-document detection.
	SkipScannedDetection bool `yaml:"skip_scanned_detection"`
	// OCRWorkaround forces the OCR workaround for scanned documents.
	OCRWorkaround bool `yaml:"ocr_workaround"`
	// AutoEnableOCRWorkaround enables the OCR workaround automatically.
	AutoEnableOCRWorkaround bool `yaml:"auto_enable_ocr_workaround"`
	// CustomSystemPrompt overrides the translation system prompt.
	CustomSystemPrompt string `yaml:"custom_system_prompt"`
	// WorkingDir overrides the engine scratch directory.
	WorkingDir string `yaml:"working_dir"`
	// AddFormulaPlaceholdHint adds formula placeholder hints to prompts.
	AddFormulaPlaceholdHint bool `yaml:"add_formula_placehold_hint"`
	// DisableSameTextFallback disables the same-text fallback.
	DisableSameTextFallback bool `yaml:"disable_same_text_fallback"`
	// Glossaries lists glossary CSV files passed to the engine.
	Glossaries []string `yaml:"glossaries"`
	// PoolMaxWorkers caps the engine translation worker pool.
	PoolMaxWorkers int `yaml:"pool_max_workers"`
	// TermPoolMaxWorkers caps the term-extraction worker pool.
	TermPoolMaxWorkers int `yaml:"term_pool_max_workers"`
	// AutoExtractGlossary extracts a glossary before translation.
	AutoExtractGlossary bool `yaml:"auto_extract_glossary"`
	// SaveAutoExtractedGlossary writes the extracted glossary next to output.
	SaveAutoExtractedGlossary bool `yaml:"save_auto_extracted_glossary"`
	// PrimaryFontFamily selects the primary output font family.
	PrimaryFontFamily string `yaml:"primary_font_family"`
	// OnlyIncludeTranslatedPage keeps only translated pages in output.
	OnlyIncludeTranslatedPage bool `yaml:"only_include_translated_page"`
	// EnableGraphicElementProcess processes graphic elements.
	EnableGraphicElementProcess bool `yaml:"enable_graphic_element_process"`
	// MergeAlternatingLineNumbers merges alternating line-number lines.
	MergeAlternatingLineNumbers bool `yaml:"merge_alternating_line_numbers"`
	// SkipTranslation renders without translating (layout testing).
	SkipTranslation bool `yaml:"skip_translation"`
	// SkipFormRender skips form rendering.
	SkipFormRender bool `yaml:"skip_form_render"`
	// SkipCurveRender skips curve rendering.
	SkipCurveRender bool `yaml:"skip_curve_render"`
	// OnlyParseGeneratePDF regenerates the PDF without translation.
	OnlyParseGeneratePDF bool `yaml:"only_parse_generate_pdf"`
	// RemoveNonFormulaLines removes non-formula lines in formula areas.
	RemoveNonFormulaLines bool `yaml:"remove_non_formula_lines"`
	// NonFormulaLineIOUThreshold is the IOU threshold for line removal.
	NonFormulaLineIOUThreshold float64 `yaml:"non_formula_line_iou_threshold"`
	// FigureTableProtectionThreshold protects figures and tables from removal.
	FigureTableProtectionThreshold float64 `yaml:"figure_table_protection_threshold"`
	// SkipFormulaOffsetCalculation skips formula offset calculation.
	SkipFormulaOffsetCalculation bool `yaml:"skip_formula_offset_calculation"`
	// IgnoreCache bypasses the engine translation cache.
	IgnoreCache bool `yaml:"ignore_cache"`
}

// LoadSettings builds engine settings from the embedded defaults plus an
// optional overlay file. An empty overlay path means defaults only.
func LoadSettings(overlayPath string) (Settings, error) {
	raw, err := configs.EngineDefaults()
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := decodeStrict(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse embedded engine defaults: %w", err)
	}

	if overlayPath != "" {
		overlay, err := os.ReadFile(overlayPath)
		if err != nil {
			return Settings{}, fmt.Errorf("read engine settings overlay: %w", err)
		}
		if err := decodeStrict(overlay, &settings); err != nil {
			return Settings{}, fmt.Errorf("parse engine settings overlay %s: %w", overlayPath, err)
		}
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate verifies numeric option ranges.
func (s Settings) Validate() error {
	if s.ReportInterval <= 0 {
		return fmt.Errorf("report_interval must be positive, got %v", s.ReportInterval)
	}
	if s.ShortLineSplitFactor <= 0 || s.ShortLineSplitFactor > 1 {
		return fmt.Errorf("short_line_split_factor must be in (0, 1], got %v", s.ShortLineSplitFactor)
	}
	if s.MinTextLength < 0 {
		return fmt.Errorf("min_text_length must be >= 0, got %d", s.MinTextLength)
	}
	if s.NonFormulaLineIOUThreshold < 0 || s.NonFormulaLineIOUThreshold > 1 {
		return fmt.Errorf("non_formula_line_iou_threshold must be in [0, 1], got %v", s.NonFormulaLineIOUThreshold)
	}
	if s.FigureTableProtectionThreshold < 0 || s.FigureTableProtectionThreshold > 1 {
		return fmt.Errorf("figure_table_protection_threshold must be in [0, 1], got %v", s.FigureTableProtectionThreshold)
	}
	if s.PoolMaxWorkers < 0 {
		return fmt.Errorf("pool_max_workers must be >= 0, got %d", s.PoolMaxWorkers)
	}
	if s.TermPoolMaxWorkers < 0 {
		return fmt.Errorf("term_pool_max_workers must be >= 0, got %d", s.TermPoolMaxWorkers)
	}
	return nil
}

func decodeStrict(data []byte, out *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
