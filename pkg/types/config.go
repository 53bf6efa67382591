package types

// SourceConfig holds settings for the text source stage.
type SourceConfig struct {
	// UseOCR forces OCR extraction instead of the PDF text layer.
	UseOCR bool `json:"use_ocr" yaml:"use_ocr"`

	// OCRFallback enables falling back to OCR when the text layer is
	// missing or empty.
	OCRFallback bool `json:"ocr_fallback" yaml:"ocr_fallback"`

	// DPI is the rasterization resolution for OCR (default 300).
	DPI int `json:"dpi" yaml:"dpi"`

	// PageSegMode is the tesseract page segmentation mode (default "6",
	// a single uniform block of text).
	PageSegMode string `json:"page_seg_mode" yaml:"page_seg_mode"`

	// PageMarkers inserts "--- Page N ---" separators between OCR pages.
	PageMarkers bool `json:"page_markers" yaml:"page_markers"`
}

// WithDefaults returns the config with zero values replaced by defaults.
func (c SourceConfig) WithDefaults() SourceConfig {
	if c.DPI <= 0 {
		c.DPI = 300
	}
	if c.PageSegMode == "" {
		c.PageSegMode = "6"
	}
	return c
}

// ScheduleConfig holds settings for the schedule parsing stage. The date
// label table and fallback label are document-template configuration, not
// inferred logic: a two-day conference program maps its header tokens to
// display labels here.
type ScheduleConfig struct {
	// DateLabels maps a lowercased date-header token to the canonical
	// display label (e.g. "may 10" -> "May 10, 2025 (Day 1)"). Headers
	// without a table entry keep their literal matched text.
	DateLabels map[string]string `json:"date_labels" yaml:"date_labels"`

	// FallbackDate labels events in documents with no recognized date
	// header (default "N/A").
	FallbackDate string `json:"fallback_date" yaml:"fallback_date"`

	// TitleMaxLen caps session names (default 200).
	TitleMaxLen int `json:"title_max_len" yaml:"title_max_len"`

	// SpeakerMaxLen caps speaker fields (default 100).
	SpeakerMaxLen int `json:"speaker_max_len" yaml:"speaker_max_len"`

	// LocationMaxLen caps location fields (default 100).
	LocationMaxLen int `json:"location_max_len" yaml:"location_max_len"`

	// RawTextMaxLen caps the accumulated event body (default 500).
	RawTextMaxLen int `json:"raw_text_max_len" yaml:"raw_text_max_len"`

	// TitleTruncateAt is the prefix length used by the last-resort title
	// fallback (default 50).
	TitleTruncateAt int `json:"title_truncate_at" yaml:"title_truncate_at"`

	// ShortTitleMaxTokens is the token ceiling for the short-line title
	// heuristic (default 10).
	ShortTitleMaxTokens int `json:"short_title_max_tokens" yaml:"short_title_max_tokens"`
}

// WithDefaults returns the config with zero values replaced by defaults.
func (c ScheduleConfig) WithDefaults() ScheduleConfig {
	if c.FallbackDate == "" {
		c.FallbackDate = NotAvailable
	}
	if c.TitleMaxLen <= 0 {
		c.TitleMaxLen = 200
	}
	if c.SpeakerMaxLen <= 0 {
		c.SpeakerMaxLen = 100
	}
	if c.LocationMaxLen <= 0 {
		c.LocationMaxLen = 100
	}
	if c.RawTextMaxLen <= 0 {
		c.RawTextMaxLen = 500
	}
	if c.TitleTruncateAt <= 0 {
		c.TitleTruncateAt = 50
	}
	if c.ShortTitleMaxTokens <= 0 {
		c.ShortTitleMaxTokens = 10
	}
	return c
}

// StoreConfig holds settings for the event store stage.
type StoreConfig struct {
	// StoreDir is the directory holding the SQLite database (default "store").
	StoreDir string `json:"store_dir" yaml:"store_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Source   SourceConfig   `json:"source" yaml:"source"`
	Schedule ScheduleConfig `json:"schedule" yaml:"schedule"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}
