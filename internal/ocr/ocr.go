// Package ocr runs general-purpose text recognition over label images by
// shelling out to tesseract. The Runner indirection keeps it testable
// without the binary installed.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "swe+eng"
	TessdataDir   string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

// RecognitionResult is the line-structured text read from one image.
type RecognitionResult struct {
	Lines    []string
	FullText string
	Language string
	Duration time.Duration
}

// IsBlank reports whether recognition produced no usable text.
func (r RecognitionResult) IsBlank() bool {
	return strings.TrimSpace(r.FullText) == ""
}

type Recognizer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewRecognizer(cfg Config, logger *slog.Logger) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "swe+eng"
	}
	return &Recognizer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner; tests use this to stub tesseract.
func (r *Recognizer) WithRunner(runner Runner) *Recognizer {
	r.runner = runner
	return r
}

// Recognize runs tesseract over the image at path and splits the output
// into trimmed, non-empty lines.
func (r *Recognizer) Recognize(ctx context.Context, path string) (RecognitionResult, error) {
	start := time.Now()
	r.logger.Debug("starting text recognition", "path", path, "lang", r.cfg.TesseractLang)

	args := []string{path, "stdout", "-l", r.cfg.TesseractLang}
	if r.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", r.cfg.PSM))
	}
	if r.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", r.cfg.OEM))
	}
	if r.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", r.cfg.TessdataDir)
	}

	out, errb, err := r.runner.Run(ctx, r.cfg.Tesseract, args...)
	if err != nil {
		r.logger.Error("text recognition failed", "path", path, "stderr", truncate(string(errb), 2<<10))
		return RecognitionResult{}, fmt.Errorf("tesseract: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	res := RecognitionResult{
		Lines:    lines,
		FullText: strings.Join(lines, "\n"),
		Language: r.cfg.TesseractLang,
		Duration: time.Since(start),
	}
	r.logger.Debug("text recognition done",
		"path", path,
		"lines", len(res.Lines),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
