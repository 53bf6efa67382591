// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

const (
	binPdftoppm  = "pdftoppm"
	binTesseract = "tesseract"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
	RunOutput(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var defaultExec executor = &osExecutor{}

// OCRProvider extracts text from scanned PDFs by rasterizing pages with
// pdftoppm and recognizing them with tesseract. Pages are grayscale at the
// configured DPI; tesseract runs with a fixed page-segmentation mode and
// preserved inter-word spacing, which handles columnar program layouts
// better than the defaults.
type OCRProvider struct {
	dpi         int
	pageSegMode string
	pageMarkers bool
	exec        executor
}

// NewOCRProvider verifies the OCR toolchain is on PATH and returns a
// configured provider.
func NewOCRProvider(cfg types.SourceConfig) (*OCRProvider, error) {
	return newOCRProvider(cfg, defaultExec)
}

func newOCRProvider(cfg types.SourceConfig, ex executor) (*OCRProvider, error) {
	cfg = cfg.WithDefaults()
	for _, bin := range []string{binPdftoppm, binTesseract} {
		if _, err := ex.LookPath(bin); err != nil {
			return nil, fmt.Errorf("OCR toolchain unavailable: %s not found: %w", bin, err)
		}
	}
	return &OCRProvider{
		dpi:         cfg.DPI,
		pageSegMode: cfg.PageSegMode,
		pageMarkers: cfg.PageMarkers,
		exec:        ex,
	}, nil
}

func (p *OCRProvider) Name() string { return "ocr" }

// ExtractText rasterizes the PDF into per-page grayscale images and OCRs
// each page, concatenating outputs in page order. Per-page work is
// independent; a page that fails recognition is skipped, and only a fully
// failed document is an error.
func (p *OCRProvider) ExtractText(path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "schedule-ocr-*")
	if err != nil {
		return "", fmt.Errorf("creating OCR work directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	err = p.exec.Run(binPdftoppm,
		"-r", strconv.Itoa(p.dpi), "-gray", "-png", path, prefix)
	if err != nil {
		return "", fmt.Errorf("rasterizing %s: %w", path, err)
	}

	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil || len(pages) == 0 {
		return "", fmt.Errorf("rasterizing %s produced no pages", path)
	}
	// pdftoppm zero-pads page numbers, so lexical order is page order.
	sort.Strings(pages)

	var parts []string
	failed := 0
	for i, img := range pages {
		out, err := p.exec.RunOutput(binTesseract, img, "stdout",
			"--psm", p.pageSegMode, "--oem", "3", "-c", "preserve_interword_spaces=1")
		if err != nil {
			failed++
			continue
		}
		text := trimPage(string(out))
		if text == "" {
			continue
		}
		if p.pageMarkers {
			parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", i+1, text))
		} else {
			parts = append(parts, text)
		}
	}

	if failed == len(pages) {
		return "", fmt.Errorf("OCR failed on all %d pages of %s", len(pages), path)
	}

	return strings.Join(parts, "\n\n"), nil
}

// trimPage drops blank lines and trims each remaining line of one page of
// OCR output.
func trimPage(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
