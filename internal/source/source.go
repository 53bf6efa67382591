// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source supplies the text buffer consumed by the schedule parser.
// Providers extract text from a program document: the text-layer provider
// reads embedded PDF text, the OCR provider rasterizes and recognizes
// scanned pages. Plain-text files pass straight through.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

// Provider extracts text from a document on disk. Implementations are the
// text-layer reader and the OCR pipeline.
type Provider interface {
	// Name identifies the provider in status output.
	Name() string

	// ExtractText returns the full document text, pages concatenated in
	// order.
	ExtractText(path string) (string, error)
}

// Load reads the document at path and returns its text. Text files are read
// directly; PDFs go through the text layer with optional OCR fallback, or
// straight to OCR when forced. Per-provider status lines are written to w.
//
// A missing or unreadable document is fatal: Load returns an error and no
// partial text.
func Load(path string, cfg types.SourceConfig, w io.Writer) (string, error) {
	cfg = cfg.WithDefaults()

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("schedule source %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".txt") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading schedule source %s: %w", path, err)
		}
		return string(data), nil
	}

	var direct, ocr Provider
	if !cfg.UseOCR {
		direct = &TextLayerProvider{}
	}
	if cfg.UseOCR || cfg.OCRFallback {
		p, err := NewOCRProvider(cfg)
		if err != nil {
			if cfg.UseOCR {
				return "", err
			}
			// Fallback unavailable; the text layer may still work.
			fmt.Fprintf(w, "warning: OCR fallback disabled: %v\n", err)
		} else {
			ocr = p
		}
	}

	return extract(path, direct, ocr, w)
}

// extract tries the direct provider first and falls back to OCR when the
// text layer errors or comes back effectively empty. Scanned programs often
// carry an empty text layer rather than none at all.
func extract(path string, direct, ocr Provider, w io.Writer) (string, error) {
	var directErr error

	if direct != nil {
		text, err := direct.ExtractText(path)
		if err == nil && strings.TrimSpace(text) != "" {
			fmt.Fprintf(w, "extracted %s (%s)\n", filepath.Base(path), direct.Name())
			return text, nil
		}
		if err != nil {
			directErr = err
		} else {
			directErr = fmt.Errorf("empty text layer")
		}
		if ocr != nil {
			fmt.Fprintf(w, "text layer failed for %s (%v), trying OCR\n", filepath.Base(path), directErr)
		}
	}

	if ocr != nil {
		text, err := ocr.ExtractText(path)
		if err != nil {
			return "", fmt.Errorf("OCR extraction for %s: %w", path, err)
		}
		fmt.Fprintf(w, "extracted %s (%s)\n", filepath.Base(path), ocr.Name())
		return text, nil
	}

	return "", fmt.Errorf("extracting text from %s: %w", path, directErr)
}
