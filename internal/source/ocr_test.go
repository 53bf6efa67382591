// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

// fakeExecutor simulates the OCR toolchain. Running pdftoppm materializes
// fake page images under the requested prefix; running tesseract returns the
// canned text for that page.
type fakeExecutor struct {
	missing   map[string]bool // binaries absent from PATH
	pageCount int
	pageText  map[int]string // 1-based page → OCR output
	pageErr   map[int]error  // 1-based page → forced tesseract error
	runArgs   [][]string
}

func (f *fakeExecutor) LookPath(file string) (string, error) {
	if f.missing[file] {
		return "", fmt.Errorf("%s: executable file not found in $PATH", file)
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeExecutor) Run(name string, args ...string) error {
	f.runArgs = append(f.runArgs, append([]string{name}, args...))
	if name != binPdftoppm {
		return fmt.Errorf("unexpected command %s", name)
	}
	prefix := args[len(args)-1]
	for i := 1; i <= f.pageCount; i++ {
		path := fmt.Sprintf("%s-%02d.png", prefix, i)
		if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeExecutor) RunOutput(name string, args ...string) ([]byte, error) {
	f.runArgs = append(f.runArgs, append([]string{name}, args...))
	if name != binTesseract {
		return nil, fmt.Errorf("unexpected command %s", name)
	}
	img := args[0]
	for i := 1; i <= f.pageCount; i++ {
		if strings.Contains(img, fmt.Sprintf("-%02d.png", i)) {
			if err := f.pageErr[i]; err != nil {
				return nil, err
			}
			return []byte(f.pageText[i]), nil
		}
	}
	return nil, fmt.Errorf("unknown page image %s", img)
}

func TestNewOCRProviderMissingTool(t *testing.T) {
	ex := &fakeExecutor{missing: map[string]bool{binTesseract: true}}
	_, err := newOCRProvider(types.SourceConfig{}, ex)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
}

func TestOCRExtractText(t *testing.T) {
	ex := &fakeExecutor{
		pageCount: 2,
		pageText: map[int]string{
			1: "  DAY 1  \n\n 9:00 am - 10:00 am \n Keynote \n",
			2: "DAY 2\n10:00 am - 11:00 am\nWorkshop",
		},
	}
	p, err := newOCRProvider(types.SourceConfig{DPI: 150}, ex)
	require.NoError(t, err)

	text, err := p.ExtractText("program.pdf")
	require.NoError(t, err)

	// Pages concatenated in order, per-line trimmed.
	assert.Equal(t, "DAY 1\n9:00 am - 10:00 am\nKeynote\n\nDAY 2\n10:00 am - 11:00 am\nWorkshop", text)

	// Rasterization honors the configured DPI and grayscale conversion.
	require.NotEmpty(t, ex.runArgs)
	raster := ex.runArgs[0]
	assert.Equal(t, binPdftoppm, raster[0])
	assert.Contains(t, raster, "-r")
	assert.Contains(t, raster, "150")
	assert.Contains(t, raster, "-gray")

	// Recognition uses the fixed segmentation mode.
	tess := ex.runArgs[1]
	assert.Equal(t, binTesseract, tess[0])
	assert.Contains(t, tess, "--psm")
	assert.Contains(t, tess, "6")
	assert.Contains(t, tess, "preserve_interword_spaces=1")
}

func TestOCRExtractTextPageMarkers(t *testing.T) {
	ex := &fakeExecutor{
		pageCount: 2,
		pageText:  map[int]string{1: "first", 2: "second"},
	}
	p, err := newOCRProvider(types.SourceConfig{PageMarkers: true}, ex)
	require.NoError(t, err)

	text, err := p.ExtractText("program.pdf")
	require.NoError(t, err)
	assert.Equal(t, "--- Page 1 ---\nfirst\n\n--- Page 2 ---\nsecond", text)
}

func TestOCRExtractTextSkipsFailedPage(t *testing.T) {
	ex := &fakeExecutor{
		pageCount: 3,
		pageText:  map[int]string{1: "one", 3: "three"},
		pageErr:   map[int]error{2: errors.New("tesseract exit 1")},
	}
	p, err := newOCRProvider(types.SourceConfig{}, ex)
	require.NoError(t, err)

	text, err := p.ExtractText("program.pdf")
	require.NoError(t, err)
	assert.Equal(t, "one\n\nthree", text)
}

func TestOCRExtractTextAllPagesFail(t *testing.T) {
	ex := &fakeExecutor{
		pageCount: 2,
		pageErr: map[int]error{
			1: errors.New("boom"),
			2: errors.New("boom"),
		},
	}
	p, err := newOCRProvider(types.SourceConfig{}, ex)
	require.NoError(t, err)

	_, err = p.ExtractText("program.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 pages")
}
