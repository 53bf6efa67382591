// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// TextLayerProvider reads the embedded text layer of a PDF. Pages are
// separated by form feeds so downstream page counts survive normalization.
type TextLayerProvider struct{}

func (p *TextLayerProvider) Name() string { return "text-layer" }

func (p *TextLayerProvider) ExtractText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not abort the document.
			continue
		}
		if i > 1 {
			buf.WriteString("\f")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}
