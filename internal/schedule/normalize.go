// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schedule turns loosely formatted conference-program text into an
// ordered sequence of structured Events. The parser is a pure sequential
// transform: layered pattern tables segment the buffer into day sections
// and time slots, then prioritized extraction rules derive the session
// fields, degrading to sentinel values when no rule fires.
package schedule

import (
	"strings"
	"unicode"
)

// Line is one cleaned input line with its position in the original buffer.
type Line struct {
	Text string
	Num  int
}

// keptPunct is the punctuation preserved by normalization. Everything else
// outside letters, digits, and whitespace is replaced by a space; OCR output
// is full of stray glyphs that would otherwise poison the pattern tables.
const keptPunct = "-.,:;!?()&"

// CleanText normalizes one chunk of text: drops disallowed characters,
// collapses whitespace runs to a single space, and trims.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			b.WriteRune(r)
		case strings.ContainsRune(keptPunct, r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// NormalizeLines splits a raw buffer into cleaned, non-empty lines tagged
// with their original line numbers. Pure; the result is safe to re-scan.
func NormalizeLines(text string) []Line {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		cleaned := CleanText(raw)
		if cleaned == "" {
			continue
		}
		lines = append(lines, Line{Text: cleaned, Num: i + 1})
	}
	return lines
}
