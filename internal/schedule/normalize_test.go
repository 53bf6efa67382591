// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"testing"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text unchanged",
			in:   "Opening Keynote",
			want: "Opening Keynote",
		},
		{
			name: "collapses whitespace runs",
			in:   "  8:00 am   -   9:00 am \t Registration  ",
			want: "8:00 am - 9:00 am Registration",
		},
		{
			name: "drops ocr noise glyphs",
			in:   "Sess*ion 1| Intro~ to @X#",
			want: "Sess ion 1 Intro to X",
		},
		{
			name: "keeps allowed punctuation",
			in:   "Venue: Hall 2, Bldg. A (North) - Q&A!",
			want: "Venue: Hall 2, Bldg. A (North) - Q&A!",
		},
		{
			name: "empty after cleaning",
			in:   "***///***",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeLines(t *testing.T) {
	in := "May 10 (Day 1)\n\n   \n8:00 am - 9:00 am\n***\nRegistration\n"

	lines := NormalizeLines(in)

	want := []Line{
		{Text: "May 10 (Day 1)", Num: 1},
		{Text: "8:00 am - 9:00 am", Num: 4},
		{Text: "Registration", Num: 6},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], w)
		}
	}
}

func TestNormalizeLinesRestartable(t *testing.T) {
	in := "DAY 1\n9:00 am - 10:00 am\nTalk"

	first := NormalizeLines(in)
	second := NormalizeLines(in)

	if len(first) != len(second) {
		t.Fatalf("second pass returned %d lines, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d differs between passes: %+v vs %+v", i, first[i], second[i])
		}
	}
}
