// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import "testing"

func TestMatchDateHeader(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantHit bool
	}{
		{
			name:    "month day with day marker",
			line:    "May 10 (Day 1)",
			want:    "May 10 (Day 1)",
			wantHit: true,
		},
		{
			name:    "bare day marker",
			line:    "DAY 2",
			want:    "DAY 2",
			wantHit: true,
		},
		{
			name:    "lowercase day marker",
			line:    "day 1 morning program",
			want:    "day 1",
			wantHit: true,
		},
		{
			name:    "month day year with ordinal",
			line:    "Conference opens May 10th, 2025 at the center",
			want:    "May 10th, 2025",
			wantHit: true,
		},
		{
			name:    "embedded in longer line",
			line:    "Program for September 3 (Day 4) continued",
			want:    "September 3 (Day 4)",
			wantHit: true,
		},
		{
			name: "time slot is not a date",
			line: "8:00 am - 9:00 am",
		},
		{
			name: "month name alone is not a date",
			line: "May flowers and opening remarks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := matchDateHeader(tt.line)
			if hit != tt.wantHit {
				t.Fatalf("matchDateHeader(%q) hit = %v, want %v", tt.line, hit, tt.wantHit)
			}
			if got != tt.want {
				t.Errorf("matchDateHeader(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestCanonicalLabel(t *testing.T) {
	labels := map[string]string{
		"may 10": "May 10, 2025 (Day 1)",
		"may 11": "May 11, 2025 (Day 2)",
		"day 1":  "May 10, 2025 (Day 1)",
		"day 2":  "May 11, 2025 (Day 2)",
	}

	tests := []struct {
		name    string
		matched string
		want    string
	}{
		{"maps by month-day token", "May 10 (Day 1)", "May 10, 2025 (Day 1)"},
		{"maps by day-number token", "DAY 2", "May 11, 2025 (Day 2)"},
		{"case insensitive", "MAY 11 (DAY 2)", "May 11, 2025 (Day 2)"},
		{"day token wins even with another month", "June 3 (Day 1)", "May 10, 2025 (Day 1)"},
		{"unknown header with no token match", "October 9th, 2024", "October 9th, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalLabel(tt.matched, labels); got != tt.want {
				t.Errorf("canonicalLabel(%q) = %q, want %q", tt.matched, got, tt.want)
			}
		})
	}
}

func TestCanonicalLabelEmptyTable(t *testing.T) {
	if got := canonicalLabel("May 10 (Day 1)", nil); got != "May 10 (Day 1)" {
		t.Errorf("empty table should keep literal text, got %q", got)
	}
}

func TestCanonicalLabelDeterministic(t *testing.T) {
	// Two keys both match; sorted key order must make the pick stable.
	labels := map[string]string{
		"day 1":  "from day token",
		"may 10": "from month token",
	}
	want := canonicalLabel("May 10 (Day 1)", labels)
	for i := 0; i < 50; i++ {
		if got := canonicalLabel("May 10 (Day 1)", labels); got != want {
			t.Fatalf("canonicalLabel not deterministic: %q vs %q", got, want)
		}
	}
	if want != "from day token" {
		t.Errorf("expected sorted-first key to win, got %q", want)
	}
}
