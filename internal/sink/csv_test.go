// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

func sampleEvents() []types.Event {
	return []types.Event{
		{
			Date:        "May 10, 2025 (Day 1)",
			Time:        "8:00 am - 9:00 am",
			SessionName: "Registration (8:00 am - 9:00 am)",
			Speaker:     "N/A",
			Location:    "N/A",
			RawText:     "Registration",
		},
		{
			Date:        "May 10, 2025 (Day 1)",
			Time:        "9:00 am - 10:00 am",
			SessionName: "Intro to X",
			Speaker:     "Dr. Jane Smith",
			Location:    "Hall 2",
			RawText:     "Session A: Intro to X Dr. Jane Smith Venue: Hall 2",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleEvents()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if lines[0] != "date,time,session_name,speaker,location,raw_text" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "Dr. Jane Smith") {
		t.Errorf("row 2 missing speaker: %q", lines[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	// Zero events still produce a well-formed header-only table.
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != "date,time,session_name,speaker,location,raw_text" {
		t.Errorf("empty table = %q", got)
	}
}

func TestWriteCSVQuoting(t *testing.T) {
	events := []types.Event{{
		Date:        "May 10, 2025 (Day 1)",
		Time:        "1:00 pm - 2:00 pm",
		SessionName: `Panel: "Hard Problems", part 2`,
		Speaker:     "N/A",
		Location:    "N/A",
		RawText:     "line one, line two",
	}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, events); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	parsed, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(parsed) != 1 || parsed[0] != events[0] {
		t.Errorf("quoting round trip lost data: %+v", parsed)
	}
}

func TestCSVFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	want := sampleEvents()

	if err := WriteCSVFile(path, want); err != nil {
		t.Fatalf("WriteCSVFile: %v", err)
	}
	got, err := ReadCSVFile(path)
	if err != nil {
		t.Fatalf("ReadCSVFile: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadCSVRejectsForeignTable(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"wrong column count", "a,b,c\n1,2,3\n"},
		{"wrong header names", "date,time,title,speaker,location,raw_text\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error for foreign table")
			}
		})
	}
}
