// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sink serializes finalized event sequences to flat artifacts:
// a CSV table, an optional iCalendar file, and a normalized-text dump for
// diagnosing extraction misses.
package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

// csvHeader is the fixed column order of the CSV artifact.
var csvHeader = []string{"date", "time", "session_name", "speaker", "location", "raw_text"}

// WriteCSV writes the event sequence as a CSV table with a header row, one
// row per event, in sequence order. An empty sequence still yields a
// well-formed header-only table.
func WriteCSV(w io.Writer, events []types.Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, ev := range events {
		row := []string{ev.Date, ev.Time, ev.SessionName, ev.Speaker, ev.Location, ev.RawText}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV artifact to path.
func WriteCSVFile(path string, events []types.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, events); err != nil {
		return err
	}
	return f.Close()
}

// ReadCSV parses a CSV artifact produced by WriteCSV back into events. The
// header row is validated so arbitrary tables are rejected early.
func ReadCSV(r io.Reader) ([]types.Event, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing CSV: missing header row")
	}

	header := records[0]
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("parsing CSV: %d columns, want %d", len(header), len(csvHeader))
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("parsing CSV: column %d is %q, want %q", i+1, header[i], col)
		}
	}

	events := make([]types.Event, 0, len(records)-1)
	for _, row := range records[1:] {
		events = append(events, types.Event{
			Date:        row[0],
			Time:        row[1],
			SessionName: row[2],
			Speaker:     row[3],
			Location:    row[4],
			RawText:     row[5],
		})
	}
	return events, nil
}

// ReadCSVFile reads a CSV artifact from path.
func ReadCSVFile(path string) ([]types.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}
