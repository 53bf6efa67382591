// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"errors"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

// ErrNoEvents signals that no date/time structure was recognized in the
// input. It is non-fatal: the caller decides whether to persist diagnostic
// text or surface the zero-result condition.
var ErrNoEvents = errors.New("no events extracted")

// Parse converts one text buffer into an ordered sequence of Events. Events
// are emitted strictly in document order with no deduplication; parallel
// tracks legitimately repeat time ranges. Parse is pure and re-entrant, so
// re-running it on the same buffer yields the same sequence.
//
// When nothing is recognized, Parse returns (nil, ErrNoEvents).
func Parse(text string, cfg types.ScheduleConfig) ([]types.Event, error) {
	cfg = cfg.WithDefaults()

	s := newScanner(cfg)
	for _, line := range NormalizeLines(text) {
		s.scanLine(line)
	}

	events := s.finish()
	if len(events) == 0 {
		return nil, ErrNoEvents
	}
	return events, nil
}

// Summarize computes run counts over a finalized event sequence.
func Summarize(events []types.Event) types.ParseSummary {
	days := make(map[string]bool, 4)
	for _, ev := range events {
		days[ev.Date] = true
	}
	return types.ParseSummary{Events: len(events), Days: len(days)}
}
