// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"strings"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

// scanner is the event-assembly state machine. It is in SCANNING state while
// openEvent is nil and IN_EVENT otherwise. All scan state lives here; the
// package holds no mutable globals, so concurrent Parse calls are
// independent.
type scanner struct {
	cfg         types.ScheduleConfig
	currentDate string
	open        *openEvent
	events      []types.Event
}

// openEvent accumulates the body of the event currently being assembled.
// It is owned exclusively by the scanner until finalized.
type openEvent struct {
	timeSlot string
	body     []string
}

func newScanner(cfg types.ScheduleConfig) *scanner {
	return &scanner{cfg: cfg}
}

// scanLine advances the state machine by one normalized line.
//
// A date header always wins over any other interpretation of the line: it
// finalizes an open event and updates the date context. A valid time slot
// finalizes an open event and opens a new one. Anything else is body text
// for the open event, or ignored while scanning.
func (s *scanner) scanLine(line Line) {
	if matched, ok := matchDateHeader(line.Text); ok {
		s.finalizeOpen()
		s.currentDate = canonicalLabel(matched, s.cfg.DateLabels)
		return
	}

	if slot, trailing, ok := matchTimeSlot(line.Text); ok {
		s.finalizeOpen()
		s.open = &openEvent{timeSlot: slot}
		if trailing != "" {
			s.open.body = append(s.open.body, trailing)
		}
		return
	}

	if s.open != nil {
		s.open.body = append(s.open.body, line.Text)
	}
}

// finish terminates the scan: the last open event is finalized, never
// dropped.
func (s *scanner) finish() []types.Event {
	s.finalizeOpen()
	return s.events
}

// finalizeOpen runs field extraction on the open event, appends the result
// to the output sequence, and returns to SCANNING. No-op without an open
// event. Finalized events are never touched again.
func (s *scanner) finalizeOpen() {
	if s.open == nil {
		return
	}

	title, speaker, location := ExtractFields(s.open.body, s.open.timeSlot, s.cfg)

	date := s.currentDate
	if date == "" {
		date = s.cfg.FallbackDate
	}

	s.events = append(s.events, types.Event{
		Date:        date,
		Time:        s.open.timeSlot,
		SessionName: title,
		Speaker:     speaker,
		Location:    location,
		RawText:     truncate(strings.Join(s.open.body, " "), s.cfg.RawTextMaxLen),
	})
	s.open = nil
}
