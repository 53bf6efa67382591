// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"crypto/sha256"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

// calendarDatePattern pulls a concrete "Month day, year" out of a canonical
// date label such as "May 10, 2025 (Day 1)".
var calendarDatePattern = regexp.MustCompile(
	`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2})(?:st|nd|rd|th)?\s*,\s*(\d{4})\b`)

// WriteICS serializes events with resolvable timestamps to an iCalendar
// stream. Extraction is best-effort, so many events carry labels that do not
// resolve to a concrete date or clock time; those are counted as skipped,
// never treated as an error.
func WriteICS(w io.Writer, events []types.Event) (written, skipped int, err error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//schedule-engine//EN")

	now := time.Now().UTC()
	for _, ev := range events {
		start, end, terr := eventTimes(ev)
		if terr != nil {
			skipped++
			continue
		}

		ve := cal.AddEvent(eventUID(ev))
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(end)
		ve.SetSummary(ev.SessionName)
		if ev.Location != types.NotAvailable && ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Speaker != types.NotAvailable && ev.Speaker != "" {
			ve.SetDescription("Speaker: " + ev.Speaker)
		}
		written++
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return written, skipped, fmt.Errorf("writing calendar: %w", err)
	}
	return written, skipped, nil
}

// eventTimes resolves an event's date label and time range into concrete
// start and end timestamps.
func eventTimes(ev types.Event) (start, end time.Time, err error) {
	m := calendarDatePattern.FindStringSubmatch(ev.Date)
	if m == nil {
		return start, end, fmt.Errorf("date label %q has no calendar date", ev.Date)
	}
	day, err := time.Parse("January 2, 2006", fmt.Sprintf("%s %s, %s", m[1], m[2], m[3]))
	if err != nil {
		return start, end, fmt.Errorf("parsing date label %q: %w", ev.Date, err)
	}

	parts := strings.SplitN(ev.Time, "-", 2)
	if len(parts) != 2 {
		return start, end, fmt.Errorf("time range %q has no end", ev.Time)
	}

	startClock, endClock := normalizeClock(parts[0]), normalizeClock(parts[1])
	// Borrow the meridiem from the other side when one is missing; programs
	// often print it once per range.
	startClock, endClock = borrowMeridiem(startClock, endClock)

	start, err = parseClock(day, startClock)
	if err != nil {
		return start, end, err
	}
	end, err = parseClock(day, endClock)
	if err != nil {
		return start, end, err
	}
	if end.Before(start) {
		// "11:00 am - 1:00 pm" style ranges never reach here, but a range
		// that lost its meridiems can; assume it crosses noon.
		end = end.Add(12 * time.Hour)
	}
	return start, end, nil
}

// normalizeClock lowercases a clock string and folds dotted meridiems.
func normalizeClock(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "a.m.", "am")
	s = strings.ReplaceAll(s, "p.m.", "pm")
	return s
}

func hasMeridiem(s string) bool {
	return strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm")
}

func borrowMeridiem(a, b string) (string, string) {
	switch {
	case hasMeridiem(a) && !hasMeridiem(b):
		b = b + " " + a[len(a)-2:]
	case !hasMeridiem(a) && hasMeridiem(b):
		a = a + " " + b[len(b)-2:]
	}
	return a, b
}

// parseClock combines a calendar day with a 12-hour clock reading.
func parseClock(day time.Time, clock string) (time.Time, error) {
	if !hasMeridiem(clock) {
		return time.Time{}, fmt.Errorf("clock %q has no meridiem", clock)
	}
	// Tolerate both "8:00am" and "8:00 am".
	clock = strings.TrimSpace(strings.TrimSuffix(clock, clock[len(clock)-2:])) + " " + clock[len(clock)-2:]
	t, err := time.Parse("3:04 pm", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing clock %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

// eventUID derives a stable calendar UID from the event's identifying
// fields, consistent across re-runs over unchanged input.
func eventUID(ev types.Event) string {
	h := sha256.New()
	h.Write([]byte(ev.Date))
	h.Write([]byte(ev.Time))
	h.Write([]byte(ev.SessionName))
	return fmt.Sprintf("%x@schedule-engine", h.Sum(nil)[:6])
}
