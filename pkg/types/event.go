// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NotAvailable is the placeholder value for a field the extractor could
// not resolve. Downstream consumers treat it as "present but unknown".
const NotAvailable = "N/A"

// Event is one structured schedule entry extracted from a program document.
// Date, Time, and SessionName are always non-empty; NotAvailable counts as
// a value. A finalized Event is never mutated.
type Event struct {
	// Date is the canonical date label of the day section the event
	// belongs to (e.g. "May 10, 2025 (Day 1)").
	Date string `json:"date" yaml:"date"`

	// Time is the verbatim matched time-range string (e.g. "8:00 am - 9:00 am").
	Time string `json:"time" yaml:"time"`

	// SessionName is the extracted session title. Break and meal slots carry
	// the time range appended in parentheses.
	SessionName string `json:"session_name" yaml:"session_name"`

	// Speaker is the extracted speaker or organizer, or NotAvailable.
	Speaker string `json:"speaker" yaml:"speaker"`

	// Location is the extracted venue, or NotAvailable.
	Location string `json:"location" yaml:"location"`

	// RawText is the verbatim accumulated event body, length-capped.
	// Kept for diagnosing extraction misses.
	RawText string `json:"raw_text" yaml:"raw_text"`
}

// ParseSummary holds counts from one parse run over a document.
type ParseSummary struct {
	Events int
	Days   int
}
