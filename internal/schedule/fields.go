// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"regexp"
	"strings"

	"github.com/pdiddy/schedule-engine/pkg/types"
)

// The field extractor is an ordered list of (pattern, extractor) rules per
// field, evaluated in priority order with first-match-wins semantics.
// Extraction never fails: a field with no matching rule resolves to the
// NotAvailable sentinel.

// sessionPattern matches an explicit session label: "Session 1: Title" or
// "Session A - Title". The capture is the title remainder.
var sessionPattern = regexp.MustCompile(`(?i)\bSession\s+[A-Za-z0-9]+\s*[:\-]\s*(.+)$`)

// honorificPattern matches an honorific followed by one or more capitalized
// name tokens with an optional middle initial ("Dr. Jane M. Smith").
var honorificPattern = regexp.MustCompile(
	`\b(?:Professor|Prof\.?|Dr\.?)\s+[A-Z][a-z]+(?:\s+[A-Z]\.)?(?:\s+[A-Z][a-z]+)*`)

// speakerLeadInPattern matches an explicit speaker lead-in and captures the
// remainder of the line.
var speakerLeadInPattern = regexp.MustCompile(`(?i)\b(?:presented\s+by|speaker\s*:|by\s*:)\s*(.+)$`)

// locationPattern matches a venue lead-in and captures up to the next
// comma-delimited clause or line end.
var locationPattern = regexp.MustCompile(`(?i)\b(?:venue|location|room|hall|at)[:\s]+([^,]+)`)

// breakKeywords marks non-session slots; their titles get the time range
// appended so parallel break rows stay distinguishable downstream.
var breakKeywords = []string{"break", "lunch", "dinner", "tea", "coffee", "registration"}

// titleRule is one prioritized title extractor.
type titleRule struct {
	name    string
	extract func(body []string, cfg types.ScheduleConfig) (string, bool)
}

// titleRules is evaluated in order; the first rule to produce a value wins.
var titleRules = []titleRule{
	{"session-label", titleFromSessionLabel},
	{"short-line", titleFromShortLine},
	{"body-prefix", titleFromBodyPrefix},
}

// titleFromSessionLabel extracts the remainder of an explicit
// "Session <id>:" label, scanning body lines in order.
func titleFromSessionLabel(body []string, _ types.ScheduleConfig) (string, bool) {
	for _, line := range body {
		if m := sessionPattern.FindStringSubmatch(line); m != nil {
			return cleanField(m[1]), true
		}
	}
	return "", false
}

// titleFromShortLine takes the first body line short enough to plausibly be
// a heading rather than prose.
func titleFromShortLine(body []string, cfg types.ScheduleConfig) (string, bool) {
	for _, line := range body {
		if len(strings.Fields(line)) < cfg.ShortTitleMaxTokens {
			return cleanField(line), true
		}
	}
	return "", false
}

// titleFromBodyPrefix is the last resort: the leading characters of the
// joined body with a truncation marker.
func titleFromBodyPrefix(body []string, cfg types.ScheduleConfig) (string, bool) {
	joined := cleanField(strings.Join(body, " "))
	if joined == "" {
		return "", false
	}
	runes := []rune(joined)
	if len(runes) <= cfg.TitleTruncateAt {
		return joined, true
	}
	return string(runes[:cfg.TitleTruncateAt]) + "...", true
}

// extractTitle runs the title rule table over the body.
func extractTitle(body []string, cfg types.ScheduleConfig) string {
	for _, rule := range titleRules {
		if title, ok := rule.extract(body, cfg); ok {
			return title
		}
	}
	return types.NotAvailable
}

// extractSpeaker finds the speaker: an honorific-led name anywhere in the
// body, else an explicit lead-in. The first match in body order wins and
// later candidates are ignored.
func extractSpeaker(body []string) string {
	for _, line := range body {
		if m := honorificPattern.FindString(line); m != "" {
			return cleanField(m)
		}
	}
	for _, line := range body {
		if m := speakerLeadInPattern.FindStringSubmatch(line); m != nil {
			return cleanField(m[1])
		}
	}
	return types.NotAvailable
}

// extractLocation finds the first venue lead-in in body order.
func extractLocation(body []string) string {
	for _, line := range body {
		if m := locationPattern.FindStringSubmatch(line); m != nil {
			return cleanField(m[1])
		}
	}
	return types.NotAvailable
}

// ExtractFields derives the session title, speaker, and location from an
// accumulated event body. The rules are independent; a missing field never
// blocks the others. timeSlot is appended to break/meal titles.
func ExtractFields(body []string, timeSlot string, cfg types.ScheduleConfig) (title, speaker, location string) {
	title = truncate(extractTitle(body, cfg), cfg.TitleMaxLen)
	speaker = truncate(extractSpeaker(body), cfg.SpeakerMaxLen)
	location = truncate(extractLocation(body), cfg.LocationMaxLen)

	if isBreakTitle(title) {
		title = title + " (" + timeSlot + ")"
	}
	return title, speaker, location
}

// isBreakTitle reports whether the title names a break or meal slot.
func isBreakTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range breakKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// cleanField strips leading and trailing punctuation, dashes, and spaces.
func cleanField(s string) string {
	return strings.Trim(s, " \t-.,:;!?")
}

// truncate caps s at n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
