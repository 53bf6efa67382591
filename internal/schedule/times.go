// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// timeRangePattern is the candidate matcher for a start-end time range like
// "8:00 am - 9:30 pm". The meridiem is optional on each side; OCR output
// often drops one of them. Candidates still pass through validateClock
// before being accepted as a slot.
var timeRangePattern = regexp.MustCompile(
	`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm|a\.m\.|p\.m\.)?\s*-\s*(\d{1,2}):(\d{2})\s*(am|pm|a\.m\.|p\.m\.)?`)

// matchTimeSlot attempts to recognize a time-range token in line. On success
// it returns the verbatim matched string and any text trailing the match on
// the same line (programs frequently put the session title there). A
// time-like candidate that fails clock validation is skipped and scanning
// continues; a line with no valid candidate is ordinary text.
func matchTimeSlot(line string) (slot, trailing string, ok bool) {
	for _, loc := range timeRangePattern.FindAllStringSubmatchIndex(line, -1) {
		groups := timeRangePattern.FindStringSubmatch(line[loc[0]:loc[1]])
		if !validateClock(groups[1], groups[2]) || !validateClock(groups[4], groups[5]) {
			continue
		}
		slot = strings.TrimSpace(line[loc[0]:loc[1]])
		trailing = strings.TrimSpace(line[loc[1]:])
		return slot, trailing, true
	}
	return "", "", false
}

// validateClock checks a 12-hour clock reading: hour 1-12, minute 00-59.
func validateClock(hour, minute string) bool {
	h, err := strconv.Atoi(hour)
	if err != nil || h < 1 || h > 12 {
		return false
	}
	m, err := strconv.Atoi(minute)
	if err != nil || m < 0 || m > 59 {
		return false
	}
	return true
}
