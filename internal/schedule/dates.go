// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"regexp"
	"sort"
	"strings"
)

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December`

// datePatterns is the ordered date-header table. A line matching any entry
// is a day boundary; the first pattern to fire wins. Patterns cover the
// header shapes seen in conference programs: "May 10 (Day 1)", "DAY 2",
// "May 10th, 2025".
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\s+\d{1,2}\s*\(\s*Day\s+\d+\s*\)`),
	regexp.MustCompile(`(?i)\bDAY\s+\d+\b`),
	regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\s+\d{1,2}(?:st|nd|rd|th)?\s*,\s*\d{4}\b`),
}

// matchDateHeader reports whether line contains a date header and returns
// the verbatim matched text.
func matchDateHeader(line string) (string, bool) {
	for _, p := range datePatterns {
		if m := p.FindString(line); m != "" {
			return strings.TrimSpace(m), true
		}
	}
	return "", false
}

// canonicalLabel maps a matched date header to its display label using the
// configured table. Table keys are matched case-insensitively as substrings
// of the header; keys are tried in sorted order so the mapping stays
// deterministic. Headers with no table entry keep their literal text.
func canonicalLabel(matched string, labels map[string]string) string {
	if len(labels) == 0 {
		return matched
	}
	lower := strings.ToLower(matched)

	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.Contains(lower, strings.ToLower(k)) {
			return labels[k]
		}
	}
	return matched
}
