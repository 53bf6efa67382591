// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/schedule-engine/internal/schedule"
)

// WriteNormalizedText persists the normalized line sequence next to the
// main artifact. When extraction misses events, diffing this file against
// the source is usually enough to spot the pattern that failed to fire.
func WriteNormalizedText(path string, lines []schedule.Line) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing normalized text %s: %w", path, err)
	}
	return nil
}
