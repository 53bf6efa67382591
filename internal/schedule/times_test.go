// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import "testing"

func TestMatchTimeSlot(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantSlot     string
		wantTrailing string
		wantHit      bool
	}{
		{
			name:     "plain range with meridiems",
			line:     "8:00 am - 9:00 am",
			wantSlot: "8:00 am - 9:00 am",
			wantHit:  true,
		},
		{
			name:     "dotted meridiems",
			line:     "8:00 a.m. - 9:30 p.m.",
			wantSlot: "8:00 a.m. - 9:30 p.m.",
			wantHit:  true,
		},
		{
			name:     "meridiem on one side only",
			line:     "10:30 - 11:15 am",
			wantSlot: "10:30 - 11:15 am",
			wantHit:  true,
		},
		{
			name:     "no meridiem at all",
			line:     "9:00 - 10:00",
			wantSlot: "9:00 - 10:00",
			wantHit:  true,
		},
		{
			name:         "trailing title text captured",
			line:         "12:00 pm - 1:00 pm Lunch Break",
			wantSlot:     "12:00 pm - 1:00 pm",
			wantTrailing: "Lunch Break",
			wantHit:      true,
		},
		{
			name:     "range embedded after other text",
			line:     "Morning block 8:00 am - 9:00 am",
			wantSlot: "8:00 am - 9:00 am",
			wantHit:  true,
		},
		{
			name: "hour out of range",
			line: "13:00 pm - 14:00 pm",
		},
		{
			name:         "valid range after rejected candidate",
			line:         "13:00 - 14:00 slot is really 1:00 pm - 2:00 pm Lunch",
			wantSlot:     "1:00 pm - 2:00 pm",
			wantTrailing: "Lunch",
			wantHit:      true,
		},
		{
			name: "hour zero",
			line: "0:30 am - 1:30 am",
		},
		{
			name: "minute out of range",
			line: "8:61 am - 9:00 am",
		},
		{
			name: "single time is not a range",
			line: "9:00 am keynote",
		},
		{
			name: "ordinary text",
			line: "Coffee served in the lobby",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, trailing, hit := matchTimeSlot(tt.line)
			if hit != tt.wantHit {
				t.Fatalf("matchTimeSlot(%q) hit = %v, want %v", tt.line, hit, tt.wantHit)
			}
			if slot != tt.wantSlot {
				t.Errorf("slot = %q, want %q", slot, tt.wantSlot)
			}
			if trailing != tt.wantTrailing {
				t.Errorf("trailing = %q, want %q", trailing, tt.wantTrailing)
			}
		})
	}
}
