// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import "testing"

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"shorter than max", "Hall 2", 20, "Hall 2"},
		{"exactly max", "Hall", 4, "Hall"},
		{"longer than max", "Intro to Distributed Storage", 10, "Intro t..."},
		{"tiny max", "Keynote", 2, "Ke"},
		{"max three", "Keynote", 3, "Key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clip(tt.s, tt.max); got != tt.want {
				t.Errorf("clip(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
		})
	}
}
