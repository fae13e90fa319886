package mood_test

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/marcin-skalski/gitagotchi/internal/mood"
)

func TestHungerAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		sinceCommit   time.Duration
		wantRemaining time.Duration
	}{
		{"fresh commit", 0, time.Hour},
		{"ten minutes ago", 10 * time.Minute, 50 * time.Minute},
		{"window just spent", time.Hour, 0},
		{"ninety minutes ago", 90 * time.Minute, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mood.HungerAt(now.Add(-tt.sinceCommit), now)
			if h.Remaining != tt.wantRemaining {
				t.Errorf("Remaining = %v, want %v", h.Remaining, tt.wantRemaining)
			}
		})
	}
}

// Filled never increases as the commit ages, and hits zero once the
// window is spent.
func TestHungerFilledMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		now := time.Unix(rapid.Int64Range(1_000_000_000, 1_700_000_000).Draw(t, "now"), 0)
		width := rapid.IntRange(1, 80).Draw(t, "width")

		prev := width + 1
		for elapsed := time.Duration(0); elapsed <= mood.Window; elapsed += 5 * time.Minute {
			h := mood.HungerAt(now.Add(-elapsed), now)
			filled := h.Filled(width)
			if filled < 0 || filled > width {
				t.Fatalf("Filled(%d) = %d out of range at elapsed %v", width, filled, elapsed)
			}
			if filled > prev {
				t.Fatalf("Filled increased from %d to %d at elapsed %v", prev, filled, elapsed)
			}
			prev = filled
		}
		if final := mood.HungerAt(now.Add(-mood.Window), now).Filled(width); final != 0 {
			t.Fatalf("Filled = %d at spent window, want 0", final)
		}
	})
}

func TestHungerFilledProportion(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// 10 minutes in, 50 remaining: 50/60 of 20 segments, floored.
	h := mood.HungerAt(now.Add(-10*time.Minute), now)
	if got := h.Filled(20); got != 16 {
		t.Errorf("Filled(20) = %d, want 16", got)
	}
}

func TestStarved(t *testing.T) {
	h := mood.Starved()
	if h.Remaining != 0 {
		t.Errorf("Starved Remaining = %v, want 0", h.Remaining)
	}
	if h.Filled(20) != 0 {
		t.Errorf("Starved Filled(20) = %d, want 0", h.Filled(20))
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{-5 * time.Second, "0s"},
		{42 * time.Second, "42s"},
		{65 * time.Second, "1m 05s"},
		{60 * time.Second, "1m 00s"},
		{3661 * time.Second, "1h 01m 01s"},
		{50 * time.Minute, "50m 00s"},
		{mood.Window, "1h 00m 00s"},
	}
	for _, tt := range tests {
		if got := mood.FormatCountdown(tt.d); got != tt.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
