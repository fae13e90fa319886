package mood

import (
	"fmt"
	"time"
)

// Window is how long the pet goes without food (a commit) before the
// hunger bar empties out. Mood staleness uses the same window.
const Window = time.Hour

// Hunger is the countdown since the last commit, measured against Window.
// Derived every tick; never stored.
type Hunger struct {
	Elapsed   time.Duration
	Remaining time.Duration
}

// HungerAt derives the hunger state for a repository whose most recent
// commit happened at lastCommit. Remaining bottoms out at zero once the
// window is spent.
func HungerAt(lastCommit, now time.Time) Hunger {
	elapsed := now.Sub(lastCommit)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := Window - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return Hunger{Elapsed: elapsed, Remaining: remaining}
}

// Starved is the hunger state for a repository with no commits at all.
func Starved() Hunger {
	return Hunger{Elapsed: Window, Remaining: 0}
}

// Filled reports how many of width bar segments should be drawn full,
// proportional to the remaining window.
func (h Hunger) Filled(width int) int {
	if width <= 0 {
		return 0
	}
	filled := int(int64(h.Remaining) * int64(width) / int64(Window))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// FormatCountdown renders a duration for the hunger line. The most
// significant nonzero unit is unpadded and lower units are two-padded:
// "0s", "42s", "1m 05s", "1h 01m 01s".
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
