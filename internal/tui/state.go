package tui

import (
	"time"

	"github.com/marcin-skalski/gitagotchi/internal/git"
	"github.com/marcin-skalski/gitagotchi/internal/mood"
)

// Snapshot is everything one tick derived from the repository. Value
// object; replaced wholesale on every tick.
type Snapshot struct {
	Sample  git.Sample
	Mood    mood.Mood
	Hunger  mood.Hunger
	TakenAt time.Time
}
