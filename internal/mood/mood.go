package mood

import "fmt"

// Mood classifies recent commit activity.
type Mood int

const (
	Dead Mood = iota
	Sad
	Neutral
	Happy
)

func (m Mood) String() string {
	switch m {
	case Dead:
		return "Dead"
	case Sad:
		return "Sad"
	case Neutral:
		return "Neutral"
	case Happy:
		return "Happy"
	default:
		return fmt.Sprintf("Mood(%d)", int(m))
	}
}

// AssetPrefix is the filename prefix used for this mood's art variants.
func (m Mood) AssetPrefix() string {
	switch m {
	case Dead:
		return "dead"
	case Sad:
		return "sad"
	case Neutral:
		return "neutral"
	case Happy:
		return "happy"
	default:
		return ""
	}
}

// All lists every mood, in ascending order of cheerfulness.
func All() []Mood {
	return []Mood{Dead, Sad, Neutral, Happy}
}

// Classify maps commit counts over the trailing 24-hour and 1-hour windows
// to a mood. The 1-hour count is a subset of the 24-hour count; both are
// absolute counts over overlapping windows, not deltas.
//
// Three or more commits in a day with none in the last hour still reads as
// Neutral rather than Happy: a burst of stale activity is not a happy pet.
func Classify(commits24h, commits1h int) Mood {
	switch {
	case commits24h <= 0:
		return Dead
	case commits24h == 1:
		return Sad
	case commits24h == 2:
		return Neutral
	case commits1h == 0:
		return Neutral
	default:
		return Happy
	}
}
