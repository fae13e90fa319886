package mood_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/marcin-skalski/gitagotchi/internal/mood"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		commits24h int
		commits1h  int
		want       mood.Mood
	}{
		{"no commits", 0, 0, mood.Dead},
		{"one commit", 1, 0, mood.Sad},
		{"one commit recent", 1, 1, mood.Sad},
		{"two commits", 2, 0, mood.Neutral},
		{"two commits recent", 2, 2, mood.Neutral},
		{"burst but stale", 3, 0, mood.Neutral},
		{"active burst", 3, 1, mood.Happy},
		{"big day gone quiet", 100, 0, mood.Neutral},
		{"big day still going", 100, 5, mood.Happy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mood.Classify(tt.commits24h, tt.commits1h); got != tt.want {
				t.Errorf("Classify(%d, %d) = %v, want %v", tt.commits24h, tt.commits1h, got, tt.want)
			}
		})
	}
}

// The low 24-hour counts decide the mood alone, whatever happened in the
// last hour.
func TestClassifyLowCountsIgnoreRecentWindow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c1 := rapid.IntRange(0, 1000).Draw(t, "commits_1h")
		if got := mood.Classify(0, c1); got != mood.Dead {
			t.Fatalf("Classify(0, %d) = %v, want Dead", c1, got)
		}
		if got := mood.Classify(1, c1); got != mood.Sad {
			t.Fatalf("Classify(1, %d) = %v, want Sad", c1, got)
		}
		if got := mood.Classify(2, c1); got != mood.Neutral {
			t.Fatalf("Classify(2, %d) = %v, want Neutral", c1, got)
		}
	})
}

// Three or more daily commits are Happy only with something in the last
// hour; a silent hour caps the mood at Neutral.
func TestClassifyStaleActivityCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c24 := rapid.IntRange(3, 1000).Draw(t, "commits_24h")
		if got := mood.Classify(c24, 0); got != mood.Neutral {
			t.Fatalf("Classify(%d, 0) = %v, want Neutral", c24, got)
		}
		c1 := rapid.IntRange(1, c24).Draw(t, "commits_1h")
		if got := mood.Classify(c24, c1); got != mood.Happy {
			t.Fatalf("Classify(%d, %d) = %v, want Happy", c24, c1, got)
		}
	})
}

func TestMoodString(t *testing.T) {
	for _, m := range mood.All() {
		if m.String() == "" || m.AssetPrefix() == "" {
			t.Errorf("mood %d has empty name or prefix", int(m))
		}
	}
}
