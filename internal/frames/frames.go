// Package frames owns the pet's art: discovering mood variants on disk,
// sizing the shared canvas, picking the variant for an animation tick and
// composing a frame into fixed-size lines.
package frames

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/marcin-skalski/gitagotchi/internal/mood"
)

// Asset is one art variant for a mood, loaded once at startup.
// Width and height are measured in runes; double-width glyphs are not
// reconciled with true terminal columns.
type Asset struct {
	Mood   mood.Mood
	Path   string
	Lines  []string
	Width  int
	Height int
}

// Canvas is the fixed character grid every frame is composed into. It is
// sized to the largest asset so frame swaps never resize the display.
type Canvas struct {
	Width  int
	Height int
}

// Manifest maps each mood to its ordered art variants. Built once at
// startup and read-only afterwards.
type Manifest struct {
	variants map[mood.Mood][]Asset
	canvas   Canvas
}

// Discover scans dir for mood-prefixed .txt files and builds the manifest.
// A file belongs to a mood when its basename is the mood prefix followed by
// an optional numeric suffix ("happy.txt", "happy2.txt"). Every mood must
// have at least one variant.
func Discover(dir string) (*Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read assets dir: %w", err)
	}

	m := &Manifest{variants: make(map[mood.Mood][]Asset)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		md, ok := moodForName(strings.TrimSuffix(e.Name(), ".txt"))
		if !ok {
			continue
		}
		a, err := loadAsset(md, filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		m.variants[md] = append(m.variants[md], a)
	}

	for _, md := range mood.All() {
		vs := m.variants[md]
		if len(vs) == 0 {
			return nil, fmt.Errorf("no art for mood %s in %s (expected %s*.txt)", md, dir, md.AssetPrefix())
		}
		sort.Slice(vs, func(i, j int) bool { return vs[i].Path < vs[j].Path })
		for _, a := range vs {
			if a.Width > m.canvas.Width {
				m.canvas.Width = a.Width
			}
			if a.Height > m.canvas.Height {
				m.canvas.Height = a.Height
			}
		}
	}
	return m, nil
}

// moodForName matches a filename (extension stripped) against the mood
// prefixes. The remainder after the prefix must be empty or digits, so
// unrelated files sharing a prefix are not picked up by accident.
func moodForName(name string) (mood.Mood, bool) {
	name = strings.ToLower(name)
	for _, md := range mood.All() {
		rest, ok := strings.CutPrefix(name, md.AssetPrefix())
		if !ok {
			continue
		}
		if isDigits(rest) {
			return md, true
		}
	}
	return 0, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func loadAsset(md mood.Mood, path string) (Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, fmt.Errorf("read asset: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	a := Asset{Mood: md, Path: path, Lines: lines, Height: len(lines)}
	for _, l := range lines {
		if w := utf8.RuneCountInString(l); w > a.Width {
			a.Width = w
		}
	}
	return a, nil
}

// Canvas returns the shared canvas dimensions.
func (m *Manifest) Canvas() Canvas {
	return m.canvas
}

// Variants returns the ordered variant list for a mood.
func (m *Manifest) Variants(md mood.Mood) []Asset {
	return m.variants[md]
}

// Select picks the variant to display for a mood at a given animation tick.
func (m *Manifest) Select(md mood.Mood, tick int64) Asset {
	vs := m.variants[md]
	i := tick % int64(len(vs))
	if i < 0 {
		i += int64(len(vs))
	}
	return vs[i]
}

// Tick derives the animation tick from wall-clock time. Driving selection
// from elapsed seconds rather than a loop counter keeps animation speed
// independent of render jitter.
func Tick(now time.Time) int64 {
	return now.Unix()
}

// Compose pads asset lines into a grid of exactly canvas.Height lines,
// each exactly canvas.Width runes, centering the asset both ways. Assets
// larger than the canvas are clamped, never wrapped.
func Compose(a Asset, c Canvas) []string {
	lines := a.Lines
	if len(lines) > c.Height {
		lines = lines[:c.Height]
	}

	topPad := (c.Height - len(lines)) / 2
	out := make([]string, 0, c.Height)
	for i := 0; i < topPad; i++ {
		out = append(out, strings.Repeat(" ", c.Width))
	}
	for _, l := range lines {
		out = append(out, centerLine(l, c.Width))
	}
	for len(out) < c.Height {
		out = append(out, strings.Repeat(" ", c.Width))
	}
	return out
}

func centerLine(l string, width int) string {
	runes := []rune(l)
	if len(runes) > width {
		runes = runes[:width]
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + string(runes) + strings.Repeat(" ", right)
}
