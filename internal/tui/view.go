package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/marcin-skalski/gitagotchi/internal/config"
	"github.com/marcin-skalski/gitagotchi/internal/mood"
)

const (
	barFullGlyph  = "█"
	barEmptyGlyph = "░"

	maxNameWidth = 40
)

// renderPanel produces the status lines shown under the pet: repo
// identity, mood, last commit and the hunger countdown.
func renderPanel(rt config.Runtime, snap Snapshot) []string {
	lastCommit := "No commits yet"
	if snap.Sample.HasCommits {
		lastCommit = snap.Sample.LastRelative
	}

	name := rt.RepoName
	if runewidth.StringWidth(name) > maxNameWidth {
		name = runewidth.Truncate(name, maxNameWidth, "…")
	}

	return []string{
		labelStyle.Render("repo   ") + valueStyle.Render(name),
		labelStyle.Render("mood   ") + moodStyle(snap.Mood).Render(snap.Mood.String()),
		labelStyle.Render("commit ") + valueStyle.Render(lastCommit),
		labelStyle.Render("hunger ") + renderBar(snap.Hunger, rt.BarWidth) +
			" " + valueStyle.Render(mood.FormatCountdown(snap.Hunger.Remaining)),
	}
}

// renderBar draws the hunger countdown as width segments, full glyphs
// first. An exhausted window renders fully empty.
func renderBar(h mood.Hunger, width int) string {
	filled := h.Filled(width)
	return barFullStyle.Render(strings.Repeat(barFullGlyph, filled)) +
		barEmptyStyle.Render(strings.Repeat(barEmptyGlyph, width-filled))
}

func renderFooter(snap Snapshot) string {
	return footerStyle.Render(fmt.Sprintf("%s │ %d commits today │ q to quit",
		snap.TakenAt.Format("15:04:05"), snap.Sample.Commits24h))
}
