// Package tui drives the display: a bubbletea model that resamples the
// repository once per refresh interval, derives mood and hunger, and
// renders the pet on a fixed canvas so frame swaps never move the layout.
package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcin-skalski/gitagotchi/internal/config"
	"github.com/marcin-skalski/gitagotchi/internal/frames"
	"github.com/marcin-skalski/gitagotchi/internal/git"
	"github.com/marcin-skalski/gitagotchi/internal/mood"
)

type tickMsg time.Time

// repoChangedMsg arrives from the filesystem watcher when .git moved;
// it forces a resample without waiting for the next tick.
type repoChangedMsg struct{}

type Model struct {
	rt       config.Runtime
	sampler  *git.Client
	manifest *frames.Manifest
	refresh  time.Duration
	changes  <-chan struct{}
	logger   *slog.Logger

	snap   Snapshot
	width  int
	height int
}

// NewModel builds the display model and takes the first sample so the
// initial paint is already meaningful. changes may be nil when no watcher
// is running.
func NewModel(rt config.Runtime, sampler *git.Client, manifest *frames.Manifest, refresh time.Duration, changes <-chan struct{}, logger *slog.Logger) Model {
	m := Model{
		rt:       rt,
		sampler:  sampler,
		manifest: manifest,
		refresh:  refresh,
		changes:  changes,
		logger:   logger,
	}
	m.snap = m.takeSnapshot(time.Now())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.refresh), m.waitForChange())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.snap = m.takeSnapshot(time.Time(msg))
		return m, tickCmd(m.refresh)

	case repoChangedMsg:
		m.snap = m.takeSnapshot(time.Now())
		return m, m.waitForChange()
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	asset := m.manifest.Select(m.snap.Mood, frames.Tick(m.snap.TakenAt))
	style := frameStyle(m.snap.Mood)
	for _, line := range frames.Compose(asset, m.manifest.Canvas()) {
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, line := range renderPanel(m.rt, m.snap) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderFooter(m.snap))
	b.WriteString("\n")

	return b.String()
}

// takeSnapshot runs one Sample → Classify → Hunger pass. Sampling blocks
// the loop; the queries are local and fast, and the cadence is human-scale.
func (m Model) takeSnapshot(now time.Time) Snapshot {
	s := m.sampler.Sample(context.Background(), now)

	h := mood.Starved()
	if s.HasCommits {
		h = mood.HungerAt(s.LastCommit, now)
	}

	md := mood.Classify(s.Commits24h, s.Commits1h)
	m.logger.Debug("sampled repo",
		"commits_24h", s.Commits24h, "commits_1h", s.Commits1h, "mood", md.String())

	return Snapshot{Sample: s, Mood: md, Hunger: h, TakenAt: now}
}

func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return repoChangedMsg{}
	}
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
