package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcin-skalski/gitagotchi/internal/mood"
)

var (
	colorDead    = lipgloss.Color("240") // gray
	colorSad     = lipgloss.Color("33")  // blue
	colorNeutral = lipgloss.Color("214") // orange
	colorHappy   = lipgloss.Color("46")  // green

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	barFullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func moodColor(m mood.Mood) lipgloss.Color {
	switch m {
	case mood.Dead:
		return colorDead
	case mood.Sad:
		return colorSad
	case mood.Neutral:
		return colorNeutral
	case mood.Happy:
		return colorHappy
	default:
		return lipgloss.Color("252")
	}
}

func moodStyle(m mood.Mood) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(moodColor(m))
}

func frameStyle(m mood.Mood) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(moodColor(m))
}
