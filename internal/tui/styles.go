package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorAccent  = lipgloss.Color("39")
	colorSubtle  = lipgloss.Color("240")
	colorCursorF = lipgloss.Color("229")
	colorCursorB = lipgloss.Color("57")
	colorOK      = lipgloss.Color("42")
	colorWarning = lipgloss.Color("214")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	TabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorSubtle)
	ActiveTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(colorAccent)

	SelectedStyle = lipgloss.NewStyle().Foreground(colorCursorF).Background(colorCursorB)
	SubtleStyle   = lipgloss.NewStyle().Foreground(colorSubtle)
	ManualStyle   = lipgloss.NewStyle().Foreground(colorOK)
	WarningStyle  = lipgloss.NewStyle().Foreground(colorWarning)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)
)
