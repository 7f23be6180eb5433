package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// style holds the lipgloss styles of the clock screen.
type style struct {
	base      lipgloss.Style
	phase     lipgloss.Style
	digits    lipgloss.Style
	hint      lipgloss.Style
	paused    lipgloss.Style
	done      lipgloss.Style
	errorText lipgloss.Style
}

func newStyle(darkTheme bool) style {
	text := lipgloss.Color("#1F1F1F")
	muted := lipgloss.Color("#6E6E6E")
	accent := lipgloss.Color("#2A7AB0")

	if darkTheme {
		text = lipgloss.Color("#F0F0F0")
		muted = lipgloss.Color("#8C8C8C")
		accent = lipgloss.Color("#12EAEA")
	}

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		phase:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		digits:    lipgloss.NewStyle().Foreground(text).Bold(true),
		hint:      lipgloss.NewStyle().Foreground(muted).PaddingLeft(1),
		paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).PaddingLeft(1),
		done:      lipgloss.NewStyle().Foreground(lipgloss.Color("#B0DB43")).Bold(true),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
	}
}
