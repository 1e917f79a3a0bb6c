package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Timer     lipgloss.Style
	Quote     lipgloss.Style
}

func newStyles(accent string, dark bool) styles {
	hint := lipgloss.Color("#555555")
	if dark {
		hint = lipgloss.Color("#8A8A8A")
	}

	return styles{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Secondary: lipgloss.NewStyle().Bold(true),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Timer: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(accent)).
			MarginRight(1),
		Quote: lipgloss.NewStyle().Italic(true).Foreground(hint),
	}
}
