package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Card    lipgloss.Style
	Empty   lipgloss.Style
	Ghost   lipgloss.Style
	Blocked lipgloss.Style
	// Tiles are cycled by domino id so neighbours are easy to tell apart.
	Tiles []lipgloss.Style
}

func DefaultTheme() Theme {
	tile := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(c))
	}
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Status:  lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Card:    lipgloss.NewStyle().Padding(0, 1).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
		Empty:   lipgloss.NewStyle().Faint(true),
		Ghost:   lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("15")),
		Blocked: lipgloss.NewStyle().Background(lipgloss.Color("52")).Foreground(lipgloss.Color("15")),
		Tiles: []lipgloss.Style{
			tile("111"), tile("150"), tile("180"), tile("182"), tile("116"), tile("223"),
		},
	}
}
