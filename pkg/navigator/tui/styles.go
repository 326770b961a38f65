package tui

import (
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title         lipgloss.Style
	Line          lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Error         lipgloss.Style
}

func color(hex uint32) lipgloss.Color {
	return lipgloss.Color(internal.HexString(hex))
}

// NewStyles maps theme colors onto terminal styles.
func NewStyles(theme internal.Theme) Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(color(theme.ButtonLabelColor)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(theme.AccentColor))

	input := lipgloss.NewStyle().
		Width(40).
		Padding(0, 1).
		Border(lipgloss.NormalBorder()).
		BorderForeground(color(theme.HintColor))

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(color(theme.TextColor)).
			MarginBottom(1),
		Line: lipgloss.NewStyle().
			Foreground(color(theme.TextColor)),
		Input: input,
		InputFocused: input.
			BorderForeground(color(theme.AccentColor)),
		Button: button,
		ButtonFocused: button.
			Foreground(color(theme.HighlightedTextColor)).
			Background(color(theme.HighlightColor)).
			BorderForeground(color(theme.HighlightColor)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f5f")),
	}
}
