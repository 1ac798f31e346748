package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Field    lipgloss.Style
	Focused  lipgloss.Style
	Button   lipgloss.Style
	Pressed  lipgloss.Style
	Result   lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
}

func defaultStyles() styles {
	highlight := lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#AD8CFF"}
	muted := lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}
	border := lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#444444"}

	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted).
			MarginBottom(1),
		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(40),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(0, 1).
			Width(40),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#555555")),
		Pressed: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(highlight),
		Result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			MarginTop(1),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			MarginTop(1),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
	}
}
