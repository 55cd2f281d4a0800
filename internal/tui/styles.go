package tui

import "github.com/charmbracelet/lipgloss"

// faintBelow is the alpha under which the terminal rendering is dimmed to
// mirror the window transparency.
const faintBelow = 0.5

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	faintStyle = lipgloss.NewStyle().Faint(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)
