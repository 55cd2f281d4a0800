package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/classboard/internal/constants"
)

const (
	clockLines = 4
	helpLines  = 2
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == constants.StateEditSettings && m.editor != nil {
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Settings"),
			m.editor.Form.View(),
			m.help.View(m),
		))
	}

	return m.viewClock()
}

func (m Model) viewClock() string {
	parts := []string{m.clock.View()}

	// The schedule panel and help line only exist in normal mode; topmost
	// mode is the bare clock.
	if m.panel.ScheduleVisible() {
		parts = append(parts,
			dividerStyle.Render(strings.Repeat("─", 12)),
			m.schedule.View(),
		)
		if m.status != "" {
			parts = append(parts, statusStyle.Render(m.status))
		}
		parts = append(parts, m.help.View(m))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.scheduler.State().Transparency < faintBelow {
		content = faintStyle.Render(content)
	}

	return lipgloss.NewStyle().
		PaddingLeft(m.offset.Left).
		PaddingTop(m.offset.Top).
		Render(content)
}
