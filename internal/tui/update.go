package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/tui/components/clock"
	"github.com/julianstephens/classboard/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks keep running while the editor is open.
	switch msg := msg.(type) {
	case clock.TickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		if day := utils.ResolveWeekday(time.Time(msg)); day != m.weekday {
			logger.Debug("Weekday changed, rebuilding schedule", "from", m.weekday, "to", day)
			m.rebuildSchedule(day)
		}
		return m, cmd

	case visibilityTickMsg:
		m.scheduler.Evaluate(time.Time(msg))
		return m, visibilityTick()

	case burnInTickMsg:
		m.offset = NextOffset(m.rng)
		return m, burnInTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeSchedule()
	}

	if m.state == constants.StateEditSettings && m.editor != nil {
		return m.updateEditor(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Settings):
			m.status = ""
			return m, m.openEditor()
		case key.Matches(msg, m.keys.Restart):
			logger.Info("Restart requested")
			m.restart = true
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			// Paging through a day longer than the window
			var cmd tea.Cmd
			m.schedule, cmd = m.schedule.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Cancel) {
		m.closeEditor()
		return m, nil
	}

	form, cmd := m.editor.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.editor.Form = f
	}

	switch m.editor.Form.State {
	case huh.StateCompleted:
		m.applySettings(m.editor.Result(m.settings))
		m.closeEditor()
	case huh.StateAborted:
		m.closeEditor()
	}
	return m, cmd
}
