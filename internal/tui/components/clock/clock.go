package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/models"
	"github.com/julianstephens/classboard/internal/utils"
)

var (
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)
)

// TickMsg carries the wall-clock time of a clock tick.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(constants.ClockInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model renders the date, time and weekday lines.
type Model struct {
	Snapshot models.ClockSnapshot
}

func New(now time.Time) Model {
	return Model{Snapshot: utils.Snapshot(now)}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Snapshot = utils.Snapshot(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		dateStyle.Render(m.Snapshot.Date),
		timeStyle.Render(m.Snapshot.Time),
		weekdayStyle.Render(m.Snapshot.Label),
	)
}
