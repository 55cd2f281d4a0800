package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/display"
	"github.com/julianstephens/classboard/internal/editor"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/models"
	"github.com/julianstephens/classboard/internal/scheduler"
	"github.com/julianstephens/classboard/internal/storage"
	"github.com/julianstephens/classboard/internal/tui/components/clock"
	"github.com/julianstephens/classboard/internal/tui/components/schedule"
	"github.com/julianstephens/classboard/internal/utils"
)

// Options wires the widget to its collaborators. Now and Rand are optional.
type Options struct {
	Store     storage.Provider
	Scheduler *scheduler.Scheduler
	Panel     *display.Panel
	Settings  models.Settings
	Now       func() time.Time
	Rand      *rand.Rand
}

type Model struct {
	store     storage.Provider
	scheduler *scheduler.Scheduler
	panel     *display.Panel
	settings  models.Settings
	state     constants.SessionState
	keys      KeyMap
	help      help.Model
	clock     clock.Model
	schedule  schedule.Model
	editor    *editor.Session
	weekday   string
	offset    Offset
	rng       *rand.Rand
	now       func() time.Time
	restart   bool
	status    string
	quitting  bool
	width     int
	height    int
}

func NewModel(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}

	t := now()
	m := Model{
		store:     opts.Store,
		scheduler: opts.Scheduler,
		panel:     opts.Panel,
		settings:  opts.Settings,
		state:     constants.StateClock,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		clock:     clock.New(t),
		schedule:  schedule.New(0, 0),
		rng:       rng,
		now:       now,
	}
	m.rebuildSchedule(utils.ResolveWeekday(t))

	// Apply the right mode before the first frame rather than after 5 s.
	m.scheduler.Evaluate(t)
	return m
}

// RestartRequested reports whether the widget quit so that it can be
// relaunched. The relaunch itself happens once the program has released the
// terminal.
func (m Model) RestartRequested() bool {
	return m.restart
}

func (m Model) ShortHelp() []key.Binding {
	if m.state == constants.StateEditSettings {
		return []key.Binding{m.keys.Cancel}
	}
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	if m.state == constants.StateEditSettings {
		return [][]key.Binding{{m.keys.Cancel}}
	}
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.clock.Init(), visibilityTick(), burnInTick())
}

type visibilityTickMsg time.Time

func visibilityTick() tea.Cmd {
	return tea.Tick(constants.VisibilityInterval, func(t time.Time) tea.Msg {
		return visibilityTickMsg(t)
	})
}

// rebuildSchedule shows the labels of day.
func (m *Model) rebuildSchedule(day string) {
	m.weekday = day
	labels := m.settings.ScheduleFor(day)
	m.schedule.SetDay(day, labels)
	m.resizeSchedule()
}

func (m *Model) resizeSchedule() {
	width, height := m.width, m.height-clockLines-helpLines
	if m.width == 0 || m.height == 0 {
		width, height = 40, m.schedule.Len()+2
	}
	m.schedule.SetSize(width, max(height, 1))
}

// openEditor starts a settings session, reusing one that is already open.
func (m *Model) openEditor() tea.Cmd {
	if m.editor == nil {
		m.editor = editor.Open(m.settings)
	}
	m.state = constants.StateEditSettings
	return m.editor.Form.Init()
}

func (m *Model) closeEditor() {
	if m.editor != nil {
		logger.Info("Settings editor closed", "session", m.editor.ID)
	}
	m.editor = nil
	m.state = constants.StateClock
}

// applySettings persists updated and pushes it into the running widget. A
// failed save is logged; the in-memory settings stay authoritative.
func (m *Model) applySettings(updated models.Settings) {
	m.settings = updated
	if err := m.store.Save(updated); err != nil {
		logger.Error("Failed to save settings", "path", m.store.GetConfigPath(), "error", err)
	}

	now := m.now()
	m.scheduler.UpdateRanges(updated.TopmostTimeRanges)
	m.scheduler.SetUserTransparency(updated.Transparency)
	m.scheduler.Evaluate(now)
	m.rebuildSchedule(utils.ResolveWeekday(now))
}
