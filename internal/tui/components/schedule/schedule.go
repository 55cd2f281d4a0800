package schedule

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(3).
			Align(lipgloss.Right)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(1)
)

// Item is one period of the day.
type Item struct {
	Index int
	Label string
}

func (i Item) FilterValue() string { return i.Label }

// delegate draws one line per period with no selection highlight.
type delegate struct{}

func (d delegate) Height() int                             { return 1 }
func (d delegate) Spacing() int                            { return 0 }
func (d delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d delegate) Render(w io.Writer, _ list.Model, _ int, item list.Item) {
	i, ok := item.(Item)
	if !ok {
		return
	}
	fmt.Fprint(w, indexStyle.Render(fmt.Sprintf("%d.", i.Index))+labelStyle.Render(i.Label))
}

// Model shows the period labels of one weekday.
type Model struct {
	list list.Model
	day  string
}

// New creates an empty schedule. Days longer than the height are split into
// pages marked with pagination dots.
func New(width, height int) Model {
	l := list.New(nil, delegate{}, width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return Model{list: l}
}

// SetDay replaces the shown labels.
func (m *Model) SetDay(day string, labels []string) {
	items := make([]list.Item, len(labels))
	for i, label := range labels {
		items[i] = Item{Index: i + 1, Label: label}
	}
	m.day = day
	m.list.SetItems(items)
}

// Update pages through the labels with the list's navigation keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Pages returns how many pages the labels need at the current size.
func (m Model) Pages() int {
	return m.list.Paginator.TotalPages
}

// Day returns the weekday currently shown.
func (m Model) Day() string {
	return m.day
}

// Len returns the number of labels shown.
func (m Model) Len() int {
	return len(m.list.Items())
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No classes scheduled."
	}
	return m.list.View()
}
