// Package display holds the window capabilities the visibility scheduler
// drives and the panel flag the view reads.
package display

// Window is the OS-level surface the widget lives in.
type Window interface {
	SetTopmost(topmost bool) error
	SetTransparency(alpha float64) error
}

// Panel is the observable visibility of the schedule list.
type Panel struct {
	scheduleVisible bool
}

// NewPanel returns a panel whose schedule starts hidden; the first
// scheduler evaluation decides whether to show it.
func NewPanel() *Panel {
	return &Panel{}
}

// ShowSchedule reveals the schedule list.
func (p *Panel) ShowSchedule() {
	p.scheduleVisible = true
}

// HideSchedule hides the schedule list.
func (p *Panel) HideSchedule() {
	p.scheduleVisible = false
}

// ScheduleVisible reports whether the schedule list is shown.
func (p *Panel) ScheduleVisible() bool {
	return p.scheduleVisible
}

// NopWindow ignores every request. It stands in when the platform window
// cannot be controlled.
type NopWindow struct{}

func (NopWindow) SetTopmost(bool) error         { return nil }
func (NopWindow) SetTransparency(float64) error { return nil }
