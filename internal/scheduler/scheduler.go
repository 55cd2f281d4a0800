package scheduler

import (
	"time"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/display"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/models"
	"github.com/julianstephens/classboard/internal/utils"
)

// Mode is the display mode chosen by the scheduler.
type Mode int

const (
	// ModeNormal shows the schedule at the user's transparency.
	ModeNormal Mode = iota
	// ModeTopmost hides the schedule and floats the window above others.
	ModeTopmost
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeTopmost:
		return "topmost"
	default:
		return "unknown"
	}
}

// State is the visibility state read by the UI shell.
type State struct {
	Topmost      bool
	Transparency float64 // last applied window alpha
}

// Scheduler toggles the widget between normal and topmost mode based on
// configured time ranges. It is not safe for concurrent use; the UI event
// loop is its only caller.
type Scheduler struct {
	window           display.Window
	panel            *display.Panel
	ranges           []models.TimeRange
	userTransparency float64
	state            State
	applied          bool
}

// New creates a scheduler in normal mode. Nothing is applied to the window
// until the first Evaluate.
func New(window display.Window, panel *display.Panel, settings models.Settings) *Scheduler {
	s := &Scheduler{
		window:           window,
		panel:            panel,
		userTransparency: settings.Transparency,
		state:            State{Transparency: settings.Transparency},
	}
	s.UpdateRanges(settings.TopmostTimeRanges)
	return s
}

// ShouldBeTopmost reports whether now falls inside any range, boundaries
// included. Ranges are checked in order and the first match wins, so a
// malformed range after a match is never parsed. A range whose start is
// after its end does not wrap past midnight and never matches.
func ShouldBeTopmost(ranges []models.TimeRange, now time.Time) (bool, error) {
	current := utils.TimeOfDay(now)

	for _, r := range ranges {
		start, err := utils.ParseTimeOfDay(r.Start)
		if err != nil {
			return false, err
		}
		end, err := utils.ParseTimeOfDay(r.End)
		if err != nil {
			return false, err
		}

		if start <= current && current <= end {
			logger.Debug("Current time is inside topmost range", "start", r.Start, "end", r.End)
			return true, nil
		}
	}
	return false, nil
}

// Evaluate runs one poll: it decides the mode for now, transitions when the
// decision differs from the current state and reapplies side effects when
// the panel has drifted from the state. Evaluation errors fall back to
// normal mode for this tick.
func (s *Scheduler) Evaluate(now time.Time) Mode {
	should, err := ShouldBeTopmost(s.ranges, now)
	if err != nil {
		logger.Error("Failed to evaluate topmost status", "error", err)
		if s.state.Topmost || !s.panel.ScheduleVisible() {
			s.apply(false)
		}
		return ModeNormal
	}

	switch {
	case !s.applied:
		logger.Debug("Applying initial display mode", "topmost", should)
		s.apply(should)
	case should != s.state.Topmost:
		logger.Info("Switching display mode", "topmost", should, "at", now.Format(constants.DisplayTimeFormat))
		s.apply(should)
	case s.panel.ScheduleVisible() == should:
		// The schedule must be hidden exactly when topmost
		logger.Warn("Display drifted from visibility state, reapplying", "topmost", should)
		s.apply(should)
	}

	return s.Mode()
}

func (s *Scheduler) apply(topmost bool) {
	if err := s.window.SetTopmost(topmost); err != nil {
		logger.Warn("Failed to set window topmost", "topmost", topmost, "error", err)
	}

	alpha := s.userTransparency
	if topmost {
		s.panel.HideSchedule()
		alpha = constants.TopmostTransparency
	} else {
		s.panel.ShowSchedule()
	}

	if err := s.window.SetTransparency(alpha); err != nil {
		logger.Warn("Failed to set window transparency", "alpha", alpha, "error", err)
	}

	s.state = State{Topmost: topmost, Transparency: alpha}
	s.applied = true
}

// SetUserTransparency changes the normal-mode alpha. It is applied at once
// in normal mode and deferred until the next switch to normal otherwise.
// Invalid values are ignored.
func (s *Scheduler) SetUserTransparency(alpha float64) {
	if !models.ValidTransparency(alpha) {
		logger.Warn("Ignoring invalid transparency", "alpha", alpha)
		return
	}

	s.userTransparency = alpha
	if s.state.Topmost {
		return
	}

	if err := s.window.SetTransparency(alpha); err != nil {
		logger.Warn("Failed to set window transparency", "alpha", alpha, "error", err)
	}
	s.state.Transparency = alpha
}

// UpdateRanges replaces the configured ranges. Callers evaluate again
// afterwards to apply the change immediately.
func (s *Scheduler) UpdateRanges(ranges []models.TimeRange) {
	s.ranges = make([]models.TimeRange, len(ranges))
	copy(s.ranges, ranges)
}

// Ranges returns a copy of the configured ranges.
func (s *Scheduler) Ranges() []models.TimeRange {
	out := make([]models.TimeRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// State returns the last applied visibility state.
func (s *Scheduler) State() State {
	return s.state
}

// Mode returns the mode matching the current state.
func (s *Scheduler) Mode() Mode {
	if s.state.Topmost {
		return ModeTopmost
	}
	return ModeNormal
}

// UserTransparency returns the configured normal-mode alpha.
func (s *Scheduler) UserTransparency() float64 {
	return s.userTransparency
}
