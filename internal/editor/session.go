package editor

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/models"
)

// Session is one open settings editor. The UI keeps at most one, as an
// optional handle that is nil while the editor is closed.
type Session struct {
	ID       string
	OpenedAt time.Time
	Draft    *Draft
	Form     *huh.Form
}

// Open starts an editor session over a copy of settings.
func Open(settings models.Settings) *Session {
	draft := NewDraft(settings)
	s := &Session{
		ID:       uuid.New().String(),
		OpenedAt: time.Now(),
		Draft:    draft,
		Form:     NewSettingsForm(draft),
	}
	logger.Info("Settings editor opened", "session", s.ID)
	return s
}

// Result applies the draft to base. Call once the form has completed.
func (s *Session) Result(base models.Settings) models.Settings {
	logger.Info("Settings editor saved", "session", s.ID, "open_for", time.Since(s.OpenedAt).Round(time.Second))
	return s.Draft.Apply(base)
}

// NewSettingsForm builds one page per weekday, one for transparency, one per
// existing time range and a trailing page for adding a range.
func NewSettingsForm(d *Draft) *huh.Form {
	groups := make([]*huh.Group, 0, len(constants.Weekdays)+len(d.Ranges)+2)

	for _, day := range constants.Weekdays {
		periods := d.Periods[day]
		fields := make([]huh.Field, 0, len(periods))
		for i := range periods {
			fields = append(fields, huh.NewInput().
				Title(fmt.Sprintf("%2d", i+1)).
				Inline(true).
				Value(&periods[i]))
		}
		groups = append(groups, huh.NewGroup(fields...).Title(day))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Transparency").
			Description("0.1: most transparent | 1.0: opaque").
			Value(&d.Transparency).
			Validate(validateTransparency),
	).Title("Transparency"))

	for i := range d.Ranges {
		r := &d.Ranges[i]
		groups = append(groups, huh.NewGroup(
			huh.NewInput().Title("Start (HH:MM)").Value(&r.Start),
			huh.NewInput().Title("End (HH:MM)").Value(&r.End),
			huh.NewConfirm().Title("Remove this range?").Value(&r.Remove),
		).Title(fmt.Sprintf("Topmost range %d", i+1)))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewInput().Title("Start (HH:MM)").Value(&d.NewRange.Start),
		huh.NewInput().Title("End (HH:MM)").Value(&d.NewRange.End),
	).Title("Add topmost range").Description("Leave both blank to skip"))

	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
}

func validateTransparency(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("must be a number")
	}
	if v < constants.MinTransparency || v > constants.MaxTransparency {
		return fmt.Errorf("must be between %.1f and %.1f", constants.MinTransparency, constants.MaxTransparency)
	}
	return nil
}
