package editor

import (
	"strconv"
	"strings"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/models"
	"github.com/julianstephens/classboard/internal/utils"
)

// RangeDraft is one editable time range row.
type RangeDraft struct {
	Start  string
	End    string
	Remove bool
}

func (r RangeDraft) blank() bool {
	return strings.TrimSpace(r.Start) == "" && strings.TrimSpace(r.End) == ""
}

// Draft is the string-typed form model behind the settings editor. Field
// addresses are handed to the form, so slices are sized once and never
// appended to.
type Draft struct {
	Periods      map[string][]string
	Transparency string
	Ranges       []RangeDraft
	NewRange     RangeDraft
}

// NewDraft copies settings into editable fields. Every weekday gets at least
// the default number of period inputs; longer schedules keep all entries.
func NewDraft(settings models.Settings) *Draft {
	d := &Draft{
		Periods:      make(map[string][]string, len(constants.Weekdays)),
		Transparency: strconv.FormatFloat(settings.Transparency, 'f', -1, 64),
		Ranges:       make([]RangeDraft, 0, len(settings.TopmostTimeRanges)),
	}

	for _, day := range constants.Weekdays {
		existing := settings.ScheduleFor(day)
		periods := make([]string, max(constants.DefaultPeriodCount, len(existing)))
		copy(periods, existing)
		d.Periods[day] = periods
	}

	for _, r := range settings.TopmostTimeRanges {
		d.Ranges = append(d.Ranges, RangeDraft{Start: r.Start, End: r.End})
	}

	return d
}

// Apply returns base updated with the draft. Period labels are taken
// verbatim. An unparsable transparency keeps the base value. If any kept
// range has a boundary that is not HH:MM the whole list is replaced by the
// single fallback range.
func (d *Draft) Apply(base models.Settings) models.Settings {
	out := base.Clone()

	if out.Schedules == nil {
		out.Schedules = make(map[string][]string, len(constants.Weekdays))
	}
	for _, day := range constants.Weekdays {
		periods := make([]string, len(d.Periods[day]))
		copy(periods, d.Periods[day])
		out.Schedules[day] = periods
	}

	if alpha, err := strconv.ParseFloat(strings.TrimSpace(d.Transparency), 64); err == nil && models.ValidTransparency(alpha) {
		out.Transparency = alpha
	} else {
		logger.Warn("Ignoring invalid transparency from editor", "value", d.Transparency)
	}

	out.TopmostTimeRanges = d.ranges()
	return out
}

func (d *Draft) ranges() []models.TimeRange {
	rows := make([]RangeDraft, 0, len(d.Ranges)+1)
	for _, r := range d.Ranges {
		if !r.Remove {
			rows = append(rows, r)
		}
	}
	if !d.NewRange.blank() {
		rows = append(rows, d.NewRange)
	}

	ranges := make([]models.TimeRange, 0, len(rows))
	for _, r := range rows {
		if !utils.ValidateTimeFormat(r.Start) || !utils.ValidateTimeFormat(r.End) {
			logger.Warn("Malformed time range, using fallback range",
				"start", r.Start, "end", r.End,
				"fallback_start", constants.FallbackRangeStart, "fallback_end", constants.FallbackRangeEnd)
			return models.FallbackTimeRanges()
		}
		ranges = append(ranges, models.TimeRange{
			Start: strings.TrimSpace(r.Start),
			End:   strings.TrimSpace(r.End),
		})
	}
	return ranges
}
