package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/models"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, strings.TrimSpace(timeStr))
}

// ParseTimeOfDay parses HH:MM into an offset from midnight.
func ParseTimeOfDay(timeStr string) (time.Duration, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// TimeOfDay returns the wall-clock offset of t from its midnight, down to the nanosecond.
func TimeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// WeekdayOrdinal returns the Monday-first ordinal (Monday = 0) of t.
func WeekdayOrdinal(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayLabel maps a Monday = 0 ordinal to its schedule key. Ordinals
// outside 0..6 wrap.
func WeekdayLabel(ordinal int) string {
	return constants.Weekdays[((ordinal%7)+7)%7]
}

// ResolveWeekday returns the schedule key for the day t falls on.
func ResolveWeekday(t time.Time) string {
	return WeekdayLabel(WeekdayOrdinal(t))
}

// Snapshot builds the clock view for t.
func Snapshot(t time.Time) models.ClockSnapshot {
	ordinal := WeekdayOrdinal(t)
	return models.ClockSnapshot{
		Date:    t.Format(constants.DisplayDateFormat),
		Time:    t.Format(constants.DisplayTimeFormat),
		Weekday: ordinal,
		Label:   WeekdayLabel(ordinal),
	}
}
