package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/classboard/internal/constants"
)

// DefaultSettings returns the built-in settings used when nothing usable is on disk.
func DefaultSettings() Settings {
	settings := Settings{
		Transparency:      constants.DefaultTransparency,
		TopmostTimeRanges: DefaultTimeRanges(),
		Schedules:         make(map[string][]string, len(constants.Weekdays)),
	}
	for _, day := range constants.Weekdays {
		settings.Schedules[day] = DefaultPeriods()
	}
	return settings
}

// DefaultTimeRanges returns a fresh copy of the default topmost windows.
func DefaultTimeRanges() []TimeRange {
	ranges := make([]TimeRange, 0, len(constants.DefaultRanges))
	for _, r := range constants.DefaultRanges {
		ranges = append(ranges, TimeRange{Start: r[0], End: r[1]})
	}
	return ranges
}

// DefaultPeriods returns a fresh copy of the default period labels.
func DefaultPeriods() []string {
	periods := make([]string, len(constants.DefaultPeriods))
	copy(periods, constants.DefaultPeriods[:])
	return periods
}

// FallbackTimeRanges is the single range used when edited ranges are malformed.
func FallbackTimeRanges() []TimeRange {
	return []TimeRange{{Start: constants.FallbackRangeStart, End: constants.FallbackRangeEnd}}
}

// ValidTransparency reports whether v is a usable window alpha.
func ValidTransparency(v float64) bool {
	return !math.IsNaN(v) && v > 0 && v <= constants.MaxTransparency
}

// ApplyDefaultSettings backfills missing fields from the defaults, field by
// field. A nil range list or schedule counts as missing; an empty one is kept.
// Schedule keys that are not weekday names are dropped.
func ApplyDefaultSettings(settings *Settings) {
	if !ValidTransparency(settings.Transparency) {
		settings.Transparency = constants.DefaultTransparency
	}
	if settings.TopmostTimeRanges == nil {
		settings.TopmostTimeRanges = DefaultTimeRanges()
	}

	schedules := make(map[string][]string, len(constants.Weekdays))
	for _, day := range constants.Weekdays {
		if periods, ok := settings.Schedules[day]; ok && periods != nil {
			schedules[day] = periods
		} else {
			schedules[day] = DefaultPeriods()
		}
	}
	settings.Schedules = schedules
}

// Normalize makes nil collections empty so that they survive serialization
// as explicit values rather than being backfilled on the next load.
func Normalize(settings Settings) Settings {
	out := settings.Clone()
	if out.TopmostTimeRanges == nil {
		out.TopmostTimeRanges = []TimeRange{}
	}
	if out.Schedules == nil {
		out.Schedules = make(map[string][]string)
	}
	for day, periods := range out.Schedules {
		if periods == nil {
			out.Schedules[day] = []string{}
		}
	}
	return out
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	out := Settings{Transparency: s.Transparency}
	if s.TopmostTimeRanges != nil {
		out.TopmostTimeRanges = make([]TimeRange, len(s.TopmostTimeRanges))
		copy(out.TopmostTimeRanges, s.TopmostTimeRanges)
	}
	if s.Schedules != nil {
		out.Schedules = make(map[string][]string, len(s.Schedules))
		for day, periods := range s.Schedules {
			if periods == nil {
				out.Schedules[day] = nil
				continue
			}
			cp := make([]string, len(periods))
			copy(cp, periods)
			out.Schedules[day] = cp
		}
	}
	return out
}

// ScheduleFor returns the period labels for a weekday name.
func (s Settings) ScheduleFor(day string) []string {
	return s.Schedules[day]
}

// SettingsToMap converts a Settings struct to key-value pairs. Collections
// are stored as JSON; each weekday is its own key.
func SettingsToMap(settings Settings) (map[string]string, error) {
	settings = Normalize(settings)

	ranges, err := json.Marshal(settings.TopmostTimeRanges)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", constants.SettingTopmostTimeRanges, err)
	}

	data := map[string]string{
		constants.SettingTransparency:      strconv.FormatFloat(settings.Transparency, 'g', -1, 64),
		constants.SettingTopmostTimeRanges: string(ranges),
	}
	for day, periods := range settings.Schedules {
		encoded, err := json.Marshal(periods)
		if err != nil {
			return nil, fmt.Errorf("encoding schedule %s: %w", day, err)
		}
		data[ScheduleKey(day)] = string(encoded)
	}
	return data, nil
}

// MapToSettings converts key-value pairs back into Settings. Absent keys are
// left zero for ApplyDefaultSettings to fill.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTransparency:
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.Transparency = v
		case constants.SettingTopmostTimeRanges:
			if err := json.Unmarshal([]byte(value), &settings.TopmostTimeRanges); err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
		default:
			day, ok := DayFromScheduleKey(key)
			if !ok {
				continue
			}
			var periods []string
			if err := json.Unmarshal([]byte(value), &periods); err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			if settings.Schedules == nil {
				settings.Schedules = make(map[string][]string)
			}
			settings.Schedules[day] = periods
		}
	}
	return settings, nil
}

// ScheduleKey is the key-value name of a weekday's schedule.
func ScheduleKey(day string) string {
	return constants.SettingSchedules + "." + day
}

// DayFromScheduleKey is the inverse of ScheduleKey.
func DayFromScheduleKey(key string) (string, bool) {
	day, ok := strings.CutPrefix(key, constants.SettingSchedules+".")
	return day, ok && day != ""
}
