package models

// TimeRange is an inclusive HH:MM window during which the widget floats
// above other windows with its schedule hidden.
type TimeRange struct {
	Start string `json:"start"` // e.g. "08:00"
	End   string `json:"end"`   // e.g. "12:00"
}

// Settings represents the persisted widget configuration
type Settings struct {
	Transparency      float64             `json:"transparency"`        // window alpha in normal mode, (0, 1]
	TopmostTimeRanges []TimeRange         `json:"topmost_time_ranges"` // evaluated in order
	Schedules         map[string][]string `json:"schedules"`           // weekday name -> period labels
}

// ClockSnapshot is the derived, never persisted view of the wall clock.
type ClockSnapshot struct {
	Date    string
	Time    string
	Weekday int // Monday = 0
	Label   string
}
