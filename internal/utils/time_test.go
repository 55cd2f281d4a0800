package utils

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: 8 * time.Hour},
		{name: "minutes", input: "14:35", want: 14*time.Hour + 35*time.Minute},
		{name: "single digit hour", input: "8:05", want: 8*time.Hour + 5*time.Minute},
		{name: "surrounding space", input: " 09:10 ", want: 9*time.Hour + 10*time.Minute},
		{name: "midnight", input: "00:00", want: 0},
		{name: "last minute", input: "23:59", want: 23*time.Hour + 59*time.Minute},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	ts := time.Date(2025, 3, 10, 12, 0, 30, 500, time.UTC)
	want := 12*time.Hour + 30*time.Second + 500
	if got := TimeOfDay(ts); got != want {
		t.Errorf("TimeOfDay() = %v, want %v", got, want)
	}
}

func TestResolveWeekday(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-10", "Monday"}, // Mar 10 2025 is a Monday
		{"2025-03-11", "Tuesday"},
		{"2025-03-15", "Saturday"},
		{"2025-03-16", "Sunday"},
		{"2025-12-31", "Wednesday"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			if err != nil {
				t.Fatalf("bad test date: %v", err)
			}
			if got := ResolveWeekday(d); got != tt.want {
				t.Errorf("ResolveWeekday(%s) = %s, want %s", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekdayLabel(t *testing.T) {
	if got := WeekdayLabel(0); got != "Monday" {
		t.Errorf("WeekdayLabel(0) = %s, want Monday", got)
	}
	if got := WeekdayLabel(6); got != "Sunday" {
		t.Errorf("WeekdayLabel(6) = %s, want Sunday", got)
	}
	if got := WeekdayLabel(7); got != "Monday" {
		t.Errorf("WeekdayLabel(7) = %s, want Monday", got)
	}
	if got := WeekdayLabel(-1); got != "Sunday" {
		t.Errorf("WeekdayLabel(-1) = %s, want Sunday", got)
	}
}

func TestSnapshot(t *testing.T) {
	ts := time.Date(2025, 3, 16, 7, 5, 9, 0, time.Local)
	snap := Snapshot(ts)

	if snap.Date != "2025年03月16日" {
		t.Errorf("Date = %q", snap.Date)
	}
	if snap.Time != "07:05:09" {
		t.Errorf("Time = %q", snap.Time)
	}
	if snap.Weekday != 6 || snap.Label != "Sunday" {
		t.Errorf("Weekday = %d (%s), want 6 (Sunday)", snap.Weekday, snap.Label)
	}
}
