package editor

import (
	"reflect"
	"testing"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/models"
)

func TestNewDraft(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Transparency = 0.75
	settings.Schedules["Monday"] = []string{"Math", "Art"}

	d := NewDraft(settings)

	if d.Transparency != "0.75" {
		t.Errorf("Transparency = %q, want %q", d.Transparency, "0.75")
	}
	if len(d.Periods) != len(constants.Weekdays) {
		t.Fatalf("expected %d weekday pages, got %d", len(constants.Weekdays), len(d.Periods))
	}
	monday := d.Periods["Monday"]
	if len(monday) != constants.DefaultPeriodCount {
		t.Fatalf("expected Monday padded to %d inputs, got %d", constants.DefaultPeriodCount, len(monday))
	}
	if monday[0] != "Math" || monday[1] != "Art" || monday[2] != "" {
		t.Errorf("unexpected Monday inputs: %q", monday[:3])
	}
	if len(d.Ranges) != 2 || d.Ranges[0].Start != "08:00" || d.Ranges[1].End != "18:00" {
		t.Errorf("unexpected range rows: %+v", d.Ranges)
	}
}

func TestNewDraftKeepsLongSchedules(t *testing.T) {
	settings := models.DefaultSettings()
	long := make([]string, 20)
	for i := range long {
		long[i] = "p"
	}
	settings.Schedules["Friday"] = long

	d := NewDraft(settings)
	if len(d.Periods["Friday"]) != 20 {
		t.Errorf("expected 20 Friday inputs, got %d", len(d.Periods["Friday"]))
	}
}

func TestDraftDoesNotAliasSettings(t *testing.T) {
	settings := models.DefaultSettings()
	d := NewDraft(settings)
	d.Periods["Monday"][0] = "changed"

	if settings.Schedules["Monday"][0] == "changed" {
		t.Error("editing the draft modified the source settings")
	}
}

func TestApplyPeriodsVerbatim(t *testing.T) {
	base := models.DefaultSettings()
	d := NewDraft(base)
	d.Periods["Tuesday"][0] = "  Chinese  "
	d.Periods["Tuesday"][14] = ""

	got := d.Apply(base)

	tuesday := got.Schedules["Tuesday"]
	if len(tuesday) != constants.DefaultPeriodCount {
		t.Fatalf("expected %d Tuesday labels, got %d", constants.DefaultPeriodCount, len(tuesday))
	}
	if tuesday[0] != "  Chinese  " {
		t.Errorf("label was not kept verbatim: %q", tuesday[0])
	}
	if tuesday[14] != "" {
		t.Errorf("blank label was not kept: %q", tuesday[14])
	}
	if base.Schedules["Tuesday"][0] == "  Chinese  " {
		t.Error("Apply modified the base settings")
	}
}

func TestApplyTransparency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"valid", "0.4", 0.4},
		{"padded", " 0.9 ", 0.9},
		{"upper bound", "1", 1.0},
		{"not a number", "abc", 0.8},
		{"empty", "", 0.8},
		{"zero", "0", 0.8},
		{"above one", "1.5", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := models.DefaultSettings()
			base.Transparency = 0.8
			d := NewDraft(base)
			d.Transparency = tt.input

			if got := d.Apply(base).Transparency; got != tt.want {
				t.Errorf("Transparency = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyRanges(t *testing.T) {
	tests := []struct {
		name   string
		rows   []RangeDraft
		newRow RangeDraft
		want   []models.TimeRange
	}{
		{
			name: "unchanged",
			rows: []RangeDraft{{Start: "08:00", End: "12:00"}, {Start: "14:00", End: "18:00"}},
			want: []models.TimeRange{{Start: "08:00", End: "12:00"}, {Start: "14:00", End: "18:00"}},
		},
		{
			name: "removed row dropped",
			rows: []RangeDraft{{Start: "08:00", End: "12:00", Remove: true}, {Start: "14:00", End: "18:00"}},
			want: []models.TimeRange{{Start: "14:00", End: "18:00"}},
		},
		{
			name:   "new row appended",
			rows:   []RangeDraft{{Start: "08:00", End: "12:00"}},
			newRow: RangeDraft{Start: "19:00", End: "21:30"},
			want:   []models.TimeRange{{Start: "08:00", End: "12:00"}, {Start: "19:00", End: "21:30"}},
		},
		{
			name:   "blank new row skipped",
			rows:   []RangeDraft{{Start: "08:00", End: "12:00"}},
			newRow: RangeDraft{Start: "  ", End: ""},
			want:   []models.TimeRange{{Start: "08:00", End: "12:00"}},
		},
		{
			name: "whitespace trimmed",
			rows: []RangeDraft{{Start: " 07:30", End: "09:00 "}},
			want: []models.TimeRange{{Start: "07:30", End: "09:00"}},
		},
		{
			name: "all removed",
			rows: []RangeDraft{{Start: "08:00", End: "12:00", Remove: true}},
			want: []models.TimeRange{},
		},
		{
			name: "malformed row falls back",
			rows: []RangeDraft{{Start: "08:00", End: "12:00"}, {Start: "8am", End: "10:00"}},
			want: []models.TimeRange{{Start: "08:00", End: "18:00"}},
		},
		{
			name:   "half-filled new row falls back",
			rows:   []RangeDraft{{Start: "08:00", End: "12:00"}},
			newRow: RangeDraft{Start: "19:00"},
			want:   []models.TimeRange{{Start: "08:00", End: "18:00"}},
		},
		{
			name: "malformed removed row ignored",
			rows: []RangeDraft{{Start: "xx", End: "yy", Remove: true}, {Start: "14:00", End: "18:00"}},
			want: []models.TimeRange{{Start: "14:00", End: "18:00"}},
		},
		{
			name: "overnight kept as typed",
			rows: []RangeDraft{{Start: "22:00", End: "06:00"}},
			want: []models.TimeRange{{Start: "22:00", End: "06:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := models.DefaultSettings()
			d := NewDraft(base)
			d.Ranges = tt.rows
			d.NewRange = tt.newRow

			got := d.Apply(base).TopmostTimeRanges
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ranges = %+v, want %+v", got, tt.want)
			}
		})
	}
}
