package editor

import (
	"testing"

	"github.com/julianstephens/classboard/internal/models"
)

func TestOpen(t *testing.T) {
	a := Open(models.DefaultSettings())
	b := Open(models.DefaultSettings())

	if a.ID == "" || a.Form == nil || a.Draft == nil {
		t.Fatalf("incomplete session: %+v", a)
	}
	if a.ID == b.ID {
		t.Errorf("sessions share id %q", a.ID)
	}
	if a.OpenedAt.IsZero() {
		t.Error("OpenedAt not set")
	}
}

func TestSessionResult(t *testing.T) {
	base := models.DefaultSettings()
	s := Open(base)
	s.Draft.Transparency = "0.5"
	s.Draft.Periods["Sunday"][0] = "Rest"

	got := s.Result(base)
	if got.Transparency != 0.5 {
		t.Errorf("Transparency = %v, want 0.5", got.Transparency)
	}
	if got.Schedules["Sunday"][0] != "Rest" {
		t.Errorf("Sunday[0] = %q, want Rest", got.Schedules["Sunday"][0])
	}
}

func TestValidateTransparency(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"0.1", false},
		{"0.55", false},
		{"1.0", false},
		{"0.05", true},
		{"1.01", true},
		{"", true},
		{"half", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateTransparency(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTransparency(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
