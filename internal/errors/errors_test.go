package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "simple error", err: errors.New("boom"), want: "Error: boom"},
		{name: "wrapped error", err: fmt.Errorf("saving settings: %w", errors.New("disk full")), want: "Error: saving settings: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

type statusError struct{ code int }

func (e statusError) Error() string { return "child failed" }
func (e statusError) ExitCode() int { return e.code }

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "error with status", err: statusError{code: 4}, want: 4},
		{name: "wrapped error with status", err: fmt.Errorf("restart: %w", statusError{code: 2}), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFatalNil(t *testing.T) {
	// Fatal with nil must return instead of exiting
	Fatal(nil)
}
