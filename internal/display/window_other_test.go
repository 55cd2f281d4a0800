//go:build !windows

package display

import "testing"

func TestTerminalWindowRecordsState(t *testing.T) {
	w, err := NewWindow()
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	if err := w.SetTopmost(true); err != nil {
		t.Errorf("SetTopmost failed: %v", err)
	}
	if err := w.SetTransparency(0.3); err != nil {
		t.Errorf("SetTransparency failed: %v", err)
	}

	tw := w.(*terminalWindow)
	if !tw.topmost || tw.alpha != 0.3 {
		t.Errorf("unexpected state: topmost=%v alpha=%v", tw.topmost, tw.alpha)
	}
}
