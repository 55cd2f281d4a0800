//go:build !windows

package display

import "github.com/julianstephens/classboard/internal/logger"

// terminalWindow has no native window handle to drive; it only records the
// requested state.
type terminalWindow struct {
	topmost bool
	alpha   float64
}

// NewWindow returns the platform window for the current console.
func NewWindow() (Window, error) {
	return &terminalWindow{alpha: 1.0}, nil
}

func (w *terminalWindow) SetTopmost(topmost bool) error {
	w.topmost = topmost
	logger.Debug("Window topmost requested", "topmost", topmost)
	return nil
}

func (w *terminalWindow) SetTransparency(alpha float64) error {
	w.alpha = alpha
	logger.Debug("Window transparency requested", "alpha", alpha)
	return nil
}
