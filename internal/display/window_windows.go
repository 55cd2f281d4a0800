//go:build windows

package display

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sys/windows"

	"github.com/julianstephens/classboard/internal/logger"
)

const (
	gwlExStyle    = -20
	wsExLayered   = 0x00080000
	lwaAlpha      = 0x00000002
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

var (
	hwndTopmost   = ^uintptr(0)     // HWND_TOPMOST (-1)
	hwndNoTopmost = ^uintptr(0) - 1 // HWND_NOTOPMOST (-2)
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	user32   = windows.NewLazySystemDLL("user32.dll")

	procGetConsoleWindow           = kernel32.NewProc("GetConsoleWindow")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
)

// ErrNoConsoleWindow is returned when the process is not attached to a
// visible console.
var ErrNoConsoleWindow = errors.New("no console window attached")

// consoleWindow drives the console window hosting the terminal UI.
type consoleWindow struct {
	hwnd    windows.HWND
	layered bool
}

// NewWindow returns the platform window for the current console.
func NewWindow() (Window, error) {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return nil, ErrNoConsoleWindow
	}
	return &consoleWindow{hwnd: windows.HWND(hwnd)}, nil
}

func (w *consoleWindow) SetTopmost(topmost bool) error {
	insertAfter := hwndNoTopmost
	if topmost {
		insertAfter = hwndTopmost
	}
	ret, _, err := procSetWindowPos.Call(
		uintptr(w.hwnd),
		insertAfter,
		0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	logger.Debug("Window topmost set", "topmost", topmost)
	return nil
}

func (w *consoleWindow) SetTransparency(alpha float64) error {
	if err := w.ensureLayered(); err != nil {
		return err
	}

	level := uintptr(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	ret, _, err := procSetLayeredWindowAttributes.Call(uintptr(w.hwnd), 0, level, lwaAlpha)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes: %w", err)
	}
	logger.Debug("Window transparency set", "alpha", alpha)
	return nil
}

func (w *consoleWindow) ensureLayered() error {
	if w.layered {
		return nil
	}

	// GWL_EXSTYLE is negative, so pass it through an int to keep the sign
	index := gwlExStyle
	style, _, _ := procGetWindowLongPtrW.Call(uintptr(w.hwnd), uintptr(index))
	if style&wsExLayered == 0 {
		ret, _, err := procSetWindowLongPtrW.Call(uintptr(w.hwnd), uintptr(index), style|wsExLayered)
		if ret == 0 && err != windows.ERROR_SUCCESS {
			return fmt.Errorf("SetWindowLongPtrW: %w", err)
		}
	}
	w.layered = true
	return nil
}
