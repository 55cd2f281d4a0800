package tui

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/classboard/internal/constants"
)

type burnInTickMsg time.Time

func burnInTick() tea.Cmd {
	return tea.Tick(constants.BurnInInterval, func(t time.Time) tea.Msg {
		return burnInTickMsg(t)
	})
}

// Offset is the padding that nudges the content around the screen.
type Offset struct {
	Left int
	Top  int
}

// ClampOffset turns a raw shift into padding. Content only ever moves away
// from the right edge, so negative dx becomes left padding and positive dx
// is absorbed. Vertical shifts are held between 0 and MaxTopPadding.
func ClampOffset(dx, dy int) Offset {
	return Offset{
		Left: -min(dx, 0),
		Top:  min(max(dy, 0), constants.MaxTopPadding),
	}
}

// NextOffset draws dx and dy uniformly from [-MaxPixelShift, MaxPixelShift].
func NextOffset(r *rand.Rand) Offset {
	span := 2*constants.MaxPixelShift + 1
	dx := r.IntN(span) - constants.MaxPixelShift
	dy := r.IntN(span) - constants.MaxPixelShift
	return ClampOffset(dx, dy)
}
