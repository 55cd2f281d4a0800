package cli

import (
	"strings"

	"github.com/julianstephens/classboard/internal/scheduler"
	"github.com/julianstephens/classboard/internal/utils"
)

// StatusCmd prints what the widget would show right now.
type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	settings := ctx.Store.Load()
	now := ctx.now()
	snap := utils.Snapshot(now)

	mode := scheduler.ModeNormal
	topmost, err := scheduler.ShouldBeTopmost(settings.TopmostTimeRanges, now)
	if err == nil && topmost {
		mode = scheduler.ModeTopmost
	}

	ctx.printf("%s  %s  %s\n", snap.Date, snap.Time, snap.Label)
	if err != nil {
		ctx.printf("Mode:          %s (range error: %v)\n", mode, err)
	} else {
		ctx.printf("Mode:          %s\n", mode)
	}
	ctx.printf("Transparency:  %g\n", settings.Transparency)
	ctx.printf("Topmost times: %s\n", formatRanges(settings.TopmostTimeRanges))

	labels := settings.ScheduleFor(snap.Label)
	if len(labels) == 0 {
		ctx.printf("\nNo classes scheduled for %s.\n", snap.Label)
		return nil
	}
	ctx.printf("\n%s schedule:\n", snap.Label)
	for i, label := range labels {
		ctx.printf("  %2d. %s\n", i+1, strings.TrimSpace(label))
	}
	return nil
}
