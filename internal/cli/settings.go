package cli

import (
	"fmt"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/models"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Transparency *float64 `help:"Window transparency in normal mode (0.1-1.0)."`
	Range        []string `help:"Topmost time range as HH:MM-HH:MM. Repeat to set several; replaces the configured list." placeholder:"HH:MM-HH:MM"`
	ClearRanges  bool     `help:"Remove all topmost time ranges."`
	Reset        bool     `help:"Restore the default settings."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings := ctx.Store.Load()

	if c.List {
		c.list(ctx, settings)
		return nil
	}

	updated := false
	if c.Reset {
		settings = models.DefaultSettings()
		updated = true
	}
	if c.Transparency != nil {
		v := *c.Transparency
		if v < constants.MinTransparency || v > constants.MaxTransparency {
			return fmt.Errorf("transparency must be between %.1f and %.1f, got %g",
				constants.MinTransparency, constants.MaxTransparency, v)
		}
		settings.Transparency = v
		updated = true
	}
	if c.ClearRanges {
		settings.TopmostTimeRanges = []models.TimeRange{}
		updated = true
	}
	if len(c.Range) > 0 {
		ranges := make([]models.TimeRange, 0, len(c.Range))
		for _, s := range c.Range {
			r, err := ParseRange(s)
			if err != nil {
				return err
			}
			ranges = append(ranges, r)
		}
		settings.TopmostTimeRanges = ranges
		updated = true
	}

	if !updated {
		ctx.printf("No changes specified. Use --list to view settings or flags to update them.\n")
		return nil
	}

	if err := ctx.Store.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.printf("Settings updated successfully.\n")
	return nil
}

func (c *SettingsCmd) list(ctx *Context, settings models.Settings) {
	ctx.printf("Current Settings (%s):\n", ctx.Store.GetConfigPath())
	ctx.printf("  Transparency:  %g\n", settings.Transparency)
	ctx.printf("  Topmost times: %s\n", formatRanges(settings.TopmostTimeRanges))
	ctx.printf("\nSchedules:\n")
	for _, day := range constants.Weekdays {
		labels := settings.ScheduleFor(day)
		ctx.printf("  %-9s (%d)", day, len(labels))
		for _, label := range labels {
			ctx.printf(" %s", label)
		}
		ctx.printf("\n")
	}
}
