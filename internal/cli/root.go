package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/classboard/internal/backup"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/models"
	"github.com/julianstephens/classboard/internal/storage"
	"github.com/julianstephens/classboard/internal/utils"
)

type Context struct {
	Store storage.Provider
	Debug bool

	// Out, In and Now default to the process streams and the wall clock.
	Out io.Writer
	In  io.Reader
	Now func() time.Time
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) in() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

// PerformAutomaticBackup backs up an existing settings file and only logs
// failures.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		logger.Debug("Skipping automatic backup, no settings file yet", "path", path)
		return
	}

	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseRange parses "HH:MM-HH:MM". Unlike the editor, the command line
// rejects malformed input instead of falling back.
func ParseRange(s string) (models.TimeRange, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return models.TimeRange{}, fmt.Errorf("invalid time range %q: expected HH:MM-HH:MM", s)
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if !utils.ValidateTimeFormat(start) {
		return models.TimeRange{}, fmt.Errorf("invalid start time in %q", s)
	}
	if !utils.ValidateTimeFormat(end) {
		return models.TimeRange{}, fmt.Errorf("invalid end time in %q", s)
	}
	return models.TimeRange{Start: start, End: end}, nil
}

func formatRanges(ranges []models.TimeRange) string {
	if len(ranges) == 0 {
		return "(none)"
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = r.Start + "-" + r.End
	}
	return strings.Join(parts, ", ")
}
