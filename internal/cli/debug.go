package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/models"
)

// DumpCmd prints machine-readable diagnostics.
type DumpCmd struct {
	Paths    *DumpPathsCmd    `cmd:"" help:"Show settings, backup, log and lock paths."`
	Settings *DumpSettingsCmd `cmd:"" help:"Dump the effective settings as JSON."`
}

type DumpPathsCmd struct{}

func (cmd *DumpPathsCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	dir := filepath.Dir(path)

	output := map[string]string{
		"settings": path,
		"backups":  filepath.Join(dir, constants.BackupDirName),
		"logs":     filepath.Join(dir, constants.LogDirName, constants.LogFileName),
		"lockfile": filepath.Join(dir, constants.LockfileName),
	}
	return writeJSON(ctx, output)
}

type DumpSettingsCmd struct{}

func (cmd *DumpSettingsCmd) Run(ctx *Context) error {
	return writeJSON(ctx, models.Normalize(ctx.Store.Load()))
}

func writeJSON(ctx *Context, v interface{}) error {
	enc := json.NewEncoder(ctx.out())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	return nil
}
