package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/classboard/internal/cli"
	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/errors"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Settings file path. A .db extension selects SQLite storage." type:"path" default:"${default_config}"`
	Debug   bool   `help:"Enable debug logging, also written to stderr."`

	Run      cli.RunCmd      `cmd:"" help:"Launch the class schedule widget." default:"1"`
	Status   cli.StatusCmd   `cmd:"" help:"Show the current clock, mode and schedule."`
	Settings cli.SettingsCmd `cmd:"" help:"View or change settings."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage settings backups."`
	Dump cli.DumpCmd `cmd:"" help:"Print diagnostics as JSON."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Always-on class schedule clock"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store := storage.New(CLI.Config)
	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close settings store", "error", closeErr)
	}
	errors.Fatal(err)
}
