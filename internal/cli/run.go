package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/classboard/internal/display"
	"github.com/julianstephens/classboard/internal/instance"
	"github.com/julianstephens/classboard/internal/logger"
	"github.com/julianstephens/classboard/internal/scheduler"
	"github.com/julianstephens/classboard/internal/tui"
)

var (
	runProgram = func(model tea.Model) (tea.Model, error) {
		return tea.NewProgram(model, tea.WithAltScreen()).Run()
	}
	restartFunc = instance.Restart
)

type RunCmd struct{}

func (c *RunCmd) Run(ctx *Context) error {
	guard, err := instance.Acquire(filepath.Dir(ctx.Store.GetConfigPath()))
	if err != nil {
		return err
	}
	defer func() {
		if err := guard.Release(); err != nil {
			logger.Warn("Failed to release instance lock", "error", err)
		}
	}()

	settings := ctx.Store.Load()
	ctx.PerformAutomaticBackup()

	window, err := display.NewWindow()
	if err != nil {
		logger.Warn("Window control unavailable, running without it", "error", err)
		window = display.NopWindow{}
	}
	panel := display.NewPanel()

	model := tui.NewModel(tui.Options{
		Store:     ctx.Store,
		Scheduler: scheduler.New(window, panel, settings),
		Panel:     panel,
		Settings:  settings,
	})

	logger.Info("Widget started", "config", ctx.Store.GetConfigPath())
	final, err := runProgram(model)
	if err != nil {
		return fmt.Errorf("widget exited with error: %w", err)
	}
	logger.Info("Widget stopped")

	// The terminal is restored by now, so the new widget can take it over
	if m, ok := final.(tui.Model); ok && m.RestartRequested() {
		return restartFunc(guard)
	}
	return nil
}
