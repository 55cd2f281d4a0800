package cli

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/instance"
)

// withProgramInput runs the widget headless, feeding it the given keys. The
// returned flag is true while the program loop is running.
func withProgramInput(t *testing.T, keys string) *atomic.Bool {
	t.Helper()
	oldRun, oldRestart := runProgram, restartFunc
	t.Cleanup(func() {
		runProgram = oldRun
		restartFunc = oldRestart
	})

	running := &atomic.Bool{}
	runProgram = func(model tea.Model) (tea.Model, error) {
		running.Store(true)
		defer running.Store(false)
		return tea.NewProgram(model,
			tea.WithInput(strings.NewReader(keys)),
			tea.WithOutput(io.Discard),
			tea.WithoutRenderer(),
			tea.WithoutSignalHandler(),
		).Run()
	}
	return running
}

func TestRunCmdRestartsAfterProgramExits(t *testing.T) {
	ctx, _ := setupTestContext(t, constants.SettingsFileName)
	running := withProgramInput(t, "r")

	calls := 0
	var lockPath string
	restartFunc = func(g *instance.Guard) error {
		calls++
		if running.Load() {
			t.Error("relaunch started while the program still owned the terminal")
		}
		lockPath = g.Path()
		return g.Release()
	}

	if err := (&RunCmd{}).Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("relaunch called %d times, want 1", calls)
	}
	if _, err := os.Stat(lockPath); !os.IsNotExist(err) {
		t.Error("lockfile left behind after restart")
	}
}

func TestRunCmdQuitDoesNotRestart(t *testing.T) {
	ctx, _ := setupTestContext(t, constants.SettingsFileName)
	withProgramInput(t, "q")

	restartFunc = func(*instance.Guard) error {
		t.Error("quit should not relaunch the widget")
		return nil
	}

	if err := (&RunCmd{}).Run(ctx); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestRunCmdPropagatesRelaunchExit(t *testing.T) {
	ctx, _ := setupTestContext(t, constants.SettingsFileName)
	withProgramInput(t, "r")

	restartFunc = func(*instance.Guard) error {
		return &instance.ExitError{Code: 2}
	}

	err := (&RunCmd{}).Run(ctx)
	var exitErr *instance.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 2 {
		t.Errorf("Run() error = %v, want exit status 2", err)
	}
}
