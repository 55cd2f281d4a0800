package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/classboard/internal/constants"
	"github.com/julianstephens/classboard/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
	executableFunc  = os.Executable
	relaunchFunc    = relaunch
)

// ErrAlreadyRunning is returned by Acquire when a live widget holds the lock.
var ErrAlreadyRunning = errors.New("classboard is already running")

// Guard is a held single-instance lock.
type Guard struct {
	path string
	pid  int
}

// Acquire takes the lockfile in dir. A lockfile left by a dead process, by
// an unrelated process that reused the pid or with unreadable content is
// replaced.
func Acquire(dir string) (*Guard, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	path := filepath.Join(dir, constants.LockfileName)
	pid := getpidFunc()

	if holder, err := readHolder(path); err == nil {
		if holder != pid && isWidget(holder) {
			return nil, fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, holder)
		}
		logger.Info("Replacing stale lockfile", "path", path, "pid", holder)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	} else if !os.IsNotExist(err) {
		logger.Warn("Replacing unreadable lockfile", "path", path, "error", err)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove lockfile: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to create lockfile: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d|%s\n", pid, constants.AppName); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	logger.Debug("Acquired instance lock", "path", path, "pid", pid)
	return &Guard{path: path, pid: pid}, nil
}

// Path returns the lockfile path.
func (g *Guard) Path() string {
	return g.path
}

// Release removes the lockfile if it still belongs to this process.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}
	holder, err := readHolder(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read lockfile: %w", err)
	}
	if holder != g.pid {
		return nil
	}
	if err := os.Remove(g.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

// ExitError carries the exit code of a relaunched widget that ran to
// completion in a child process.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("restarted widget exited with status %d", e.Code)
}

// ExitCode returns the child's exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Restart releases the lock and runs a fresh copy of the running binary with
// the same arguments. It must only be called once the UI has given the
// terminal back. On Unix the current process is replaced and Restart does
// not return on success. On Windows the child runs in the foreground and a
// non-zero exit is reported as an *ExitError.
func Restart(g *Guard) error {
	exe, err := executableFunc()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	if err := g.Release(); err != nil {
		return err
	}
	logger.Info("Restarting widget", "executable", exe)
	if err := relaunchFunc(exe, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		return fmt.Errorf("failed to restart: %w", err)
	}
	return nil
}

func readHolder(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	pidStr, _, _ := strings.Cut(strings.TrimSpace(string(content)), "|")
	pid, err := strconv.Atoi(pidStr)
	if err != nil || pid <= 0 {
		return 0, errors.New("invalid process ID in lockfile")
	}
	return pid, nil
}

func isWidget(pid int) bool {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return false
	}
	return strings.HasPrefix(process.Executable(), constants.AppName)
}
