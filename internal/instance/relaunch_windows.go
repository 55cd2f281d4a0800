//go:build windows

package instance

import (
	"errors"
	"os"
	"os/exec"
)

// relaunch runs the new widget in the foreground of the same console and
// waits for it, so the shell does not resume reading input underneath it.
func relaunch(exe string, args []string) error {
	cmd := exec.Command(exe, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	return err
}
