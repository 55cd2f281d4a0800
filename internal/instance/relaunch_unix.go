//go:build unix

package instance

import (
	"os"

	"golang.org/x/sys/unix"
)

// relaunch replaces the current process image, keeping pid, terminal and
// process group.
func relaunch(exe string, args []string) error {
	return unix.Exec(exe, append([]string{exe}, args...), os.Environ())
}
