//go:build !unix && !windows

package instance

import "errors"

func relaunch(string, []string) error {
	return errors.ErrUnsupported
}
