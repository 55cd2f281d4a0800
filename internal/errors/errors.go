package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/classboard/internal/logger"
)

type exitCoder interface {
	ExitCode() int
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// ExitCode maps err to a process exit status. Errors that carry their own
// status (a relaunched widget that exited) keep it; any other error is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if stderrors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// Fatal logs an error and exits the program with its exit code
func Fatal(err error) {
	if err == nil {
		return
	}

	var coder exitCoder
	if stderrors.As(err, &coder) {
		// The child process already reported its own failure
		os.Exit(coder.ExitCode())
	}

	logger.Error("Command execution failed", "error", err)
	fmt.Fprintf(os.Stderr, "%s\n", Format(err))
	os.Exit(ExitCode(err))
}
