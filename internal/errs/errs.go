// Package errs formats user-facing command errors consistently.
package errs

import (
	"fmt"
	"os"

	"chronotask/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
