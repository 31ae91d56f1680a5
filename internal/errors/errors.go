// Package errors renders command failures for the terminal. The journal
// treats stderr as the user-facing error channel and the log file as the
// diagnostic one; these helpers write to both.
package errors

import (
	"fmt"
	"os"

	"github.com/arogowski/vitalog/internal/logger"
)

// Format renders an error with the "Error: " prefix every command uses.
// A nil error renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format over a format string.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal reports a command failure and exits with status 1. A nil error
// is a no-op, so main can wrap its run call unconditionally.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf reports a formatted failure and exits with status 1.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
