package contract

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors surfaced by validation and the stats facade. Callers match
// them with errors.Is; none are retried internally.
var (
	// ErrNotARepository means the given path lacks git metadata.
	ErrNotARepository = errors.New("not a git repository")

	// ErrBranchNotFound means a caller-specified local branch does not exist.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrInvalidRange means the start date is strictly after the end date.
	ErrInvalidRange = errors.New("start date is after end date")
)

// CommandError reports a git invocation that exited non-zero. It carries the
// captured standard error text for diagnostics.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}
