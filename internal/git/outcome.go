package git

import (
	"fmt"
	"strings"
)

// Outcome is the result of a single git invocation
type Outcome struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed reports whether git exited non-zero or wrote anything to stderr
func (o Outcome) Failed() bool {
	return o.ExitCode != 0 || strings.TrimSpace(o.Stderr) != ""
}

// Err returns an *ExecutionError for a failed outcome and nil otherwise
func (o Outcome) Err() error {
	if !o.Failed() {
		return nil
	}
	message := strings.TrimSpace(o.Stderr)
	if message == "" {
		message = fmt.Sprintf("git %s exited with status %d", strings.Join(o.Args, " "), o.ExitCode)
	}
	return &ExecutionError{Args: o.Args, Message: message}
}

// ExecutionError is returned when a git command fails. Message holds git's
// own error text and is meant to be shown to the user as is.
type ExecutionError struct {
	Args    []string
	Message string
}

func (e *ExecutionError) Error() string {
	return e.Message
}

// Command returns the failed command line, for logging
func (e *ExecutionError) Command() string {
	return "git " + strings.Join(e.Args, " ")
}
