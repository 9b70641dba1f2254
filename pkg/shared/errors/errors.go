package errors

import (
	"errors"
	"fmt"
)

// Exit codes of the check command.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitFailure  = 2
)

// ErrFindingsReported marks a run that completed but found violations.
var ErrFindingsReported = errors.New("comment rule violations found")

// CommandError represents an error that occurred during command execution, carrying the process exit code.
type CommandError struct {
	ExitCode    int
	CommonError string
	Err         error
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError instance wrapping err.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		Err:         err,
	}
}

// NewFindingsError reports count findings with the findings exit code.
func NewFindingsError(count int) *CommandError {
	return NewCommandError(fmt.Errorf("%w: %d", ErrFindingsReported, count), ExitFindings)
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return ExitFailure
}
