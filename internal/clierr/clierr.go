// Package clierr defines structured error types for CLI commands and the TUI.
// Errors carry a machine-readable code, a human-readable message,
// and optional details for scripted consumers.
package clierr

import (
	"fmt"
	"strconv"
)

// Error codes are stable identifiers for scripted consumers.
const (
	DuplicateTask    = "DUPLICATE_TASK"
	TaskNotFound     = "TASK_NOT_FOUND"
	InvalidInput     = "INVALID_INPUT"
	InvalidDate      = "INVALID_DATE"
	PastDate         = "PAST_DATE"
	InvalidConfigKey = "INVALID_CONFIG_KEY"
	ConfirmationReq  = "CONFIRMATION_REQUIRED"
	NotATerminal     = "NOT_A_TERMINAL"
	InternalError    = "INTERNAL_ERROR"
)

// Error represents a structured CLI error with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithDetails returns the error with the given details map attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// ExitCode returns 2 for InternalError, 1 for all others.
func (e *Error) ExitCode() int {
	if e.Code == InternalError {
		return 2 //nolint:mnd // exit code 2 for internal errors
	}
	return 1
}

// HasCode reports whether err is an *Error carrying the given code.
func HasCode(err error, code string) bool {
	e, ok := err.(*Error) //nolint:errorlint // clierr values are never wrapped
	return ok && e.Code == code
}

// SilentError signals an exit code without additional output.
// Used by batch operations where results are already written to stdout.
type SilentError struct {
	Code int
}

// Error implements the error interface.
func (e *SilentError) Error() string { return "exit " + strconv.Itoa(e.Code) }
