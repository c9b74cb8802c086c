// Package errors attaches process exit codes to errors returned up to a main.
package errors

import (
	"fmt"
)

type ExitCodeError struct {
	code ExitCode
	error
}

func NewError(err error, exitCode ExitCode) *ExitCodeError {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

// NewErrorf formats a message into a new ExitCodeError.
func NewErrorf(exitCode ExitCode, format string, args ...interface{}) *ExitCodeError {
	return &ExitCodeError{exitCode, fmt.Errorf(format, args...)}
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}

// Cause returns the wrapped error so pkg/errors.Cause can see through it.
func (e *ExitCodeError) Cause() error {
	return e.error
}

// GetExitCode returns the exit code carried by err, 1 for other errors and 0 for nil.
func GetExitCode(err error) ExitCode {
	if err == nil {
		return 0
	}
	if e, ok := err.(*ExitCodeError); ok {
		return e.GetExitCode()
	}
	return 1
}
