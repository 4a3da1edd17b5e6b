// Package apperr defines the error type used across calmclock
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error built from a message template. Errors created
// from the same template compare equal under errors.Is.
type Error struct {
	Cause   error
	Message string
	args    []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.args) > 0 {
		msg = fmt.Sprintf(e.Message, e.args...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Fmt returns a copy of the error with its message template filled in.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: e.Message,
		Cause:   e.Cause,
		args:    args,
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		args:    e.args,
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was created from the same message template.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Message == e.Message
}
