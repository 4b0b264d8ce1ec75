package service

import (
	"errors"
	"fmt"
)

// Kind classifies operation failures for the API boundary. Everything a
// service returns is one of these; raw store errors never cross over
// unclassified.
type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindNotFound       Kind = "NOT_FOUND"
	KindAuthentication Kind = "AUTHENTICATION_ERROR"
	KindInternal       Kind = "INTERNAL_ERROR"
)

// Error is a classified operation failure. Message is safe to surface to
// callers; Err retains the underlying cause for logs and errors.Is checks.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the classification from err, defaulting to internal for
// anything unclassified.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func authenticationf(format string, args ...any) *Error {
	return &Error{Kind: KindAuthentication, Message: fmt.Sprintf(format, args...)}
}

// internal wraps an unanticipated failure, preserving its message rather
// than swallowing it.
func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}
