package rediskv

import (
	"errors"
	"fmt"
)

// HTTP-style status codes carried by classified errors.
const (
	StatusNotFound     = 404
	StatusStoreFailure = 500
)

// Error is the uniform failure record returned by every operation.
// StatusCode is suitable for direct use in an HTTP-style response:
// 404 for absence (missing key, field, element or match), 500 for
// transport, protocol or decode failures.
type Error struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%d): %v", e.Message, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Cause }

// NotFound builds a 404 error for an absent key, field, element or match.
func NotFound(msg string) *Error {
	return &Error{Message: msg, StatusCode: StatusNotFound}
}

// StoreFailure builds a 500 error wrapping a store, transport or codec
// failure.
func StoreFailure(msg string, cause error) *Error {
	return &Error{Message: msg, StatusCode: StatusStoreFailure, Cause: cause}
}

// IsNotFound reports whether err is a classified 404.
func IsNotFound(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.StatusCode == StatusNotFound
}

// IsStoreFailure reports whether err is a classified 500.
func IsStoreFailure(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.StatusCode == StatusStoreFailure
}

// classify maps a raw store error to a StoreFailure. Classification is
// idempotent: an error that already carries a status code is forwarded
// unchanged, so a composite never re-wraps a 404 raised by a primitive.
func classify(err error, msg string) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return StoreFailure(msg, err)
}
