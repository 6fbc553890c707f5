package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a failure for status mapping
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidArgument
)

// AppError carries an error kind plus a user-facing message.
// The wrapped cause, if any, is never exposed to the caller.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// E builds an AppError with the given kind and message
func E(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap builds an AppError that keeps the underlying cause for logs
func Wrap(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the error kind, defaulting to Internal
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to its response status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns the message safe to show to the caller.
// Unexpected errors get a generic message so internals never leak.
func UserMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
