// Package apperror defines the error kinds surfaced by the HTTP layer.
package apperror

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies an error for the HTTP layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindConflict:
		// duplicate accounts are reported as 400, not 409
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is an error with a user-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.cause }

// Format renders the cause chain with stack traces for %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s (%s)", e.Message, e.Kind)
			if e.cause != nil {
				fmt.Fprintf(s, "\n%+v", e.cause)
			}
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, cause: errors.New(msg)}
}

func Validation(msg string) *Error      { return newError(KindValidation, msg) }
func Conflict(msg string) *Error        { return newError(KindConflict, msg) }
func Unauthenticated(msg string) *Error { return newError(KindUnauthenticated, msg) }
func Forbidden(msg string) *Error       { return newError(KindForbidden, msg) }
func NotFound(msg string) *Error        { return newError(KindNotFound, msg) }

// Internal wraps an unexpected failure. The message is the cause's own text.
func Internal(err error) *Error {
	if err == nil {
		return newError(KindInternal, "internal server error")
	}
	return &Error{Kind: KindInternal, Message: err.Error(), cause: errors.WithStack(err)}
}

// Wrap attaches a kind and message to an existing error.
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, cause: errors.WithStack(err)}
}

// From converts any error to *Error, treating unknown errors as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// KindOf reports the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
