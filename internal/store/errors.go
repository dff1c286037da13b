package store

import "fmt"

// Code is a machine-readable classification of a store failure.
type Code string

// Error codes returned by store implementations.
const (
	CodeNotFound      Code = "NOT_FOUND"
	CodeAlreadyExists Code = "ALREADY_EXISTS"
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeUnavailable   Code = "UNAVAILABLE"
)

// Error is a storage error with a code and an optional underlying cause.
type Error struct {
	Code    Code   // classification for callers that switch on failure kind
	Message string // user-facing message
	Err     error  // underlying error (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches errors by code, so errors.Is(err, store.ErrNotFound) works for
// wrapped and re-messaged copies of the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithMessage returns a copy of the error with a custom message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{
		Code:    e.Code,
		Message: msg,
		Err:     e.Err,
	}
}

// WithCause returns a copy of the error wrapping an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Sentinel errors.
var (
	ErrNotFound = &Error{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	ErrAlreadyExists = &Error{
		Code:    CodeAlreadyExists,
		Message: "resource already exists",
	}

	ErrInvalidInput = &Error{
		Code:    CodeInvalidInput,
		Message: "invalid input",
	}

	ErrUnavailable = &Error{
		Code:    CodeUnavailable,
		Message: "storage unavailable",
	}
)
