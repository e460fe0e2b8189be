package vybiummodinterp

import (
	"errors"
	"fmt"

	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/core"
)

// ErrorCode represents a vybium-modinterp error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrInvalidInput represents an invalid input error
	ErrInvalidInput

	// ErrNoInverse represents a residue without a modular inverse.
	// The Cause is a *NoInverseError carrying the offending (a, m).
	ErrNoInverse

	// ErrDuplicateX represents a point set whose x-values are not distinct mod m
	ErrDuplicateX

	// ErrNoPoints represents an empty point set
	ErrNoPoints
)

// String returns the name of the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidConfig:
		return "invalid config"
	case ErrInvalidInput:
		return "invalid input"
	case ErrNoInverse:
		return "no inverse"
	case ErrDuplicateX:
		return "duplicate x"
	case ErrNoPoints:
		return "no points"
	default:
		return "unknown"
	}
}

// NoInverseError reports the pair (a, m) for which no inverse exists
type NoInverseError = core.NoInverseError

// Error represents a vybium-modinterp error
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-modinterp error [%s]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-modinterp error [%s]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf returns the code of the first *Error in err's chain, or ErrUnknown
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// wrapError maps kernel and engine failures onto public error codes
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var nie *core.NoInverseError
	switch {
	case errors.As(err, &nie):
		return &Error{Code: ErrNoInverse, Message: "interpolation denominator is not invertible", Cause: err}
	case errors.Is(err, core.ErrDuplicateX):
		return &Error{Code: ErrDuplicateX, Message: "x-values must be pairwise distinct", Cause: err}
	case errors.Is(err, core.ErrNoPoints):
		return &Error{Code: ErrNoPoints, Message: "empty point set", Cause: err}
	case errors.Is(err, core.ErrInvalidModulus):
		return &Error{Code: ErrInvalidInput, Message: "invalid modulus", Cause: err}
	default:
		return &Error{Code: ErrUnknown, Message: "interpolation failed", Cause: err}
	}
}
