package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModulus is returned when a modulus is below 2 or above MaxModulus.
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrNoPoints is returned when interpolation is asked for an empty point set.
	ErrNoPoints = errors.New("need at least one point for interpolation")

	// ErrDuplicateX is returned when two points share an x-value modulo m.
	ErrDuplicateX = errors.New("all x values must be distinct for Lagrange interpolation")

	// ErrRingMismatch is returned when operands live in rings with different moduli.
	ErrRingMismatch = errors.New("operands are defined over different rings")

	// ErrNotInterpolating is returned by Verify when a polynomial misses a point.
	ErrNotInterpolating = errors.New("polynomial does not pass through point")
)

// NoInverseError reports a residue a that has no multiplicative inverse modulo M.
type NoInverseError struct {
	A int64
	M int64
}

// Error returns the error message
func (e *NoInverseError) Error() string {
	return fmt.Sprintf("modular inverse does not exist for %d mod %d", e.A, e.M)
}
