package core

import (
	"fmt"
	"math/big"
)

const (
	// DefaultModulus is 27 = 3^3. The ring has zero divisors.
	DefaultModulus int64 = 27

	// MaxModulus keeps the product of two residues inside int64.
	MaxModulus int64 = 1<<31 - 1
)

// Ring represents the residue ring Z/mZ
type Ring struct {
	modulus int64
}

// NewRing creates a new residue ring with the given modulus
func NewRing(modulus int64) (*Ring, error) {
	if modulus < 2 || modulus > MaxModulus {
		return nil, fmt.Errorf("%w: %d (must be in [2, %d])", ErrInvalidModulus, modulus, MaxModulus)
	}
	return &Ring{modulus: modulus}, nil
}

// Modulus returns the ring modulus
func (r *Ring) Modulus() int64 {
	return r.modulus
}

// Reduce maps any integer to its representative in [0, m)
func (r *Ring) Reduce(v int64) int64 {
	return floorMod(v, r.modulus)
}

// ReduceBig maps an arbitrary precision integer to its representative in [0, m)
func (r *Ring) ReduceBig(v *big.Int) int64 {
	return new(big.Int).Mod(v, big.NewInt(r.modulus)).Int64()
}

// Add performs ring addition
func (r *Ring) Add(a, b int64) int64 {
	return r.Reduce(r.Reduce(a) + r.Reduce(b))
}

// Sub performs ring subtraction
func (r *Ring) Sub(a, b int64) int64 {
	return r.Reduce(r.Reduce(a) - r.Reduce(b))
}

// Neg returns the additive inverse
func (r *Ring) Neg(a int64) int64 {
	return r.Reduce(-r.Reduce(a))
}

// Mul performs ring multiplication
func (r *Ring) Mul(a, b int64) int64 {
	return r.Reduce(r.Reduce(a) * r.Reduce(b))
}

// Inv computes the multiplicative inverse, failing with *NoInverseError
// for residues that share a factor with the modulus.
func (r *Ring) Inv(a int64) (int64, error) {
	return ModInverse(r.Reduce(a), r.modulus)
}

// IsUnit reports whether a is invertible in the ring
func (r *Ring) IsUnit(a int64) bool {
	g, _, _ := ExtendedGCD(r.Reduce(a), r.modulus)
	return g == 1
}

// Equals checks if two rings share the same modulus
func (r *Ring) Equals(other *Ring) bool {
	return other != nil && r.modulus == other.modulus
}

// String returns a string representation of the ring
func (r *Ring) String() string {
	return fmt.Sprintf("Z/%dZ", r.modulus)
}

// DefaultRing is Z/27Z
var DefaultRing, _ = NewRing(DefaultModulus)
