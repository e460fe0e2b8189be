package vybiummodinterp

import (
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/core"
)

// DefaultModulus is the modulus used when none is configured (27 = 3^3)
const DefaultModulus = core.DefaultModulus

// MaxModulus is the largest supported modulus
const MaxModulus = core.MaxModulus

// Point represents an (x, y) pair. Values need not be reduced; they are
// reduced mod m when handed to the engine.
type Point = core.Point

// Polynomial represents an interpolated polynomial with coefficients in Z/mZ
type Polynomial struct {
	inner *core.Polynomial
}

// Coefficients returns a copy of the coefficients in ascending power.
// Trailing zeros are kept, so an n-point interpolation yields n coefficients.
func (p *Polynomial) Coefficients() []int64 {
	return p.inner.Coefficients()
}

// Modulus returns the modulus of the coefficient ring
func (p *Polynomial) Modulus() int64 {
	return p.inner.Ring().Modulus()
}

// Degree returns the degree, or -1 for the zero polynomial
func (p *Polynomial) Degree() int {
	return p.inner.Degree()
}

// Eval evaluates the polynomial at x mod m
func (p *Polynomial) Eval(x int64) int64 {
	return p.inner.Eval(x)
}

// IsZero checks if every coefficient is zero
func (p *Polynomial) IsZero() bool {
	return p.inner.IsZero()
}

// String renders the polynomial as "c0 + c1x + c2x^2 ...", or "0"
func (p *Polynomial) String() string {
	return p.inner.String()
}

// AxisPolynomials holds the two polynomials fitted to a pair sequence:
// X maps index i to x_i and Y maps index i to y_i, both mod m.
type AxisPolynomials struct {
	X *Polynomial
	Y *Polynomial
}
