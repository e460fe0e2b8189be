package core

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Polynomial represents c0 + c1*t + ... + c(k-1)*t^(k-1) over a residue ring.
//
// Coefficients are stored in ascending order of power and always reduced
// into [0, m). Trailing zero coefficients are kept as given: a length-n
// polynomial of lower degree is well formed. Values are immutable; every
// operation returns a new Polynomial.
type Polynomial struct {
	coefficients []int64
	ring         *Ring
}

// NewPolynomial creates a new polynomial, reducing every coefficient mod m
func NewPolynomial(ring *Ring, coefficients []int64) (*Polynomial, error) {
	if ring == nil {
		return nil, fmt.Errorf("polynomial requires a ring")
	}
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("polynomial must have at least one coefficient")
	}

	reduced := make([]int64, len(coefficients))
	for i, c := range coefficients {
		reduced[i] = ring.Reduce(c)
	}
	return &Polynomial{coefficients: reduced, ring: ring}, nil
}

// ZeroPolynomial returns the zero polynomial with length coefficients
func ZeroPolynomial(ring *Ring, length int) *Polynomial {
	if length < 1 {
		length = 1
	}
	return &Polynomial{coefficients: make([]int64, length), ring: ring}
}

// Ring returns the ring the polynomial is defined over
func (p *Polynomial) Ring() *Ring {
	return p.ring
}

// Len returns the number of stored coefficients, trailing zeros included
func (p *Polynomial) Len() int {
	return len(p.coefficients)
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial
func (p *Polynomial) Degree() int {
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		if p.coefficients[i] != 0 {
			return i
		}
	}
	return -1
}

// Coefficient returns the coefficient of the given power
func (p *Polynomial) Coefficient(power int) int64 {
	if power < 0 || power >= len(p.coefficients) {
		return 0
	}
	return p.coefficients[power]
}

// Coefficients returns a copy of the polynomial coefficients
func (p *Polynomial) Coefficients() []int64 {
	return slices.Clone(p.coefficients)
}

// IsZero checks if every coefficient is zero
func (p *Polynomial) IsZero() bool {
	return p.Degree() < 0
}

// Equal reports whether both polynomials have the same ring and the same
// coefficient sequence. Trailing zeros are significant.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil || !p.ring.Equals(other.ring) {
		return false
	}
	return slices.Equal(p.coefficients, other.coefficients)
}

// Eval evaluates the polynomial at x using Horner's rule
func (p *Polynomial) Eval(x int64) int64 {
	x = p.ring.Reduce(x)
	var result int64
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = p.ring.Add(p.ring.Mul(result, x), p.coefficients[i])
	}
	return result
}

// Add adds two polynomials coefficient-wise, padding the shorter one with zeros
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {
	if !p.ring.Equals(other.ring) {
		return nil, fmt.Errorf("cannot add polynomials: %w", ErrRingMismatch)
	}
	return &Polynomial{coefficients: addCoefficients(p.ring, p.coefficients, other.coefficients), ring: p.ring}, nil
}

// MulScalar multiplies every coefficient by s
func (p *Polynomial) MulScalar(s int64) *Polynomial {
	coefficients := make([]int64, len(p.coefficients))
	for i, c := range p.coefficients {
		coefficients[i] = p.ring.Mul(s, c)
	}
	return &Polynomial{coefficients: coefficients, ring: p.ring}
}

// MulBinomial multiplies the polynomial by (a + b*t). The result has one
// more coefficient than p and is fully reduced.
func (p *Polynomial) MulBinomial(a, b int64) *Polynomial {
	shifted := make([]int64, len(p.coefficients)+1)
	for i, c := range p.coefficients {
		shifted[i+1] = p.ring.Mul(b, c)
	}
	scaled := make([]int64, len(p.coefficients))
	for i, c := range p.coefficients {
		scaled[i] = p.ring.Mul(a, c)
	}
	return &Polynomial{coefficients: addCoefficients(p.ring, shifted, scaled), ring: p.ring}
}

// String renders the non-zero terms in ascending power joined by " + ",
// or "0" for the zero polynomial
func (p *Polynomial) String() string {
	var terms []string
	for i, c := range p.coefficients {
		if c == 0 {
			continue
		}

		var term string
		switch {
		case i == 0:
			term = fmt.Sprintf("%d", c)
		case i == 1 && c == 1:
			term = "x"
		case i == 1:
			term = fmt.Sprintf("%dx", c)
		case c == 1:
			term = fmt.Sprintf("x^%d", i)
		default:
			term = fmt.Sprintf("%dx^%d", c, i)
		}
		terms = append(terms, term)
	}

	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

func addCoefficients(ring *Ring, a, b []int64) []int64 {
	if len(b) > len(a) {
		a, b = b, a
	}
	result := slices.Clone(a)
	for i, c := range b {
		result[i] = ring.Add(result[i], c)
	}
	return result
}
