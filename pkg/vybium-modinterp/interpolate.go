package vybiummodinterp

import (
	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/core"
)

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
// It fails with ErrNoInverse (cause *NoInverseError) when gcd(a, m) != 1.
func ModInverse(a, m int64) (int64, error) {
	x, err := core.ModInverse(a, m)
	if err != nil {
		return 0, wrapError(err)
	}
	return x, nil
}

// Interpolate returns the Lagrange polynomial through points over Z/mZ.
//
// The call fails atomically with ErrDuplicateX when two x-values coincide
// mod m, or with ErrNoInverse when a basis denominator shares a factor with
// the modulus.
func Interpolate(points []Point, modulus int64) (*Polynomial, error) {
	ring, err := core.NewRing(modulus)
	if err != nil {
		return nil, wrapError(err)
	}

	p, err := core.LagrangeInterpolation(points, ring)
	if err != nil {
		return nil, wrapError(err)
	}
	return &Polynomial{inner: p}, nil
}

// InterpolateSequence fits one polynomial to the x-values and one to the
// y-values of pairs, both indexed by position: (i mod m, x_i mod m) and
// (i mod m, y_i mod m). The X problem is solved first; if it fails the Y
// problem is not attempted.
func InterpolateSequence(pairs []Point, modulus int64) (*AxisPolynomials, error) {
	ring, err := core.NewRing(modulus)
	if err != nil {
		return nil, wrapError(err)
	}

	xs := make([]int64, len(pairs))
	ys := make([]int64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.X
		ys[i] = p.Y
	}

	xPoly, err := core.LagrangeInterpolation(core.IndexPoints(xs, ring), ring)
	if err != nil {
		return nil, wrapError(err)
	}
	yPoly, err := core.LagrangeInterpolation(core.IndexPoints(ys, ring), ring)
	if err != nil {
		return nil, wrapError(err)
	}

	return &AxisPolynomials{
		X: &Polynomial{inner: xPoly},
		Y: &Polynomial{inner: yPoly},
	}, nil
}
