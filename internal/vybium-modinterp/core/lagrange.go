package core

import "fmt"

// Point represents a point for polynomial interpolation
type Point struct {
	X int64
	Y int64
}

// NewPoint creates a new point
func NewPoint(x, y int64) Point {
	return Point{X: x, Y: y}
}

// IndexPoints pairs each value with its position: (i mod m, v_i mod m).
func IndexPoints(values []int64, ring *Ring) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{X: ring.Reduce(int64(i)), Y: ring.Reduce(v)}
	}
	return points
}

// LagrangeInterpolation returns the polynomial P with P(x_i) ≡ y_i (mod m)
// for every point, built term by term from the Lagrange basis.
//
// For each i the denominator D_i = Π_{j≠i} (x_i - x_j) is accumulated left to
// right and inverted with ModInverse; the numerator Π_{j≠i} (t - x_j) is built
// by repeated multiplication with the binomial (-x_j + t). The scaled basis
// polynomials are summed into an accumulator of n zero coefficients, so the
// result always has exactly n coefficients.
//
// Distinct x-values are checked before any denominator is computed. A
// non-invertible denominator aborts the whole call with *NoInverseError.
func LagrangeInterpolation(points []Point, ring *Ring) (*Polynomial, error) {
	if ring == nil {
		return nil, fmt.Errorf("interpolation requires a ring")
	}
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}

	xs := make([]int64, n)
	ys := make([]int64, n)
	for i, p := range points {
		xs[i] = ring.Reduce(p.X)
		ys[i] = ring.Reduce(p.Y)
	}

	if err := checkDistinct(xs); err != nil {
		return nil, err
	}

	result := ZeroPolynomial(ring, n)
	for i := 0; i < n; i++ {
		denominator := int64(1)
		for j := 0; j < n; j++ {
			if i != j {
				denominator = ring.Mul(denominator, ring.Sub(xs[i], xs[j]))
			}
		}

		inv, err := ModInverse(denominator, ring.Modulus())
		if err != nil {
			return nil, err
		}
		coefficient := ring.Mul(ys[i], inv)

		basis := &Polynomial{coefficients: []int64{1}, ring: ring}
		for j := 0; j < n; j++ {
			if i != j {
				basis = basis.MulBinomial(ring.Neg(xs[j]), 1)
			}
		}

		result, err = result.Add(basis.MulScalar(coefficient))
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Verify checks that p passes through every point modulo m
func Verify(p *Polynomial, points []Point) error {
	for i, pt := range points {
		want := p.ring.Reduce(pt.Y)
		if got := p.Eval(pt.X); got != want {
			return fmt.Errorf("%w %d: P(%d) = %d, want %d", ErrNotInterpolating, i, p.ring.Reduce(pt.X), got, want)
		}
	}
	return nil
}

func checkDistinct(xs []int64) error {
	seen := make(map[int64]int, len(xs))
	for i, x := range xs {
		if j, ok := seen[x]; ok {
			return fmt.Errorf("%w: points %d and %d share x = %d", ErrDuplicateX, j, i, x)
		}
		seen[x] = i
	}
	return nil
}
