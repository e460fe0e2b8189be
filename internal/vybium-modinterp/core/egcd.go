package core

import "fmt"

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients s, t
// such that a*s + b*t = g.
//
// The coefficients are exactly those of the classical recursion
//
//	egcd(0, b) = (b, 0, 1)
//	egcd(a, b) = (g, t' - (b div a)*s', s')  where (g, s', t') = egcd(b mod a, a)
//
// with floored division and modulo. The recursion is unrolled: the quotients
// are collected on the way down and the coefficients rebuilt on the way up.
func ExtendedGCD(a, b int64) (g, s, t int64) {
	var quotients []int64
	for a != 0 {
		q := floorDiv(b, a)
		quotients = append(quotients, q)
		a, b = floorMod(b, a), a
	}

	g, s, t = b, 0, 1
	for i := len(quotients) - 1; i >= 0; i-- {
		s, t = t-quotients[i]*s, s
	}
	return g, s, t
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
// It fails with *NoInverseError whenever gcd(a, m) != 1.
func ModInverse(a, m int64) (int64, error) {
	if m < 2 {
		return 0, fmt.Errorf("%w: %d (must be at least 2)", ErrInvalidModulus, m)
	}

	g, s, _ := ExtendedGCD(floorMod(a, m), m)
	if g != 1 {
		return 0, &NoInverseError{A: a, M: m}
	}
	return floorMod(s, m), nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a mod b with the sign of b, so the result is in [0, b) for b > 0.
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}
