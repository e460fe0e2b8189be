// Package vybiummodinterp reconstructs polynomials over the residue ring
// Z/mZ from point sets with Lagrange interpolation.
//
// The default modulus is 27 = 3^3. Because 27 is not prime the ring has zero
// divisors: every residue divisible by 3 lacks a multiplicative inverse, and
// interpolation succeeds only when every basis denominator is a unit. Inverses
// are computed with the extended Euclidean algorithm, never with Fermat's
// little theorem.
//
// # Quick Start
//
// Interpolating a point set:
//
//	p, err := vybiummodinterp.Interpolate([]vybiummodinterp.Point{{X: 0, Y: 1}, {X: 1, Y: 2}}, 27)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(p.Coefficients()) // [1 1]
//	fmt.Println(p)                // 1 + x
//
// Fitting a pair sequence by index:
//
//	axes, err := vybiummodinterp.InterpolateSequence(pairs, vybiummodinterp.DefaultModulus)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("P_x(i) = %s\nP_y(i) = %s\n", axes.X, axes.Y)
//
// # Errors
//
// Failures are ordinary return values carrying an ErrorCode:
//
//	_, err := vybiummodinterp.ModInverse(3, 27)
//	if errors.Is(err, &vybiummodinterp.Error{Code: vybiummodinterp.ErrNoInverse}) {
//		var nie *vybiummodinterp.NoInverseError
//		errors.As(err, &nie) // nie.A == 3, nie.M == 27
//	}
//
// ErrDuplicateX and ErrNoInverse are distinct: the first means the input
// violates the distinct-x precondition, the second that the modulus shares a
// factor with some difference x_i - x_j.
//
// All functions are pure and safe for concurrent use.
package vybiummodinterp
