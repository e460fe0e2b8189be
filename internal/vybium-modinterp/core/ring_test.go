package core

import (
	"math/big"
	"testing"
)

func TestNewRing(t *testing.T) {
	tests := []struct {
		name      string
		modulus   int64
		expectErr bool
	}{
		{"default", DefaultModulus, false},
		{"smallest", 2, false},
		{"largest", MaxModulus, false},
		{"one", 1, true},
		{"zero", 0, true},
		{"negative", -27, true},
		{"too large", MaxModulus + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRing(tt.modulus)
			if tt.expectErr && err == nil {
				t.Errorf("NewRing(%d) expected error", tt.modulus)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("NewRing(%d) unexpected error: %v", tt.modulus, err)
			}
		})
	}
}

func TestRingArithmetic(t *testing.T) {
	r := DefaultRing

	if got := r.Reduce(-1); got != 26 {
		t.Errorf("Reduce(-1) = %d, expected 26", got)
	}
	if got := r.Reduce(-54); got != 0 {
		t.Errorf("Reduce(-54) = %d, expected 0", got)
	}
	if got := r.Add(20, 10); got != 3 {
		t.Errorf("Add(20, 10) = %d, expected 3", got)
	}
	if got := r.Sub(0, 1); got != 26 {
		t.Errorf("Sub(0, 1) = %d, expected 26", got)
	}
	if got := r.Neg(5); got != 22 {
		t.Errorf("Neg(5) = %d, expected 22", got)
	}
	if got := r.Neg(0); got != 0 {
		t.Errorf("Neg(0) = %d, expected 0", got)
	}
	if got := r.Mul(26, 26); got != 1 {
		t.Errorf("Mul(26, 26) = %d, expected 1", got)
	}
	if got := r.Mul(3, 9); got != 0 {
		t.Errorf("Mul(3, 9) = %d, expected 0 (zero divisors)", got)
	}

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	want := new(big.Int).Mod(huge, big.NewInt(27)).Int64()
	if got := r.ReduceBig(huge); got != want {
		t.Errorf("ReduceBig = %d, expected %d", got, want)
	}
	if got := r.ReduceBig(big.NewInt(-1)); got != 26 {
		t.Errorf("ReduceBig(-1) = %d, expected 26", got)
	}
}

func TestRingInv(t *testing.T) {
	r := DefaultRing

	inv, err := r.Inv(-1)
	if err != nil {
		t.Fatalf("Inv(-1) unexpected error: %v", err)
	}
	if inv != 26 {
		t.Errorf("Inv(-1) = %d, expected 26", inv)
	}

	for _, a := range []int64{0, 3, 6, 9, 24} {
		if r.IsUnit(a) {
			t.Errorf("IsUnit(%d) = true in Z/27Z", a)
		}
		if _, err := r.Inv(a); err == nil {
			t.Errorf("Inv(%d) expected error in Z/27Z", a)
		}
	}
	for _, a := range []int64{1, 2, 4, 5, 26} {
		if !r.IsUnit(a) {
			t.Errorf("IsUnit(%d) = false in Z/27Z", a)
		}
	}
}

func TestRingEquals(t *testing.T) {
	a, _ := NewRing(27)
	b, _ := NewRing(27)
	c, _ := NewRing(31)

	if !a.Equals(b) {
		t.Error("rings with the same modulus should be equal")
	}
	if a.Equals(c) {
		t.Error("rings with different moduli should not be equal")
	}
	if a.Equals(nil) {
		t.Error("ring should not equal nil")
	}
	if a.String() != "Z/27Z" {
		t.Errorf("String() = %q", a.String())
	}
}
