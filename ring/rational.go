package ring

import "math/big"

// Rationals is the field ℚ with carrier *big.Rat.
//
// All operations allocate fresh values; arguments are never mutated, so
// rational scalars can be shared freely between coefficient mappings.
type Rationals struct{}

// Zero returns 0/1.
func (Rationals) Zero() *big.Rat { return new(big.Rat) }

// One returns 1/1.
func (Rationals) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b.
func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Neg returns -a.
func (Rationals) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Mul returns a * b.
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Eq compares by value, not by pointer.
func (Rationals) Eq(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// Inv returns 1/a. Inverting zero panics, matching big.Rat semantics.
func (Rationals) Inv(a *big.Rat) *big.Rat { return new(big.Rat).Inv(a) }

// Rat builds a rational scalar p/q.
func Rat(p, q int64) *big.Rat { return big.NewRat(p, q) }
