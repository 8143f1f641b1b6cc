package ring

import (
	"fmt"
	"math/big"
)

// Zp is the prime field ℤ/pℤ with carrier uint64.
//
// Elements are canonical residues in [0, p). The modulus is limited to 32
// bits so products fit into uint64 without overflow tricks.
type Zp struct {
	p uint64
}

// MaxPrime is the largest modulus accepted by PrimeField.
const MaxPrime = 1<<32 - 1

// PrimeField creates the field ℤ/pℤ.
//
// Returns ErrNotPrime when p is not a prime in [2, MaxPrime].
func PrimeField(p uint64) (Zp, error) {
	if p < 2 || p > MaxPrime {
		return Zp{}, fmt.Errorf("%w: modulus %d out of range", ErrNotPrime, p)
	}
	if !new(big.Int).SetUint64(p).ProbablyPrime(0) {
		return Zp{}, fmt.Errorf("%w: modulus %d", ErrNotPrime, p)
	}
	return Zp{p: p}, nil
}

// Modulus returns p.
func (f Zp) Modulus() uint64 { return f.p }

// Zero returns the residue 0.
func (f Zp) Zero() uint64 { return 0 }

// One returns the residue 1.
func (f Zp) One() uint64 { return 1 % f.p }

// Add returns a + b mod p.
func (f Zp) Add(a, b uint64) uint64 {
	s := f.red(a) + f.red(b)
	if s >= f.p {
		s -= f.p
	}
	return s
}

// Neg returns -a mod p.
func (f Zp) Neg(a uint64) uint64 {
	a = f.red(a)
	if a == 0 {
		return 0
	}
	return f.p - a
}

// Mul returns a * b mod p.
func (f Zp) Mul(a, b uint64) uint64 {
	return f.red(a) * f.red(b) % f.p
}

// Eq compares residues.
func (f Zp) Eq(a, b uint64) bool { return f.red(a) == f.red(b) }

// Inv returns the multiplicative inverse by Fermat exponentiation a^(p-2).
// Inverting zero panics.
func (f Zp) Inv(a uint64) uint64 {
	a = f.red(a)
	assert(a != 0, "Zp.Inv: inverse of zero")
	result := f.One()
	base := a
	for e := f.p - 2; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
	}
	return result
}

// red maps arbitrary uint64 input into the canonical residue range.
func (f Zp) red(a uint64) uint64 {
	if a < f.p {
		return a
	}
	return a % f.p
}
