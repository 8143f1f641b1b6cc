package finbasis

/*
BSD 3-Clause License

Copyright (c) 2025, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/finbasis/coeff"
	"github.com/npillmayer/finbasis/index"
	"github.com/npillmayer/finbasis/ring"
)

// Basis is a bijective correspondence between an index domain and the
// elements of a module: Vector maps indexes to basis vectors, Repr maps
// module elements to their unique finitely-supported coefficient mapping.
//
// A basis is an immutable, assumed-correct algebraic structure supplied by
// the caller. NewBasis validates only what is cheap and load-bearing: a
// nontrivial ring and non-nil components; the contract that Repr is a
// linear bijection inverse to Combine cannot be checked here and remains a
// caller precondition. Violations surface later as ErrPrecondition or
// ErrInconsistent from the query functions.
type Basis[I comparable, M, R any] struct {
	rng    ring.Ring[R]
	mod    ring.Module[R, M]
	dom    index.Domain[I]
	vector func(I) M
	repr   func(M) coeff.Map[I, R]
}

// NewBasis assembles a basis from its index domain and the two total
// functions of the correspondence.
//
// Returns ErrDegenerateRing for rings with 0 = 1 and ErrPrecondition for
// missing components.
func NewBasis[I comparable, M, R any](
	rng ring.Ring[R],
	mod ring.Module[R, M],
	dom index.Domain[I],
	vector func(I) M,
	repr func(M) coeff.Map[I, R],
) (Basis[I, M, R], error) {
	if rng == nil || mod == nil || dom == nil || vector == nil || repr == nil {
		return Basis[I, M, R]{}, fmt.Errorf("%w: basis requires ring, module, domain, vector and repr", ErrPrecondition)
	}
	if !ring.Nontrivial(rng) {
		return Basis[I, M, R]{}, ErrDegenerateRing
	}
	return Basis[I, M, R]{rng: rng, mod: mod, dom: dom, vector: vector, repr: repr}, nil
}

// Free creates the standard basis of the free module of finitely-supported
// mappings over dom: basis vectors are indicator mappings and Repr is the
// identity.
func Free[I comparable, R any](rng ring.Ring[R], dom index.Domain[I]) (Basis[I, coeff.Map[I, R], R], error) {
	return NewBasis(
		rng,
		coeff.FreeModule[I, R]{Rng: rng},
		dom,
		func(i I) coeff.Map[I, R] { return coeff.Indicator(rng, i) },
		func(m coeff.Map[I, R]) coeff.Map[I, R] { return m },
	)
}

// Ring returns the scalar ring.
func (b Basis[I, M, R]) Ring() ring.Ring[R] {
	return b.rng
}

// Domain returns the basis index domain.
func (b Basis[I, M, R]) Domain() index.Domain[I] {
	return b.dom
}

// Vector returns the basis vector at index i.
func (b Basis[I, M, R]) Vector(i I) M {
	assert(b.vector != nil, "basis used before construction")
	return b.vector(i)
}

// Repr returns the coefficient representation of m in this basis.
func (b Basis[I, M, R]) Repr(m M) coeff.Map[I, R] {
	assert(b.repr != nil, "basis used before construction")
	return b.repr(m)
}

// Combine reconstructs the module element with the given coefficients: the
// finite linear combination of basis vectors weighted by c.
func (b Basis[I, M, R]) Combine(c coeff.Map[I, R]) M {
	assert(b.mod != nil, "basis used before construction")
	out := b.mod.Nil()
	for i, r := range c.Items() {
		out = b.mod.MAdd(out, b.mod.Scale(r, b.vector(i)))
	}
	return out
}
