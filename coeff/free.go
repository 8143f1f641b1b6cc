package coeff

import (
	"github.com/npillmayer/finbasis/ring"
)

// FreeModule is the module of finitely-supported mappings I -> R under
// pointwise addition and scalar action. It is the canonical carrier for a
// module with a basis indexed by I: the basis vectors are the indicator
// mappings.
type FreeModule[I comparable, R any] struct {
	Rng ring.Ring[R]
}

// Nil returns the zero mapping.
func (f FreeModule[I, R]) Nil() Map[I, R] {
	return Zero[I](f.Rng)
}

// MAdd returns a + b.
func (f FreeModule[I, R]) MAdd(a, b Map[I, R]) Map[I, R] {
	return a.Add(b)
}

// Scale returns r · m.
func (f FreeModule[I, R]) Scale(r R, m Map[I, R]) Map[I, R] {
	return m.Scale(r)
}

// MEq reports pointwise equality.
func (f FreeModule[I, R]) MEq(a, b Map[I, R]) bool {
	return a.Eq(b)
}

var _ ring.Module[int64, Map[string, int64]] = FreeModule[string, int64]{}
