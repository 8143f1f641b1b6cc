package coeff

import (
	"iter"

	set "github.com/hashicorp/go-set/v3"

	"github.com/npillmayer/finbasis/ring"
)

// Map is a finitely-supported mapping from an abstract index set I into a
// ring with carrier R. It is the coefficient representation of a module
// element in a fixed basis.
//
// A Map stores only its nonzero entries; every constructor and operation
// normalizes zero coefficients away. The support is therefore finite and
// exact even when the index set itself is infinite.
//
// Maps are immutable by convention: operations return a new Map.
type Map[I comparable, R any] struct {
	rng     ring.Ring[R]
	entries map[I]R
}

// New creates a mapping from explicit entries. Zero coefficients are
// dropped; the input map is copied, never aliased.
func New[I comparable, R any](rng ring.Ring[R], entries map[I]R) Map[I, R] {
	assert(rng != nil, "coeff.New requires a ring")
	m := Map[I, R]{rng: rng}
	for i, r := range entries {
		if ring.IsZero(rng, r) {
			continue
		}
		if m.entries == nil {
			m.entries = make(map[I]R, len(entries))
		}
		m.entries[i] = r
	}
	return m
}

// Zero creates the zero mapping.
func Zero[I comparable, R any](rng ring.Ring[R]) Map[I, R] {
	assert(rng != nil, "coeff.Zero requires a ring")
	return Map[I, R]{rng: rng}
}

// Indicator creates the mapping that is 1 at index i and 0 elsewhere. This
// is the representation a basis vector has at its own index.
func Indicator[I comparable, R any](rng ring.Ring[R], i I) Map[I, R] {
	assert(rng != nil, "coeff.Indicator requires a ring")
	return Map[I, R]{rng: rng, entries: map[I]R{i: rng.One()}}
}

// Ring returns the scalar ring of the mapping.
func (m Map[I, R]) Ring() ring.Ring[R] {
	return m.rng
}

// Get returns the coefficient at index i, which is the ring zero for every
// index outside the support.
func (m Map[I, R]) Get(i I) R {
	assert(m.rng != nil, "coeff.Map used before construction")
	if r, ok := m.entries[i]; ok {
		return r
	}
	return m.rng.Zero()
}

// IsZero reports whether the mapping is zero everywhere.
func (m Map[I, R]) IsZero() bool {
	return len(m.entries) == 0
}

// SupportSize returns the number of indexes with nonzero coefficient.
func (m Map[I, R]) SupportSize() int {
	return len(m.entries)
}

// Support returns the finite set of indexes with nonzero coefficient.
func (m Map[I, R]) Support() *set.Set[I] {
	s := set.New[I](len(m.entries))
	for i := range m.entries {
		s.Insert(i)
	}
	return s
}

// Items returns an iterator over the nonzero entries. Iteration order is
// unspecified.
func (m Map[I, R]) Items() iter.Seq2[I, R] {
	return func(yield func(I, R) bool) {
		for i, r := range m.entries {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Add returns the pointwise sum m + other.
func (m Map[I, R]) Add(other Map[I, R]) Map[I, R] {
	assert(m.rng != nil, "coeff.Map used before construction")
	sum := make(map[I]R, len(m.entries)+len(other.entries))
	for i, r := range m.entries {
		sum[i] = r
	}
	for i, r := range other.entries {
		if prev, ok := sum[i]; ok {
			sum[i] = m.rng.Add(prev, r)
		} else {
			sum[i] = r
		}
	}
	return New(m.rng, sum)
}

// Sub returns the pointwise difference m - other.
func (m Map[I, R]) Sub(other Map[I, R]) Map[I, R] {
	return m.Add(other.Scale(m.rng.Neg(m.rng.One())))
}

// Scale returns the mapping with every coefficient multiplied by r.
func (m Map[I, R]) Scale(r R) Map[I, R] {
	assert(m.rng != nil, "coeff.Map used before construction")
	scaled := make(map[I]R, len(m.entries))
	for i, c := range m.entries {
		scaled[i] = m.rng.Mul(r, c)
	}
	return New(m.rng, scaled)
}

// Eq reports pointwise equality.
func (m Map[I, R]) Eq(other Map[I, R]) bool {
	assert(m.rng != nil, "coeff.Map used before construction")
	if len(m.entries) != len(other.entries) {
		return false
	}
	for i, r := range m.entries {
		o, ok := other.entries[i]
		if !ok || !m.rng.Eq(r, o) {
			return false
		}
	}
	return true
}
