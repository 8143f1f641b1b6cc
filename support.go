package finbasis

import (
	"fmt"

	set "github.com/hashicorp/go-set/v3"

	"github.com/npillmayer/finbasis/coeff"
)

// UnionOfSupports returns the union of the supports of elems, expanded in
// basis b.
//
// The collection is finite and every support is finite, so the union is a
// finite subset of the basis index set, even when the index set itself is
// infinite. This finiteness is what the finite-span argument exploits.
func UnionOfSupports[I comparable, M, R any](b Basis[I, M, R], elems ...M) *set.Set[I] {
	mon := coeff.SupportMonoid[I]{}
	u := mon.Zero()
	for _, m := range elems {
		u = mon.Add(u, b.Repr(m).Support())
	}
	return u
}

// FamilySupportUnion returns the union of the supports of all members of
// the family, expanded in basis b.
//
// Only finite witness domains can be folded; an infinite family yields
// ErrUndecidable rather than a non-terminating enumeration.
func FamilySupportUnion[I, K comparable, M, R any](b Basis[I, M, R], v Family[K, M]) (*set.Set[I], error) {
	if !v.Domain().IsFinite() {
		return nil, fmt.Errorf("%w: support union over an infinite witness family", ErrUndecidable)
	}
	mon := coeff.SupportMonoid[I]{}
	u := mon.Zero()
	for k := range v.Domain().Each() {
		u = mon.Add(u, b.Repr(v.At(k)).Support())
	}
	return u, nil
}

// Uncovered exhibits a basis index that lies in no member's support, i.e.
// an index i with Repr(v(k))[i] = 0 for every k. found is false when the
// supports cover the whole index domain.
func Uncovered[I, K comparable, M, R any](b Basis[I, M, R], v Family[K, M]) (i I, found bool, err error) {
	u, err := FamilySupportUnion(b, v)
	if err != nil {
		var zero I
		return zero, false, err
	}
	i, found = b.Domain().PickOutside(u)
	if found {
		T().Debugf("family of %s members leaves basis index %v uncovered", v.Domain().Card(), i)
	}
	return i, found, nil
}
