package finbasis

import (
	"fmt"
)

// FiniteBasisSize concludes from a finite spanning set that the basis
// index set is finite, and returns its size.
//
// The argument, restated constructively: let S be the union of the span
// elements' supports, a finite index set. Every span element is a linear
// combination of the basis vectors indexed by S, so those vectors span the
// whole module. A basis vector at an index outside S would then be a
// combination of basis vectors at other indexes, impossible for a basis.
// Hence the index set is contained in S and in particular finite.
//
// Two inconsistencies are detectable and reported:
//   - a domain index outside S (spanning claim fails at that index),
//   - a domain declared infinite (contradicts the conclusion outright);
//
// both yield ErrInconsistent. The nontrivial-ring precondition is enforced
// at basis construction.
func FiniteBasisSize[I comparable, M, R any](b Basis[I, M, R], span []M) (int, error) {
	s := UnionOfSupports(b, span...)
	T().Debugf("%d spanning elements touch %d basis indexes", len(span), s.Size())
	dom := b.Domain()
	if !dom.IsFinite() {
		x, ok := dom.PickOutside(s)
		if !ok {
			return 0, fmt.Errorf("%w: infinite domain failed to pick outside a finite set", ErrPrecondition)
		}
		return 0, fmt.Errorf("%w: domain declared infinite, but index %v would be spanned by the %d indexes of a finite spanning set",
			ErrInconsistent, x, s.Size())
	}
	size := 0
	for i := range dom.Each() {
		size++
		if !s.Contains(i) {
			return 0, fmt.Errorf("%w: basis index %v is outside every span support; the given set cannot span",
				ErrInconsistent, i)
		}
	}
	return size, nil
}
