package finbasis

import (
	"fmt"

	"github.com/npillmayer/finbasis/cardinal"
)

// CardinalityBound derives the inequality |basis index set| ≤ |witness
// index set| for an infinite basis and a maximal linearly independent
// family.
//
// The derivation composes two steps. First, maximality forces the members'
// supports to cover the whole index domain (SupportsCoverAll). Second,
// with Φ(k) the finite support of member k, the domain is the union of the
// Φ(k): a union of finite sets indexed by the witness domain never exceeds
// the witness cardinality once that union is infinite. The bound follows
// without materializing either infinite set.
//
// Preconditions: the basis domain must be infinite and maximality must be
// asserted; both yield ErrPrecondition otherwise. The finite case
// compares counts directly and has no use for this machinery. Declared
// cardinalities contradicting the derived bound expose defective caller
// witnesses as ErrInconsistent.
func CardinalityBound[I, K comparable, M, R any](b Basis[I, M, R], v Family[K, M], maximal bool) (cardinal.Bound, error) {
	dom := b.Domain()
	if dom.IsFinite() {
		return cardinal.Bound{}, fmt.Errorf("%w: basis domain %s is finite; compare counts directly", ErrPrecondition, dom.Card())
	}
	if !maximal {
		return cardinal.Bound{}, fmt.Errorf("%w: cardinality bound requires a maximal family", ErrPrecondition)
	}
	lo, hi := dom.Card(), v.Domain().Card()
	if hi.IsFinite() {
		// A finite family cannot cover infinitely many indexes with finitely
		// many finite supports.
		return cardinal.Bound{}, fmt.Errorf("%w: finite family of %s members declared maximal over an infinite basis", ErrInconsistent, hi)
	}
	covers, err := SupportsCoverAll(b, v, true)
	if err != nil {
		return cardinal.Bound{}, err
	}
	assert(covers, "covering must hold once SupportsCoverAll returns without error")

	if !lo.Leq(hi) {
		return cardinal.Bound{}, fmt.Errorf("%w: declared cardinalities violate the covering bound: %s > %s", ErrInconsistent, lo, hi)
	}
	bound := cardinal.Bound{Lo: lo, Hi: hi}
	T().Debugf("cardinality bound derived: %s", bound)
	return bound, nil
}
