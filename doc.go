/*
Package finbasis reasons about sizes of bases of modules over a ring.

Every element of a module with a basis has a unique representation as a
finitely-supported coefficient mapping over the basis index set. Three
classical consequences of that finiteness are made effective here:

1. A finite spanning set forces every basis to be finite: the union of the
spanning elements' supports is a finite set of indexes that must already
contain every basis index (FiniteBasisSize).

2. For a maximal linearly independent family, the union of the supports of
its members covers the whole basis index set, since otherwise the basis vector
at an uncovered index would extend the family (SupportsCoverAll,
ExtendIndependent).

3. Consequently an infinite basis is never larger than a maximal linearly
independent family: finite supports covering the index set bound its
cardinality by the witness cardinality (CardinalityBound).

The textbook arguments run by contradiction; this library replaces each
negated assumption with an explicit witness search. Either the required
witness (an uncovered index, an omitted basis vector) is found and
returned, or the property is reported to hold.

Bases and families are immutable inputs constructed by the caller. The
structural correctness of a representation function is a caller contract
(see NewBasis). Inconsistent inputs (a "maximal" family with an uncovered
index, a "spanning" set whose supports miss a basis index) surface as
ErrInconsistent and are never silently corrected.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2025, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package finbasis

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// BasisError is an error type for the finbasis module.
type BasisError string

func (e BasisError) Error() string {
	return string(e)
}

// ErrDegenerateRing signals a ring that does not distinguish the additive
// from the multiplicative identity. Over such a ring every independence
// argument is vacuous; bases over it are rejected at construction.
const ErrDegenerateRing = BasisError("degenerate ring: zero equals one")

// ErrPrecondition signals a caller-side programming error: a missing
// structural input, or a query whose stated preconditions (maximality,
// basis infiniteness) do not apply.
const ErrPrecondition = BasisError("precondition violated")

// ErrInconsistent signals that caller-supplied witnesses (independence,
// maximality, spanning) contradict each other. The inputs are defective;
// no partial result is produced.
const ErrInconsistent = BasisError("caller-supplied witnesses are inconsistent")

// ErrUndecidable signals a query that would require enumerating an
// infinite family or index set.
const ErrUndecidable = BasisError("not decidable by search on an infinite domain")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
