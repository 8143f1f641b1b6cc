/*
Package index models abstract index sets for basis and witness families.

An index set may be finite or infinite; it carries no ordering, only
decidable equality (the Go `comparable` constraint). Infinite domains are
never enumerated to completion; the one capability the covering arguments
need from them is a choice oracle: pick some index outside a given finite
set. Finite domains answer the same query by scanning their members.
*/
package index

import (
	"iter"

	set "github.com/hashicorp/go-set/v3"

	"github.com/npillmayer/finbasis/cardinal"
)

// Domain is an abstract index set with decidable equality.
//
// Each enumerates the members of a finite domain. For the naturals it is an
// endless sequence; abstract infinite domains yield nothing. Callers must
// consult IsFinite before draining Each.
//
// PickOutside returns some index not contained in the excluded set. For an
// infinite domain this always succeeds when excluded is finite; for a
// finite domain it reports ok=false when excluded covers every member.
type Domain[I comparable] interface {
	Card() cardinal.Cardinal
	IsFinite() bool
	Each() iter.Seq[I]
	PickOutside(excluded *set.Set[I]) (I, bool)
}

// --- Finite domains --------------------------------------------------------

type finiteDomain[I comparable] struct {
	members []I
}

// Of creates a finite domain over the given members. Duplicates are
// dropped; the first occurrence fixes the enumeration order.
func Of[I comparable](members ...I) Domain[I] {
	seen := set.New[I](len(members))
	distinct := make([]I, 0, len(members))
	for _, m := range members {
		if seen.Insert(m) {
			distinct = append(distinct, m)
		}
	}
	return finiteDomain[I]{members: distinct}
}

func (d finiteDomain[I]) Card() cardinal.Cardinal {
	return cardinal.Finite(len(d.members))
}

func (d finiteDomain[I]) IsFinite() bool { return true }

func (d finiteDomain[I]) Each() iter.Seq[I] {
	return func(yield func(I) bool) {
		for _, m := range d.members {
			if !yield(m) {
				return
			}
		}
	}
}

func (d finiteDomain[I]) PickOutside(excluded *set.Set[I]) (I, bool) {
	for _, m := range d.members {
		if !excluded.Contains(m) {
			return m, true
		}
	}
	var zero I
	return zero, false
}

// --- The naturals ----------------------------------------------------------

type naturalsDomain struct{}

// Naturals creates the countably infinite domain 0, 1, 2, …
//
// Each never terminates on its own; PickOutside returns the least natural
// not excluded.
func Naturals() Domain[int] {
	return naturalsDomain{}
}

func (naturalsDomain) Card() cardinal.Cardinal { return cardinal.Aleph(0) }

func (naturalsDomain) IsFinite() bool { return false }

func (naturalsDomain) Each() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := 0; ; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

func (naturalsDomain) PickOutside(excluded *set.Set[int]) (int, bool) {
	// The excluded set is finite, so scanning [0, size] must find a gap or
	// run past the largest excluded natural.
	for n := 0; n <= excluded.Size(); n++ {
		if !excluded.Contains(n) {
			return n, true
		}
	}
	assert(false, "naturals: pigeonhole violated in PickOutside")
	return 0, false
}

// --- Abstract infinite domains ---------------------------------------------

type abstractDomain[I comparable] struct {
	card cardinal.Cardinal
	pick func(excluded *set.Set[I]) (I, bool)
}

// Abstract creates a non-enumerable infinite domain of the declared
// cardinality. The caller supplies the choice oracle; it must succeed for
// every finite excluded set.
func Abstract[I comparable](card cardinal.Cardinal, pick func(excluded *set.Set[I]) (I, bool)) Domain[I] {
	assert(!card.IsFinite(), "index.Abstract requires an infinite cardinality")
	assert(pick != nil, "index.Abstract requires a choice oracle")
	return abstractDomain[I]{card: card, pick: pick}
}

func (d abstractDomain[I]) Card() cardinal.Cardinal { return d.card }

func (d abstractDomain[I]) IsFinite() bool { return false }

func (d abstractDomain[I]) Each() iter.Seq[I] {
	return func(yield func(I) bool) {}
}

func (d abstractDomain[I]) PickOutside(excluded *set.Set[I]) (I, bool) {
	return d.pick(excluded)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
