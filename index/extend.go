package index

import (
	"iter"

	set "github.com/hashicorp/go-set/v3"

	"github.com/npillmayer/finbasis/cardinal"
)

// Extend is the index set K ⊎ {extra}: the base indexes of K plus one added
// index. It indexes a family that has been extended by one member.
//
// Base is meaningful only when Extra is false.
type Extend[K comparable] struct {
	Base  K
	Extra bool
}

// BaseIndex wraps a base index.
func BaseIndex[K comparable](k K) Extend[K] {
	return Extend[K]{Base: k}
}

// ExtraIndex returns the added index.
func ExtraIndex[K comparable]() Extend[K] {
	return Extend[K]{Extra: true}
}

type extendedDomain[K comparable] struct {
	base Domain[K]
}

// Extended lifts a domain to the extension index set: one fresh index plus
// all base indexes.
func Extended[K comparable](base Domain[K]) Domain[Extend[K]] {
	assert(base != nil, "index.Extended requires a base domain")
	return extendedDomain[K]{base: base}
}

func (d extendedDomain[K]) Card() cardinal.Cardinal {
	c := d.base.Card()
	if n, ok := c.Count(); ok {
		return cardinal.Finite(n + 1)
	}
	// Adding one element never changes an infinite cardinality.
	return c
}

func (d extendedDomain[K]) IsFinite() bool { return d.base.IsFinite() }

func (d extendedDomain[K]) Each() iter.Seq[Extend[K]] {
	return func(yield func(Extend[K]) bool) {
		if !yield(ExtraIndex[K]()) {
			return
		}
		for k := range d.base.Each() {
			if !yield(BaseIndex(k)) {
				return
			}
		}
	}
}

func (d extendedDomain[K]) PickOutside(excluded *set.Set[Extend[K]]) (Extend[K], bool) {
	if !excluded.Contains(ExtraIndex[K]()) {
		return ExtraIndex[K](), true
	}
	baseExcluded := set.New[K](excluded.Size())
	for e := range excluded.Items() {
		if !e.Extra {
			baseExcluded.Insert(e.Base)
		}
	}
	k, ok := d.base.PickOutside(baseExcluded)
	if !ok {
		return Extend[K]{}, false
	}
	return BaseIndex(k), true
}
