package finbasis

import (
	"fmt"

	"github.com/npillmayer/finbasis/index"
)

// Family is an indexed collection of module elements over a witness
// domain. It is the shape linearly independent families take: the
// independence witness itself lives with the caller and is passed to the
// query functions as an assertion, never verified globally.
//
// Families are immutable; Extend returns a new family over the extension
// index set.
type Family[K comparable, M any] struct {
	dom index.Domain[K]
	at  func(K) M
}

// NewFamily creates a family from its witness domain and member function.
func NewFamily[K comparable, M any](dom index.Domain[K], at func(K) M) (Family[K, M], error) {
	if dom == nil || at == nil {
		return Family[K, M]{}, fmt.Errorf("%w: family requires domain and member function", ErrPrecondition)
	}
	return Family[K, M]{dom: dom, at: at}, nil
}

// Domain returns the witness index domain.
func (v Family[K, M]) Domain() index.Domain[K] {
	return v.dom
}

// At returns the member at witness index k.
func (v Family[K, M]) At(k K) M {
	assert(v.at != nil, "family used before construction")
	return v.at(k)
}

// Extend returns the family enlarged by one member, indexed over the
// extension index set K ⊎ {extra}. The original family is unchanged.
func (v Family[K, M]) Extend(m M) Family[index.Extend[K], M] {
	assert(v.at != nil, "family used before construction")
	return Family[index.Extend[K], M]{
		dom: index.Extended(v.dom),
		at: func(e index.Extend[K]) M {
			if e.Extra {
				return m
			}
			return v.at(e.Base)
		},
	}
}
