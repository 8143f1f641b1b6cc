package coeff

import (
	set "github.com/hashicorp/go-set/v3"
)

// SupportMonoid aggregates supports by set union.
//
// Folding a finite collection of finite supports with this monoid yields a
// finite union; this finiteness carries the finite-span argument.
type SupportMonoid[I comparable] struct{}

// Zero returns the empty support.
func (SupportMonoid[I]) Zero() *set.Set[I] {
	return set.New[I](0)
}

// Add returns a fresh union of left and right.
func (SupportMonoid[I]) Add(left, right *set.Set[I]) *set.Set[I] {
	u := set.New[I](left.Size() + right.Size())
	u.InsertSlice(left.Slice())
	u.InsertSlice(right.Slice())
	return u
}
