package cardinal

import "fmt"

// Cardinal is an opaque measure of set size, comparable even for infinite
// sets.
//
// Finite cardinals carry an exact count. Infinite cardinals carry an aleph
// index and stay abstract: the library never enumerates an infinite set,
// it only compares sizes. Aleph(0) is the cardinality of the naturals;
// higher indexes denote strictly larger infinite cardinalities.
type Cardinal struct {
	finite bool
	n      int // count when finite, aleph index otherwise
}

// Finite returns the cardinal of an n-element set.
func Finite(n int) Cardinal {
	assert(n >= 0, "cardinal.Finite requires a non-negative count")
	return Cardinal{finite: true, n: n}
}

// Aleph returns the k-th infinite cardinal.
func Aleph(k int) Cardinal {
	assert(k >= 0, "cardinal.Aleph requires a non-negative index")
	return Cardinal{finite: false, n: k}
}

// IsFinite reports whether the cardinal is a finite count.
func (c Cardinal) IsFinite() bool {
	return c.finite
}

// Count returns the finite count, with ok=false for infinite cardinals.
func (c Cardinal) Count() (int, bool) {
	if !c.finite {
		return 0, false
	}
	return c.n, true
}

// Leq reports whether c ≤ d.
//
// Every finite cardinal is below every infinite one; infinite cardinals
// compare by aleph index.
func (c Cardinal) Leq(d Cardinal) bool {
	switch {
	case c.finite && d.finite:
		return c.n <= d.n
	case c.finite:
		return true
	case d.finite:
		return false
	default:
		return c.n <= d.n
	}
}

// Eq reports equality up to bijection: same finite count, or same aleph
// index.
func (c Cardinal) Eq(d Cardinal) bool {
	return c.Leq(d) && d.Leq(c)
}

// String renders finite cardinals as counts and infinite ones as aleph_k.
func (c Cardinal) String() string {
	if c.finite {
		return fmt.Sprintf("%d", c.n)
	}
	return fmt.Sprintf("aleph_%d", c.n)
}

// Bound is a derived inequality Lo ≤ Hi between two cardinals.
type Bound struct {
	Lo Cardinal
	Hi Cardinal
}

// Holds reports whether the inequality is consistent with the declared
// cardinals.
func (b Bound) Holds() bool {
	return b.Lo.Leq(b.Hi)
}

func (b Bound) String() string {
	return fmt.Sprintf("%s <= %s", b.Lo, b.Hi)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
