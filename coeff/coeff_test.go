package coeff

import (
	"math/big"
	"testing"

	"github.com/npillmayer/finbasis/ring"
)

func TestNewDropsZeroEntries(t *testing.T) {
	m := New(ring.Integers{}, map[string]int64{"a": 2, "b": 0, "c": -1})
	if m.SupportSize() != 2 {
		t.Fatalf("expected support size 2, got %d", m.SupportSize())
	}
	if m.Get("b") != 0 {
		t.Fatalf("zero entry must read as ring zero")
	}
	if m.Get("a") != 2 || m.Get("c") != -1 {
		t.Fatalf("unexpected coefficients: a=%d c=%d", m.Get("a"), m.Get("c"))
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := map[string]int64{"a": 1}
	m := New(ring.Integers{}, src)
	src["a"] = 99
	if m.Get("a") != 1 {
		t.Fatalf("map must not alias constructor input, got %d", m.Get("a"))
	}
}

func TestIndicator(t *testing.T) {
	d := Indicator[string](ring.Integers{}, "x")
	if d.SupportSize() != 1 {
		t.Fatalf("indicator support must be a singleton")
	}
	if d.Get("x") != 1 || d.Get("y") != 0 {
		t.Fatalf("unexpected indicator values")
	}
}

func TestAddCancelsToZero(t *testing.T) {
	z := ring.Integers{}
	a := New(z, map[int]int64{1: 3, 2: -1})
	b := New(z, map[int]int64{1: -3, 3: 5})
	sum := a.Add(b)
	if sum.Get(1) != 0 {
		t.Fatalf("coefficients at 1 must cancel")
	}
	if sum.Support().Contains(1) {
		t.Fatalf("cancelled index must leave the support")
	}
	if sum.Get(2) != -1 || sum.Get(3) != 5 {
		t.Fatalf("unexpected sum entries")
	}
	// Operands stay unchanged.
	if a.Get(1) != 3 || b.Get(3) != 5 {
		t.Fatalf("operands were mutated")
	}
}

func TestSubAndScale(t *testing.T) {
	z := ring.Integers{}
	a := New(z, map[int]int64{1: 3, 2: 4})
	diff := a.Sub(a)
	if !diff.IsZero() {
		t.Fatalf("a - a must be zero")
	}
	scaled := a.Scale(0)
	if !scaled.IsZero() {
		t.Fatalf("0 · a must be zero with empty support")
	}
	doubled := a.Scale(2)
	if doubled.Get(1) != 6 || doubled.Get(2) != 8 {
		t.Fatalf("unexpected scaled entries")
	}
}

func TestSupport(t *testing.T) {
	m := New(ring.Integers{}, map[int]int64{4: 1, 7: 2})
	s := m.Support()
	if s.Size() != 2 || !s.Contains(4) || !s.Contains(7) {
		t.Fatalf("unexpected support: %v", s.Slice())
	}
}

func TestEqRationals(t *testing.T) {
	q := ring.Rationals{}
	a := New(q, map[int]*big.Rat{1: ring.Rat(1, 2)})
	b := New(q, map[int]*big.Rat{1: ring.Rat(2, 4)})
	if !a.Eq(b) {
		t.Fatalf("1/2 and 2/4 entries must compare equal")
	}
	c := New(q, map[int]*big.Rat{2: ring.Rat(1, 2)})
	if a.Eq(c) {
		t.Fatalf("different supports must not compare equal")
	}
}

func TestSupportMonoidUnion(t *testing.T) {
	mon := SupportMonoid[int]{}
	u := mon.Zero()
	for _, m := range []Map[int, int64]{
		New(ring.Integers{}, map[int]int64{1: 1, 2: 1}),
		New(ring.Integers{}, map[int]int64{2: 1, 3: 1}),
	} {
		u = mon.Add(u, m.Support())
	}
	if u.Size() != 3 {
		t.Fatalf("expected union {1,2,3}, got %v", u.Slice())
	}
}

func TestFreeModule(t *testing.T) {
	f := FreeModule[string, int64]{Rng: ring.Integers{}}
	a := Indicator[string](ring.Integers{}, "a")
	b := Indicator[string](ring.Integers{}, "b")
	sum := f.MAdd(f.Scale(2, a), b)
	if sum.Get("a") != 2 || sum.Get("b") != 1 {
		t.Fatalf("unexpected free module combination")
	}
	if !f.MEq(f.Nil(), Zero[string](ring.Integers{})) {
		t.Fatalf("Nil must equal the zero mapping")
	}
}
