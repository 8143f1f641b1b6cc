package cardinal

import "testing"

func TestFiniteOrdering(t *testing.T) {
	if !Finite(2).Leq(Finite(3)) {
		t.Fatalf("2 <= 3 expected")
	}
	if Finite(3).Leq(Finite(2)) {
		t.Fatalf("3 <= 2 unexpected")
	}
	if !Finite(3).Eq(Finite(3)) {
		t.Fatalf("3 = 3 expected")
	}
}

func TestFiniteBelowInfinite(t *testing.T) {
	big := Finite(1 << 30)
	if !big.Leq(Aleph(0)) {
		t.Fatalf("every finite cardinal is below aleph_0")
	}
	if Aleph(0).Leq(big) {
		t.Fatalf("aleph_0 below a finite count is absurd")
	}
}

func TestAlephOrdering(t *testing.T) {
	if !Aleph(0).Leq(Aleph(1)) {
		t.Fatalf("aleph_0 <= aleph_1 expected")
	}
	if Aleph(1).Leq(Aleph(0)) {
		t.Fatalf("aleph_1 <= aleph_0 unexpected")
	}
	if !Aleph(0).Eq(Aleph(0)) {
		t.Fatalf("aleph_0 = aleph_0 expected")
	}
}

func TestCount(t *testing.T) {
	if n, ok := Finite(7).Count(); !ok || n != 7 {
		t.Fatalf("unexpected Count result: %d %v", n, ok)
	}
	if _, ok := Aleph(0).Count(); ok {
		t.Fatalf("infinite cardinals have no count")
	}
}

func TestBound(t *testing.T) {
	b := Bound{Lo: Aleph(0), Hi: Aleph(0)}
	if !b.Holds() {
		t.Fatalf("aleph_0 <= aleph_0 must hold")
	}
	bad := Bound{Lo: Aleph(1), Hi: Aleph(0)}
	if bad.Holds() {
		t.Fatalf("aleph_1 <= aleph_0 must not hold")
	}
	if b.String() != "aleph_0 <= aleph_0" {
		t.Fatalf("unexpected rendering: %q", b.String())
	}
}

func TestString(t *testing.T) {
	if Finite(12).String() != "12" {
		t.Fatalf("unexpected finite rendering")
	}
	if Aleph(1).String() != "aleph_1" {
		t.Fatalf("unexpected aleph rendering")
	}
}
