package index

import (
	"testing"

	set "github.com/hashicorp/go-set/v3"

	"github.com/npillmayer/finbasis/cardinal"
)

func TestOfDeduplicates(t *testing.T) {
	d := Of("a", "b", "a", "c")
	if n, ok := d.Card().Count(); !ok || n != 3 {
		t.Fatalf("expected 3 distinct members, got %v", d.Card())
	}
	var order []string
	for m := range d.Each() {
		order = append(order, m)
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected enumeration order: %v", order)
	}
}

func TestFinitePickOutside(t *testing.T) {
	d := Of(1, 2, 3)
	excluded := set.New[int](2)
	excluded.InsertSlice([]int{1, 3})
	i, ok := d.PickOutside(excluded)
	if !ok || i != 2 {
		t.Fatalf("expected pick 2, got %d ok=%v", i, ok)
	}
	excluded.Insert(2)
	if _, ok := d.PickOutside(excluded); ok {
		t.Fatalf("fully excluded finite domain must not pick")
	}
}

func TestNaturals(t *testing.T) {
	d := Naturals()
	if d.IsFinite() {
		t.Fatalf("naturals must be infinite")
	}
	if !d.Card().Eq(cardinal.Aleph(0)) {
		t.Fatalf("naturals must be countable, got %v", d.Card())
	}
	excluded := set.New[int](3)
	excluded.InsertSlice([]int{0, 1, 3})
	i, ok := d.PickOutside(excluded)
	if !ok || i != 2 {
		t.Fatalf("expected least gap 2, got %d ok=%v", i, ok)
	}
	// Prefix of the endless enumeration.
	var prefix []int
	for n := range d.Each() {
		prefix = append(prefix, n)
		if len(prefix) == 4 {
			break
		}
	}
	if prefix[3] != 3 {
		t.Fatalf("unexpected enumeration prefix: %v", prefix)
	}
}

func TestAbstractDomain(t *testing.T) {
	d := Abstract(cardinal.Aleph(1), func(excluded *set.Set[uint64]) (uint64, bool) {
		for n := uint64(0); ; n++ {
			if !excluded.Contains(n) {
				return n, true
			}
		}
	})
	if d.IsFinite() {
		t.Fatalf("abstract domain must be infinite")
	}
	if !d.Card().Eq(cardinal.Aleph(1)) {
		t.Fatalf("declared cardinality not preserved")
	}
	for range d.Each() {
		t.Fatalf("abstract domains must not enumerate")
	}
	excluded := set.New[uint64](1)
	excluded.Insert(0)
	if i, ok := d.PickOutside(excluded); !ok || i != 1 {
		t.Fatalf("oracle pick failed: %d %v", i, ok)
	}
}

func TestExtendedDomain(t *testing.T) {
	d := Extended(Of("x", "y"))
	if n, ok := d.Card().Count(); !ok || n != 3 {
		t.Fatalf("extension of a 2-element domain must have 3 members")
	}
	var members []Extend[string]
	for e := range d.Each() {
		members = append(members, e)
	}
	if len(members) != 3 || !members[0].Extra {
		t.Fatalf("extra index must lead the enumeration: %v", members)
	}

	excluded := set.New[Extend[string]](1)
	excluded.Insert(ExtraIndex[string]())
	e, ok := d.PickOutside(excluded)
	if !ok || e.Extra || e.Base != "x" {
		t.Fatalf("expected base pick x, got %v ok=%v", e, ok)
	}
	excluded.Insert(BaseIndex("x"))
	excluded.Insert(BaseIndex("y"))
	if _, ok := d.PickOutside(excluded); ok {
		t.Fatalf("fully excluded extension must not pick")
	}
}

func TestExtendedInfiniteKeepsCardinality(t *testing.T) {
	d := Extended(Naturals())
	if !d.Card().Eq(cardinal.Aleph(0)) {
		t.Fatalf("adding one index must not change aleph_0, got %v", d.Card())
	}
}
