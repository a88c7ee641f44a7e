// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

import "testing"

func TestExistsOddProjectsOntoCurrentState(t *testing.T) {
	tbl := New()
	g := NewGuard()

	// rel = (x=1 -> x'=0) only: states with x=1 can fire, x=0 cannot.
	x := tbl.MakeNode(0, False, True, NoTag, g)
	xp := tbl.MakeNode(1, False, True, NoTag, g)
	notXp := tbl.Diff(True, xp, g)
	rel := tbl.And(x, notXp, g)

	enabled := tbl.ExistsOdd(rel, []uint32{0}, g)
	got, ok := tbl.EnumFirst(enabled, []uint32{0})
	if !ok {
		t.Fatalf("ExistsOdd should leave a non-empty enabled predicate")
	}
	if got[0] != 1 {
		t.Fatalf("ExistsOdd() = %v, want x=1 (the only state with an enabled transition)", got)
	}
	if v := tbl.SatCount(enabled, []uint32{0}); v.Int64() != 1 {
		t.Fatalf("SatCount(enabled) = %v, want exactly one state (x=1)", v)
	}
}

func TestExistsOddEmptyRelation(t *testing.T) {
	tbl := New()
	g := NewGuard()
	if got := tbl.ExistsOdd(False, []uint32{0, 2}, g); got != False {
		t.Fatalf("ExistsOdd(False) = %v, want False", got)
	}
}

func TestExistsEvenProjectsOntoNextState(t *testing.T) {
	tbl := New()
	g := NewGuard()

	// rel = x' = not x, so quantifying x away leaves "x' can be either value".
	x := tbl.MakeNode(0, False, True, NoTag, g)
	xp := tbl.MakeNode(1, False, True, NoTag, g)
	notX := tbl.Diff(True, x, g)
	notXp := tbl.Diff(True, xp, g)
	rel := tbl.Or(tbl.And(x, notXp, g), tbl.And(notX, xp, g), g)

	image := tbl.ExistsEven(rel, []uint32{0}, g)
	if NoTagged(image) != True {
		t.Fatalf("ExistsEven(x'=not x) over x should leave x' unconstrained (True), got %v", image)
	}
}
