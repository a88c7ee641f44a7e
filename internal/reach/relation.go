// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"sort"

	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/task"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// SortByLeadingVariable orders next ascending by the leading variable of
// each partition's Variables, the precondition SAT and CHAINING both
// require (spec.md §4.2 "Sort (SAT and CHAINING only)"). The original
// uses gnome sort "because I like gnomes"; spec.md §9 says any stable
// ascending sort is equivalent, so this uses sort.SliceStable directly.
func SortByLeadingVariable(next []model.Relation) {
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].LeadingVar() < next[j].LeadingVar()
	})
}

// FullInterleavedDomain returns {0, 1, 2, ..., 2*totalbits-1}: every
// current and next-state variable, used as the target domain of Merge's
// extend-and-union (spec.md §4.2 "newvars = all 2*totalbits interleaved
// variables").
func FullInterleavedDomain(totalBits int) []uint32 {
	vars := make([]uint32, 2*totalBits)
	for i := range vars {
		vars[i] = uint32(i)
	}
	return vars
}

// ExtendRelation extends rel's TBDD from its own Variables to the larger
// domain newVars, conjoining an identity constraint "s=s'" over every
// state component rel does not itself touch (spec.md §4.2
// "extend_relation"). It builds the identity cube bottom-up exactly as
// the original: for each untouched component i, two nodes on the primed
// variable 2i+1 select between "eq" and False depending on the unprimed
// bit at 2i, then a node on 2i combines them.
func ExtendRelation(t *tbdd.Table, dom model.Domain, rel model.Relation, newVars []uint32, g *tbdd.Guard) model.Relation {
	touchedState := make([]bool, dom.TotalBits)
	for _, v := range rel.Variables {
		if v%2 == 0 {
			touchedState[v/2] = true
		}
	}

	eq := tbdd.True
	for i := dom.TotalBits - 1; i >= 0; i-- {
		if touchedState[i] {
			continue
		}
		g.Push(eq) // protect the old eq across both makenode calls below
		low := t.MakeNode(uint32(2*i+1), eq, tbdd.False, tbdd.NoTag, g)
		g.Push(low) // protect low while high is built from the still-live eq
		high := t.MakeNode(uint32(2*i+1), tbdd.False, eq, tbdd.NoTag, g)
		g.Push(high)
		eq = t.MakeNode(uint32(2*i), low, high, tbdd.NoTag, g)
		g.Pop(3) // high, low, old eq
	}

	g.Push(eq)
	extended := t.ExtendDomain(rel.BDD, newVars)
	g.Push(extended)
	bdd := t.And(extended, eq, g)
	g.Pop(2)

	return model.Relation{
		BDD:       bdd,
		Variables: newVars,
		RProj:     rel.RProj,
		WProj:     rel.WProj,
		SatDom:    newVars,
	}
}

// BigUnion computes the OR of next[first:first+count] by divide-and-
// conquer, spawning the left half on pool and computing the right half
// inline (spec.md §4.3 "big_union"). count must be >= 1.
func BigUnion(t *tbdd.Table, pool *task.Pool, next []model.Relation, first, count int, g *tbdd.Guard) tbdd.T {
	if count == 1 {
		return next[first].BDD
	}
	left := task.Fork(pool, func() forkResult {
		lg := t.NewGuard()
		v := BigUnion(t, pool, next, first, count/2, lg)
		lg.Push(v)
		return forkResult{val: v, guard: lg}
	})
	right := BigUnion(t, pool, next, first+count/2, count-count/2, g)
	g.Push(right)
	lj := left()
	g.Push(lj.val)
	lj.guard.Release()
	result := t.Or(lj.val, right, g)
	g.Pop(2)
	return result
}

// Merge extends every partition to the full interleaved domain and
// unions them into a single partition, leaving next_count == 1 (spec.md
// §4.2 "Merge (optional)"). It mutates m.Next in place, the way the
// original overwrites next[0] and empties the rest.
func Merge(t *tbdd.Table, pool *task.Pool, m *model.Model, g *tbdd.Guard) {
	newVars := FullInterleavedDomain(m.Domain.TotalBits)
	extended := make([]model.Relation, len(m.Next))
	for i, rel := range m.Next {
		extended[i] = ExtendRelation(t, m.Domain, rel, newVars, g)
	}
	if len(extended) == 0 {
		m.Next = extended
		return
	}
	union := BigUnion(t, pool, extended, 0, len(extended), g)
	m.Next = []model.Relation{{
		BDD:       union,
		Variables: newVars,
		RProj:     nil,
		WProj:     nil,
		SatDom:    newVars,
	}}
}
