// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

import "sort"

// FromArray builds the TBDD for a single cube: the conjunction of
// literals (vars[i], true) when vals[i] != 0 and (vars[i], false)
// otherwise, over exactly the variables named in vars. Grounded on
// spec.md §4.1's "state vector into a single-cube TBDD". The model loader
// does not use it (it decodes the initial set with ReaderFromBinary);
// tests use it to build small sets and relations directly. vars need
// not be sorted on entry; FromArray sorts a copy so the cube's nodes come
// out in strictly increasing variable order, as every other part of this
// package assumes.
func (t *Table) FromArray(vars []uint32, vals []int, g *Guard) T {
	if len(vars) != len(vals) {
		t.seterror("tbdd: FromArray: vars and vals length mismatch (%d != %d)", len(vars), len(vals))
		return False
	}
	order := make([]int, len(vars))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return vars[order[i]] < vars[order[j]] })

	result := True
	for i := len(order) - 1; i >= 0; i-- {
		idx := order[i]
		g.Push(result)
		if vals[idx] != 0 {
			result = t.MakeNode(vars[idx], False, result, NoTag, g)
		} else {
			result = t.MakeNode(vars[idx], result, False, NoTag, g)
		}
		g.Pop(1)
	}
	return result
}

// EnumFirst returns one satisfying vector of v restricted to dom, picking
// the low branch whenever a variable is don't-care (skipped by a tag or by
// a node whose two children coincide), in the low-first DFS order rudd's
// Allsat/FindsatOne uses. ok is false only for the empty set.
func (t *Table) EnumFirst(v T, dom []uint32) (vals []int, ok bool) {
	if v == False {
		return nil, false
	}
	vals = make([]int, len(dom))
	cur := v
	for i, d := range dom {
		if t.IsLeaf(cur) {
			continue
		}
		lo, hi := t.cofactor(cur, d)
		if lo != False {
			vals[i] = 0
			cur = lo
		} else {
			vals[i] = 1
			cur = hi
		}
	}
	return vals, true
}
