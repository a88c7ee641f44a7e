// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"fmt"

	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/task"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// satOpcode is go_sat's reservation in the shared operation cache
// (spec.md §4.5 "Cache lookup", §4.7, §9 "Cache opcode namespace"): a
// constant far above anything internal/tbdd's own opcodes (opAnd..
// opExistsOdd, all below 1<<16) could ever reach, so a saturation
// memoization entry can never be mistaken for a TBDD-internal one.
const satOpcode uint64 = 202 << 52

// Sat runs the saturation strategy (spec.md §4.5) to a fixpoint and
// writes the result back into m.Initial.BDD, matching runLevelStrategy's
// contract. next must already be sorted ascending by leading variable
// (SortByLeadingVariable); Run in strategy.go does not sort, so the
// caller (cmd/tbddmc's run, or a test) sorts m.Next before calling Run.
func Sat(t *tbdd.Table, m *model.Model, opts Options, g *tbdd.Guard) (Result, error) {
	set := GoSat(t, opts.Pool, m.Next, 0, m.Initial.BDD, g)
	if t.Errored() {
		return Result{}, fmt.Errorf("reach: saturation failed: %s", t.Error())
	}

	m.Initial.BDD = set
	if opts.Reporter != nil {
		opts.Reporter.Level(1, t, set, m.Initial.Variables)
	}
	return Result{Visited: set, Levels: 1}, nil
}

// GoSat is the recursive saturation kernel (spec.md §4.5): at each call it
// either descends on variable cofactors (Case B) or, once the pivot
// variable matches the leading variable of the partitions remaining at
// idx, applies every partition anchored there to a local fixpoint before
// saturating what lies beneath (Case A). Grounded on tbddmc.c's go_sat,
// generalized from that C function's bdd_refs-protected recursion to
// internal/tbdd.Guard and internal/task.Fork.
func GoSat(t *tbdd.Table, pool *task.Pool, next []model.Relation, idx int, set tbdd.T, g *tbdd.Guard) tbdd.T {
	if set == tbdd.False {
		return tbdd.False
	}
	if idx == len(next) {
		return set
	}
	if res, ok := t.CacheGet3(satOpcode, set, tbdd.T(idx), tbdd.False); ok {
		return res
	}

	setVar := t.GetVar(set)
	setTag := tbdd.GetTag(set)
	relVar := next[idx].LeadingVar()

	pivot := relVar
	if setTag < pivot {
		pivot = setTag
	}
	if setVar < pivot {
		pivot = setVar
	}
	if pivot != tbdd.NoVar && pivot%2 != 0 {
		t.SetError("reach: saturation pivot variable %d is odd; state variables must step by 2", pivot)
		return tbdd.False
	}

	var result tbdd.T
	switch {
	case pivot == relVar:
		result = applyPartitionsAtLevel(t, pool, next, idx, set, relVar, g)
	case pivot < setVar:
		set0 := tbdd.SetTag(set, pivot+2)
		g.Push(set0)
		inner := GoSat(t, pool, next, idx, set0, g)
		g.Pop(1)
		result = t.MakeNode(pivot, inner, tbdd.False, pivot+2, g)
	default: // pivot == setVar: recurse on real cofactors, one half spawned
		lo := t.GetLow(set)
		hi := t.GetHigh(set)
		left := task.Fork(pool, func() forkResult {
			lg := t.NewGuard()
			v := GoSat(t, pool, next, idx, lo, lg)
			lg.Push(v)
			return forkResult{val: v, guard: lg}
		})
		hiResult := GoSat(t, pool, next, idx, hi, g)
		g.Push(hiResult)
		lj := left()
		g.Push(lj.val)
		lj.guard.Release()
		result = t.MakeNode(pivot, lj.val, hiResult, pivot+2, g)
		g.Pop(2)
	}

	t.CachePut3(satOpcode, set, tbdd.T(idx), tbdd.False, result)
	return result
}

// applyPartitionsAtLevel implements go_sat's Case A: the n partitions at
// next[idx:idx+n] all share relVar as their leading variable, so they are
// chase-saturated against a deeper saturation call until one full
// chain-application adds nothing.
func applyPartitionsAtLevel(t *tbdd.Table, pool *task.Pool, next []model.Relation, idx int, set tbdd.T, relVar uint32, g *tbdd.Guard) tbdd.T {
	n := 0
	for idx+n < len(next) && next[idx+n].LeadingVar() == relVar {
		n++
	}

	g.Push(set)
	for {
		prev := set

		deeper := GoSat(t, pool, next, idx+n, set, g)
		g.Pop(1)
		g.Push(deeper)
		set = deeper

		for i := 0; i < n; i++ {
			rel := next[idx+i]
			step := t.RelNext(set, rel.BDD, rel.Touched(), rel.SatDom, g)
			g.Push(step)
			union := t.Or(set, step, g)
			g.Pop(2) // step, set
			g.Push(union)
			set = union
		}

		if set == prev {
			break
		}
	}
	g.Pop(1)
	return set
}
