// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/task"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// LevelSuccessors computes the union, over next[from:from+len], of each
// partition's relnext image restricted to states not already in visited
// (spec.md §4.3 "Per-level successor", the "go" function shared by BFS
// and PAR). pool nil makes the two halves run sequentially (BFS); a
// non-nil pool lets the left half run concurrently with the right (PAR)
// — spec.md §4.4 "Identical shape; differ only in whether the kernel
// spawns".
func LevelSuccessors(t *tbdd.Table, pool *task.Pool, vectorDom []uint32, next []model.Relation, cur, visited tbdd.T, from, length int, g *tbdd.Guard) tbdd.T {
	if length == 0 {
		return tbdd.False
	}
	if length == 1 {
		rel := next[from]
		succ := t.RelNext(cur, rel.BDD, rel.Touched(), vectorDom, g)
		g.Push(succ)
		result := t.Diff(succ, visited, g)
		g.Pop(1)
		return result
	}

	left := task.Fork(pool, func() forkResult {
		lg := t.NewGuard()
		v := LevelSuccessors(t, pool, vectorDom, next, cur, visited, from, length/2, lg)
		lg.Push(v) // keep v alive past this closure's return until the caller re-protects it
		return forkResult{val: v, guard: lg}
	})
	right := LevelSuccessors(t, pool, vectorDom, next, cur, visited, from+length/2, length-length/2, g)
	g.Push(right)
	lj := left()
	g.Push(lj.val)
	lj.guard.Release()
	result := t.Or(lj.val, right, g)
	g.Pop(2)
	return result
}

// forkResult carries a forked branch's TBDD result together with the
// Guard that has kept it alive since the branch produced it: the caller
// must push the value onto its own guard before releasing this one, so
// the value is never unprotected even for an instant (see Table.NewGuard
// in internal/tbdd).
type forkResult struct {
	val   tbdd.T
	guard *tbdd.Guard
}
