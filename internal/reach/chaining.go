// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// runChaining implements the chaining strategy (spec.md §4.6): within one
// iteration, partitions are applied sequentially, each seeing the
// successors the previous partition in the same iteration already added,
// rather than BFS/PAR's strict per-level synchronization.
func runChaining(t *tbdd.Table, m *model.Model, opts Options, g *tbdd.Guard) (Result, error) {
	visited := m.Initial.BDD
	front := visited
	g.Push(visited)
	g.Push(front)

	level := 0
	for {
		level++
		nextLevel := front
		g.Push(nextLevel)
		for _, rel := range m.Next {
			succ := t.RelNext(nextLevel, rel.BDD, rel.Touched(), m.Domain.VectorDom, g)
			g.Push(succ)
			union := t.Or(nextLevel, succ, g)
			g.Pop(2) // succ, old nextLevel
			nextLevel = union
			g.Push(nextLevel)
		}

		fresh := t.Diff(nextLevel, visited, g)
		g.Push(fresh)
		newVisited := t.Or(visited, fresh, g)
		g.Pop(4) // fresh, nextLevel, front, visited
		front, visited = fresh, newVisited
		g.Push(front)
		g.Push(visited)

		if opts.Reporter != nil {
			opts.Reporter.Level(level, t, visited, m.Initial.Variables)
		}
		if front == tbdd.False {
			break
		}
	}
	g.Pop(2)

	m.Initial.BDD = visited
	return Result{Visited: visited, Levels: level}, nil
}
