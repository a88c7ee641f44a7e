// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/task"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// runLevelStrategy implements both BFS and PAR (spec.md §4.4): the two
// strategies share this exact loop and differ only in whether pool is
// nil (BFS: LevelSuccessors' divide-and-conquer runs sequentially) or a
// real worker pool (PAR: the left half of every split runs concurrently
// with the right).
func runLevelStrategy(t *tbdd.Table, m *model.Model, pool *task.Pool, opts Options, g *tbdd.Guard) (Result, error) {
	visited := m.Initial.BDD
	front := visited
	g.Push(visited)
	g.Push(front)

	level := 0
	for {
		level++
		next := LevelSuccessors(t, pool, m.Domain.VectorDom, m.Next, front, visited, 0, len(m.Next), g)
		g.Push(next)
		newVisited := t.Or(visited, next, g)
		g.Pop(3) // next, front, visited
		front, visited = next, newVisited
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
	result := Result{Visited: visited, Levels: level}

	if opts.CheckDeadlocks {
		deadlocks := Deadlocks(t, m, visited, g)
		result.Deadlocks = deadlocks
		result.HasDeadlocks = deadlocks != tbdd.False
	}
	return result, nil
}
