// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// Deadlocks returns the states in visited from which no partition of
// m.Next can fire: spec.md §4.4's --deadlocks option, restricted to BFS
// and PAR (§9 Open Questions; SAT and CHAINING reject it via
// ErrDeadlockUnsupported in strategy.go/Run).
//
// A state s is enabled for partition i iff exists s'. next[i](s, s');
// tbdd.ExistsOdd quantifies exactly the next-state half of each variable
// pair a partition touches, leaving that per-partition predicate over
// current-state variables. The union of every partition's enabled set,
// subtracted from visited, is the set of states with no outgoing
// transition in any partition.
func Deadlocks(t *tbdd.Table, m *model.Model, visited tbdd.T, g *tbdd.Guard) tbdd.T {
	if visited == tbdd.False || len(m.Next) == 0 {
		return visited
	}

	enabled := tbdd.False
	g.Push(enabled)
	for _, rel := range m.Next {
		partEnabled := t.ExistsOdd(rel.BDD, rel.Touched(), g)
		g.Push(partEnabled)
		union := t.Or(enabled, partEnabled, g)
		g.Pop(2) // partEnabled, old enabled
		enabled = union
		g.Push(enabled)
	}

	result := t.Diff(visited, enabled, g)
	g.Pop(1) // enabled
	return result
}
