// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/report"
	"github.com/tbddmc/tbddmc/internal/task"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// Name identifies one of the four reachability strategies spec.md §1
// lists.
type Name string

const (
	BFS      Name = "bfs"
	PAR      Name = "par"
	SAT      Name = "sat"
	Chaining Name = "chaining"
)

// Options configures a single Run. Pool is nil for BFS (spec.md §4.4
// "identical shape; differ only in whether the kernel spawns") and
// non-nil for PAR/SAT; Reporter is nil when the CLI asked for no
// per-level reporting.
type Options struct {
	Pool           *task.Pool
	Reporter       *report.Reporter
	CheckDeadlocks bool
}

// Result is what a strategy run hands back to the orchestrator: the
// final reachable set (already written back into m.Initial.BDD, as
// spec.md §4.4 "Result is placed back in set.bdd" requires) plus the
// number of levels it took and, if requested, the deadlock states found.
type Result struct {
	Visited      tbdd.T
	Levels       int
	Deadlocks    tbdd.T // set only when Options.CheckDeadlocks and the strategy supports it; otherwise the zero T
	HasDeadlocks bool
}

// Run dispatches to the strategy named by name, mutating m.Initial.BDD in
// place and returning the same final set via Result.Visited.
func Run(t *tbdd.Table, m *model.Model, name Name, opts Options, g *tbdd.Guard) (Result, error) {
	switch name {
	case BFS:
		return runLevelStrategy(t, m, nil, opts, g)
	case PAR:
		return runLevelStrategy(t, m, opts.Pool, opts, g)
	case SAT:
		if opts.CheckDeadlocks {
			return Result{}, ErrDeadlockUnsupported
		}
		return Sat(t, m, opts, g)
	case Chaining:
		if opts.CheckDeadlocks {
			return Result{}, ErrDeadlockUnsupported
		}
		return runChaining(t, m, opts, g)
	default:
		return Result{}, ErrInvalidStrategy
	}
}
