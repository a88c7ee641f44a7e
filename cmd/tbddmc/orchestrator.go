// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/reach"
	"github.com/tbddmc/tbddmc/internal/report"
	"github.com/tbddmc/tbddmc/internal/task"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// run drives one end-to-end analysis: load the model, optionally merge
// and print it, build the worker pool and reporter, dispatch the chosen
// strategy, and report the result (spec.md §6.2/§6.3). The only stdlib
// exception carried here is runtime/pprof for -p: gperftools, what the
// original links against, has no portable Go binding, so CPU profiling
// goes through the standard profiler instead (documented in DESIGN.md).
func run(opts *options) error {
	strategy := reach.Name(opts.strategy)

	if opts.profile != "" {
		f, err := os.Create(opts.profile)
		if err != nil {
			return fmt.Errorf("tbddmc: opening profile output: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("tbddmc: starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	f, err := os.Open(opts.model)
	if err != nil {
		return fmt.Errorf("tbddmc: opening model file: %w", err)
	}
	defer f.Close()

	t := tbdd.New()
	g := t.NewGuard()
	defer g.Release()

	m, err := model.Load(f, t, g)
	if err != nil {
		return fmt.Errorf("tbddmc: loading model: %w", err)
	}
	if err := model.Validate(m); err != nil {
		return fmt.Errorf("tbddmc: validating model: %w", err)
	}
	g.Push(m.Initial.BDD)
	for _, rel := range m.Next {
		g.Push(rel.BDD)
	}

	reporter := report.New(opts.countStates, opts.countTable, opts.countNodes)
	reporter.GCHooks(t)
	reporter.Memory()

	pool := task.New(opts.workers)

	if strategy == reach.SAT || strategy == reach.Chaining {
		reach.SortByLeadingVariable(m.Next)
	}

	if opts.mergeRelations {
		reach.Merge(t, pool, m, g)
		g.Push(m.Next[0].BDD)
	}

	if opts.printMatrix {
		printMatrix(m)
	}

	for i, rel := range m.Next {
		reporter.NodeCount(fmt.Sprintf("next[%d]", i), t, rel.BDD)
	}

	runOpts := reach.Options{
		Pool:           pool,
		Reporter:       reporter,
		CheckDeadlocks: opts.deadlocks,
	}

	start := time.Now()
	result, err := reach.Run(t, m, strategy, runOpts, g)
	if err != nil {
		return fmt.Errorf("tbddmc: %s: %w", strategy, err)
	}
	reporter.StrategyTime(string(strategy), time.Since(start))

	reporter.FinalStates(t, result.Visited, m.Domain.VectorDom)
	if opts.deadlocks {
		if result.HasDeadlocks {
			reporter.Info("Deadlocks found.")
			reporter.NodeCount("deadlocks", t, result.Deadlocks)
		} else {
			reporter.Info("No deadlocks found.")
		}
	}
	reporter.TBDDStats(t)
	reporter.Memory()

	return nil
}
