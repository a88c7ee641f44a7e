// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package task

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many forked branches may run concurrently, standing in
// for spec.md §5's "fixed pool of worker threads (count configurable; 0 =>
// autodetect hardware parallelism)". A nil *Pool is valid and makes every
// Fork run inline: this is how internal/reach's BFS (sequential) shares
// its kernel code with PAR (parallel) — see spec.md §4.4 "identical shape;
// differ only in whether the kernel spawns".
type Pool struct {
	sem *semaphore.Weighted
}

// New returns a Pool that allows at most workers branches to run at once.
// workers <= 0 autodetects hardware parallelism (spec.md §6.2 "-w <n>,
// 0 = autodetect").
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{sem: semaphore.NewWeighted(int64(workers))}
}

// Fork runs fn, either concurrently on its own goroutine or, if the pool
// has no spare capacity (or p is nil), inline before Fork even returns.
// The returned join function blocks until fn's result is available and
// must be called exactly once. Callers follow the same discipline as the
// original's tbdd_refs_spawn/SYNC pair: Fork the left half, compute the
// right half inline, then join — never the other way around, so the
// goroutine budget is spent on the branch that can actually overlap with
// useful work in the caller.
func Fork[T any](p *Pool, fn func() T) func() T {
	if p == nil || !p.sem.TryAcquire(1) {
		v := fn()
		return func() T { return v }
	}
	var g errgroup.Group
	var v T
	g.Go(func() error {
		defer p.sem.Release(1)
		v = fn()
		return nil
	})
	return func() T {
		g.Wait() // fn never returns an error; Wait is the join point
		return v
	}
}
