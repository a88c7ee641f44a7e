// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Table is a TBDD node table together with its unicity table, garbage
// collector and operation cache. It is the concrete type standing in for
// spec.md's "TBDD package" black box (§1, §6.3): everything in
// internal/reach is written purely against the exported methods below.
//
// A *Table is safe for concurrent use by multiple goroutines cooperating
// through a task.Pool (see internal/task): allocation (MakeNode and every
// operation built on it) takes the table's write lock, and the read-only
// node accessors (GetVar/GetLow/GetHigh) take its read lock, so a resize
// or a GC sweep in one goroutine can never be observed mid-mutation by
// another goroutine cofactoring the same table concurrently — mirroring
// spec.md §5's description of a lock-free-from-the-caller's-perspective
// but internally synchronized TBDD package.
type Table struct {
	mu sync.RWMutex

	nodes   []node
	unique  map[key]int
	freepos int
	freenum int

	produced int

	opcache cache

	stats GCStats

	err error
	log *logrus.Entry

	cfg config

	preGC  func()
	postGC func()

	guards map[*Guard]struct{}
}

// OnGC registers callbacks run immediately before and after a garbage
// collection (spec.md §9 design notes; SPEC_FULL.md's GC pre/post hooks).
// Either argument may be nil. internal/report uses this to log current
// RSS around a collection, the original's gc_start/gc_end tasks. Hooks
// run while the table's internal lock is held, so they must not call
// back into any *Table method.
func (t *Table) OnGC(pre, post func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.preGC = pre
	t.postGC = post
}

// GCStats records garbage-collection and unicity-table activity, the data
// internal/report surfaces via spec.md §4.8's "TBDD statistics" line and
// rudd.stats()/gcstats() print.
type GCStats struct {
	Collections  int
	UniqueAccess int
	UniqueHit    int
	UniqueMiss   int
	OpHit        int
	OpMiss       int
}

// New allocates a fresh node table. varnum, unlike rudd, is not fixed up
// front: TBDDs in this engine range over a domain computed from the model
// file (spec.md §3), so variables are created lazily the first time a
// level is referenced by MakeNode or FromArray.
func New(opts ...Option) *Table {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	size := cfg.nodesize
	if size < 2 {
		size = 2
	}
	t := &Table{
		cfg:    cfg,
		nodes:  make([]node, size),
		unique: make(map[key]int, size),
		log:    logrus.WithField("component", "tbdd"),
	}
	t.nodes[0] = node{level: NoVar, low: 0, high: 0, refcou: maxRefcount}
	t.nodes[1] = node{level: NoVar, low: 1, high: 1, refcou: maxRefcount}
	for n := 2; n < size; n++ {
		t.nodes[n] = node{low: -1, high: n + 1}
	}
	if size > 2 {
		t.nodes[size-1].high = 0
	}
	t.freepos = 2
	t.freenum = size - 2
	t.opcache.init(cfg.cachesize, cfg.cacheratio)
	return t
}

// Stats renders a short human-readable summary of table occupancy and
// cache performance, in the density of rudd's stdio.go stats()/gcstats().
func (t *Table) Stats() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	used := len(t.nodes) - t.freenum
	pct := 0.0
	if len(t.nodes) > 0 {
		pct = 100 * float64(used) / float64(len(t.nodes))
	}
	return fmtStats(len(t.nodes), used, pct, t.produced, t.stats)
}

// TableUsage returns the absolute number of filled node slots and the total
// capacity, for spec.md §4.8's --count-table reporting.
func (t *Table) TableUsage() (filled, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.nodes) - t.freenum, len(t.nodes)
}
