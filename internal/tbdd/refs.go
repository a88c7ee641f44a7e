// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

// Guard is the Go stand-in for spec.md §3/§5/§9's "thread-local stack of
// references": a scratch list of TBDDs that must survive a garbage
// collection triggered by an allocation nested inside the current call.
// Go has no notion of a thread-local, and a goroutine can migrate across
// OS threads between suspension points anyway, so instead of a global
// per-thread stack (as rudd.bdd.refstack is, see gc.go) we thread an
// explicit *Guard through the recursive calls that need one — every
// goroutine spawned by internal/task owns its own Guard. Push before any
// call that might allocate and whose result you still need afterwards; Pop
// on every return path, exactly as rudd's pushref/popref pair is used.
type Guard struct {
	stack []T
	table *Table
}

// NewGuard returns an empty reference guard for one call tree / goroutine.
// It is not registered with any table: use it for single-goroutine call
// trees (tests, a lone caller). A goroutine forked by internal/task and
// running concurrently with others against the same *Table must instead
// use Table.NewGuard, so gc can find its live references; see gc in
// kernel.go.
func NewGuard() *Guard {
	return &Guard{stack: make([]T, 0, 8)}
}

// NewGuard returns a reference guard registered with t. Every goroutine
// racing another one to allocate nodes in t needs a registered guard,
// because a gc triggered by any one of them must be able to see what all
// of them still hold live: rudd has a single thread and a single
// refstack (gc.go), but a *Table here can be driven by several forked
// goroutines at once (spec.md §5, internal/task.Fork), so the stack a
// collecting goroutine walks has to be the union of every live Guard, not
// just its own. Call Release when the call tree finishes.
func (t *Table) NewGuard() *Guard {
	g := &Guard{stack: make([]T, 0, 8), table: t}
	t.mu.Lock()
	if t.guards == nil {
		t.guards = make(map[*Guard]struct{})
	}
	t.guards[g] = struct{}{}
	t.mu.Unlock()
	return g
}

// Release unregisters g from the table it was created with. A no-op for
// guards returned by the package-level NewGuard.
func (g *Guard) Release() {
	if g.table == nil {
		return
	}
	g.table.mu.Lock()
	delete(g.table.guards, g)
	g.table.mu.Unlock()
}

// Push protects t until the matching Pop and returns t, so pushes can be
// chained around a call: `x := g.Push(t.Or(a, b, g))`.
func (g *Guard) Push(t T) T {
	g.stack = append(g.stack, t)
	return t
}

// Pop releases the n most recently pushed references.
func (g *Guard) Pop(n int) {
	g.stack = g.stack[:len(g.stack)-n]
}

// AddRef increments the external reference count of t's node, pinning it
// against garbage collection until a matching DelRef. Used for TBDDs held
// in long-lived fields (spec.md §3 "Lifecycle"), as opposed to Guard, which
// only protects values live for the duration of one call tree.
func (t *Table) AddRef(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := v.index()
	if n >= 2 && n < len(t.nodes) && t.nodes[n].low != -1 && t.nodes[n].refcou < maxRefcount {
		t.nodes[n].refcou++
	}
	return v
}

// DelRef decrements the external reference count set by AddRef.
func (t *Table) DelRef(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := v.index()
	if n >= 2 && n < len(t.nodes) && t.nodes[n].low != -1 && t.nodes[n].refcou > 0 {
		t.nodes[n].refcou--
	}
	return v
}
