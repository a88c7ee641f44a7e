// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

import "github.com/sirupsen/logrus"

// MakeNode returns the (possibly shared) node for (level, low, high),
// tagged with tag. Adapted from rudd's hudd.makenode/nodehash (hkernel.go):
// we look the triplet up in the unicity table first, and only allocate (and
// possibly garbage collect or resize) on a miss. Mirrors spec.md §4.5/§4.2's
// use of makenode to materialize default-zero levels and identity cubes.
//
// g protects every live T the caller still needs after this call might
// trigger a garbage collection; see Guard.
func (t *Table) MakeNode(level uint32, low, high T, tag uint32, g *Guard) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	if low == high {
		return SetTag(low, tag)
	}
	n, err := t.makenode(level, low.index(), high.index(), g)
	if err != nil {
		t.seterror("tbdd: makenode(%d): %v", level, err)
		return False
	}
	return pack(n, tag)
}

func (t *Table) makenode(level uint32, low, high int, g *Guard) (int, error) {
	t.stats.UniqueAccess++
	k := key{level, low, high}
	if n, ok := t.unique[k]; ok {
		t.stats.UniqueHit++
		return n, nil
	}
	t.stats.UniqueMiss++
	if t.freenum == 0 {
		t.gc(g)
		if (t.freenum*100)/len(t.nodes) <= t.cfg.minfreenodes {
			if err := t.resize(); err != nil {
				return -1, err
			}
		}
		if t.freenum == 0 {
			return -1, errMemory
		}
	}
	n := t.freepos
	t.freepos = t.nodes[n].high
	t.freenum--
	t.produced++
	t.nodes[n] = node{level: level, low: low, high: high}
	t.unique[k] = n
	return n, nil
}

func (t *Table) delnode(n node) {
	delete(t.unique, key{n.level, n.low, n.high})
}

// gc reclaims nodes with no live reference, following roots in g and every
// node whose refcou is still positive (spec.md §5's cooperative, safe-point
// garbage collection: callers must have pushed their live TBDDs onto g
// before allocating).
func (t *Table) gc(g *Guard) {
	if t.preGC != nil {
		t.preGC()
	}
	t.stats.Collections++
	t.log.Debug("tbdd: starting garbage collection")
	if g != nil {
		for _, r := range g.stack {
			t.markrec(r.index())
		}
	}
	// Every goroutine forked against this table may be holding references
	// only it knows about while blocked waiting for t.mu; g above is just
	// the caller that happened to trigger this collection. Registered
	// guards (Table.NewGuard) are the mechanism those other goroutines use
	// to stay visible to a collection they didn't start themselves.
	for gd := range t.guards {
		if gd == g {
			continue
		}
		for _, r := range gd.stack {
			t.markrec(r.index())
		}
	}
	for i := range t.nodes {
		if t.nodes[i].refcou > 0 {
			t.markrec(i)
		}
	}
	t.freepos = 0
	t.freenum = 0
	for n := len(t.nodes) - 1; n > 1; n-- {
		if t.nodes[n].marked && t.nodes[n].low != -1 {
			t.nodes[n].marked = false
			continue
		}
		if t.nodes[n].low != -1 {
			t.delnode(t.nodes[n])
		}
		t.nodes[n].low = -1
		t.nodes[n].high = t.freepos
		t.freepos = n
		t.freenum++
	}
	t.log.WithField("free", t.freenum).Debug("tbdd: garbage collection done")
	if t.postGC != nil {
		t.postGC()
	}
}

func (t *Table) markrec(n int) {
	if n < 2 || t.nodes[n].marked || t.nodes[n].low == -1 {
		return
	}
	t.nodes[n].marked = true
	t.markrec(t.nodes[n].low)
	t.markrec(t.nodes[n].high)
}

func (t *Table) resize() error {
	old := len(t.nodes)
	if t.cfg.maxnodesize > 0 && old >= t.cfg.maxnodesize {
		return errMemory
	}
	size := old * 2
	if t.cfg.maxnodeincrease > 0 && size > old+t.cfg.maxnodeincrease {
		size = old + t.cfg.maxnodeincrease
	}
	if t.cfg.maxnodesize > 0 && size > t.cfg.maxnodesize {
		size = t.cfg.maxnodesize
	}
	if size <= old {
		return errMemory
	}
	grown := make([]node, size)
	copy(grown, t.nodes)
	for n := old; n < size; n++ {
		grown[n] = node{low: -1, high: n + 1}
	}
	grown[size-1].high = 0
	t.nodes = grown
	t.freepos = old
	t.freenum += size - old
	t.opcache.resize(size)
	t.log.WithFields(logrus.Fields{"old": old, "new": size}).Debug("tbdd: resized node table")
	return nil
}
