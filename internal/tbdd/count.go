// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

import "math/big"

// SatCount returns the number of distinct vectors over dom that v denotes,
// as a big.Int since reachable-state counts routinely overflow 64 bits on
// the larger models spec.md §8 exercises (dining philosophers, N large).
// Grounded on rudd's Satcount (operations.go): a single recursive pass
// that, at each node, multiplies by 2 for every domain variable the
// traversal skips before reaching (or after leaving) a real decision.
func (t *Table) SatCount(v T, dom []uint32) *big.Int {
	if v == False {
		return big.NewInt(0)
	}
	count := t.satcountrec(v, dom, 0)
	// satcountrec starts at dom[0] and accounts for every entry of dom, so
	// no further scaling is applied here.
	return count
}

func (t *Table) satcountrec(v T, dom []uint32, pos int) *big.Int {
	if pos >= len(dom) {
		if NoTagged(v) == True {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	if v == False {
		return big.NewInt(0)
	}
	if NoTagged(v) == True {
		remaining := len(dom) - pos
		return new(big.Int).Lsh(big.NewInt(1), uint(remaining))
	}

	lo, hi := t.cofactor(v, dom[pos])
	loCount := t.satcountrec(lo, dom, pos+1)
	hiCount := t.satcountrec(hi, dom, pos+1)
	return new(big.Int).Add(loCount, hiCount)
}

// NodeCount returns the number of distinct nodes reachable from v,
// counting shared subgraphs once. Grounded on rudd's Allnodes/markrec
// (debug.go, kernel.go): a mark-sweep-style traversal that reuses the same
// `marked` scratch bit the garbage collector uses, then clears it again so
// a concurrent or later GC is unaffected.
func (t *Table) NodeCount(v T) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.countrec(v.index())
	t.unmarkrec(v.index())
	return n
}

func (t *Table) countrec(n int) int {
	if n < 2 || t.nodes[n].marked {
		return 0
	}
	t.nodes[n].marked = true
	return 1 + t.countrec(t.nodes[n].low) + t.countrec(t.nodes[n].high)
}

func (t *Table) unmarkrec(n int) {
	if n < 2 || !t.nodes[n].marked {
		return
	}
	t.nodes[n].marked = false
	t.unmarkrec(t.nodes[n].low)
	t.unmarkrec(t.nodes[n].high)
}
