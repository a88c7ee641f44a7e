// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

// ExistsOdd existentially quantifies every odd (next-state) variable out of
// v, leaving a predicate over the even (current-state) variables in dom.
// Grounded on rudd's Exist (operations.go), generalized to walk interleaved
// even/odd pairs the way RelNext does rather than a caller-supplied variable
// set: dom is the sorted list of even variables v is defined over (typically
// a Relation's Touched()), and each entry's odd partner is quantified away
// as soon as it is reached.
//
// This is the "enabled" predicate internal/reach's deadlock check is built
// on: the projection of a relation onto {s | exists s'. rel(s,s')} tells
// which current states that partition can fire from.
func (t *Table) ExistsOdd(v T, dom []uint32, g *Guard) T {
	return t.existsOdd(v, dom, g)
}

func (t *Table) existsOdd(v T, dom []uint32, g *Guard) T {
	if v == False {
		return False
	}
	if len(dom) == 0 {
		if NoTagged(v) == True {
			return True
		}
		return False
	}

	key := relKey(dom, nil)
	if res, ok := t.CacheGet3(opExistsOdd, v, key, False); ok {
		return res
	}

	ev := dom[0]
	rest := dom[1:]

	lo, hi := t.cofactor(v, ev)
	g.Push(v)
	loLo, loHi := t.cofactor(lo, ev+1)
	hiLo, hiHi := t.cofactor(hi, ev+1)

	loQ := t.Or(loLo, loHi, g)
	g.Push(loQ)
	hiQ := t.Or(hiLo, hiHi, g)
	g.Push(hiQ)

	outLo := t.existsOdd(loQ, rest, g)
	g.Push(outLo)
	outHi := t.existsOdd(hiQ, rest, g)
	g.Push(outHi)

	result := t.MakeNode(ev, outLo, outHi, NoTag, g)
	g.Pop(5)

	t.CachePut3(opExistsOdd, v, key, False, result)
	return result
}

// ExistsEven is ExistsOdd's mirror, quantifying the even (current-state)
// half of each pair instead and leaving a predicate over the odd
// variables. internal/reach has no direct use for it — deadlock detection
// only ever needs to quantify away the "where do we end up" half — but it
// is kept and exercised by tests as the natural dual operation on the same
// interleaved representation, sharing its own cache opcode so it can never
// be confused with ExistsOdd results.
func (t *Table) ExistsEven(v T, dom []uint32, g *Guard) T {
	return t.existsEven(v, dom, g)
}

func (t *Table) existsEven(v T, dom []uint32, g *Guard) T {
	if v == False {
		return False
	}
	if len(dom) == 0 {
		if NoTagged(v) == True {
			return True
		}
		return False
	}

	key := relKey(dom, nil)
	if res, ok := t.CacheGet3(opExistsEven, v, key, False); ok {
		return res
	}

	ev := dom[0]
	rest := dom[1:]

	evLo, evHi := t.cofactor(v, ev)
	g.Push(v)
	q := t.Or(evLo, evHi, g)
	g.Push(q)

	qLo, qHi := t.cofactor(q, ev+1)
	outLo := t.existsEven(qLo, rest, g)
	g.Push(outLo)
	outHi := t.existsEven(qHi, rest, g)
	g.Push(outHi)

	result := t.MakeNode(ev+1, outLo, outHi, NoTag, g)
	g.Pop(4)

	t.CachePut3(opExistsEven, v, key, False, result)
	return result
}
