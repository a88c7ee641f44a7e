// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

// Or, And and Diff are the three Boolean combinators spec.md §6.3 lists
// for the TBDD package. They are written as a single shared recursive
// cofactor-and-combine, the same shape rudd's operations.go apply/ite use
// for ordinary BDDs, generalized to read tagged edges the way go_sat does
// in tbddmc.c: at each step the two operands are cofactored on whichever
// variable comes first, tag or node level, rather than on the node level
// alone.
//
// g must be non-nil whenever a or b might still be needed after this call
// returns; And/Or/Diff push their own recursion's intermediate results
// onto g and pop them before returning, but the caller is responsible for
// protecting a and b themselves if a later allocation could collect them.
func (t *Table) Or(a, b T, g *Guard) T {
	return t.apply(opOr, a, b, g)
}

func (t *Table) And(a, b T, g *Guard) T {
	return t.apply(opAnd, a, b, g)
}

func (t *Table) Diff(a, b T, g *Guard) T {
	return t.apply(opDiff, a, b, g)
}

// Not complements a TBDD relative to True; TBDD sets in this engine are
// never complemented relative to an implicit domain since spec.md's state
// sets are monotone (tag-skipped variables default to false), so Not is
// provided only for completeness and is grounded on the Diff(True, x)
// identity rather than a dedicated traversal.
func (t *Table) Not(a T, g *Guard) T {
	return t.Diff(True, a, g)
}

func (t *Table) apply(op uint64, a, b T, g *Guard) T {
	switch op {
	case opAnd:
		if a == False || b == False {
			return False
		}
		if NoTagged(a) == True {
			return b
		}
		if NoTagged(b) == True {
			return a
		}
		if a == b {
			return a
		}
	case opOr:
		if a == False {
			return b
		}
		if b == False {
			return a
		}
		if NoTagged(a) == True || NoTagged(b) == True {
			return True
		}
		if a == b {
			return a
		}
	case opDiff:
		if a == False {
			return False
		}
		if b == False {
			return a
		}
		if a == b {
			return False
		}
	}

	lo := uint64(a)
	hi := uint64(b)
	if op == opOr && lo > hi {
		lo, hi = hi, lo // Or is commutative; canonicalize for better cache reuse
	}
	if res, ok := t.CacheGet3(op, T(lo), T(hi), False); ok {
		return res
	}

	pivot := t.pivotVar(a, b)
	g.Push(a)
	g.Push(b)

	aLow, aHigh := t.cofactor(a, pivot)
	bLow, bHigh := t.cofactor(b, pivot)

	low := t.apply(op, aLow, bLow, g)
	g.Push(low)
	high := t.apply(op, aHigh, bHigh, g)
	g.Pop(1)

	result := t.MakeNode(pivot, low, high, NoTag, g)
	g.Pop(2)

	t.CachePut3(op, T(lo), T(hi), False, result)
	return result
}

// pivotVar returns the first variable either a or b is sensitive to,
// mirroring go_sat's `pivot_var = min(set_tag, set_var, rel_var)` but with
// two TBDD operands instead of one set and one relation.
func (t *Table) pivotVar(a, b T) uint32 {
	va := t.effectiveVar(a)
	vb := t.effectiveVar(b)
	if va < vb {
		return va
	}
	return vb
}

func (t *Table) effectiveVar(v T) uint32 {
	if t.IsLeaf(v) {
		return NoVar
	}
	tag := GetTag(v)
	nodeVar := t.GetVar(v)
	if tag != NoTag && tag < nodeVar {
		return tag
	}
	return nodeVar
}

// cofactor returns v's low and high branches with respect to pivot. Two
// distinct situations can both leave v without a real node at pivot:
//
//   - v's own tag explicitly covers pivot (tag <= pivot < its node's
//     level): v is a zero-suppressed edge and every vector it denotes has
//     a zero at pivot, so the high branch is False and the low branch
//     continues with the tag shifted past pivot. Grounded on tbddmc.c's
//     go_sat Case B (`pivot_var < set_var`).
//   - v simply has no node this shallow and carries no tag saying so
//     (NoTag, or pivot is still before the tag's own start): the joint
//     traversal (Or/And/Diff, RelNext) picked pivot from the OTHER
//     operand, and v does not depend on it at all, so both branches are v
//     itself unchanged — ordinary BDD don't-care, the rudd apply()
//     convention (operations.go) for an operand that lags behind the
//     pivot.
//
// Once pivot reaches v's own node, the real children are read.
func (t *Table) cofactor(v T, pivot uint32) (lo, hi T) {
	if t.IsLeaf(v) {
		return v, v
	}
	nodeVar := t.GetVar(v)
	if pivot >= nodeVar {
		return t.GetLow(v), t.GetHigh(v)
	}
	tag := GetTag(v)
	if tag != NoTag && pivot >= tag {
		return SetTag(v, pivot+2), False
	}
	return v, v
}
