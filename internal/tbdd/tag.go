// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

// T is a reference to a Tagged Binary Decision Diagram edge: a node table
// index together with the tag of the edge pointing to it. We pack both into
// a single machine word, the same trick Sylvan uses to keep a TBDD the size
// of a single pointer, except that where Sylvan's tag is an index into a
// separate per-relation domain array, ours stores the absolute variable
// number directly. That difference is deliberate (see ExtendDomain): it
// trades one level of indirection Sylvan needs
// for its cofactor cache against a representation where a TBDD is
// self-describing regardless of which domain produced it.
type T uint64

const (
	indexBits = 40
	indexMask = (uint64(1) << indexBits) - 1
	tagShift  = indexBits
)

// NoTag is the sentinel tag meaning "no skip": the edge is exactly at its
// node's own variable, equivalent to an untagged BDD edge.
const NoTag uint32 = 0xFFFFF

// NoVar is the sentinel spec.md §9 calls out ("Sentinel 0xFFFFF") for "this
// TBDD is a leaf, it has no variable".
const NoVar uint32 = 0xFFFFF

func pack(index int, tag uint32) T {
	return T(uint64(index)&indexMask | uint64(tag)<<tagShift)
}

func (t T) index() int {
	return int(uint64(t) & indexMask)
}

// GetTag returns the tag carried by t: the first variable t is known to be
// insensitive to.
func GetTag(t T) uint32 {
	return uint32(uint64(t) >> tagShift)
}

// GetNode returns the node-table index t points to, independently of its
// tag. Passing it to a leaf (False or True) is legal and yields 0 or 1.
func GetNode(t T) int {
	return t.index()
}

// NoTagged strips the tag from t, so that e.g. NoTagged(set) == True tests
// whether set's underlying node is the constant True regardless of the tag
// carried by the edge pointing to it. Named NoTagged rather than NoTag (a
// package-level constant already has that name) to keep both spellings
// available without shadowing.
func NoTagged(t T) T {
	return pack(t.index(), NoTag)
}

// SetTag returns a new T pointing to the same node as t, with its tag
// replaced. Used by saturation (spec.md §4.5 Case B) to shift the point at
// which a set is treated as don't-care.
func SetTag(t T, tag uint32) T {
	return pack(t.index(), tag)
}

// False is the constant empty set / Boolean false.
var False = pack(0, NoTag)

// True is the constant universal set (over an empty domain) / Boolean true.
var True = pack(1, NoTag)
