// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package model

// Domain is the process-wide, immutable metadata describing a model's
// state vector (spec.md §3 "Domain metadata"). It is created once by
// Load and never mutated afterwards.
type Domain struct {
	VectorSize int     // number of integer components in a state vector
	StateBits  []int   // bit-width of each component, len == VectorSize
	TotalBits  int     // sum of StateBits
	ActionBits int     // bits for the (unused by this engine) action label
	VectorDom  []uint32 // {0, 2, 4, ..., 2*(TotalBits-1)}: even current-state variables
}

// newDomain derives TotalBits and VectorDom from VectorSize/StateBits,
// the same walk the original loader performs inline while reading the
// header.
func newDomain(vectorSize int, stateBits []int, actionBits int) Domain {
	total := 0
	for _, b := range stateBits {
		total += b
	}
	dom := make([]uint32, total)
	for i := 0; i < total; i++ {
		dom[i] = uint32(2 * i)
	}
	return Domain{
		VectorSize: vectorSize,
		StateBits:  stateBits,
		TotalBits:  total,
		ActionBits: actionBits,
		VectorDom:  dom,
	}
}

// componentVar returns the even (current-state) variable id of the first
// bit of vector component i, given the domain's per-component bit widths.
// Components are laid out in order, each contributing statebits[i]
// consecutive (even, odd) variable pairs.
func (d Domain) componentVar(i int) uint32 {
	v := 0
	for j := 0; j < i; j++ {
		v += d.StateBits[j]
	}
	return uint32(2 * v)
}

// componentVars returns the full sorted list of even variable ids vector
// component i occupies.
func (d Domain) componentVars(i int) []uint32 {
	base := d.componentVar(i)
	vars := make([]uint32, d.StateBits[i])
	for b := 0; b < d.StateBits[i]; b++ {
		vars[b] = base + uint32(2*b)
	}
	return vars
}
