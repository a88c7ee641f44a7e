// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package model

import "github.com/tbddmc/tbddmc/internal/tbdd"

// StateSet pairs a TBDD with the domain it ranges over (spec.md §3
// "State set"). Variables is either the full state domain, when the
// model file declares an unprojected initial set, or a subset when the
// file projects the initial set onto a handful of vector components.
type StateSet struct {
	BDD       tbdd.T
	Variables []uint32
}

// Relation is one partition of the transition relation (spec.md §3
// "Relation"): a TBDD over a subset of the interleaved even/odd variable
// domain, together with the vector-component projections that produced
// that subset and the satdom tail used to keep relnext/or local to the
// partition's own suffix of the domain during saturation.
type Relation struct {
	BDD       tbdd.T
	Variables []uint32 // sorted even+odd variable ids this partition reads or writes
	RProj     []int    // sorted ascending vector-component indices read
	WProj     []int    // sorted ascending vector-component indices written
	SatDom    []uint32 // tail of VectorDom starting at this partition's first touched component
}

// LeadingVar returns the smallest variable in Variables, or tbdd.NoVar if
// the partition touches nothing (Variables is empty) — spec.md §4.2/§4.5's
// `tbdd_getvar(variables)` / "leading variable of next[idx].variables".
func (r Relation) LeadingVar() uint32 {
	if len(r.Variables) == 0 {
		return tbdd.NoVar
	}
	return r.Variables[0]
}

// Touched returns the sorted list of even (current-state) variables this
// partition constrains — internal/tbdd.RelNext's "touched" parameter.
func (r Relation) Touched() []uint32 {
	touched := make([]uint32, 0, len(r.Variables)/2+1)
	for _, v := range r.Variables {
		if v%2 == 0 {
			touched = append(touched, v)
		}
	}
	return touched
}

// Model is the fully loaded, immutable description of one transition
// system: domain metadata, one initial state set, and next_count
// partitions of the transition relation.
type Model struct {
	Domain  Domain
	Initial StateSet
	Next    []Relation
}
