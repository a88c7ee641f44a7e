// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package model

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// Load reads the binary model layout of spec.md §6.1 from r and returns
// the fully parsed Model. t is the shared node table the embedded TBDD
// blobs are decoded into; g protects the decoded TBDDs (the initial set
// and each relation) for the duration of the call and is restored to its
// previous depth on return (the caller is expected to protect anything it
// keeps past Load's return, exactly as any other long-lived TBDD).
//
// Any short read or malformed field aborts immediately with a wrapped
// error identifying which field failed — spec.md §7 kind 2/3 ("I/O",
// "Format"): this loader never guesses at a partial or corrupt file.
func Load(r io.Reader, t *tbdd.Table, g *tbdd.Guard) (*Model, error) {
	vectorSize, err := readInt32(r, "vectorsize")
	if err != nil {
		return nil, err
	}
	if vectorSize < 0 {
		return nil, fmt.Errorf("model: vectorsize must be non-negative, got %d", vectorSize)
	}

	stateBits := make([]int, vectorSize)
	for i := range stateBits {
		b, err := readInt32(r, fmt.Sprintf("statebits[%d]", i))
		if err != nil {
			return nil, err
		}
		if b < 0 {
			return nil, fmt.Errorf("model: statebits[%d] must be non-negative, got %d", i, b)
		}
		stateBits[i] = b
	}

	actionBits, err := readInt32(r, "actionbits")
	if err != nil {
		return nil, err
	}

	dom := newDomain(vectorSize, stateBits, actionBits)

	initial, err := loadInitial(r, t, g, dom)
	if err != nil {
		return nil, err
	}
	// Keep every decoded TBDD on g until Load returns, so a collection
	// triggered while decoding a later blob cannot reclaim an earlier one.
	g.Push(initial.BDD)
	pushed := 1
	defer func() { g.Pop(pushed) }()

	nextCount, err := readInt32(r, "next_count")
	if err != nil {
		return nil, err
	}
	if nextCount < 0 {
		return nil, fmt.Errorf("model: next_count must be non-negative, got %d", nextCount)
	}

	relations := make([]Relation, nextCount)
	for i := range relations {
		rK, err := readInt32(r, fmt.Sprintf("next[%d].r_k", i))
		if err != nil {
			return nil, err
		}
		wK, err := readInt32(r, fmt.Sprintf("next[%d].w_k", i))
		if err != nil {
			return nil, err
		}
		rProj, err := readProj(r, rK, fmt.Sprintf("next[%d].r_proj", i))
		if err != nil {
			return nil, err
		}
		wProj, err := readProj(r, wK, fmt.Sprintf("next[%d].w_proj", i))
		if err != nil {
			return nil, err
		}
		for _, c := range append(append([]int(nil), rProj...), wProj...) {
			if c < 0 || c >= vectorSize {
				return nil, fmt.Errorf("model: next[%d] projection entry %d out of range [0,%d)", i, c, vectorSize)
			}
		}
		relations[i].RProj = rProj
		relations[i].WProj = wProj
	}

	for i := range relations {
		blob, err := t.ReaderFromBinary(r, g)
		if err != nil {
			return nil, fmt.Errorf("model: next[%d].bdd: %w", i, err)
		}
		g.Push(blob)
		pushed++
		relations[i].BDD = blob
		relations[i].Variables = mergeProjToVariables(dom, relations[i].RProj, relations[i].WProj)
		relations[i].SatDom = satDom(dom, relations[i].Variables)
	}

	return &Model{Domain: dom, Initial: initial, Next: relations}, nil
}

func loadInitial(r io.Reader, t *tbdd.Table, g *tbdd.Guard, dom Domain) (StateSet, error) {
	k, err := readInt32(r, "k")
	if err != nil {
		return StateSet{}, err
	}

	var variables []uint32
	if k == -1 {
		variables = dom.VectorDom
	} else {
		if k < 0 {
			return StateSet{}, fmt.Errorf("model: k must be -1 or non-negative, got %d", k)
		}
		proj := make([]int, k)
		for i := range proj {
			c, err := readInt32(r, fmt.Sprintf("proj[%d]", i))
			if err != nil {
				return StateSet{}, err
			}
			if c < 0 || c >= dom.VectorSize {
				return StateSet{}, fmt.Errorf("model: proj[%d] = %d out of range [0,%d)", i, c, dom.VectorSize)
			}
			proj[i] = c
		}
		sort.Ints(proj)
		for _, c := range proj {
			variables = append(variables, dom.componentVars(c)...)
		}
	}

	bdd, err := t.ReaderFromBinary(r, g)
	if err != nil {
		return StateSet{}, fmt.Errorf("model: initial_states: %w", err)
	}
	return StateSet{BDD: bdd, Variables: variables}, nil
}

// mergeProjToVariables computes a partition's Variables (spec.md §4.2
// "Variable set computation"): a_proj is the sorted deduplicated union of
// r_proj and w_proj, walked into interleaved even/odd bit-variable pairs.
func mergeProjToVariables(dom Domain, rProj, wProj []int) []uint32 {
	seen := make(map[int]bool, len(rProj)+len(wProj))
	var aProj []int
	for _, c := range rProj {
		if !seen[c] {
			seen[c] = true
			aProj = append(aProj, c)
		}
	}
	for _, c := range wProj {
		if !seen[c] {
			seen[c] = true
			aProj = append(aProj, c)
		}
	}
	sort.Ints(aProj)

	var vars []uint32
	for _, c := range aProj {
		for _, even := range dom.componentVars(c) {
			vars = append(vars, even, even+1)
		}
	}
	return vars
}

// satDom computes spec.md §4.2's "satdom": the tail of the global domain
// starting at the partition's first touched state-vector component.
func satDom(dom Domain, variables []uint32) []uint32 {
	if len(variables) == 0 {
		return dom.VectorDom
	}
	leading := variables[0]
	// VectorDom[j] == 2*j by construction, so the state-bit index top is
	// also its own index into VectorDom.
	start := int(leading / 2)
	if start < 0 {
		start = 0
	}
	if start >= len(dom.VectorDom) {
		return nil
	}
	return dom.VectorDom[start:]
}

func readInt32(r io.Reader, field string) (int, error) {
	var v int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("model: reading %s: %w", field, err)
	}
	return int(v), nil
}

func readProj(r io.Reader, n int, field string) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("model: %s length must be non-negative, got %d", field, n)
	}
	proj := make([]int, n)
	for i := range proj {
		c, err := readInt32(r, fmt.Sprintf("%s[%d]", field, i))
		if err != nil {
			return nil, err
		}
		proj[i] = c
	}
	return proj, nil
}
