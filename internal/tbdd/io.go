// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// ReaderFromBinary decodes a TBDD previously written by WriteBinary: a
// small self-contained node dump. internal/model.Load uses it for every
// TBDD blob embedded in a model file (the initial set and each relation),
// and the loader tests build their fixtures with WriteBinary. The layout
// is this package's own, in the same little-endian, length-prefixed style
// as the rest of the model file. r is read directly, without an extra
// buffer, so exactly the blob's bytes are consumed and the caller can go
// on reading the fields that follow it.
func (t *Table) ReaderFromBinary(r io.Reader, g *Guard) (T, error) {
	br := r

	var rootTag uint32
	if err := binary.Read(br, binary.LittleEndian, &rootTag); err != nil {
		return False, fmt.Errorf("tbdd: ReaderFromBinary: root tag: %w", err)
	}
	var rootIsLeaf uint8
	if err := binary.Read(br, binary.LittleEndian, &rootIsLeaf); err != nil {
		return False, fmt.Errorf("tbdd: ReaderFromBinary: root kind: %w", err)
	}
	if rootIsLeaf != 0 {
		var leafVal uint8
		if err := binary.Read(br, binary.LittleEndian, &leafVal); err != nil {
			return False, fmt.Errorf("tbdd: ReaderFromBinary: leaf value: %w", err)
		}
		if leafVal != 0 {
			return SetTag(True, rootTag), nil
		}
		return SetTag(False, rootTag), nil
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return False, fmt.Errorf("tbdd: ReaderFromBinary: node count: %w", err)
	}

	// remap maps the file's own node indices (0 and 1 reserved for the
	// leaves, as in the node table) onto freshly allocated indices in
	// this table, so two decoded TBDDs never alias each other's nodes.
	remap := map[uint32]T{0: False, 1: True}
	for i := uint32(0); i < count; i++ {
		var rec struct {
			Index uint32
			Level uint32
			Low   uint32
			High  uint32
		}
		if err := binary.Read(br, binary.LittleEndian, &rec); err != nil {
			return False, fmt.Errorf("tbdd: ReaderFromBinary: node %d: %w", i, err)
		}
		low, ok := remap[rec.Low]
		if !ok {
			return False, fmt.Errorf("tbdd: ReaderFromBinary: node %d: forward reference to low %d", rec.Index, rec.Low)
		}
		high, ok := remap[rec.High]
		if !ok {
			return False, fmt.Errorf("tbdd: ReaderFromBinary: node %d: forward reference to high %d", rec.Index, rec.High)
		}
		n := t.MakeNode(rec.Level, low, high, NoTag, g)
		remap[rec.Index] = n
	}

	if count == 0 {
		return False, fmt.Errorf("tbdd: ReaderFromBinary: missing root node")
	}
	root, ok := remap[count+1]
	if !ok {
		return False, fmt.Errorf("tbdd: ReaderFromBinary: missing root node")
	}
	return SetTag(root, rootTag), nil
}

// WriteBinary is ReaderFromBinary's inverse: it walks v bottom-up (low and
// high before their parent, so the reader never needs a forward-reference
// fixup pass) and emits one record per distinct node.
func (t *Table) WriteBinary(w io.Writer, v T) error {
	bw := bufio.NewWriter(w)

	if t.IsLeaf(v) {
		if err := binary.Write(bw, binary.LittleEndian, GetTag(v)); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint8(1)); err != nil {
			return err
		}
		val := uint8(0)
		if NoTagged(v) == True {
			val = 1
		}
		if err := binary.Write(bw, binary.LittleEndian, val); err != nil {
			return err
		}
		return bw.Flush()
	}

	order := make([]int, 0)
	seen := make(map[int]bool)
	t.topoWrite(v.index(), seen, &order)

	if err := binary.Write(bw, binary.LittleEndian, GetTag(v)); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint8(0)); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(order))); err != nil {
		return err
	}
	index := map[int]uint32{0: 0, 1: 1}
	for i, n := range order {
		index[n] = uint32(i + 2)
	}
	for i, n := range order {
		rec := struct {
			Index uint32
			Level uint32
			Low   uint32
			High  uint32
		}{
			Index: uint32(i + 2),
			Level: t.nodes[n].level,
			Low:   index[t.nodes[n].low],
			High:  index[t.nodes[n].high],
		}
		if err := binary.Write(bw, binary.LittleEndian, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (t *Table) topoWrite(n int, seen map[int]bool, order *[]int) {
	if n < 2 || seen[n] {
		return
	}
	t.topoWrite(t.nodes[n].low, seen, order)
	t.topoWrite(t.nodes[n].high, seen, order)
	seen[n] = true
	*order = append(*order, n)
}
