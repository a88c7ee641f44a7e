// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package model

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// writeInt32 and writeRelationHeader mirror loader.go's readInt32/readProj, so
// tests build fixtures with exactly the layout Load expects (spec.md
// §6.1) without reaching into the loader's own unexported helpers.
func writeInt32(t *testing.T, buf *bytes.Buffer, v int) {
	t.Helper()
	require.NoError(t, binary.Write(buf, binary.LittleEndian, int32(v)))
}

func writeProjLen(t *testing.T, buf *bytes.Buffer, proj []int) {
	t.Helper()
	writeInt32(t, buf, len(proj))
}

func writeProjEntries(t *testing.T, buf *bytes.Buffer, proj []int) {
	t.Helper()
	for _, c := range proj {
		writeInt32(t, buf, c)
	}
}

// writeRelationHeader emits one relation's r_k, w_k, r_proj, w_proj in
// the wire order Load expects (spec.md §6.1): both lengths before either
// array.
func writeRelationHeader(t *testing.T, buf *bytes.Buffer, rProj, wProj []int) {
	t.Helper()
	writeProjLen(t, buf, rProj)
	writeProjLen(t, buf, wProj)
	writeProjEntries(t, buf, rProj)
	writeProjEntries(t, buf, wProj)
}

func writeBDD(t *testing.T, buf *bytes.Buffer, tbl *tbdd.Table, v tbdd.T) {
	t.Helper()
	require.NoError(t, tbl.WriteBinary(buf, v))
}

// oneComponentModel builds a single vector-component (2 state bits), one
// partition model file: initial = full domain (k = -1), next[0] reads and
// writes component 0, BDD = True.
func oneComponentModel(t *testing.T, tbl *tbdd.Table, g *tbdd.Guard) []byte {
	t.Helper()
	var buf bytes.Buffer
	writeInt32(t, &buf, 1)    // vectorsize
	writeInt32(t, &buf, 2)    // statebits[0]
	writeInt32(t, &buf, 0)    // actionbits
	writeInt32(t, &buf, -1)   // k: unprojected initial set
	writeBDD(t, &buf, tbl, tbdd.True)
	writeInt32(t, &buf, 1) // next_count
	writeRelationHeader(t, &buf, []int{0}, []int{0})
	writeBDD(t, &buf, tbl, tbdd.True)
	return buf.Bytes()
}

func TestLoadParsesHeaderAndDomain(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	data := oneComponentModel(t, tbl, g)

	m, err := Load(bytes.NewReader(data), tbl, g)
	require.NoError(t, err)

	require.Equal(t, 1, m.Domain.VectorSize)
	require.Equal(t, []int{2}, m.Domain.StateBits)
	require.Equal(t, 2, m.Domain.TotalBits)
	require.Equal(t, []uint32{0, 2}, m.Domain.VectorDom)
}

func TestLoadUnprojectedInitialCoversWholeDomain(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	data := oneComponentModel(t, tbl, g)

	m, err := Load(bytes.NewReader(data), tbl, g)
	require.NoError(t, err)
	require.Equal(t, m.Domain.VectorDom, m.Initial.Variables)
}

func TestLoadMergesProjectionsIntoInterleavedVariables(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	data := oneComponentModel(t, tbl, g)

	m, err := Load(bytes.NewReader(data), tbl, g)
	require.NoError(t, err)
	require.Len(t, m.Next, 1)
	require.Equal(t, []uint32{0, 1, 2, 3}, m.Next[0].Variables)
	require.Equal(t, []uint32{0, 2}, m.Next[0].Touched())
	require.Equal(t, uint32(0), m.Next[0].LeadingVar())
}

func TestLoadComputesSatDomAsTailFromLeadingComponent(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	var buf bytes.Buffer
	writeInt32(t, &buf, 2) // vectorsize
	writeInt32(t, &buf, 1) // statebits[0]
	writeInt32(t, &buf, 1) // statebits[1]
	writeInt32(t, &buf, 0) // actionbits
	writeInt32(t, &buf, -1)
	writeBDD(t, &buf, tbl, tbdd.True)
	writeInt32(t, &buf, 1)
	writeRelationHeader(t, &buf, []int{1}, []int{1}) // only touches component 1
	writeBDD(t, &buf, tbl, tbdd.True)

	m, err := Load(bytes.NewReader(buf.Bytes()), tbl, g)
	require.NoError(t, err)
	require.Equal(t, []uint32{2}, m.Next[0].SatDom)
}

func TestLoadProjectedInitialSelectsComponentVariables(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	var buf bytes.Buffer
	writeInt32(t, &buf, 2) // vectorsize
	writeInt32(t, &buf, 1) // statebits[0]
	writeInt32(t, &buf, 3) // statebits[1]
	writeInt32(t, &buf, 0) // actionbits
	writeInt32(t, &buf, 1) // k = 1: project onto one component
	writeInt32(t, &buf, 1) // proj[0] = component 1
	writeBDD(t, &buf, tbl, tbdd.True)
	writeInt32(t, &buf, 0) // next_count = 0

	m, err := Load(bytes.NewReader(buf.Bytes()), tbl, g)
	require.NoError(t, err)
	require.Equal(t, []uint32{2, 4, 6}, m.Initial.Variables)
	require.Empty(t, m.Next)
}

func TestLoadRejectsTruncatedHeader(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	_, err := Load(bytes.NewReader([]byte{1, 2, 3}), tbl, g)
	require.Error(t, err)
}
