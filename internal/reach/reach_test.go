// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbddmc/tbddmc/internal/model"
	"github.com/tbddmc/tbddmc/internal/task"
	"github.com/tbddmc/tbddmc/internal/tbdd"
)

// oneBitToggle builds a single state-bit model whose only partition flips
// that bit every step: from x=0 the full two-state domain is reachable in
// one level, and stays put afterwards.
func oneBitToggle(tbl *tbdd.Table, g *tbdd.Guard) *model.Model {
	toggleLo := tbl.FromArray([]uint32{0, 1}, []int{0, 1}, g) // x=0, x'=1
	toggleHi := tbl.FromArray([]uint32{0, 1}, []int{1, 0}, g) // x=1, x'=0
	rel := tbl.Or(toggleLo, toggleHi, g)
	initial := tbl.FromArray([]uint32{0}, []int{0}, g)

	return &model.Model{
		Domain: model.Domain{VectorSize: 1, StateBits: []int{1}, TotalBits: 1, VectorDom: []uint32{0}},
		Initial: model.StateSet{BDD: initial, Variables: []uint32{0}},
		Next: []model.Relation{
			{BDD: rel, Variables: []uint32{0, 1}, RProj: []int{0}, WProj: []int{0}, SatDom: []uint32{0}},
		},
	}
}

// oneWayToggle builds the same one-bit domain but with a relation that only
// fires from x=0 (to x=1): x=1 is a deadlock state.
func oneWayToggle(tbl *tbdd.Table, g *tbdd.Guard) *model.Model {
	rel := tbl.FromArray([]uint32{0, 1}, []int{0, 1}, g) // x=0, x'=1 only
	initial := tbl.FromArray([]uint32{0}, []int{0}, g)

	return &model.Model{
		Domain: model.Domain{VectorSize: 1, StateBits: []int{1}, TotalBits: 1, VectorDom: []uint32{0}},
		Initial: model.StateSet{BDD: initial, Variables: []uint32{0}},
		Next: []model.Relation{
			{BDD: rel, Variables: []uint32{0, 1}, RProj: []int{0}, WProj: []int{0}, SatDom: []uint32{0}},
		},
	}
}

// twoComponentToggle builds two independent one-bit components, each
// flipped by its own partition: all four combinations are reachable.
func twoComponentToggle(tbl *tbdd.Table, g *tbdd.Guard) *model.Model {
	rel0 := tbl.Or(
		tbl.FromArray([]uint32{0, 1}, []int{0, 1}, g),
		tbl.FromArray([]uint32{0, 1}, []int{1, 0}, g),
		g,
	)
	rel1 := tbl.Or(
		tbl.FromArray([]uint32{2, 3}, []int{0, 1}, g),
		tbl.FromArray([]uint32{2, 3}, []int{1, 0}, g),
		g,
	)
	initial := tbl.FromArray([]uint32{0, 2}, []int{0, 0}, g)

	return &model.Model{
		Domain: model.Domain{VectorSize: 2, StateBits: []int{1, 1}, TotalBits: 2, VectorDom: []uint32{0, 2}},
		Initial: model.StateSet{BDD: initial, Variables: []uint32{0, 2}},
		Next: []model.Relation{
			{BDD: rel0, Variables: []uint32{0, 1}, RProj: []int{0}, WProj: []int{0}, SatDom: []uint32{0, 2}},
			{BDD: rel1, Variables: []uint32{2, 3}, RProj: []int{1}, WProj: []int{1}, SatDom: []uint32{2}},
		},
	}
}

// emptyRelationModel builds a model with zero partitions (spec.md §8
// concrete scenario 1, "Empty relation"): no transition ever fires, so
// the reachable set is exactly the initial set.
func emptyRelationModel(tbl *tbdd.Table, g *tbdd.Guard) *model.Model {
	initial := tbl.FromArray([]uint32{0}, []int{0}, g)

	return &model.Model{
		Domain:  model.Domain{VectorSize: 1, StateBits: []int{1}, TotalBits: 1, VectorDom: []uint32{0}},
		Initial: model.StateSet{BDD: initial, Variables: []uint32{0}},
		Next:    []model.Relation{},
	}
}

func cloneInitial(m *model.Model) *model.Model {
	clone := *m
	clone.Initial = m.Initial
	return &clone
}

func TestRunBFSOneBitToggleReachesBothStates(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	m := oneBitToggle(tbl, g)

	res, err := Run(tbl, m, BFS, Options{}, g)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tbl.SatCount(res.Visited, []uint32{0}).Int64())
}

func TestRunParMatchesBFS(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	base := oneBitToggle(tbl, g)

	bfsRes, err := Run(tbl, cloneInitial(base), BFS, Options{}, g)
	require.NoError(t, err)
	parRes, err := Run(tbl, cloneInitial(base), PAR, Options{Pool: task.New(2)}, g)
	require.NoError(t, err)

	assert.Equal(t, bfsRes.Visited, parRes.Visited)
}

func TestRunSatMatchesBFS(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	base := twoComponentToggle(tbl, g)
	SortByLeadingVariable(base.Next)

	bfsRes, err := Run(tbl, cloneInitial(base), BFS, Options{}, g)
	require.NoError(t, err)
	satRes, err := Run(tbl, cloneInitial(base), SAT, Options{}, g)
	require.NoError(t, err)

	assert.Equal(t, bfsRes.Visited, satRes.Visited)
	assert.Equal(t, int64(4), tbl.SatCount(satRes.Visited, base.Domain.VectorDom).Int64())
}

func TestRunChainingMatchesBFS(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	base := twoComponentToggle(tbl, g)

	bfsRes, err := Run(tbl, cloneInitial(base), BFS, Options{}, g)
	require.NoError(t, err)
	chainRes, err := Run(tbl, cloneInitial(base), Chaining, Options{}, g)
	require.NoError(t, err)

	assert.Equal(t, bfsRes.Visited, chainRes.Visited)
}

func TestRunBFSEmptyRelationReturnsInitialOnly(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	m := emptyRelationModel(tbl, g)

	res, err := Run(tbl, m, BFS, Options{}, g)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tbl.SatCount(res.Visited, []uint32{0}).Int64())
	assert.Equal(t, m.Initial.BDD, res.Visited)
}

func TestRunParEmptyRelationReturnsInitialOnly(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	m := emptyRelationModel(tbl, g)

	res, err := Run(tbl, m, PAR, Options{Pool: task.New(2)}, g)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tbl.SatCount(res.Visited, []uint32{0}).Int64())
	assert.Equal(t, m.Initial.BDD, res.Visited)
}

func TestDeadlocksFindsStatesWithNoEnabledPartition(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	m := oneWayToggle(tbl, g)

	res, err := Run(tbl, m, BFS, Options{CheckDeadlocks: true}, g)
	require.NoError(t, err)
	assert.True(t, res.HasDeadlocks)

	want := tbl.FromArray([]uint32{0}, []int{1}, g) // x=1
	assert.Equal(t, want, res.Deadlocks)
}

func TestRunRejectsDeadlockCheckOnSatAndChaining(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	m := oneBitToggle(tbl, g)

	_, err := Run(tbl, cloneInitial(m), SAT, Options{CheckDeadlocks: true}, g)
	assert.ErrorIs(t, err, ErrDeadlockUnsupported)

	_, err = Run(tbl, cloneInitial(m), Chaining, Options{CheckDeadlocks: true}, g)
	assert.ErrorIs(t, err, ErrDeadlockUnsupported)
}

func TestRunUnknownStrategy(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	m := oneBitToggle(tbl, g)

	_, err := Run(tbl, m, Name("bogus"), Options{}, g)
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestSortByLeadingVariableOrdersAscending(t *testing.T) {
	next := []model.Relation{
		{Variables: []uint32{4, 5}},
		{Variables: []uint32{0, 1}},
		{Variables: []uint32{2, 3}},
	}
	SortByLeadingVariable(next)
	assert.Equal(t, []uint32{0, 1}, next[0].Variables)
	assert.Equal(t, []uint32{2, 3}, next[1].Variables)
	assert.Equal(t, []uint32{4, 5}, next[2].Variables)
}

func TestMergeProducesSinglePartitionCoveringSameReachableSet(t *testing.T) {
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	original := twoComponentToggle(tbl, g)
	merged := twoComponentToggle(tbl, g)
	Merge(tbl, nil, merged, g)
	require.Len(t, merged.Next, 1)

	origRes, err := Run(tbl, cloneInitial(original), BFS, Options{}, g)
	require.NoError(t, err)
	mergedRes, err := Run(tbl, cloneInitial(merged), BFS, Options{}, g)
	require.NoError(t, err)

	assert.Equal(t, origRes.Visited, mergedRes.Visited)
}
