// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package report

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbddmc/tbddmc/internal/tbdd"
)

func TestHumanizeScalesUnits(t *testing.T) {
	assert.Equal(t, "512 B", Humanize(512))
	assert.Equal(t, "1.0 KB", Humanize(1024))
	assert.Equal(t, "1.5 KB", Humanize(1536))
}

func TestFormatCountGroupsLargeNumbers(t *testing.T) {
	r := New(true, true, true)
	got := r.FormatCount(big.NewInt(1234567))
	assert.Equal(t, "1,234,567", got)
}

func TestFormatCountHandlesBignumBeyondInt64(t *testing.T) {
	r := New(false, false, false)
	huge := new(big.Int).Lsh(big.NewInt(1), 100) // 2^100, far beyond int64
	got := r.FormatCount(huge)
	assert.NotEmpty(t, got)
}

func TestLevelDoesNotPanicWithoutCounters(t *testing.T) {
	r := New(false, false, false)
	tbl := tbdd.New()
	r.Level(1, tbl, tbdd.False, nil)
}

func TestLevelWithCounters(t *testing.T) {
	r := New(true, true, false)
	tbl := tbdd.New()
	g := tbdd.NewGuard()
	v := tbl.MakeNode(0, tbdd.False, tbdd.True, tbdd.NoTag, g)
	r.Level(1, tbl, v, []uint32{0})
}

func TestGCHooksFire(t *testing.T) {
	r := New(false, false, false)
	tbl := tbdd.New(tbdd.WithNodesize(4))
	r.GCHooks(tbl)
	g := tbdd.NewGuard()
	// Force enough node allocation to exhaust the tiny table and trigger GC.
	for i := 0; i < 10; i++ {
		tbl.MakeNode(uint32(i), tbdd.False, tbdd.True, tbdd.NoTag, g)
	}
}
