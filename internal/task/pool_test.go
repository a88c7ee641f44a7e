// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package task

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForkInlineOnNilPool(t *testing.T) {
	join := Fork[int](nil, func() int { return 42 })
	assert.Equal(t, 42, join())
}

func TestForkJoinReturnsResult(t *testing.T) {
	p := New(4)
	join := Fork(p, func() int { return 7 })
	assert.Equal(t, 7, join())
}

func TestForkFallsBackInlineWhenSaturated(t *testing.T) {
	p := New(1)
	block := make(chan struct{})
	done := make(chan struct{})
	join1 := Fork(p, func() int {
		<-block
		close(done)
		return 1
	})

	// The pool only has one slot and it is held by the goroutine above, so
	// this Fork must run fn inline rather than deadlock waiting for a slot.
	var ran atomic.Bool
	join2 := Fork(p, func() int {
		ran.Store(true)
		return 2
	})
	assert.True(t, ran.Load())
	assert.Equal(t, 2, join2())

	close(block)
	<-done
	assert.Equal(t, 1, join1())
}

func TestForkRunsConcurrentlyWithSpareCapacity(t *testing.T) {
	p := New(2)
	started := make(chan struct{})
	release := make(chan struct{})
	join := Fork(p, func() int {
		close(started)
		<-release
		return 5
	})
	<-started
	close(release)
	assert.Equal(t, 5, join())
}
