// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package tbdd

import (
	"errors"
	"fmt"
)

var errMemory = errors.New("tbdd: unable to free memory or resize node table")
var errResize = errors.New("tbdd: cache should be resized")
var errReset = errors.New("tbdd: cache should be reset")

// Error returns the error status of the table, or an empty string if there
// is none. Mirrors rudd's sticky-error idiom: most operations below are
// called recursively from deep inside a saturation or divide-and-conquer
// task, where threading an error return through every call would change
// the shape of this package's recursion contract.
func (t *Table) Error() string {
	if t.err == nil {
		return ""
	}
	return t.err.Error()
}

// Errored reports whether a computation on this table has failed.
func (t *Table) Errored() bool {
	return t.err != nil
}

// SetError records a fatal condition detected by a caller outside this
// package — internal/reach's saturation uses it to report a violated
// precondition (spec.md §7's policy of a returned fatal error rather than
// a panic crossing a goroutine boundary) through the same sticky-error
// slot MakeNode itself uses.
func (t *Table) SetError(format string, a ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seterror(format, a...)
}

func (t *Table) seterror(format string, a ...interface{}) T {
	err := fmt.Errorf(format, a...)
	if t.err != nil {
		err = fmt.Errorf("%w; %s", err, t.err)
	}
	t.err = err
	t.log.WithError(err).Error("tbdd: operation failed")
	return False
}
