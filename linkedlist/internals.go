package linkedlist

import (
	"fmt"
	"sync/atomic"
)

// cell is a single cons cell of a chain. Cells are immutable once published:
// after a constructor has handed out a List containing a cell, value and next
// are never written again. refs counts the owning references to a cell — the
// inbound next pointer of a predecessor cell plus every List handle the API
// has returned for it. refs is maintained atomically since List values may
// cross goroutine boundaries.
type cell[T any] struct {
	value T
	next  *cell[T]
	refs  int32
}

// newCell allocates a cell owned by exactly one reference, designated for
// the List handle about to be returned. The caller is responsible for
// retaining next before linking it.
func newCell[T any](value T, next *cell[T]) *cell[T] {
	return &cell[T]{value: value, next: next, refs: 1}
}

func (c *cell[T]) retain() *cell[T] {
	if c != nil {
		atomic.AddInt32(&c.refs, 1)
	}
	return c
}

// release gives up one reference to the chain starting at c. Chains may be
// arbitrarily long, so teardown is an explicit loop rather than a cascade of
// per-cell releases: while the released cell was uniquely owned, its tail is
// detached and the loop continues there. The first cell whose count stays
// positive is still owned elsewhere — that suffix is someone else's chain and
// stays untouched. Worst case is O(n) work for the last unique owner, with
// O(1) stack regardless of chain length.
func release[T any](c *cell[T]) {
	count := 0
	for c != nil {
		n := atomic.AddInt32(&c.refs, -1)
		assertThat(n >= 0, "release of a cell that had no owners (double release?)")
		if n > 0 {
			tracer().Debugf("release stops at shared cell after %d unique cells", count)
			return
		}
		next := c.next
		var none T
		c.value = none // do not keep released values alive
		c.next = nil
		c = next
		count++
	}
	if count > 0 {
		tracer().Debugf("released chain of %d uniquely owned cells", count)
	}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("linkedlist: "+msg, msgargs...)
		panic(msg)
	}
}
