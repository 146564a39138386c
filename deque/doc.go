/*
Package deque implements a persistent (immutable) double-ended queue.

The deque is the classical “banker's” construction over two persistent
singly-linked lists: a front list and a back list, the back one stored in
reverse. Pushing and peeking at either end is O(1); popping either end is
amortized O(1), with the occasional pop redistributing the elements of one
list across both. The balancing invariant is that a deque of two or more
elements keeps both lists non-empty, so each end's element is always at the
head of one of the two lists.

Like the underlying lists, deques have copy-on-write behaviour: every
operation returns a new incarnation and leaves its input untouched, sharing
cell chains between incarnations wherever possible.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.deque'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.deque")
}
