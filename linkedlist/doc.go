/*
Package linkedlist implements a persistent (immutable) singly-linked list.

A persistent list has copy-on-write behaviour: each “modification” (cons,
append, dropping the last element, …) creates a new list, leaving the original
unmodified. Under the hood most of the cons cells are shared between original
and copy, transparently to clients. Tails in particular are always shared:
Cons is O(1) and Tail just hands out the existing tail chain.

Cell chains are reference-counted. Every List returned by the API owns one
reference to its chain; clients which care about prompt reclamation hand it
back with Release, everyone else lets the Go runtime collect unreachable
chains wholesale. Releasing walks a uniquely-owned chain iteratively and stops
at the first cell still shared with another owner, so teardown of arbitrarily
long chains uses constant stack space and never disturbs a shared suffix.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package linkedlist

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcoll.linkedlist'.
func tracer() tracing.Trace {
	return tracing.Select("pcoll.linkedlist")
}
