/*
Package pcoll collects persistent (immutable) in-memory collection types.

Persistent data structures can be copied and modified efficiently, leaving the
original unchanged. Functional programming languages like Lisp have long relied
on using them. This module offers the two classics built on cons cells:

▪︎ linkedlist: a singly-linked immutable list with structural sharing of tails.

▪︎ deque: a double-ended queue over two such lists (a “banker's deque”),
with amortized O(1) access to both ends.

Every modifying operation returns a new incarnation of the collection; all
previously obtained incarnations stay valid and observe unchanged content.
Structural sharing means that incarnations which are mostly copies of each
other share most of their memory, so “copying” is cheap in space and time.
Published cells are never mutated, which makes read access from concurrent
goroutines safe without further synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcoll
