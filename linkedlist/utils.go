package linkedlist

import (
	"github.com/pkg/errors"
)

// SplitAt partitions l into its first n elements (in original order) and the
// remainder. ErrInvalidSplit is returned for negative n. For n == 0 the
// prefix is empty and the suffix is l itself (shared, no copy); for
// n >= l.Len() the suffix is empty. O(n): the prefix is built with the
// iterative chain builder.
func SplitAt[T any](n int, l List[T]) (List[T], List[T], error) {
	if n < 0 {
		return List[T]{}, List[T]{}, errors.Wrapf(ErrInvalidSplit, "split at %d", n)
	}
	var head, tail *cell[T]
	c := l.head
	for ; n > 0 && c != nil; n-- {
		head, tail = extend(head, tail, c.value)
		c = c.next
	}
	return List[T]{head: head}, List[T]{head: c.retain()}, nil
}

// Reverse returns a new list with the elements of l in reverse order. O(n),
// built by repeated Cons while consuming l front to back — iteratively, for
// the same stack-depth reason as the release protocol.
func Reverse[T any](l List[T]) List[T] {
	reversed := List[T]{}
	for c := l.head; c != nil; c = c.next {
		reversed = List[T]{head: newCell(c.value, reversed.head)}
	}
	return reversed
}
