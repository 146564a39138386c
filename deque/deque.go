package deque

import (
	"fmt"

	"github.com/npillmayer/pcoll/linkedlist"
	"github.com/npillmayer/pcoll/maybe"
	"github.com/pkg/errors"
)

// Deque is a persistent double-ended queue over a pair of persistent lists,
// with the back list stored in reverse. The logical content is
// front ++ reverse(back). The zero value is usable as the empty deque, i.e.
// this is legal:
//
//     dq := deque.Deque[int]{}.Cons(42)
//
// returning a one-element deque ⟨42⟩. Deques are immutable: every operation
// returns a new incarnation and leaves its input untouched.
type Deque[T any] struct {
	front linkedlist.List[T]
	back  linkedlist.List[T]
}

// ErrEmptyDeque is returned (wrapped) by Head, Last, Tail and Init when
// called on an empty deque; test with errors.Is.
var ErrEmptyDeque = errors.New("empty deque")

// ErrIndexOutOfRange aliases the list package's sentinel: deque indexing
// fails with the same error kind as list indexing.
var ErrIndexOutOfRange = linkedlist.ErrIndexOutOfRange

// --- Construction ----------------------------------------------------------

// Empty returns the empty deque. It is equivalent to the zero value.
func Empty[T any]() Deque[T] {
	return Deque[T]{}
}

// Single returns a one-element deque ⟨v⟩.
func Single[T any](v T) Deque[T] {
	return Deque[T]{front: linkedlist.Single(v)}
}

// FromList builds a deque holding the elements of l in order, splitting l
// midway into the front and (reversed) back lists. O(n).
func FromList[T any](l linkedlist.List[T]) Deque[T] {
	a, b, err := linkedlist.SplitAt(l.Len()/2, l)
	assertThat(err == nil, "split at non-negative midpoint cannot fail, got %v", err)
	return Deque[T]{front: a, back: linkedlist.Reverse(b)}
}

// FromSlice builds a deque holding the elements of s in order.
func FromSlice[T any](s []T) Deque[T] {
	return FromList(linkedlist.FromSlice(s))
}

// --- Inspection ------------------------------------------------------------

// IsEmpty returns true iff dq holds no elements. O(1).
func (dq Deque[T]) IsEmpty() bool {
	return dq.front.IsEmpty() && dq.back.IsEmpty()
}

// IsSingle returns true iff dq holds exactly one element. O(1): with the
// balancing invariant in place, exactly one of the two lists is empty iff
// the deque holds a single element.
func (dq Deque[T]) IsSingle() bool {
	return !dq.IsEmpty() && (dq.front.IsEmpty() || dq.back.IsEmpty())
}

// Len returns the number of elements in dq. O(n).
func (dq Deque[T]) Len() int {
	return dq.front.Len() + dq.back.Len()
}

// Head returns the first element of dq, or ErrEmptyDeque. O(1).
func (dq Deque[T]) Head() (T, error) {
	if dq.IsEmpty() {
		var none T
		return none, errors.Wrap(ErrEmptyDeque, "cannot take the head")
	}
	if !dq.front.IsEmpty() {
		return dq.front.Head()
	}
	return dq.back.Last() // single element, sitting in back
}

// Last returns the final element of dq, or ErrEmptyDeque. O(1).
func (dq Deque[T]) Last() (T, error) {
	if dq.IsEmpty() {
		var none T
		return none, errors.Wrap(ErrEmptyDeque, "cannot take the last element")
	}
	if !dq.back.IsEmpty() {
		return dq.back.Head() // back is stored reversed
	}
	return dq.front.Last() // single element, sitting in front
}

// Index returns the element at position i in logical order (0-based), or
// ErrIndexOutOfRange. Positions beyond the front list are served from the
// back list, mirrored, since back is stored reversed.
func (dq Deque[T]) Index(i int) (T, error) {
	var none T
	if i < 0 {
		return none, errors.Wrapf(ErrIndexOutOfRange, "index %d", i)
	}
	frontLen := dq.front.Len()
	if i < frontLen {
		return dq.front.Index(i)
	}
	i -= frontLen
	if backLen := dq.back.Len(); i < backLen {
		return dq.back.Index(backLen - 1 - i)
	}
	return none, errors.Wrapf(ErrIndexOutOfRange, "index %d exceeds length", i+frontLen)
}

// PeekFront returns the first element of dq as a Maybe: Just(head) for
// non-empty deques, Nothing for the empty deque.
func (dq Deque[T]) PeekFront() maybe.Maybe[T] {
	v, err := dq.Head()
	if err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v)
}

// PeekBack is the Maybe-returning twin of Last.
func (dq Deque[T]) PeekBack() maybe.Maybe[T] {
	v, err := dq.Last()
	if err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v)
}

// ToList flattens dq into a single persistent list in logical order. O(n).
func (dq Deque[T]) ToList() linkedlist.List[T] {
	return dq.front.Append(linkedlist.Reverse(dq.back))
}

// ToSlice returns the elements of dq as a fresh slice, nil for the empty
// deque.
func (dq Deque[T]) ToSlice() []T {
	return dq.ToList().ToSlice()
}

func (dq Deque[T]) String() string {
	return dq.ToList().String()
}

// --- Transformation --------------------------------------------------------

// Cons returns a new deque with v prepended. O(1). An empty back list means
// dq holds at most one element, kept in front; that element moves over to
// back so both lists are non-empty as soon as the deque holds two.
func (dq Deque[T]) Cons(v T) Deque[T] {
	if dq.back.IsEmpty() {
		return Deque[T]{front: linkedlist.Single(v), back: dq.front}
	}
	return Deque[T]{front: dq.front.Cons(v), back: dq.back}
}

// Snoc returns a new deque with v appended, symmetric to Cons. O(1).
func (dq Deque[T]) Snoc(v T) Deque[T] {
	if dq.front.IsEmpty() {
		return Deque[T]{front: dq.back, back: linkedlist.Single(v)}
	}
	return Deque[T]{front: dq.front, back: dq.back.Cons(v)}
}

// Tail returns a new deque without the first element, or ErrEmptyDeque.
// Amortized O(1): dropping the front head may leave the front list empty
// while the back list is long, which the subsequent rebalancing repairs.
func (dq Deque[T]) Tail() (Deque[T], error) {
	if dq.IsEmpty() {
		return Deque[T]{}, errors.Wrap(ErrEmptyDeque, "cannot take the tail")
	}
	if dq.front.IsEmpty() || dq.back.IsEmpty() {
		return Deque[T]{}, nil // single element
	}
	front, err := dq.front.Tail()
	assertThat(err == nil, "tail of non-empty front cannot fail, got %v", err)
	return Deque[T]{front: front, back: dq.back}.rebalanced(), nil
}

// Init returns a new deque without the final element, symmetric to Tail.
// Amortized O(1).
func (dq Deque[T]) Init() (Deque[T], error) {
	if dq.IsEmpty() {
		return Deque[T]{}, errors.Wrap(ErrEmptyDeque, "cannot drop the last element")
	}
	if dq.front.IsEmpty() || dq.back.IsEmpty() {
		return Deque[T]{}, nil // single element
	}
	back, err := dq.back.Tail()
	assertThat(err == nil, "tail of non-empty back cannot fail, got %v", err)
	return Deque[T]{front: dq.front, back: back}.rebalanced(), nil
}

// Append returns the concatenation of dq and other. O(n): both deques are
// flattened and the result re-split. Good enough — Append is not among the
// operations the two-list amortization targets.
func (dq Deque[T]) Append(other Deque[T]) Deque[T] {
	return FromList(dq.ToList().Append(other.ToList()))
}

// rebalanced restores the balancing invariant after an operation drained one
// of the two lists: the non-empty list is split at its midpoint and the far
// half, reversed, refills the empty side. Deques of less than two elements,
// and deques with both lists non-empty, are returned unchanged. A single
// rebalance costs O(n), but each element pays for at most one rebalance
// before it can be consumed from the refilled side, which is what makes
// Tail and Init amortized O(1).
func (dq Deque[T]) rebalanced() Deque[T] {
	if dq.IsEmpty() || dq.IsSingle() || (!dq.front.IsEmpty() && !dq.back.IsEmpty()) {
		return dq
	}
	if dq.front.IsEmpty() {
		back, reversedFront, err := linkedlist.SplitAt(dq.back.Len()/2, dq.back)
		assertThat(err == nil, "split at non-negative midpoint cannot fail, got %v", err)
		tracer().Debugf("rebalance: refilling front with %d of %d elements", reversedFront.Len(), dq.back.Len())
		return Deque[T]{front: linkedlist.Reverse(reversedFront), back: back}
	}
	front, reversedBack, err := linkedlist.SplitAt(dq.front.Len()/2, dq.front)
	assertThat(err == nil, "split at non-negative midpoint cannot fail, got %v", err)
	tracer().Debugf("rebalance: refilling back with %d of %d elements", reversedBack.Len(), dq.front.Len())
	return Deque[T]{front: front, back: linkedlist.Reverse(reversedBack)}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("deque: "+msg, msgargs...)
		panic(msg)
	}
}

