package linkedlist

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pcoll/maybe"
	"github.com/npillmayer/pcoll/result"
	"github.com/pkg/errors"
)

// List is a handle to a persistent singly-linked list. The zero value is
// usable as the empty list, i.e. this is legal:
//
//     l := linkedlist.List[int]{}.Cons(42)
//
// returning a one-element list ⟨42⟩. Lists are immutable: every operation
// returns a new incarnation and leaves its input untouched. Handles are
// cheap one-word values; copying a handle aliases its reference to the
// underlying chain (see Retain and Release for ownership management).
type List[T any] struct {
	head *cell[T]
}

// Possible error conditions returned by list operations. All returned errors
// wrap one of these and may be tested with errors.Is.
var (
	ErrEmptyList       = errors.New("empty list")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidSplit    = errors.New("invalid split index")
)

// --- Construction ----------------------------------------------------------

// Empty returns the canonical empty list. It is equivalent to the zero value.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Single returns a one-element list ⟨v⟩.
func Single[T any](v T) List[T] {
	return List[T]{head: newCell(v, nil)}
}

// Cons returns a new list with v prepended to l. O(1); the new list shares
// all of l as its tail.
func Cons[T any](v T, l List[T]) List[T] {
	return List[T]{head: newCell(v, l.head.retain())}
}

// Cons is the method form of the package-level Cons.
func (l List[T]) Cons(v T) List[T] {
	return Cons(v, l)
}

// FromSlice builds a list holding the elements of s in order.
func FromSlice[T any](s []T) List[T] {
	l := List[T]{}
	for i := len(s) - 1; i >= 0; i-- {
		l = List[T]{head: newCell(s[i], l.head)}
	}
	return l
}

// --- Inspection ------------------------------------------------------------

// IsEmpty returns true iff l holds no elements. O(1).
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// IsSingle returns true iff l holds exactly one element. O(1).
func (l List[T]) IsSingle() bool {
	return l.head != nil && l.head.next == nil
}

// Len returns the number of elements in l. O(n): the chain is walked
// iteratively, there is no cached count.
func (l List[T]) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Head returns the first element of l, or ErrEmptyList if l is empty.
func (l List[T]) Head() (T, error) {
	if l.head == nil {
		var none T
		return none, errors.Wrap(ErrEmptyList, "cannot take the head")
	}
	return l.head.value, nil
}

// Tail returns the list after the first element, or ErrEmptyList if l is
// empty. O(1): the tail chain is shared, not copied.
func (l List[T]) Tail() (List[T], error) {
	if l.head == nil {
		return List[T]{}, errors.Wrap(ErrEmptyList, "cannot take the tail")
	}
	return List[T]{head: l.head.next.retain()}, nil
}

// Last returns the final element of l, or ErrEmptyList if l is empty. O(n).
func (l List[T]) Last() (T, error) {
	if l.head == nil {
		var none T
		return none, errors.Wrap(ErrEmptyList, "cannot take the last element")
	}
	c := l.head
	for c.next != nil {
		c = c.next
	}
	return c.value, nil
}

// Index returns the element at position i (0-based), or ErrIndexOutOfRange
// if i is negative or not less than l.Len(). O(i).
func (l List[T]) Index(i int) (T, error) {
	var none T
	if i < 0 {
		return none, errors.Wrapf(ErrIndexOutOfRange, "index %d", i)
	}
	for c := l.head; c != nil; c = c.next {
		if i == 0 {
			return c.value, nil
		}
		i--
	}
	return none, errors.Wrapf(ErrIndexOutOfRange, "index exceeds length by %d", i+1)
}

// First returns the first element of l as a Maybe: Just(head) for non-empty
// lists, Nothing for the empty list.
func (l List[T]) First() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// At is the Result-returning twin of Index.
func (l List[T]) At(i int) result.Result[T] {
	v, err := l.Index(i)
	if err != nil {
		return result.Err[T](err)
	}
	return result.Ok(v)
}

// Each calls f for every element of l in list order, stopping early if f
// returns false.
func (l List[T]) Each(f func(T) bool) {
	for c := l.head; c != nil; c = c.next {
		if !f(c.value) {
			return
		}
	}
}

// ToSlice returns the elements of l as a fresh slice, nil for the empty list.
func (l List[T]) ToSlice() []T {
	var s []T
	for c := l.head; c != nil; c = c.next {
		s = append(s, c.value)
	}
	return s
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	first := true
	for c := l.head; c != nil; c = c.next {
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", c.value))
		first = false
	}
	b.WriteByte(')')
	return b.String()
}

// --- Transformation --------------------------------------------------------

// Init returns a list holding all but the final element of l, or ErrEmptyList
// if l is empty. O(n): a new chain is built with an iterative head/tail
// builder — never by recursive reconstruction, so stack usage stays constant
// for arbitrarily long lists.
func (l List[T]) Init() (List[T], error) {
	if l.head == nil {
		return List[T]{}, errors.Wrap(ErrEmptyList, "cannot drop the last element")
	}
	var head, tail *cell[T]
	for c := l.head; c.next != nil; c = c.next {
		head, tail = extend(head, tail, c.value)
	}
	return List[T]{head: head}, nil
}

// Append returns the concatenation of l and m. O(|l|): l's cells are copied
// iteratively, m is linked in as the shared tail of the copy and stays
// untouched. Appending to an empty l just hands out m.
func (l List[T]) Append(m List[T]) List[T] {
	if l.head == nil {
		return List[T]{head: m.head.retain()}
	}
	var head, tail *cell[T]
	for c := l.head; c != nil; c = c.next {
		head, tail = extend(head, tail, c.value)
	}
	tail.next = m.head.retain()
	return List[T]{head: head}
}

// Snoc returns a new list with v appended at the end. O(n), a fresh chain.
func (l List[T]) Snoc(v T) List[T] {
	return l.Append(Single(v))
}

// extend is the iterative chain builder used by Init and Append: it links a
// fresh cell holding v behind tail and returns the updated (head, tail) pair.
// The cells under construction are unpublished, so writing tail.next directly
// is fine.
func extend[T any](head, tail *cell[T], v T) (*cell[T], *cell[T]) {
	c := newCell(v, nil)
	if head == nil {
		return c, c
	}
	tail.next = c
	return head, c
}

// --- Ownership -------------------------------------------------------------

// Retain mints an independent owning handle for l's chain. Plain Go copies of
// a List alias one reference; a goroutine or long-lived struct that manages
// its lifetime separately should hold a retained handle of its own.
func (l List[T]) Retain() List[T] {
	return List[T]{head: l.head.retain()}
}

// Release gives up l's reference to its chain. After Release, l and every
// plain copy of it are dead handles and must not be used. Release is
// optional: chains owned only by unreachable handles are reclaimed by the
// Go runtime anyway. Releasing walks the chain iteratively and detaches
// cells only while they are uniquely owned, stopping at the first cell still
// shared with another list, so a shared suffix is never disturbed and
// teardown needs constant stack space however long the chain is.
func (l List[T]) Release() {
	release(l.head)
}
