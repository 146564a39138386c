/*
Package maybe provides an optional-value type in the manner of Elm's

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

A Maybe represents a value which may or may not be present, e.g. the first
element of a possibly-empty list. Clients either unwrap with WithDefault or
pattern-match:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		// use v
	case m.Nothing():
		// no value
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe wraps an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault unwraps a Maybe, substituting def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a Maybe into a computation which itself may produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map is the free-function form of Maybe.Map, but may change the value type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-based pattern matching on a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
