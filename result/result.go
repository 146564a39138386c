/*
Package result provides a fallible-computation type in the manner of Elm's

	module Result exposing (Result(Ok,Err), andThen, map, withDefault)

A Result is either Ok with a value or Err with a Go error. It is the
expression-shaped sibling of Go's (T, error) return pair, handy where a
fallible value is passed around or pattern-matched as one thing:

	var v int
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		// use v
	case m.Err(&e):
		// handle e
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result wraps the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Result[T]
	Err() error
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault unwraps a Result, substituting def for a failure.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// Map applies f to a successful value; failures pass through unchanged.
func (r result[T]) Map(f func(T) T) Result[T] {
	if r.err == nil {
		return Ok(f(r.value))
	}
	return r
}

// Err returns the wrapped error, nil for Ok results.
func (r result[T]) Err() error {
	return r.err
}

// AndThen chains a Result into a computation which itself may fail.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&e):
	}
	return Err[S](e)
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-based pattern matching on a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
