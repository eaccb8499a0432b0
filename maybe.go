// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "fmt"

// Maybe represents an optional value: Present carrying a value of type T,
// or Absent carrying nothing. The zero value is Absent.
//
// Maybe is an immutable value type. Every combinator returns a new Maybe;
// none mutates the receiver. Nesting is permitted: Maybe[Maybe[T]] is a
// valid type and can be collapsed with [FlattenMaybe].
//
// Absence is domain data, not an error: it is never logged and never
// panics except through the documented abort contract of [Maybe.Unwrap]
// and [Maybe.Expect].
type Maybe[T any] struct {
	value   T
	present bool
}

// Present returns a Maybe holding v.
//
// The library does not guard against lifting a value that itself encodes
// absence (e.g. a nil pointer); Present(nil-like) is Present.
func Present[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// Absent returns the empty Maybe of type T.
func Absent[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsPresent reports whether m holds a value.
func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// IsAbsent reports whether m is empty.
func (m Maybe[T]) IsAbsent() bool {
	return !m.present
}

// IsPresentAnd reports whether m holds a value satisfying pred.
// pred is not invoked on Absent.
func (m Maybe[T]) IsPresentAnd(pred func(T) bool) bool {
	return m.present && pred(m.value)
}

// IsAbsentOr reports whether m is empty or holds a value satisfying pred.
func (m Maybe[T]) IsAbsentOr(pred func(T) bool) bool {
	return !m.present || pred(m.value)
}

// Get returns the contained value and whether it is present.
// This is the non-panicking consumption path; prefer it over [Maybe.Unwrap].
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// Filter returns m unchanged if it holds a value satisfying pred,
// and Absent otherwise.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.present && pred(m.value) {
		return m
	}
	return Absent[T]()
}

// Inspect invokes f with the contained value for its side effect only
// and returns m unchanged. No-op on Absent.
func (m Maybe[T]) Inspect(f func(T)) Maybe[T] {
	if m.present {
		f(m.value)
	}
	return m
}

// Or returns m if Present, other otherwise. First Present wins.
// other is constructed eagerly; use [Maybe.OrElse] to defer it.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return other
}

// OrElse returns m if Present, f() otherwise. f is invoked only on Absent.
func (m Maybe[T]) OrElse(f func() Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return f()
}

// Xor returns whichever of m and other is Present, if exactly one is.
// Both Present or both Absent yield Absent.
func (m Maybe[T]) Xor(other Maybe[T]) Maybe[T] {
	if m.present == other.present {
		return Absent[T]()
	}
	if m.present {
		return m
	}
	return other
}

// Unwrap returns the contained value.
// Panics with *UnwrapFailure if m is Absent (documented abort contract:
// unwrapping the wrong state is provable caller misuse). Use [Maybe.Get]
// for the non-panicking path.
func (m Maybe[T]) Unwrap() T {
	if !m.present {
		panic(&UnwrapFailure{Msg: "sum: unwrap of absent Maybe"})
	}
	return m.value
}

// UnwrapOr returns the contained value, or fallback on Absent.
// fallback is evaluated eagerly by the caller.
func (m Maybe[T]) UnwrapOr(fallback T) T {
	if m.present {
		return m.value
	}
	return fallback
}

// UnwrapOrElse returns the contained value, or f() on Absent.
// f is invoked exactly once on Absent, never on Present.
func (m Maybe[T]) UnwrapOrElse(f func() T) T {
	if m.present {
		return m.value
	}
	return f()
}

// UnwrapOrZero returns the contained value, or the zero value of T on Absent.
func (m Maybe[T]) UnwrapOrZero() T {
	return m.value
}

// Expect returns the contained value.
// Panics with *UnwrapFailure carrying msg if m is Absent.
func (m Maybe[T]) Expect(msg string) T {
	if !m.present {
		panic(&UnwrapFailure{Msg: msg})
	}
	return m.value
}

// String implements fmt.Stringer.
func (m Maybe[T]) String() string {
	if !m.present {
		return "Absent"
	}
	return fmt.Sprintf("Present(%v)", m.value)
}

// UnwrapFailure is the panic payload of the loud consumption operations
// (Unwrap, Expect and their Outcome error-channel mirrors). It signals
// provable misuse — consuming a wrapper in the wrong state — and is the
// library's only sanctioned panic.
type UnwrapFailure struct {
	Msg string
}

// Error implements the error interface.
func (f *UnwrapFailure) Error() string {
	return f.Msg
}
