// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "fmt"

// Outcome represents a completed operation: Success carrying a value of
// type T, or Failure carrying an error payload of type E. The zero value
// is Failure(zero E); construct through [Success] and [Failure].
//
// E is unconstrained; [Err] is the canonical payload for callers that
// want structured codes. A Failure is domain data — it is never logged
// by the library and surfaces only through the combinator API.
//
// Outcome is an immutable value type with the same sharing and nesting
// rules as [Maybe].
type Outcome[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Success returns an Outcome holding v on the success channel.
func Success[T, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{value: v, ok: true}
}

// Failure returns an Outcome holding e on the failure channel.
func Failure[T, E any](e E) Outcome[T, E] {
	return Outcome[T, E]{err: e}
}

// IsSuccess reports whether o is on the success channel.
func (o Outcome[T, E]) IsSuccess() bool {
	return o.ok
}

// IsFailure reports whether o is on the failure channel.
func (o Outcome[T, E]) IsFailure() bool {
	return !o.ok
}

// IsSuccessAnd reports whether o is a Success whose value satisfies pred.
func (o Outcome[T, E]) IsSuccessAnd(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// IsFailureAnd reports whether o is a Failure whose payload satisfies pred.
func (o Outcome[T, E]) IsFailureAnd(pred func(E) bool) bool {
	return !o.ok && pred(o.err)
}

// Get returns the success value and whether o is a Success.
// This is the non-panicking consumption path; prefer it over
// [Outcome.Unwrap].
func (o Outcome[T, E]) Get() (T, bool) {
	return o.value, o.ok
}

// GetErr returns the failure payload and whether o is a Failure.
func (o Outcome[T, E]) GetErr() (E, bool) {
	return o.err, !o.ok
}

// Inspect invokes f with the success value for its side effect only and
// returns o unchanged. No-op on Failure.
func (o Outcome[T, E]) Inspect(f func(T)) Outcome[T, E] {
	if o.ok {
		f(o.value)
	}
	return o
}

// InspectErr invokes f with the failure payload for its side effect only
// and returns o unchanged. No-op on Success.
func (o Outcome[T, E]) InspectErr(f func(E)) Outcome[T, E] {
	if !o.ok {
		f(o.err)
	}
	return o
}

// And returns other if o is a Success, and o's Failure otherwise.
//
// Both operands are constructed before one is discarded — the documented
// cost of eager evaluation. Use [AndThen] to defer construction of the
// right-hand side to a function invoked only on Success.
func (o Outcome[T, E]) And(other Outcome[T, E]) Outcome[T, E] {
	if o.ok {
		return other
	}
	return o
}

// Or returns o if it is a Success, and other otherwise.
//
// Both operands are constructed before one is discarded; use
// [Outcome.OrElse] to defer the right-hand side.
func (o Outcome[T, E]) Or(other Outcome[T, E]) Outcome[T, E] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns o if it is a Success, and f(failure) otherwise.
// f is invoked only on Failure.
func (o Outcome[T, E]) OrElse(f func(E) Outcome[T, E]) Outcome[T, E] {
	if o.ok {
		return o
	}
	return f(o.err)
}

// Unwrap returns the success value.
// Panics with *UnwrapFailure if o is a Failure (documented abort
// contract). Use [Outcome.Get] for the non-panicking path.
func (o Outcome[T, E]) Unwrap() T {
	if !o.ok {
		panic(&UnwrapFailure{Msg: fmt.Sprintf("sum: unwrap of failed Outcome: %v", o.err)})
	}
	return o.value
}

// UnwrapErr returns the failure payload.
// Panics with *UnwrapFailure if o is a Success — the mirror image of
// [Outcome.Unwrap], for callers asserting the failure channel.
func (o Outcome[T, E]) UnwrapErr() E {
	if o.ok {
		panic(&UnwrapFailure{Msg: fmt.Sprintf("sum: unwrap of succeeded Outcome: %v", o.value)})
	}
	return o.err
}

// UnwrapOr returns the success value, or fallback on Failure.
// fallback is evaluated eagerly by the caller.
func (o Outcome[T, E]) UnwrapOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the success value, or f(failure) on Failure.
// f is invoked exactly once on Failure, never on Success.
func (o Outcome[T, E]) UnwrapOrElse(f func(E) T) T {
	if o.ok {
		return o.value
	}
	return f(o.err)
}

// UnwrapOrZero returns the success value, or the zero value of T on Failure.
func (o Outcome[T, E]) UnwrapOrZero() T {
	return o.value
}

// Expect returns the success value.
// Panics with *UnwrapFailure carrying msg if o is a Failure.
func (o Outcome[T, E]) Expect(msg string) T {
	if !o.ok {
		panic(&UnwrapFailure{Msg: msg})
	}
	return o.value
}

// ExpectErr returns the failure payload.
// Panics with *UnwrapFailure carrying msg if o is a Success.
func (o Outcome[T, E]) ExpectErr(msg string) E {
	if o.ok {
		panic(&UnwrapFailure{Msg: msg})
	}
	return o.err
}

// String implements fmt.Stringer.
func (o Outcome[T, E]) String() string {
	if o.ok {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}
