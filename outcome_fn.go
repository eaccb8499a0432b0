// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// MapOutcome applies f on the success channel:
// Success(x) → Success(f(x)); Failure(e) → Failure(e) unchanged.
func MapOutcome[T, U, E any](o Outcome[T, E], f func(T) U) Outcome[U, E] {
	if v, ok := o.Get(); ok {
		return Success[U, E](f(v))
	}
	e, _ := o.GetErr()
	return Failure[U, E](e)
}

// MapFailure applies f on the failure channel:
// Failure(e) → Failure(f(e)); Success(x) → Success(x) unchanged.
// Used to unify error payload types before chaining.
func MapFailure[T, E, F any](o Outcome[T, E], f func(E) F) Outcome[T, F] {
	if e, failed := o.GetErr(); failed {
		return Failure[T, F](f(e))
	}
	v, _ := o.Get()
	return Success[T, F](v)
}

// AndThen is monadic bind on the success channel:
// Success(x) → f(x); Failure(e) → Failure(e) with f never invoked.
// The lazy counterpart of [Outcome.And]: the right-hand side is only
// constructed when the left succeeds.
func AndThen[T, U, E any](o Outcome[T, E], f func(T) Outcome[U, E]) Outcome[U, E] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	e, _ := o.GetErr()
	return Failure[U, E](e)
}

// MatchOutcome eliminates o into a plain value. Exactly one branch runs.
func MatchOutcome[T, E, R any](o Outcome[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if v, ok := o.Get(); ok {
		return onSuccess(v)
	}
	e, _ := o.GetErr()
	return onFailure(e)
}

// FlattenOutcome removes one level of nesting.
// Failure at either level propagates.
func FlattenOutcome[T, E any](o Outcome[Outcome[T, E], E]) Outcome[T, E] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	e, _ := o.GetErr()
	return Failure[T, E](e)
}
