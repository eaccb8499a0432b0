// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"context"

	"code.hybscloud.com/kont"
)

// Chain constructors. A chain is a kont.Eff whose stages run strictly in
// sequence: each stage, side effects included, completes before the next
// begins, no matter how many stages are chained or how the chain is
// evaluated ([Await], [Step]/[Advance], [AwaitBoth]).

// Start lifts a pending computation into a chain.
// Fuses Perform(Task[T]{Run: run}).
func Start[T any](run func(context.Context) T) kont.Eff[T] {
	return kont.Perform(Task[T]{Run: run})
}

// StartPoll lifts a non-blocking computation into a chain. run returns
// iox.ErrWouldBlock while not ready.
// Fuses Perform(Poll[T]{Run: run}).
func StartPoll[T any](run func(context.Context) (T, error)) kont.Eff[T] {
	return kont.Perform(Poll[T]{Run: run})
}

// RecvFrom starts a chain from a [Pending] handoff cell.
// Fuses Perform(Recv[T]{P: p}).
func RecvFrom[T any](p *Pending[T]) kont.Eff[T] {
	return kont.Perform(Recv[T]{P: p})
}

// StartMaybe lifts a fallible pending computation into a Maybe chain
// with capture semantics: a returned error or panic is logged once via
// cfg and converted to Absent, exactly as [CaptureMaybe].
func StartMaybe[T any](cfg *Config, run func(context.Context) (T, error)) kont.Eff[Maybe[T]] {
	return kont.Perform(Task[Maybe[T]]{Run: func(ctx context.Context) Maybe[T] {
		return CaptureMaybe(cfg, func() (T, error) {
			return run(ctx)
		})
	}})
}

// StartOutcome lifts a fallible pending computation into an Outcome
// chain with capture semantics: a returned error or panic is logged once
// via cfg and projected into the Failure payload, exactly as
// [CaptureOutcome]. A canceled computation surfaces the same way, by
// returning its context error.
func StartOutcome[T, E any](cfg *Config, run func(context.Context) (T, error), project func(error) E) kont.Eff[Outcome[T, E]] {
	return kont.Perform(Task[Outcome[T, E]]{Run: func(ctx context.Context) Outcome[T, E] {
		return CaptureOutcome(cfg, func() (T, error) {
			return run(ctx)
		}, project)
	}})
}

// LiftMaybe starts a chain from an already-resolved Maybe.
func LiftMaybe[T any](m Maybe[T]) kont.Eff[Maybe[T]] {
	return kont.Pure(m)
}

// LiftOutcome starts a chain from an already-resolved Outcome.
func LiftOutcome[T, E any](o Outcome[T, E]) kont.Eff[Outcome[T, E]] {
	return kont.Pure(o)
}

// Maybe chain combinators. Each is the suspend-capable counterpart of
// the synchronous combinator of the same root name; Absent
// short-circuits without invoking the stage function.

// MapAsync applies f to the value of a pending Maybe.
// Fuses kont.Map + MapMaybe.
func MapAsync[T, U any](m kont.Eff[Maybe[T]], f func(T) U) kont.Eff[Maybe[U]] {
	return kont.Map[kont.Resumed, Maybe[T], Maybe[U]](m, func(x Maybe[T]) Maybe[U] {
		return MapMaybe(x, f)
	})
}

// FlatMapAsync chains a pending Maybe with a stage that starts another
// chain. kont.Bind collapses the nesting: the result is a single chain,
// never a pending-of-pending.
func FlatMapAsync[T, U any](m kont.Eff[Maybe[T]], f func(T) kont.Eff[Maybe[U]]) kont.Eff[Maybe[U]] {
	return kont.Bind(m, func(x Maybe[T]) kont.Eff[Maybe[U]] {
		if v, ok := x.Get(); ok {
			return f(v)
		}
		return kont.Pure(Absent[U]())
	})
}

// FilterAsync applies Filter to the value of a pending Maybe.
func FilterAsync[T any](m kont.Eff[Maybe[T]], pred func(T) bool) kont.Eff[Maybe[T]] {
	return kont.Map[kont.Resumed, Maybe[T], Maybe[T]](m, func(x Maybe[T]) Maybe[T] {
		return x.Filter(pred)
	})
}

// InspectAsync runs f for its side effect on the value of a pending
// Maybe. The effect completes before any later stage begins.
func InspectAsync[T any](m kont.Eff[Maybe[T]], f func(T)) kont.Eff[Maybe[T]] {
	return kont.Map[kont.Resumed, Maybe[T], Maybe[T]](m, func(x Maybe[T]) Maybe[T] {
		return x.Inspect(f)
	})
}

// OrAsync falls back to another chain when the pending Maybe resolves
// Absent. f is invoked only on Absent; nesting collapses via kont.Bind.
func OrAsync[T any](m kont.Eff[Maybe[T]], f func() kont.Eff[Maybe[T]]) kont.Eff[Maybe[T]] {
	return kont.Bind(m, func(x Maybe[T]) kont.Eff[Maybe[T]] {
		if x.IsPresent() {
			return kont.Pure(x)
		}
		return f()
	})
}

// ZipAsync pairs two pending Maybes: both Present → Present(Pair),
// any Absent operand → Absent. Like the eager synchronous [ZipMaybe],
// both operands are evaluated — a then b, in order, side effects
// included — before the pair is formed.
func ZipAsync[A, B any](a kont.Eff[Maybe[A]], b kont.Eff[Maybe[B]]) kont.Eff[Maybe[Pair[A, B]]] {
	return kont.Bind(a, func(ma Maybe[A]) kont.Eff[Maybe[Pair[A, B]]] {
		return kont.Map[kont.Resumed, Maybe[B], Maybe[Pair[A, B]]](b, func(mb Maybe[B]) Maybe[Pair[A, B]] {
			return ZipMaybe(ma, mb)
		})
	})
}

// UnzipAsync splits a pending Maybe of a Pair into a pair of Maybes,
// delivered together since a chain resolves to a single value.
func UnzipAsync[A, B any](m kont.Eff[Maybe[Pair[A, B]]]) kont.Eff[Pair[Maybe[A], Maybe[B]]] {
	return kont.Map[kont.Resumed, Maybe[Pair[A, B]], Pair[Maybe[A], Maybe[B]]](m, func(x Maybe[Pair[A, B]]) Pair[Maybe[A], Maybe[B]] {
		a, b := UnzipMaybe(x)
		return Pair[Maybe[A], Maybe[B]]{First: a, Second: b}
	})
}

// FlattenMaybeAsync removes one nesting level from a pending
// Maybe[Maybe[T]], propagating Absent at either level.
func FlattenMaybeAsync[T any](m kont.Eff[Maybe[Maybe[T]]]) kont.Eff[Maybe[T]] {
	return kont.Map[kont.Resumed, Maybe[Maybe[T]], Maybe[T]](m, FlattenMaybe[T])
}

// MatchAsync eliminates a pending Maybe into a pending plain value.
// Exactly one branch runs, after the wrapped stage completes.
func MatchAsync[T, R any](m kont.Eff[Maybe[T]], onPresent func(T) R, onAbsent func() R) kont.Eff[R] {
	return kont.Map[kont.Resumed, Maybe[T], R](m, func(x Maybe[T]) R {
		return MatchMaybe(x, onPresent, onAbsent)
	})
}

// XorAsync resolves both pending Maybes in order (a then b) and yields
// whichever is Present, if exactly one is.
func XorAsync[T any](a, b kont.Eff[Maybe[T]]) kont.Eff[Maybe[T]] {
	return kont.Bind(a, func(ma Maybe[T]) kont.Eff[Maybe[T]] {
		return kont.Map[kont.Resumed, Maybe[T], Maybe[T]](b, func(mb Maybe[T]) Maybe[T] {
			return ma.Xor(mb)
		})
	})
}

// Outcome chain combinators. Failure short-circuits: later stage
// functions are never invoked, the Failure payload rides through
// unchanged.

// MapOutcomeAsync applies f on the success channel of a pending Outcome.
func MapOutcomeAsync[T, U, E any](m kont.Eff[Outcome[T, E]], f func(T) U) kont.Eff[Outcome[U, E]] {
	return kont.Map[kont.Resumed, Outcome[T, E], Outcome[U, E]](m, func(o Outcome[T, E]) Outcome[U, E] {
		return MapOutcome(o, f)
	})
}

// MapFailureAsync applies f on the failure channel of a pending Outcome.
func MapFailureAsync[T, E, F any](m kont.Eff[Outcome[T, E]], f func(E) F) kont.Eff[Outcome[T, F]] {
	return kont.Map[kont.Resumed, Outcome[T, E], Outcome[T, F]](m, func(o Outcome[T, E]) Outcome[T, F] {
		return MapFailure(o, f)
	})
}

// AndThenAsync chains a pending Outcome with a stage that starts another
// chain on Success. Failure short-circuits without invoking f; kont.Bind
// collapses the nesting into a single chain.
func AndThenAsync[T, U, E any](m kont.Eff[Outcome[T, E]], f func(T) kont.Eff[Outcome[U, E]]) kont.Eff[Outcome[U, E]] {
	return kont.Bind(m, func(o Outcome[T, E]) kont.Eff[Outcome[U, E]] {
		if v, ok := o.Get(); ok {
			return f(v)
		}
		e, _ := o.GetErr()
		return kont.Pure(Failure[U, E](e))
	})
}

// InspectOutcomeAsync runs f for its side effect on the success channel.
func InspectOutcomeAsync[T, E any](m kont.Eff[Outcome[T, E]], f func(T)) kont.Eff[Outcome[T, E]] {
	return kont.Map[kont.Resumed, Outcome[T, E], Outcome[T, E]](m, func(o Outcome[T, E]) Outcome[T, E] {
		return o.Inspect(f)
	})
}

// InspectErrAsync runs f for its side effect on the failure channel.
func InspectErrAsync[T, E any](m kont.Eff[Outcome[T, E]], f func(E)) kont.Eff[Outcome[T, E]] {
	return kont.Map[kont.Resumed, Outcome[T, E], Outcome[T, E]](m, func(o Outcome[T, E]) Outcome[T, E] {
		return o.InspectErr(f)
	})
}

// RecoverAsync falls back to another chain when the pending Outcome
// resolves to Failure. f receives the Failure payload and is invoked
// only then; nesting collapses via kont.Bind.
func RecoverAsync[T, E any](m kont.Eff[Outcome[T, E]], f func(E) kont.Eff[Outcome[T, E]]) kont.Eff[Outcome[T, E]] {
	return kont.Bind(m, func(o Outcome[T, E]) kont.Eff[Outcome[T, E]] {
		if e, failed := o.GetErr(); failed {
			return f(e)
		}
		return kont.Pure(o)
	})
}

// FlattenOutcomeAsync removes one nesting level from a pending
// Outcome[Outcome[T, E], E]. An outer Failure wins; an outer Success
// yields the inner Outcome as is.
func FlattenOutcomeAsync[T, E any](m kont.Eff[Outcome[Outcome[T, E], E]]) kont.Eff[Outcome[T, E]] {
	return kont.Map[kont.Resumed, Outcome[Outcome[T, E], E], Outcome[T, E]](m, FlattenOutcome[T, E])
}

// TransposeMaybeAsync swaps the wrapper order of a pending
// Maybe[Outcome[T, E]] into a pending Outcome[Maybe[T], E].
func TransposeMaybeAsync[T, E any](m kont.Eff[Maybe[Outcome[T, E]]]) kont.Eff[Outcome[Maybe[T], E]] {
	return kont.Map[kont.Resumed, Maybe[Outcome[T, E]], Outcome[Maybe[T], E]](m, TransposeMaybe[T, E])
}

// TransposeOutcomeAsync is the inverse of [TransposeMaybeAsync].
func TransposeOutcomeAsync[T, E any](m kont.Eff[Outcome[Maybe[T], E]]) kont.Eff[Maybe[Outcome[T, E]]] {
	return kont.Map[kont.Resumed, Outcome[Maybe[T], E], Maybe[Outcome[T, E]]](m, TransposeOutcome[T, E])
}

// MatchOutcomeAsync eliminates a pending Outcome into a pending plain
// value. Exactly one branch runs, after the wrapped stage completes.
func MatchOutcomeAsync[T, E, R any](m kont.Eff[Outcome[T, E]], onSuccess func(T) R, onFailure func(E) R) kont.Eff[R] {
	return kont.Map[kont.Resumed, Outcome[T, E], R](m, func(o Outcome[T, E]) R {
		return MatchOutcome(o, onSuccess, onFailure)
	})
}
