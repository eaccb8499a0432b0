// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"context"

	"code.hybscloud.com/kont"
)

// exprReturnFrame is the pre-allocated erased terminal frame, avoiding
// heap escapes when boxing it during Expr-world construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
// Named function produces a static function value, consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprStart lifts a pending computation into an Expr-world chain.
// Fuses ExprPerform(Task[T]{Run: run}).
func ExprStart[T any](run func(context.Context) T) kont.Expr[T] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Task[T]{Run: run}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[T](ef)
}

// ExprPoll lifts a non-blocking computation into an Expr-world chain.
// Fuses ExprPerform(Poll[T]{Run: run}).
func ExprPoll[T any](run func(context.Context) (T, error)) kont.Expr[T] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Poll[T]{Run: run}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[T](ef)
}

// ExprRecvFrom starts an Expr-world chain from a [Pending] handoff cell.
// Fuses ExprPerform(Recv[T]{P: p}).
func ExprRecvFrom[T any](p *Pending[T]) kont.Expr[T] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recv[T]{P: p}
	ef.Resume = identityResume
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[T](ef)
}

func startBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	result := f(current.(T))
	return kont.Erased(result.Value), result.Frame
}

// ExprStartBind runs a pending computation and passes its value to f.
// Fuses ExprPerform(Task) + ExprBind.
func ExprStartBind[T, B any](run func(context.Context) T, f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = startBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Task[T]{Run: run}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprRecvBind receives from a [Pending] cell and passes the value to f.
// Fuses ExprPerform(Recv) + ExprBind.
func ExprRecvBind[T, B any](p *Pending[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = startBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Recv[T]{P: p}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprLiftMaybe starts an Expr-world chain from an already-resolved Maybe.
func ExprLiftMaybe[T any](m Maybe[T]) kont.Expr[Maybe[T]] {
	return kont.ExprReturn(m)
}

// ExprLiftOutcome starts an Expr-world chain from an already-resolved Outcome.
func ExprLiftOutcome[T, E any](o Outcome[T, E]) kont.Expr[Outcome[T, E]] {
	return kont.ExprReturn(o)
}
