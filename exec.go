// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// taskHandler implements kont.Handler for async chain effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch into
// blocking evaluation for Await/AwaitExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type taskHandler[R any] struct {
	tc *taskContext
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (h taskHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	top, ok := op.(taskDispatcher)
	if !ok {
		panic("sum: unhandled effect in taskHandler")
	}
	return dispatchWait(h.tc, top), true
}

// dispatchWait blocks until DispatchTask succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff (readiness waiting). Any other
// error is treated the same way: the operation is retried until its
// computation produces a value, so a Poll wanting to terminate under
// cancellation must return a value, not keep erroring.
func dispatchWait(tc *taskContext, top taskDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := top.DispatchTask(tc)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Await evaluates a Cont-world chain to completion on the calling
// goroutine. Stages run strictly in sequence; blocking happens only at
// not-ready boundaries (Poll, Recv), waited out with adaptive backoff
// (iox.Backoff) without spawning goroutines or creating channels.
// ctx is handed to every pending computation; the library itself never
// observes it.
func Await[R any](ctx context.Context, chain kont.Eff[R]) R {
	tc := taskContext{ctx: ctx}
	h := taskHandler[R]{tc: &tc}
	return kont.Handle(chain, h)
}

// AwaitExpr evaluates an Expr-world chain to completion on the calling
// goroutine. Same semantics as [Await].
func AwaitExpr[R any](ctx context.Context, chain kont.Expr[R]) R {
	tc := taskContext{ctx: ctx}
	h := taskHandler[R]{tc: &tc}
	return kont.HandleExpr(chain, h)
}

// AwaitMaybe evaluates a Maybe chain with a capture boundary around the
// whole evaluation: a panic out of any chained stage function is routed
// through cfg's logger exactly once and converted to Absent. Nothing
// escapes.
func AwaitMaybe[T any](ctx context.Context, cfg *Config, chain kont.Eff[Maybe[T]]) (m Maybe[T]) {
	defer func() {
		if r := recover(); r != nil {
			cfg.capture(&CapturedPanic{Value: r})
			m = Absent[T]()
		}
	}()
	return Await(ctx, chain)
}

// AwaitOutcome evaluates an Outcome chain with a capture boundary around
// the whole evaluation: a panic out of any chained stage function is
// routed through cfg's logger exactly once and projected into the
// Failure payload. Nothing escapes.
func AwaitOutcome[T, E any](ctx context.Context, cfg *Config, chain kont.Eff[Outcome[T, E]], project func(error) E) (o Outcome[T, E]) {
	defer func() {
		if r := recover(); r != nil {
			err := &CapturedPanic{Value: r}
			cfg.capture(err)
			o = Failure[T, E](project(err))
		}
	}()
	return Await(ctx, chain)
}
