// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"context"

	"code.hybscloud.com/kont"
)

// Step evaluates a chain until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](chain kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(chain)
}

// Advance dispatches the suspended chain operation.
// Task dispatch runs the pending computation inline; Poll and Recv
// dispatch is non-blocking and returns iox.ErrWouldBlock at the
// readiness boundary.
//
// On success (nil error), the suspension is consumed and the chain
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried
// once the computation can make progress.
func Advance[R any](ctx context.Context, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	top, ok := susp.Op().(taskDispatcher)
	if !ok {
		panic("sum: unhandled effect in Advance")
	}
	tc := taskContext{ctx: ctx}
	v, err := top.DispatchTask(&tc)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}
