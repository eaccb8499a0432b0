// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// AwaitBoth evaluates two Cont-world chains on the calling goroutine,
// interleaving them at not-ready boundaries (Poll, Recv) with adaptive
// backoff (iox.Backoff) when neither can make progress. Each chain's
// stages still run strictly in sequence; only the two chains interleave
// with each other. Does not spawn goroutines or create channels.
//
// Typical use: two chains fed by Pending cells resolved by separate
// producers.
func AwaitBoth[A, B any](ctx context.Context, a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return AwaitBothExpr(ctx, Reify(a), Reify(b))
}

// AwaitBothExpr evaluates two Expr-world chains on the calling
// goroutine. Same semantics as [AwaitBoth].
func AwaitBothExpr[A, B any](ctx context.Context, a kont.Expr[A], b kont.Expr[B]) (A, B) {
	resultA, suspA := Step(a)
	resultB, suspB := Step(b)
	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = Advance(ctx, suspA)
			if err == nil {
				progress = true
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = Advance(ctx, suspB)
			if err == nil {
				progress = true
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return resultA, resultB
}
