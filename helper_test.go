// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum_test

import (
	"context"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/sum"
)

// execExpr drives a chain to completion via the Step+Advance loop.
// Retries on iox.ErrWouldBlock (computation not ready yet).
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](ctx context.Context, chain kont.Expr[R]) R {
	result, susp := sum.Step(chain)
	for susp != nil {
		var err error
		result, susp, err = sum.Advance(ctx, susp)
		if err != nil {
			continue
		}
	}
	return result
}

// mustUnwrapFail asserts that fn panics with *sum.UnwrapFailure.
// wantMsg is checked only when non-empty.
func mustUnwrapFail(t *testing.T, name string, fn func(), wantMsg string) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: no panic", name)
		}
		f, ok := r.(*sum.UnwrapFailure)
		if !ok {
			t.Fatalf("%s: panic payload %T, want *sum.UnwrapFailure", name, r)
		}
		if wantMsg != "" && f.Msg != wantMsg {
			t.Fatalf("%s: message %q, want %q", name, f.Msg, wantMsg)
		}
	}()
	fn()
}
