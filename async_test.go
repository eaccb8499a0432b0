// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/sum"
)

func TestAwaitStart(t *testing.T) {
	chain := sum.Start(func(ctx context.Context) int { return 42 })
	if got := sum.Await(context.Background(), chain); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestAwaitChainOrdering(t *testing.T) {
	// Each stage, side effects included, completes before the next begins.
	var order []string
	chain := sum.InspectAsync(
		sum.MapAsync(
			sum.InspectAsync(
				sum.StartMaybe(nil, func(ctx context.Context) (int, error) {
					order = append(order, "start")
					return 2, nil
				}),
				func(int) { order = append(order, "inspect1") },
			),
			func(n int) int {
				order = append(order, "map")
				return n * 2
			},
		),
		func(int) { order = append(order, "inspect2") },
	)
	got := sum.Await(context.Background(), chain)
	if v := got.Unwrap(); v != 4 {
		t.Fatalf("got %v, want Present(4)", got)
	}
	want := []string{"start", "inspect1", "map", "inspect2"}
	if len(order) != len(want) {
		t.Fatalf("order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order %v, want %v", order, want)
		}
	}
}

func TestStartMaybeCapture(t *testing.T) {
	var logged []error
	cfg := sum.NewConfig(sum.WithLogger(func(err error) { logged = append(logged, err) }))

	chain := sum.MapAsync(
		sum.StartMaybe(cfg, func(ctx context.Context) (int, error) {
			return 0, errors.New("remote failed")
		}),
		func(n int) int { return n + 1 },
	)
	got := sum.Await(context.Background(), chain)
	if !got.IsAbsent() {
		t.Fatalf("got %v, want Absent", got)
	}
	if len(logged) != 1 {
		t.Fatalf("logger invoked %d times, want 1", len(logged))
	}
}

func TestFlatMapAsyncCollapses(t *testing.T) {
	// The continuation starts another chain; the result is a single
	// pending Maybe, not a pending-of-pending.
	chain := sum.FlatMapAsync(
		sum.LiftMaybe(sum.Present(3)),
		func(n int) kont.Eff[sum.Maybe[string]] {
			return sum.StartMaybe(nil, func(ctx context.Context) (string, error) {
				return strconv.Itoa(n * 10), nil
			})
		},
	)
	got := sum.Await(context.Background(), chain)
	if v := got.Unwrap(); v != "30" {
		t.Fatalf("got %v, want Present(30)", got)
	}

	// Absent short-circuits without starting the inner chain.
	started := false
	chain = sum.FlatMapAsync(
		sum.LiftMaybe(sum.Absent[int]()),
		func(n int) kont.Eff[sum.Maybe[string]] {
			started = true
			return sum.LiftMaybe(sum.Present("unreachable"))
		},
	)
	if got := sum.Await(context.Background(), chain); !got.IsAbsent() || started {
		t.Fatalf("got %v (started=%v), want Absent without inner start", got, started)
	}
}

func TestAndThenAsyncShortCircuit(t *testing.T) {
	invoked := false
	chain := sum.AndThenAsync(
		sum.LiftOutcome(sum.Failure[int, string]("NaN")),
		func(n int) kont.Eff[sum.Outcome[int, string]] {
			invoked = true
			return sum.LiftOutcome(sum.Success[int, string](n * n))
		},
	)
	got := sum.Await(context.Background(), chain)
	if e := got.UnwrapErr(); e != "NaN" || invoked {
		t.Fatalf("got %v (invoked=%v), want Failure(NaN) untouched", got, invoked)
	}
}

func TestOutcomeAsyncPipeline(t *testing.T) {
	cfg := sum.NewConfig()
	square := func(n int) kont.Eff[sum.Outcome[int, sum.Err]] {
		return sum.LiftOutcome(sum.Success[int, sum.Err](n * n))
	}
	chain := sum.MapOutcomeAsync(
		sum.AndThenAsync(
			sum.StartOutcome(cfg, func(ctx context.Context) (int, error) { return 2, nil },
				func(err error) sum.Err { return sum.ErrFrom(cfg, err) }),
			square,
		),
		strconv.Itoa,
	)
	got := sum.Await(context.Background(), chain)
	if v := got.Unwrap(); v != "4" {
		t.Fatalf("got %v, want Success(4)", got)
	}
}

func TestMapFailureAsync(t *testing.T) {
	chain := sum.MapFailureAsync(
		sum.LiftOutcome(sum.Failure[int, string]("boom")),
		func(e string) int { return len(e) },
	)
	got := sum.Await(context.Background(), chain)
	if e := got.UnwrapErr(); e != 4 {
		t.Fatalf("got %v, want Failure(4)", got)
	}
}

func TestRecoverAsync(t *testing.T) {
	calls := 0
	chain := sum.RecoverAsync(
		sum.LiftOutcome(sum.Failure[int, string]("boom")),
		func(e string) kont.Eff[sum.Outcome[int, string]] {
			calls++
			return sum.LiftOutcome(sum.Success[int, string](len(e)))
		},
	)
	got := sum.Await(context.Background(), chain)
	if v := got.Unwrap(); v != 4 || calls != 1 {
		t.Fatalf("got %v (calls=%d), want Success(4) (1)", got, calls)
	}

	// Success passes through without invoking the recovery.
	chain = sum.RecoverAsync(
		sum.LiftOutcome(sum.Success[int, string](1)),
		func(e string) kont.Eff[sum.Outcome[int, string]] {
			calls++
			return sum.LiftOutcome(sum.Failure[int, string]("unreachable"))
		},
	)
	if got := sum.Await(context.Background(), chain); got.Unwrap() != 1 || calls != 1 {
		t.Fatalf("got %v (calls=%d)", got, calls)
	}
}

func TestOrAsync(t *testing.T) {
	chain := sum.OrAsync(
		sum.LiftMaybe(sum.Absent[int]()),
		func() kont.Eff[sum.Maybe[int]] {
			return sum.StartMaybe(nil, func(ctx context.Context) (int, error) { return 7, nil })
		},
	)
	if got := sum.Await(context.Background(), chain); got.Unwrap() != 7 {
		t.Fatalf("got %v, want Present(7)", got)
	}
}

func TestFilterAsync(t *testing.T) {
	chain := sum.FilterAsync(
		sum.LiftMaybe(sum.Present(3)),
		func(n int) bool { return n%2 == 0 },
	)
	if got := sum.Await(context.Background(), chain); !got.IsAbsent() {
		t.Fatalf("got %v, want Absent", got)
	}
}

func TestInspectErrAsync(t *testing.T) {
	var seen []string
	chain := sum.InspectErrAsync(
		sum.LiftOutcome(sum.Failure[int, string]("boom")),
		func(e string) { seen = append(seen, e) },
	)
	got := sum.Await(context.Background(), chain)
	if e := got.UnwrapErr(); e != "boom" || len(seen) != 1 {
		t.Fatalf("got %v (seen=%v)", got, seen)
	}
}

func TestAwaitMaybeCapturesStagePanic(t *testing.T) {
	var logged []error
	cfg := sum.NewConfig(sum.WithLogger(func(err error) { logged = append(logged, err) }))

	chain := sum.MapAsync(
		sum.LiftMaybe(sum.Present(1)),
		func(n int) int { panic("stage exploded") },
	)
	got := sum.AwaitMaybe(context.Background(), cfg, chain)
	if !got.IsAbsent() {
		t.Fatalf("got %v, want Absent", got)
	}
	if len(logged) != 1 {
		t.Fatalf("logger invoked %d times, want 1", len(logged))
	}
}

func TestAwaitOutcomeCapturesStagePanic(t *testing.T) {
	chain := sum.MapOutcomeAsync(
		sum.LiftOutcome(sum.Success[int, string](1)),
		func(n int) int { panic("stage exploded") },
	)
	got := sum.AwaitOutcome(context.Background(), nil, chain,
		func(err error) string { return err.Error() })
	e := got.UnwrapErr()
	if e == "" {
		t.Fatalf("got %v, want projected failure", got)
	}
}

func TestZipAsyncBothEvaluated(t *testing.T) {
	// Both operand chains run, left before right, even when the left
	// resolves Absent.
	var order []string
	a := sum.StartMaybe(nil, func(ctx context.Context) (int, error) {
		order = append(order, "a")
		return 0, errors.New("no a")
	})
	b := sum.StartMaybe(nil, func(ctx context.Context) (string, error) {
		order = append(order, "b")
		return "right", nil
	})
	got := sum.Await(context.Background(), sum.ZipAsync(a, b))
	if !got.IsAbsent() {
		t.Fatalf("got %v, want Absent", got)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order %v, want [a b]", order)
	}

	both := sum.ZipAsync(
		sum.LiftMaybe(sum.Present(1)),
		sum.LiftMaybe(sum.Present("one")),
	)
	if p := sum.Await(context.Background(), both).Unwrap(); p.First != 1 || p.Second != "one" {
		t.Fatalf("got %v, want Pair{1 one}", p)
	}
}

func TestUnzipAsync(t *testing.T) {
	chain := sum.UnzipAsync(sum.LiftMaybe(sum.Present(sum.Pair[int, string]{First: 1, Second: "one"})))
	got := sum.Await(context.Background(), chain)
	if got.First.Unwrap() != 1 || got.Second.Unwrap() != "one" {
		t.Fatalf("got %v, want Present(1)/Present(one)", got)
	}

	chain = sum.UnzipAsync(sum.LiftMaybe(sum.Absent[sum.Pair[int, string]]()))
	got = sum.Await(context.Background(), chain)
	if !got.First.IsAbsent() || !got.Second.IsAbsent() {
		t.Fatalf("got %v, want Absent/Absent", got)
	}
}

func TestFlattenMaybeAsync(t *testing.T) {
	chain := sum.FlattenMaybeAsync(
		sum.MapAsync(
			sum.StartMaybe(nil, func(ctx context.Context) (int, error) { return 5, nil }),
			func(n int) sum.Maybe[int] { return sum.Present(n * 2) },
		),
	)
	if got := sum.Await(context.Background(), chain); got.Unwrap() != 10 {
		t.Fatalf("got %v, want Present(10)", got)
	}

	inner := sum.LiftMaybe(sum.Present(sum.Absent[int]()))
	if got := sum.Await(context.Background(), sum.FlattenMaybeAsync(inner)); !got.IsAbsent() {
		t.Fatalf("got %v, want Absent", got)
	}
}

func TestMatchAsync(t *testing.T) {
	chain := sum.MatchAsync(
		sum.StartMaybe(nil, func(ctx context.Context) (int, error) { return 21, nil }),
		func(n int) string { return strconv.Itoa(n * 2) },
		func() string { return "none" },
	)
	if got := sum.Await(context.Background(), chain); got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}

	chain = sum.MatchAsync(
		sum.LiftMaybe(sum.Absent[int]()),
		func(n int) string { return "some" },
		func() string { return "none" },
	)
	if got := sum.Await(context.Background(), chain); got != "none" {
		t.Fatalf("got %q, want %q", got, "none")
	}
}

func TestXorAsync(t *testing.T) {
	ctx := context.Background()
	one := func() kont.Eff[sum.Maybe[int]] { return sum.LiftMaybe(sum.Present(1)) }
	two := func() kont.Eff[sum.Maybe[int]] { return sum.LiftMaybe(sum.Present(2)) }
	none := func() kont.Eff[sum.Maybe[int]] { return sum.LiftMaybe(sum.Absent[int]()) }

	if got := sum.Await(ctx, sum.XorAsync(one(), none())); got.Unwrap() != 1 {
		t.Fatalf("got %v, want Present(1)", got)
	}
	if got := sum.Await(ctx, sum.XorAsync(none(), two())); got.Unwrap() != 2 {
		t.Fatalf("got %v, want Present(2)", got)
	}
	if got := sum.Await(ctx, sum.XorAsync(one(), two())); !got.IsAbsent() {
		t.Fatalf("got %v, want Absent", got)
	}
	if got := sum.Await(ctx, sum.XorAsync(none(), none())); !got.IsAbsent() {
		t.Fatalf("got %v, want Absent", got)
	}
}

func TestFlattenOutcomeAsync(t *testing.T) {
	ctx := context.Background()
	chain := sum.FlattenOutcomeAsync(
		sum.LiftOutcome(sum.Success[sum.Outcome[int, string], string](sum.Success[int, string](7))),
	)
	if got := sum.Await(ctx, chain); got.Unwrap() != 7 {
		t.Fatalf("got %v, want Success(7)", got)
	}

	chain = sum.FlattenOutcomeAsync(
		sum.LiftOutcome(sum.Failure[sum.Outcome[int, string], string]("outer")),
	)
	if got := sum.Await(ctx, chain); got.UnwrapErr() != "outer" {
		t.Fatalf("got %v, want Failure(outer)", got)
	}
}

func TestTransposeAsyncBothDirections(t *testing.T) {
	ctx := context.Background()
	chain := sum.TransposeMaybeAsync(
		sum.LiftMaybe(sum.Present(sum.Success[int, string](3))),
	)
	got := sum.Await(ctx, chain)
	if got.Unwrap().Unwrap() != 3 {
		t.Fatalf("got %v, want Success(Present(3))", got)
	}

	back := sum.Await(ctx, sum.TransposeOutcomeAsync(sum.LiftOutcome(got)))
	if back.Unwrap().Unwrap() != 3 {
		t.Fatalf("got %v, want Present(Success(3))", back)
	}

	absent := sum.Await(ctx, sum.TransposeMaybeAsync(sum.LiftMaybe(sum.Absent[sum.Outcome[int, string]]())))
	if !absent.Unwrap().IsAbsent() {
		t.Fatalf("got %v, want Success(Absent)", absent)
	}
}

func TestMatchOutcomeAsync(t *testing.T) {
	ctx := context.Background()
	chain := sum.MatchOutcomeAsync(
		sum.LiftOutcome(sum.Success[int, string](21)),
		func(n int) string { return strconv.Itoa(n * 2) },
		func(e string) string { return "err:" + e },
	)
	if got := sum.Await(ctx, chain); got != "42" {
		t.Fatalf("got %q, want %q", got, "42")
	}

	chain = sum.MatchOutcomeAsync(
		sum.LiftOutcome(sum.Failure[int, string]("boom")),
		func(n int) string { return "ok" },
		func(e string) string { return "err:" + e },
	)
	if got := sum.Await(ctx, chain); got != "err:boom" {
		t.Fatalf("got %q, want %q", got, "err:boom")
	}
}

func TestStartOutcomeCancellation(t *testing.T) {
	// A canceled computation surfaces as a Failure through the same
	// capture semantics as any other error.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	chain := sum.StartOutcome(nil,
		func(ctx context.Context) (int, error) { return 0, ctx.Err() },
		func(err error) string { return err.Error() },
	)
	got := sum.Await(ctx, chain)
	if e := got.UnwrapErr(); e != context.Canceled.Error() {
		t.Fatalf("got %v, want Failure(context canceled)", got)
	}
}
