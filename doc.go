// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sum provides algebraic optional and outcome wrappers with a
// closed combinator surface, plus sequential asynchronous chains on
// [code.hybscloud.com/kont].
//
// [Maybe] models optional presence (Present/Absent); [Outcome] models
// success-or-failure (Success/Failure). Both are immutable value types,
// safe to share without synchronization, with short-circuit chaining:
// the first negative state skips every later transform.
//
// # Architecture
//
//   - Wrappers: [Maybe] and [Outcome] tagged values; transforms as methods
//     where the type is preserved, free functions ([MapMaybe], [AndThen],
//     [TransposeMaybe], ...) where it changes.
//   - Errors as data: Absence and Failure are never logged and never thrown.
//     [Code] and [Err] give failures structured identity; derivation is the
//     explicit [Coder] interface, never runtime type introspection.
//   - Capture boundary: [CaptureMaybe] and [CaptureOutcome] run caller code,
//     route any returned error or panic through the [Config] logger exactly
//     once, and convert it to Absent or a projected Failure. Nothing escapes.
//   - Loud consumption: Unwrap/Expect (and error-channel mirrors) panic with
//     [*UnwrapFailure] on the wrong state — the library's only sanctioned
//     panic, reserved for provable misuse. Get accessors never panic.
//   - Async chains: dual-world API over kont. Stages evaluate strictly in
//     sequence; the only suspension points are caller-supplied computations.
//
// # API Topologies
//
//   - Construction: [Present], [Absent], [Success], [Failure], capture via
//     [CaptureMaybe], [CaptureOutcome], [CaptureErr].
//   - Sequences: [FilterAll], [MapAll], [FirstPresent], [CollectMaybe],
//     [CollectOutcome].
//   - Cont-world chains: [Start], [StartPoll], [RecvFrom], [StartMaybe],
//     [StartOutcome], [MapAsync], [FlatMapAsync], [AndThenAsync], ...
//   - Expr-world: zero-allocation variants like [ExprStart], [ExprStartBind],
//     [ExprRecvBind]. Bridge via [Reify] and [Reflect].
//
// # Integration
//
//   - Stepping: [Step] and [Advance] evaluate chains one effect at a time,
//     making them easy to integrate with an event loop; iox.ErrWouldBlock
//     marks the not-ready boundary.
//   - Blocking: [Await], [AwaitExpr] and [AwaitBoth] wait past boundaries
//     using adaptive backoff, without goroutines or channels. [Pending] is a
//     one-shot SPSC handoff cell for chains fed from another goroutine.
//
// # Example
//
//	cfg := sum.NewConfig(sum.WithLogger(logErr))
//	chain := sum.MapOutcomeAsync(
//		sum.StartOutcome(cfg, fetchUser, func(err error) sum.Err {
//			return sum.ErrFrom(cfg, err)
//		}),
//		func(u User) string { return u.Name },
//	)
//	name := sum.Await(ctx, chain).UnwrapOr("anonymous")
package sum
