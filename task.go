// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"context"

	"code.hybscloud.com/kont"
)

// taskContext carries the evaluation environment for one chain: the
// caller's context, passed through to every pending computation.
// Cancellation is entirely the computation's responsibility; the library
// adds no suspension, retry or timeout of its own.
type taskContext struct {
	ctx context.Context
}

// taskDispatcher is the structural interface for async chain operations.
// DispatchTask either completes the operation or returns
// iox.ErrWouldBlock at the readiness boundary when the pending
// computation cannot produce a value yet.
type taskDispatcher interface {
	DispatchTask(tc *taskContext) (kont.Resumed, error)
}

// Task is the effect operation wrapping a caller-supplied pending
// computation. It is the chain's only suspension point: the library
// suspends exactly where the caller's function runs.
type Task[T any] struct {
	kont.Phantom[T]
	Run func(context.Context) T
}

// DispatchTask invokes the pending computation with the chain's context.
// Always completes; errors and absence are encoded in T by the capture
// constructors ([StartMaybe], [StartOutcome]).
func (t Task[T]) DispatchTask(tc *taskContext) (kont.Resumed, error) {
	return t.Run(tc.ctx), nil
}

// Poll is the non-blocking effect operation for computations that may
// not be ready. Run returns iox.ErrWouldBlock while pending; any error
// leaves the suspension unconsumed for retry ([Await] waits it out with
// adaptive backoff, [Advance] hands it to the event loop).
type Poll[T any] struct {
	kont.Phantom[T]
	Run func(context.Context) (T, error)
}

// DispatchTask polls the computation once.
// Non-blocking: returns the computation's error when not ready.
func (p Poll[T]) DispatchTask(tc *taskContext) (kont.Resumed, error) {
	v, err := p.Run(tc.ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Recv is the effect operation awaiting a [Pending] handoff cell.
type Recv[T any] struct {
	kont.Phantom[T]
	P *Pending[T]
}

// DispatchTask consumes the cell's value.
// Non-blocking: returns iox.ErrWouldBlock while unresolved.
func (r Recv[T]) DispatchTask(tc *taskContext) (kont.Resumed, error) {
	v, err := r.P.TryRecv()
	if err != nil {
		return nil, err
	}
	return v, nil
}
