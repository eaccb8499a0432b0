// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// cellCapacity is the bounded capacity of a Pending cell's queue.
// A one-shot handoff needs a single slot, but lfq.SPSC requires a
// minimum capacity of 2.
const cellCapacity = 2

// Pending is a one-shot cross-goroutine handoff cell: the plain pending
// value an async chain can start from. One producer goroutine resolves
// it exactly once; one consumer goroutine receives the value, typically
// through the [RecvFrom] chain constructor.
//
// Transport is a bounded lock-free SPSC queue from lfq. Single-producer
// single-consumer is a caller obligation, not library-enforced;
// double-resolution is guarded by an atomic counter.
//
// Affine semantics: the value may be received at most once. TryRecv
// after a successful receive reports iox.ErrWouldBlock again.
type Pending[T any] struct {
	q        lfq.SPSC[T]
	slot     T
	resolved atomix.Uint32
}

// NewPending creates an unresolved cell.
func NewPending[T any]() *Pending[T] {
	p := &Pending[T]{}
	p.q.Init(cellCapacity)
	return p
}

// Resolve publishes v to the consumer. Only the first call wins;
// subsequent calls return false and discard v. Must be called from at
// most one goroutine.
func (p *Pending[T]) Resolve(v T) bool {
	if p.resolved.Add(1) != 1 {
		return false
	}
	p.slot = v
	// Single slot, first resolution: the queue cannot be full.
	_ = p.q.Enqueue(&p.slot)
	return true
}

// TryRecv consumes the resolved value.
// Non-blocking: returns iox.ErrWouldBlock while unresolved, and again
// after the one successful receive.
func (p *Pending[T]) TryRecv() (T, error) {
	return p.q.Dequeue()
}

// Recv blocks until the cell resolves, waiting past iox.ErrWouldBlock
// with adaptive backoff (iox.Backoff). Does not spawn goroutines or
// create channels.
func (p *Pending[T]) Recv() T {
	var bo iox.Backoff
	for {
		v, err := p.q.Dequeue()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Resolved reports whether Resolve has been called.
// The value may not have been consumed yet.
func (p *Pending[T]) Resolved() bool {
	return p.resolved.Load() > 0
}
