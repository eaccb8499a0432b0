// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

import "fmt"

// CapturedPanic wraps a panic value recovered at a capture boundary so
// it can travel the error channel. The original value is preserved in
// Value.
type CapturedPanic struct {
	Value any
}

// Error implements the error interface.
func (p *CapturedPanic) Error() string {
	return fmt.Sprintf("sum: captured panic: %v", p.Value)
}

// CaptureMaybe invokes fn and lifts the result into a Maybe.
// On normal return, Present(value). A returned error or a panic is
// routed through cfg's logger exactly once and converted to Absent;
// nothing escapes the boundary. Panics are wrapped in *CapturedPanic
// before logging.
//
// cfg may be nil: the logger is then a no-op and the conversion is
// otherwise identical.
func CaptureMaybe[T any](cfg *Config, fn func() (T, error)) (m Maybe[T]) {
	defer func() {
		if r := recover(); r != nil {
			cfg.capture(&CapturedPanic{Value: r})
			m = Absent[T]()
		}
	}()
	v, err := fn()
	if err != nil {
		cfg.capture(err)
		return Absent[T]()
	}
	return Present(v)
}

// CaptureOutcome invokes fn and lifts the result into an Outcome.
// On normal return, Success(value). A returned error or a panic is
// routed through cfg's logger exactly once, then handed to project to
// produce the Failure payload — the caller controls the projection from
// error to E. Panics are wrapped in *CapturedPanic before logging and
// projection. Nothing escapes the boundary.
//
// cfg may be nil: the logger is then a no-op and the conversion is
// otherwise identical.
func CaptureOutcome[T, E any](cfg *Config, fn func() (T, error), project func(error) E) (o Outcome[T, E]) {
	defer func() {
		if r := recover(); r != nil {
			err := &CapturedPanic{Value: r}
			cfg.capture(err)
			o = Failure[T, E](project(err))
		}
	}()
	v, err := fn()
	if err != nil {
		cfg.capture(err)
		return Failure[T, E](project(err))
	}
	return Success[T, E](v)
}

// CaptureErr is CaptureOutcome specialized to the canonical [Err]
// payload: the projection is [ErrFrom] with the same cfg.
func CaptureErr[T any](cfg *Config, fn func() (T, error)) Outcome[T, Err] {
	return CaptureOutcome(cfg, fn, func(err error) Err {
		return ErrFrom(cfg, err)
	})
}
