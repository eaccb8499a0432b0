// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// TransposeMaybe converts a Maybe of an Outcome into an Outcome of a Maybe:
//
//	Absent                → Success(Absent)
//	Present(Success(x))   → Success(Present(x))
//	Present(Failure(e))   → Failure(e)
//
// Inverse of [TransposeOutcome]; applying both in either order returns
// the original structure.
func TransposeMaybe[T, E any](m Maybe[Outcome[T, E]]) Outcome[Maybe[T], E] {
	o, ok := m.Get()
	if !ok {
		return Success[Maybe[T], E](Absent[T]())
	}
	if v, succeeded := o.Get(); succeeded {
		return Success[Maybe[T], E](Present(v))
	}
	e, _ := o.GetErr()
	return Failure[Maybe[T], E](e)
}

// TransposeOutcome converts an Outcome of a Maybe into a Maybe of an Outcome:
//
//	Success(Absent)       → Absent
//	Success(Present(x))   → Present(Success(x))
//	Failure(e)            → Present(Failure(e))
//
// Inverse of [TransposeMaybe].
func TransposeOutcome[T, E any](o Outcome[Maybe[T], E]) Maybe[Outcome[T, E]] {
	if e, failed := o.GetErr(); failed {
		return Present(Failure[T, E](e))
	}
	m, _ := o.Get()
	if v, ok := m.Get(); ok {
		return Present(Success[T, E](v))
	}
	return Absent[Outcome[T, E]]()
}
