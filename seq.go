// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// FilterAll maps each Present element that fails pred to Absent.
// Order and length are preserved; Absent elements pass through.
func FilterAll[T any](ms []Maybe[T], pred func(T) bool) []Maybe[T] {
	out := make([]Maybe[T], len(ms))
	for i, m := range ms {
		out[i] = m.Filter(pred)
	}
	return out
}

// MapAll applies f element-wise over the sequence, preserving order,
// length and absence.
func MapAll[T, U any](ms []Maybe[T], f func(T) U) []Maybe[U] {
	out := make([]Maybe[U], len(ms))
	for i, m := range ms {
		out[i] = MapMaybe(m, f)
	}
	return out
}

// FirstPresent returns the first Present element whose value satisfies
// pred, as is. Absent if none match.
func FirstPresent[T any](ms []Maybe[T], pred func(T) bool) Maybe[T] {
	for _, m := range ms {
		if m.IsPresentAnd(pred) {
			return m
		}
	}
	return Absent[T]()
}

// FirstPresentOr returns the first matching value, or fallback if none
// match. fallback is evaluated eagerly by the caller.
func FirstPresentOr[T any](ms []Maybe[T], fallback T, pred func(T) bool) T {
	return FirstPresent(ms, pred).UnwrapOr(fallback)
}

// FirstPresentOrElse returns the first matching value, or f() if none
// match. f is invoked only when nothing matches.
func FirstPresentOrElse[T any](ms []Maybe[T], f func() T, pred func(T) bool) T {
	return FirstPresent(ms, pred).UnwrapOrElse(f)
}

// CollectMaybe inverts a sequence of Maybes into a Maybe of a sequence:
// all Present → Present of the values in order; any Absent → Absent.
func CollectMaybe[T any](ms []Maybe[T]) Maybe[[]T] {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		v, ok := m.Get()
		if !ok {
			return Absent[[]T]()
		}
		out = append(out, v)
	}
	return Present(out)
}

// CollectOutcome inverts a sequence of Outcomes into an Outcome of a
// sequence: all Success → Success of the values in order; otherwise the
// first Failure encountered wins.
func CollectOutcome[T, E any](os []Outcome[T, E]) Outcome[[]T, E] {
	out := make([]T, 0, len(os))
	for _, o := range os {
		v, ok := o.Get()
		if !ok {
			e, _ := o.GetErr()
			return Failure[[]T, E](e)
		}
		out = append(out, v)
	}
	return Success[[]T, E](out)
}
