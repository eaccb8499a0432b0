// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sum

// Pair is a two-element tuple, used by Zip/Unzip results.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MapMaybe applies f to the contained value:
// Present(x) → Present(f(x)); Absent → Absent.
func MapMaybe[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if v, ok := m.Get(); ok {
		return Present(f(v))
	}
	return Absent[U]()
}

// FlatMapMaybe is monadic bind: Present(x) → f(x); Absent → Absent.
// The result is f's Maybe as-is — never double-wrapped.
func FlatMapMaybe[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if v, ok := m.Get(); ok {
		return f(v)
	}
	return Absent[U]()
}

// MatchMaybe eliminates m into a plain value. Exactly one branch runs.
func MatchMaybe[T, R any](m Maybe[T], onPresent func(T) R, onAbsent func() R) R {
	if v, ok := m.Get(); ok {
		return onPresent(v)
	}
	return onAbsent()
}

// ZipMaybe pairs two Maybes: both Present → Present(Pair); otherwise Absent.
func ZipMaybe[A, B any](a Maybe[A], b Maybe[B]) Maybe[Pair[A, B]] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return Present(Pair[A, B]{First: av, Second: bv})
	}
	return Absent[Pair[A, B]]()
}

// UnzipMaybe splits a Maybe of a Pair into a pair of Maybes:
// Present(Pair(a, b)) → (Present(a), Present(b)); Absent → (Absent, Absent).
func UnzipMaybe[A, B any](m Maybe[Pair[A, B]]) (Maybe[A], Maybe[B]) {
	if p, ok := m.Get(); ok {
		return Present(p.First), Present(p.Second)
	}
	return Absent[A](), Absent[B]()
}

// FlattenMaybe removes one level of nesting.
// Absent at either level propagates as Absent.
func FlattenMaybe[T any](m Maybe[Maybe[T]]) Maybe[T] {
	if inner, ok := m.Get(); ok {
		return inner
	}
	return Absent[T]()
}
