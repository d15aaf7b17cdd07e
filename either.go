// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Either represents a value that is either a success Value or a failure Error.
// Either is immutable. It intentionally has no Error() string method, so an
// Either is never mistaken for a Go error.
type Either[V, E any] struct {
	ok    bool
	value V
	err   E
}

// Value creates a success Either.
func Value[V, E any](v V) Either[V, E] {
	return Either[V, E]{ok: true, value: v}
}

// Error creates a failure Either.
func Error[V, E any](e E) Either[V, E] {
	return Either[V, E]{ok: false, err: e}
}

// IsValue returns true if this is a success value.
func (e Either[V, E]) IsValue() bool {
	return e.ok
}

// IsError returns true if this is a failure.
func (e Either[V, E]) IsError() bool {
	return !e.ok
}

// GetValue returns the success value and true, or zero and false.
func (e Either[V, E]) GetValue() (V, bool) {
	if e.ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// GetError returns the failure value and true, or zero and false.
func (e Either[V, E]) GetError() (E, bool) {
	if !e.ok {
		return e.err, true
	}
	var zero E
	return zero, false
}

// ValueOr returns the success value, or fallback on failure.
func (e Either[V, E]) ValueOr(fallback V) V {
	if e.ok {
		return e.value
	}
	return fallback
}

// MatchEither pattern matches on the Either, calling onValue or onError.
func MatchEither[V, E, T any](e Either[V, E], onValue func(V) T, onError func(E) T) T {
	if e.ok {
		return onValue(e.value)
	}
	return onError(e.err)
}

// MapEither applies f to the success value.
// On failure f is not evaluated and the error is carried over unchanged.
func MapEither[V, E, R any](e Either[V, E], f func(V) R) Either[R, E] {
	if e.ok {
		return Value[R, E](f(e.value))
	}
	return Error[R](e.err)
}

// FlatMapEither sequences two Either computations.
// On failure f is not evaluated.
func FlatMapEither[V, E, R any](e Either[V, E], f func(V) Either[R, E]) Either[R, E] {
	if e.ok {
		return f(e.value)
	}
	return Error[R](e.err)
}

// MapErrorEither applies f to the failure value.
func MapErrorEither[V, E, F any](e Either[V, E], f func(E) F) Either[V, F] {
	if e.ok {
		return Value[V, F](e.value)
	}
	return Error[V](f(e.err))
}
