// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Monad operations for futures.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map, Sequence and Then are derived operations kept to avoid intermediate
// closure allocations. None of them ever skips a stage: failure is carried
// in the value (see Either), not in the combinators.

// Bind sequences two futures (monadic bind).
// It waits for m, passes the value to f, then waits for the future f returns.
func Bind[A, B any](m Future[A], f func(A) Future[B]) Future[B] {
	return func(k func(B)) {
		m(func(a A) {
			f(a)(k)
		})
	}
}

// FlatMap is Bind under its functor-style name.
func FlatMap[A, B any](m Future[A], f func(A) Future[B]) Future[B] {
	return Bind(m, f)
}

// Map applies a pure function to the eventual value of m.
// f runs exactly once, on whichever goroutine delivers m's value.
func Map[A, B any](m Future[A], f func(A) B) Future[B] {
	return func(k func(B)) {
		m(func(a A) {
			k(f(a))
		})
	}
}

// Sequence runs m, discards its value, then runs the future produced by g.
// g is not called until m has delivered.
func Sequence[A, B any](m Future[A], g func() Future[B]) Future[B] {
	return func(k func(B)) {
		m(func(_ A) {
			g()(k)
		})
	}
}

// Then sequences two futures, discarding the first value.
// n is registered only after m has delivered.
func Then[A, B any](m Future[A], n Future[B]) Future[B] {
	return func(k func(B)) {
		m(func(_ A) {
			n(k)
		})
	}
}

// Apply is applicative application.
// It registers on fa and then, inside that continuation, on ff; the result
// fires once both have delivered and the function is applied exactly once.
func Apply[A, B any](ff Future[func(A) B], fa Future[A]) Future[B] {
	return func(k func(B)) {
		fa(func(a A) {
			ff(func(f func(A) B) {
				k(f(a))
			})
		})
	}
}

// Apply2 combines two independently obtained futures with f.
// It is Apply(Map(fa, curry(f)), fb) without the curried intermediate.
func Apply2[A, B, C any](f func(A, B) C, fa Future[A], fb Future[B]) Future[C] {
	return func(k func(C)) {
		fb(func(b B) {
			fa(func(a A) {
				k(f(a, b))
			})
		})
	}
}

// Fold left-folds Bind over steps, starting from m.
// Each step receives the previous step's value; an empty steps list
// returns m unchanged.
func Fold[A any](m Future[A], steps ...func(A) Future[A]) Future[A] {
	for _, step := range steps {
		m = Bind(m, step)
	}
	return m
}
