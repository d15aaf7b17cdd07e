// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Arity adapters for completion-style functions.
//
// A completion-style function takes its ordinary arguments followed by a
// continuation that it must call exactly once. AsyncN turns such a function
// into one returning a Future; LiftMN does the same but returns a fully
// curried function, so arguments can be supplied one at a time through
// Map, Apply and Bind.
//
// Every call allocates one fresh Cell. The continuation handed to f is
// one-shot: only the first completion is observed, later ones are dropped.
// If f never completes, the returned Future never delivers.

// launch allocates the cell for one call and starts f with its one-shot fulfiller.
func launch[C any](start func(complete func(C))) Future[C] {
	c := NewCell[C]()
	start(Once(c.Fulfill).Deliver)
	return c.Future()
}

// Async0 adapts a completion-style function with no leading arguments.
func Async0[C any](f func(func(C))) func() Future[C] {
	return func() Future[C] {
		return launch(f)
	}
}

// Async1 adapts a completion-style function with one leading argument.
func Async1[A0, C any](f func(A0, func(C))) func(A0) Future[C] {
	return func(a0 A0) Future[C] {
		return launch(func(k func(C)) { f(a0, k) })
	}
}

// Async2 adapts a completion-style function with two leading arguments.
//
// Example:
//
//	add := func(a, b int, k func(int)) { go k(a + b) }
//	m := Async2(add)(3, 8) // delivers 11
func Async2[A0, A1, C any](f func(A0, A1, func(C))) func(A0, A1) Future[C] {
	return func(a0 A0, a1 A1) Future[C] {
		return launch(func(k func(C)) { f(a0, a1, k) })
	}
}

// Async3 adapts a completion-style function with three leading arguments.
func Async3[A0, A1, A2, C any](f func(A0, A1, A2, func(C))) func(A0, A1, A2) Future[C] {
	return func(a0 A0, a1 A1, a2 A2) Future[C] {
		return launch(func(k func(C)) { f(a0, a1, a2, k) })
	}
}

// Async4 adapts a completion-style function with four leading arguments.
func Async4[A0, A1, A2, A3, C any](f func(A0, A1, A2, A3, func(C))) func(A0, A1, A2, A3) Future[C] {
	return func(a0 A0, a1 A1, a2 A2, a3 A3) Future[C] {
		return launch(func(k func(C)) { f(a0, a1, a2, a3, k) })
	}
}

// LiftM1 is Async1; with a single argument there is nothing to curry.
func LiftM1[A0, C any](f func(A0, func(C))) func(A0) Future[C] {
	return Async1(f)
}

// LiftM2 curries a two-argument completion-style function.
// f is not started until the last argument is supplied.
//
// Example:
//
//	addTo := LiftM2(add)(6)       // func(int) Future[int]
//	m := Bind(Pure(3), addTo)     // delivers 9
func LiftM2[A0, A1, C any](f func(A0, A1, func(C))) func(A0) func(A1) Future[C] {
	g := Async2(f)
	return func(a0 A0) func(A1) Future[C] {
		return func(a1 A1) Future[C] {
			return g(a0, a1)
		}
	}
}

// LiftM3 curries a three-argument completion-style function.
func LiftM3[A0, A1, A2, C any](f func(A0, A1, A2, func(C))) func(A0) func(A1) func(A2) Future[C] {
	g := Async3(f)
	return func(a0 A0) func(A1) func(A2) Future[C] {
		return func(a1 A1) func(A2) Future[C] {
			return func(a2 A2) Future[C] {
				return g(a0, a1, a2)
			}
		}
	}
}

// LiftM4 curries a four-argument completion-style function.
func LiftM4[A0, A1, A2, A3, C any](f func(A0, A1, A2, A3, func(C))) func(A0) func(A1) func(A2) func(A3) Future[C] {
	g := Async4(f)
	return func(a0 A0) func(A1) func(A2) func(A3) Future[C] {
		return func(a1 A1) func(A2) func(A3) Future[C] {
			return func(a2 A2) func(A3) Future[C] {
				return func(a3 A3) Future[C] {
					return g(a0, a1, a2, a3)
				}
			}
		}
	}
}
