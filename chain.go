// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Chaining over cells flattens a callback pyramid into a sequence of
// completion-style steps. Each step gets a fresh Cell whose fulfiller is
// passed as the step's completion callback; the step starts once the
// previous cell fires.
//
//	c := Start(present)
//	d := Next(c, animate)
//	e := Pipe(d, func(finished bool, done func(struct{})) { dismiss(done) })
//	Finish(e, func() { log.Print("done") })

// Start begins a chain by running f with a fresh cell's fulfiller.
func Start[V any](f func(func(V))) *Cell[V] {
	c := NewCell[V]()
	f(c.Fulfill)
	return c
}

// Pipe runs f once prev fires, passing prev's value and the fulfiller of
// the returned cell.
func Pipe[A, B any](prev *Cell[A], f func(A, func(B))) *Cell[B] {
	c := NewCell[B]()
	prev.Await(func(a A) {
		f(a, c.Fulfill)
	})
	return c
}

// Next runs f once prev fires, discarding prev's value.
// It orders side-effecting steps whose results do not feed each other.
func Next[A, B any](prev *Cell[A], f func(func(B))) *Cell[B] {
	c := NewCell[B]()
	prev.Await(func(_ A) {
		f(c.Fulfill)
	})
	return c
}

// Sink closes a chain with a plain consumer of prev's value.
func Sink[A any](prev *Cell[A], k func(A)) {
	prev.Await(k)
}

// Finish closes a chain with a thunk run once prev fires.
func Finish[A any](prev *Cell[A], f func()) {
	prev.Await(func(_ A) {
		f()
	})
}
