// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/fut"
	"code.hybscloud.com/fut/internal/loop"
)

const waitTimeout = time.Second

// await registers on m and blocks until it delivers.
// Fails the test if m does not deliver within waitTimeout, or if it
// delivers more than once before await returns.
func await[V any](t *testing.T, m fut.Future[V]) V {
	t.Helper()
	var calls atomic.Int32
	ch := make(chan V, 1)
	m.Await(func(v V) {
		if calls.Add(1) == 1 {
			ch <- v
		}
	})
	select {
	case v := <-ch:
		if n := calls.Load(); n != 1 {
			t.Fatalf("continuation invoked %d times, want 1", n)
		}
		return v
	case <-time.After(waitTimeout):
		t.Fatal("future did not deliver")
		panic("unreachable")
	}
}

// newLoop starts an event loop closed at test cleanup.
func newLoop(t testing.TB) *loop.Loop {
	l := loop.New()
	t.Cleanup(func() {
		if err := l.Close(); err != nil {
			t.Errorf("loop close: %v", err)
		}
	})
	return l
}

// deferred returns a Future delivering v from the loop goroutine.
func deferred[V any](l *loop.Loop, v V) fut.Future[V] {
	return fut.Suspend(func(k func(V)) {
		l.Post(func() { k(v) })
	})
}

// asyncAdd returns a bind step adding a to its input on another goroutine.
func asyncAdd(a int) func(int) fut.Future[int] {
	return func(b int) fut.Future[int] {
		return fut.Suspend(func(k func(int)) {
			go k(a + b)
		})
	}
}

// addThen is a completion-style addition on another goroutine.
func addThen(a, b int, k func(int)) {
	go k(a + b)
}

func subtract(a int) func(int) int {
	return func(b int) int { return a - b }
}
