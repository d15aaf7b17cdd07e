// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package loop provides a serial callback queue standing in for a host
// event loop (a main dispatch queue) in tests and examples.
//
// Callbacks posted to a Loop run one at a time, in posting order, on a
// single goroutine owned by the Loop. Callbacks may post further callbacks.
package loop

import (
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Loop is a serial callback queue.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	pending int // queued, delayed or running callbacks
	closed  bool
	g       errgroup.Group
}

// New starts a Loop.
func New() *Loop {
	l := &Loop{}
	l.cond = sync.NewCond(&l.mu)
	l.g.Go(l.drain)
	return l
}

func (l *Loop) drain() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for {
		for len(l.queue) == 0 && !l.closed {
			l.cond.Wait()
		}
		if len(l.queue) == 0 {
			return nil
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]

		l.mu.Unlock()
		fn()
		l.mu.Lock()

		l.pending--
		l.cond.Broadcast()
	}
}

// Post queues fn to run on the loop goroutine.
// Returns false if the loop is closed.
func (l *Loop) Post(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.pending++
	l.queue = append(l.queue, fn)
	l.cond.Broadcast()
	return true
}

// After queues fn once d has elapsed.
// A delayed callback holds the loop open until it has run.
func (l *Loop) After(d time.Duration, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.pending++
	time.AfterFunc(d, func() {
		l.mu.Lock()
		l.queue = append(l.queue, fn)
		l.cond.Broadcast()
		l.mu.Unlock()
	})
	return true
}

// Deliver wraps k so that each delivery is posted to l instead of running
// on the caller's goroutine.
func Deliver[V any](l *Loop, k func(V)) func(V) {
	return func(v V) {
		l.Post(func() { k(v) })
	}
}

// Close waits until every queued, delayed and running callback has
// finished, including callbacks posted by them, then stops the loop.
func (l *Loop) Close() error {
	l.mu.Lock()
	for l.pending > 0 {
		l.cond.Wait()
	}
	l.closed = true
	l.cond.Broadcast()
	l.mu.Unlock()
	return l.g.Wait()
}
