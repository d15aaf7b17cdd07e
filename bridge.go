// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import "sync"

// Cell is a single-assignment rendezvous between one producer and one
// consumer. It bridges imperative "call me back" APIs into [Future].
//
// A Cell holds at most one pending item: either a delivered result that no
// consumer has taken yet, or a registered consumer that no result has
// reached yet. Whichever side arrives second fires the callback
// synchronously on its own goroutine. The zero value is ready to use.
//
// Each link of a chain owns a fresh Cell; Cells are not reused across
// unrelated registrations.
type Cell[V any] struct {
	mu        sync.Mutex
	result    V
	hasResult bool
	waiter    func(V)
}

// NewCell returns an empty Cell.
func NewCell[V any]() *Cell[V] {
	return new(Cell[V])
}

// Fulfill delivers v.
// If a consumer is waiting it is invoked with v and cleared. Otherwise v is
// stored, overwriting any result that has not been consumed yet.
func (c *Cell[V]) Fulfill(v V) {
	c.mu.Lock()
	if k := c.waiter; k != nil {
		c.waiter = nil
		c.mu.Unlock()
		k(v)
		return
	}
	c.result, c.hasResult = v, true
	c.mu.Unlock()
}

// Await registers k as the consumer.
// If a result is stored k is invoked with it and the result is cleared.
// Otherwise k is stored, overwriting any consumer that is still waiting.
func (c *Cell[V]) Await(k func(V)) {
	c.mu.Lock()
	if c.hasResult {
		v := c.take()
		c.mu.Unlock()
		k(v)
		return
	}
	c.waiter = k
	c.mu.Unlock()
}

// TryFulfill delivers v unless an unconsumed result is already stored.
// Returns false, leaving the stored result in place, on reentrant delivery.
func (c *Cell[V]) TryFulfill(v V) bool {
	c.mu.Lock()
	if k := c.waiter; k != nil {
		c.waiter = nil
		c.mu.Unlock()
		k(v)
		return true
	}
	if c.hasResult {
		c.mu.Unlock()
		return false
	}
	c.result, c.hasResult = v, true
	c.mu.Unlock()
	return true
}

// TryAwait registers k unless another consumer is still waiting.
// Returns false, leaving the waiting consumer in place, on reentrant registration.
func (c *Cell[V]) TryAwait(k func(V)) bool {
	c.mu.Lock()
	if c.hasResult {
		v := c.take()
		c.mu.Unlock()
		k(v)
		return true
	}
	if c.waiter != nil {
		c.mu.Unlock()
		return false
	}
	c.waiter = k
	c.mu.Unlock()
	return true
}

// MustFulfill is like TryFulfill but panics on reentrant delivery.
func (c *Cell[V]) MustFulfill(v V) {
	if !c.TryFulfill(v) {
		panic("fut: cell fulfilled twice")
	}
}

// MustAwait is like TryAwait but panics on reentrant registration.
func (c *Cell[V]) MustAwait(k func(V)) {
	if !c.TryAwait(k) {
		panic("fut: cell awaited twice")
	}
}

// Pending reports which slot currently holds an item.
// At most one of the two results is true.
func (c *Cell[V]) Pending() (result, waiter bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasResult, c.waiter != nil
}

// Complete returns the fulfiller as a plain continuation, ready to be
// passed as the completion argument of a callback API.
func (c *Cell[V]) Complete() func(V) {
	return c.Fulfill
}

// Future returns a Future that registers its continuation on c.
func (c *Cell[V]) Future() Future[V] {
	return c.Await
}

// take clears and returns the stored result. Caller holds c.mu.
func (c *Cell[V]) take() V {
	v := c.result
	var zero V
	c.result, c.hasResult = zero, false
	return v
}
