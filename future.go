// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Future represents a value of type V that becomes available eventually.
//
// The function receives a continuation k and guarantees that k is invoked
// exactly once, eventually, with the value. A Future owns no storage of its
// own; it is only the registration function. Registering a second
// continuation on the same Future is undefined.
type Future[V any] func(k func(V))

// Await registers k as the continuation of m.
// Registration never blocks; k runs on whichever goroutine delivers the value.
func (m Future[V]) Await(k func(V)) {
	m(k)
}

// Pure lifts a plain value into a Future.
// The continuation is invoked synchronously, on the registering call stack.
func Pure[V any](v V) Future[V] {
	return func(k func(V)) {
		k(v)
	}
}

// Suspend creates a Future from a raw callback-taking function.
// This is the adapter point for any asynchronous primitive: f must
// eventually call its argument exactly once.
func Suspend[V any](f func(func(V))) Future[V] {
	return Future[V](f)
}

// Run registers a terminal consumer on m, closing the chain.
func Run[V any](m Future[V], k func(V)) {
	m(k)
}
