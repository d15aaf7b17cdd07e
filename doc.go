// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fut composes callback-based asynchronous operations without
// nested callbacks.
//
// The core type [Future] is a registration function: given a continuation,
// it guarantees the continuation is invoked exactly once, eventually, with
// the value. Any "do work, then call me back" primitive becomes a Future
// through [Suspend], a [Cell], or the arity adapters, and Futures compose
// with functor, applicative and monadic operators.
//
// # Scheduling
//
// fut owns no goroutines, queues or event loop. Every continuation runs
// synchronously on whichever goroutine delivers the value: the caller of
// [Cell.Fulfill], or the goroutine on which a wrapped primitive invokes its
// completion. Registration never blocks. There is no cancellation or
// timeout; a Future whose primitive never completes never delivers.
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Pure]: Lift a plain value; delivers synchronously
//   - [Bind]: Sequence a dependent asynchronous step
//
// Derived operations:
//
//   - [Map]: Apply a function to the eventual value
//   - [FlatMap]: Bind under its functor-style name
//   - [Sequence], [Then]: Sequence, discarding the first value
//   - [Apply], [Apply2]: Combine two independently obtained values
//   - [Fold]: Left-fold Bind over a list of steps
//
// Construction and consumption:
//
//   - [Suspend]: Create a Future from a raw callback-taking function
//   - [Future.Await], [Run]: Register the terminal continuation
//
// # Lifting
//
//   - [LiftOption]: Future[A] → Future[Option[A]], always Some
//   - [LiftEither]: Future[A] → Future[Either[A, E]], always Value
//   - [MapRight], [BindRight]: Map/bind over the success case of a
//     Future[Either], short-circuiting on failure
//
// # Either Type
//
// [Either] represents success ([Value]) or failure ([Error]). The Future
// layer has no notion of failure; fallible steps carry an Either.
//
//   - [Either.IsValue], [Either.IsError]: Predicates
//   - [Either.GetValue], [Either.GetError], [Either.ValueOr]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither]: Functor map over Value
//   - [FlatMapEither]: Monadic bind
//   - [MapErrorEither]: Transform the Error value
//
// # Bridge: Cell
//
// [Cell] is the single-assignment rendezvous between one producer and one
// consumer. Whichever side arrives second fires the consumer.
//
//   - [Cell.Fulfill], [Cell.Await]: Deliver / register (overwrite on reuse)
//   - [Cell.TryFulfill], [Cell.TryAwait]: Refuse to overwrite, report false
//   - [Cell.MustFulfill], [Cell.MustAwait]: Panic on reuse
//   - [Cell.Complete], [Cell.Future]: Producer and consumer views
//
// # Arity Adapters
//
// Completion-style functions take their arguments followed by a
// continuation they call exactly once.
//
//   - [Async0] ... [Async4]: func(A0, ..., func(C)) → func(A0, ...) Future[C]
//   - [LiftM1] ... [LiftM4]: curried variants for use with Map, Apply, Bind
//
// # Chaining
//
// Cell chains flatten a pyramid of completion callbacks:
//
//   - [Start]: Begin a chain
//   - [Pipe]: Next step receives the previous value
//   - [Next]: Next step ignores the previous value
//   - [Sink], [Finish]: Close the chain
//
// # Resource Safety
//
//   - [Bracket]: Acquire-use-release with release after every outcome
//   - [OnError]: Run cleanup only on failure
//
// # Affine Continuations
//
// [Affine] wraps a continuation with one-shot enforcement:
//
//   - [Once]: Create an affine continuation
//   - [Affine.Resume]: Invoke (panics on reuse)
//   - [Affine.TryResume]: Non-panicking variant
//   - [Affine.Deliver]: Completion-shaped variant, drops later calls
//   - [Affine.Discard]: Drop without invoking
//
// # Example
//
//	add := func(a, b int, k func(int)) { go k(a + b) }
//	addTo := fut.LiftM2(add)
//
//	m := fut.Fold(fut.Pure(3), addTo(6), addTo(7))
//	m.Await(func(v int) {
//		fmt.Println(v) // 16
//	})
package fut
