// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

import (
	"sync/atomic"
)

// Affine wraps a continuation with one-shot enforcement.
// The continuation can be resumed at most once; subsequent attempts
// to resume will panic (Resume) or return false (TryResume).
//
// The arity adapters hand an Affine to completion-style functions so that
// only the first completion is ever observed.
type Affine[A any] struct {
	used   atomic.Uintptr
	resume func(A)
}

// Once creates an affine continuation from a regular continuation.
func Once[A any](k func(A)) *Affine[A] {
	return &Affine[A]{resume: k}
}

// Resume invokes the continuation with the given value.
// Panics if the continuation has already been used.
func (a *Affine[A]) Resume(v A) {
	if a.used.Add(1) != 1 {
		panic("fut: affine continuation resumed twice")
	}
	a.resume(v)
}

// TryResume attempts to invoke the continuation.
// Returns true on success, or false if already used.
func (a *Affine[A]) TryResume(v A) bool {
	if a.used.Add(1) != 1 {
		return false
	}
	a.resume(v)
	return true
}

// Discard marks the continuation as used without invoking it.
func (a *Affine[A]) Discard() {
	a.used.Store(1)
}

// Used reports whether the continuation has been resumed or discarded.
func (a *Affine[A]) Used() bool {
	return a.used.Load() != 0
}

// Deliver invokes the continuation the first time and silently drops
// every later call. It has the shape of a completion callback.
func (a *Affine[A]) Deliver(v A) {
	a.TryResume(v)
}
