// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Option holds either some value of type A or nothing.
type Option[A any] struct {
	ok    bool
	value A
}

// Some creates an Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{ok: true, value: a}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the Option holds a value.
func (o Option[A]) IsSome() bool { return o.ok }

// IsNone returns true if the Option is empty.
func (o Option[A]) IsNone() bool { return !o.ok }

// Get returns the held value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// OrElse returns the held value, or fallback when empty.
func (o Option[A]) OrElse(fallback A) A {
	if o.ok {
		return o.value
	}
	return fallback
}
