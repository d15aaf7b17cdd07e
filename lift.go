// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// LiftOption lifts m into the Option functor.
// The result always delivers Some(a), never None; it exists to feed m into
// a stage that expects an optional value.
func LiftOption[A any](m Future[A]) Future[Option[A]] {
	return Map(m, Some[A])
}

// LiftEither lifts m into the Either functor.
// The result always delivers Value(a); it exists to feed m into a stage
// that expects a success/failure value.
//
// Example:
//
//	m := LiftEither[string](Pure(3)) // Future[Either[int, string]]
func LiftEither[E, A any](m Future[A]) Future[Either[A, E]] {
	return Map(m, Value[A, E])
}

// MapRight applies f to the success value carried by m.
// A failure is passed through and f is not evaluated.
func MapRight[A, E, B any](m Future[Either[A, E]], f func(A) B) Future[Either[B, E]] {
	return Map(m, func(e Either[A, E]) Either[B, E] {
		return MapEither(e, f)
	})
}

// BindRight sequences f after the success value carried by m.
// A failure short-circuits: f is not called and no further work starts,
// but the returned future still delivers the failure.
func BindRight[A, E, B any](m Future[Either[A, E]], f func(A) Future[Either[B, E]]) Future[Either[B, E]] {
	return Bind(m, func(e Either[A, E]) Future[Either[B, E]] {
		if a, ok := e.GetValue(); ok {
			return f(a)
		}
		err, _ := e.GetError()
		return Pure(Error[B](err))
	})
}
