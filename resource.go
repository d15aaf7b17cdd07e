// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut

// Resource safety for asynchronous acquire/use/release sequences.
// Failure is an Either carried by the use step; these combinators only
// decide which cleanup runs and in what order.

// Bracket acquires a resource, uses it, then releases it.
// Release runs after use delivers, whether use succeeded or failed, and
// the use result is delivered only after release completes.
func Bracket[R, A, E any](
	acquire Future[R],
	release func(R) Future[struct{}],
	use func(R) Future[Either[A, E]],
) Future[Either[A, E]] {
	return Bind(acquire, func(resource R) Future[Either[A, E]] {
		return Bind(use(resource), func(result Either[A, E]) Future[Either[A, E]] {
			return Then(release(resource), Pure(result))
		})
	})
}

// OnError runs cleanup only if body delivers a failure.
// The failure is re-delivered after cleanup completes.
func OnError[A, E any](
	body Future[Either[A, E]],
	cleanup func(E) Future[struct{}],
) Future[Either[A, E]] {
	return Bind(body, func(result Either[A, E]) Future[Either[A, E]] {
		if err, ok := result.GetError(); ok {
			return Then(cleanup(err), Pure(result))
		}
		return Pure(result)
	})
}
