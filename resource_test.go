// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/fut"
)

func TestBracketSuccess(t *testing.T) {
	l := newLoop(t)
	var trace []string

	m := fut.Bracket(
		// acquire
		deferred(l, 42),
		// release
		func(r int) fut.Future[struct{}] {
			trace = append(trace, "release")
			return deferred(l, struct{}{})
		},
		// use
		func(r int) fut.Future[fut.Either[int, string]] {
			trace = append(trace, "use")
			return deferred(l, fut.Value[int, string](r*2))
		},
	)

	result := await(t, m)
	val, ok := result.GetValue()
	if !ok || val != 84 {
		t.Fatalf("got (%d, %v), want (84, true)", val, ok)
	}
	if !slices.Equal(trace, []string{"use", "release"}) {
		t.Fatalf("got trace %v, want [use release]", trace)
	}
}

func TestBracketReleasesOnError(t *testing.T) {
	released := false
	m := fut.Bracket(
		fut.Pure(42),
		func(r int) fut.Future[struct{}] {
			released = true
			return fut.Pure(struct{}{})
		},
		func(r int) fut.Future[fut.Either[int, string]] {
			return fut.Pure(fut.Error[int]("use failed"))
		},
	)

	result := await(t, m)
	if e, ok := result.GetError(); !ok || e != "use failed" {
		t.Fatalf("got (%q, %v), want (use failed, true)", e, ok)
	}
	if !released {
		t.Fatal("resource not released on error")
	}
}

func TestBracketDeliversAfterRelease(t *testing.T) {
	release := fut.NewCell[struct{}]()
	m := fut.Bracket(
		fut.Pure(1),
		func(int) fut.Future[struct{}] { return release.Future() },
		func(r int) fut.Future[fut.Either[int, string]] {
			return fut.Pure(fut.Value[int, string](r))
		},
	)
	delivered := false
	m.Await(func(fut.Either[int, string]) { delivered = true })
	if delivered {
		t.Fatal("result delivered before release completed")
	}
	release.Fulfill(struct{}{})
	if !delivered {
		t.Fatal("result not delivered after release completed")
	}
}

func TestOnErrorRunsCleanupOnError(t *testing.T) {
	var cleaned string
	m := fut.OnError(
		fut.Pure(fut.Error[int]("boom")),
		func(e string) fut.Future[struct{}] {
			cleaned = e
			return fut.Pure(struct{}{})
		},
	)
	result := await(t, m)
	if e, ok := result.GetError(); !ok || e != "boom" {
		t.Fatalf("got (%q, %v), want (boom, true)", e, ok)
	}
	if cleaned != "boom" {
		t.Fatalf("cleanup got %q, want %q", cleaned, "boom")
	}
}

func TestOnErrorSkipsCleanupOnValue(t *testing.T) {
	m := fut.OnError(
		fut.Pure(fut.Value[int, string](7)),
		func(string) fut.Future[struct{}] {
			t.Fatal("cleanup ran on success")
			return fut.Pure(struct{}{})
		},
	)
	result := await(t, m)
	if v, ok := result.GetValue(); !ok || v != 7 {
		t.Fatalf("got (%d, %v), want (7, true)", v, ok)
	}
}
