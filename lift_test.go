// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fut_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/fut"
)

func TestLiftToOption(t *testing.T) {
	opt := await(t, fut.LiftOption(fut.Pure(2)))
	v, ok := opt.Get()
	if !ok {
		t.Fatal("got None, want Some(2)")
	}
	if v != 2 {
		t.Fatalf("got Some(%d), want Some(2)", v)
	}
}

func TestOption(t *testing.T) {
	none := fut.None[int]()
	if none.IsSome() || !none.IsNone() {
		t.Fatal("None reported a value")
	}
	if got := none.OrElse(9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
	if got := fut.Some(4).OrElse(9); got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
}

func TestLiftToEither(t *testing.T) {
	e := await(t, fut.LiftEither[string](fut.Pure(3)))
	v, ok := e.GetValue()
	if !ok {
		t.Fatal("got Error, want Value(3)")
	}
	if v != 3 {
		t.Fatalf("got Value(%d), want Value(3)", v)
	}
}

func parse(s string) fut.Future[fut.Either[int, string]] {
	return fut.Suspend(func(k func(fut.Either[int, string])) {
		go func() {
			n, err := strconv.Atoi(s)
			if err != nil {
				k(fut.Error[int]("not a number: " + s))
				return
			}
			k(fut.Value[int, string](n))
		}()
	})
}

func TestMapRight(t *testing.T) {
	e := await(t, fut.MapRight(parse("20"), func(n int) int { return n + 1 }))
	if v, ok := e.GetValue(); !ok || v != 21 {
		t.Fatalf("got (%d, %v), want (21, true)", v, ok)
	}
}

func TestMapRightSkipsOnError(t *testing.T) {
	e := await(t, fut.MapRight(parse("x"), func(n int) int {
		t.Error("transform evaluated on Error")
		return n
	}))
	if err, ok := e.GetError(); !ok || err != "not a number: x" {
		t.Fatalf("got (%q, %v), want error", err, ok)
	}
}

func TestBindRight(t *testing.T) {
	half := func(n int) fut.Future[fut.Either[int, string]] {
		if n%2 != 0 {
			return fut.Pure(fut.Error[int]("odd"))
		}
		return fut.Pure(fut.Value[int, string](n / 2))
	}
	e := await(t, fut.BindRight(fut.BindRight(parse("12"), half), half))
	if v, ok := e.GetValue(); !ok || v != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", v, ok)
	}

	calls := 0
	counted := func(n int) fut.Future[fut.Either[int, string]] {
		calls++
		return half(n)
	}
	e = await(t, fut.BindRight(fut.BindRight(parse("6"), counted), counted))
	if err, ok := e.GetError(); !ok || err != "odd" {
		t.Fatalf("got (%q, %v), want (odd, true)", err, ok)
	}
	if calls != 2 {
		t.Fatalf("stage called %d times, want 2", calls)
	}

	calls = 0
	e = await(t, fut.BindRight(parse("?"), counted))
	if _, ok := e.GetError(); !ok {
		t.Fatal("expected Error")
	}
	if calls != 0 {
		t.Fatalf("stage called %d times after a failure, want 0", calls)
	}
}
