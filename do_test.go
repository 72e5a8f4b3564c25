// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx_test

import (
	"context"
	"errors"
	"testing"

	"code.hybscloud.com/fnx"
)

func TestDoStopsAtFirstFailure(t *testing.T) {
	third := false
	m := fnx.Do(func(s *fnx.DoScope) fnx.Result[int] {
		a, _ := fnx.Await(s, fnx.TaskOk(1))
		b, _ := fnx.Await(s, fnx.TaskFail[int]("step two failed"))
		c, _ := fnx.Await(s, fnx.TaskResult[int](func(context.Context) fnx.Result[int] {
			third = true
			return fnx.Ok(3)
		}))
		return fnx.Ok(a + b + c)
	})
	r := m.Run(context.Background())
	if third {
		t.Fatal("third step ran after a failure")
	}
	if r.Message() != "step two failed" {
		t.Fatalf("got %v, want Error(step two failed)", r)
	}
}

func TestDoSuccess(t *testing.T) {
	m := fnx.Do(func(s *fnx.DoScope) fnx.Result[string] {
		n, ok := fnx.AwaitResult(s, fnx.Ok(2))
		if !ok || !s.Ensure(n > 1, "too small") {
			return fnx.Abort[string](s)
		}
		return fnx.Ok("big")
	})
	if got := m.Run(context.Background()); got.OrElse("") != "big" {
		t.Fatalf("got %v", got)
	}
}

func TestDoEnsureAndFail(t *testing.T) {
	m := fnx.Do(func(s *fnx.DoScope) fnx.Result[int] {
		if !s.Ensure(false, "guard tripped") {
			return fnx.Abort[int](s)
		}
		return fnx.Ok(1)
	})
	if got := m.Run(context.Background()); got.Message() != "guard tripped" {
		t.Fatalf("got %v", got)
	}

	sentinel := errors.New("first")
	m = fnx.Do(func(s *fnx.DoScope) fnx.Result[int] {
		s.Fail(sentinel)
		s.Fail(errors.New("second"))
		if !s.Failed() || s.Err() != sentinel {
			t.Fatalf("got %v", s.Err())
		}
		return fnx.Ok(1)
	})
	if got := m.Run(context.Background()); !errors.Is(got.Err(), sentinel) {
		t.Fatalf("got %v, want the first recorded failure", got)
	}
}

func TestDoRecoversPanic(t *testing.T) {
	m := fnx.Do(func(*fnx.DoScope) fnx.Result[int] {
		panic("unexpected")
	})
	var pe *fnx.PanicError
	r := m.Run(context.Background())
	if !errors.As(r.Err(), &pe) || pe.Value != "unexpected" {
		t.Fatalf("got %v, want *PanicError", r.Err())
	}
	if got, want := r.Message(), "panic: unexpected"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDoForEach(t *testing.T) {
	var seen []int
	m := fnx.Do(func(s *fnx.DoScope) fnx.Result[int] {
		fnx.ForEach(s, []int{1, 2, 3, 4}, func(n int) fnx.TaskResult[fnx.Unit] {
			seen = append(seen, n)
			if n == 2 {
				return fnx.TaskFail[fnx.Unit]("two")
			}
			return fnx.TaskOk(fnx.Unit{})
		})
		return fnx.Ok(len(seen))
	})
	r := m.Run(context.Background())
	if r.Message() != "two" || len(seen) != 2 {
		t.Fatalf("got %v with %v", r, seen)
	}
}

func TestDoForEachCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var seen []int
	m := fnx.Do(func(s *fnx.DoScope) fnx.Result[fnx.Unit] {
		fnx.ForEach(s, []int{1, 2, 3}, func(n int) fnx.TaskResult[fnx.Unit] {
			seen = append(seen, n)
			cancel()
			return fnx.TaskOk(fnx.Unit{})
		})
		return fnx.Ok(fnx.Unit{})
	})
	r := m.Run(ctx)
	if !errors.Is(r.Err(), fnx.ErrCancelled) {
		t.Fatalf("got %v, want ErrCancelled", r)
	}
	if len(seen) != 1 {
		t.Fatalf("got %v, want only the first item", seen)
	}
}
