// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx_test

import (
	"context"
	"errors"
	"testing"

	"code.hybscloud.com/fnx"
	"go.uber.org/multierr"
)

type handle struct {
	closed bool
}

func openHandle() fnx.TaskResult[*handle] {
	return fnx.TaskOk(&handle{})
}

func closeHandle(err error) func(*handle) fnx.TaskResult[fnx.Unit] {
	return func(h *handle) fnx.TaskResult[fnx.Unit] {
		return func(context.Context) fnx.Result[fnx.Unit] {
			h.closed = true
			if err != nil {
				return fnx.FailErr[fnx.Unit](err)
			}
			return fnx.Ok(fnx.Unit{})
		}
	}
}

func TestBracketReleasesOnSuccess(t *testing.T) {
	var h *handle
	r := fnx.Bracket(openHandle(), closeHandle(nil), func(x *handle) fnx.TaskResult[int] {
		h = x
		return fnx.TaskOk(7)
	}).Run(context.Background())
	if r.OrElse(0) != 7 || !h.closed {
		t.Fatalf("got %v (closed=%v), want Ok(7) and closed", r, h.closed)
	}
}

func TestBracketReleasesOnFailureAndPanic(t *testing.T) {
	var h *handle
	r := fnx.Bracket(openHandle(), closeHandle(nil), func(x *handle) fnx.TaskResult[int] {
		h = x
		return fnx.TaskFail[int]("use failed")
	}).Run(context.Background())
	if r.Message() != "use failed" || !h.closed {
		t.Fatalf("got %v (closed=%v)", r, h.closed)
	}

	r = fnx.Bracket(openHandle(), closeHandle(nil), func(x *handle) fnx.TaskResult[int] {
		h = x
		panic("use panicked")
	}).Run(context.Background())
	var pe *fnx.PanicError
	if !errors.As(r.Err(), &pe) || !h.closed {
		t.Fatalf("got %v (closed=%v), want *PanicError and closed", r.Err(), h.closed)
	}
}

func TestBracketCombinesErrors(t *testing.T) {
	useErr := errors.New("use")
	releaseErr := errors.New("release")
	r := fnx.Bracket(openHandle(), closeHandle(releaseErr), func(*handle) fnx.TaskResult[int] {
		return fnx.TaskFailErr[int](useErr)
	}).Run(context.Background())
	errs := multierr.Errors(r.Err())
	if len(errs) != 2 || errs[0] != useErr || errs[1] != releaseErr {
		t.Fatalf("got %v, want [use release]", errs)
	}
}

func TestBracketSkipsReleaseWhenAcquireFails(t *testing.T) {
	released := false
	r := fnx.Bracket(fnx.TaskFail[*handle]("acquire"), func(*handle) fnx.TaskResult[fnx.Unit] {
		released = true
		return fnx.TaskOk(fnx.Unit{})
	}, func(*handle) fnx.TaskResult[int] {
		t.Fatal("use ran without a resource")
		return fnx.TaskOk(0)
	}).Run(context.Background())
	if released || r.Message() != "acquire" {
		t.Fatalf("got %v (released=%v)", r, released)
	}
}

func TestOnError(t *testing.T) {
	var seen error
	cleanup := func(err error) fnx.TaskResult[fnx.Unit] {
		seen = err
		return fnx.TaskOk(fnx.Unit{})
	}
	if r := fnx.OnError(fnx.TaskOk(1), cleanup).Run(context.Background()); r.OrElse(0) != 1 || seen != nil {
		t.Fatalf("got %v (seen=%v)", r, seen)
	}
	r := fnx.OnError(fnx.TaskFail[int]("body"), cleanup).Run(context.Background())
	if r.Message() != "body" || seen == nil || seen.Error() != "body" {
		t.Fatalf("got %v (seen=%v)", r, seen)
	}
}

func TestBracketReleasePanicIsFailure(t *testing.T) {
	useErr := errors.New("use")
	panicky := func(*handle) fnx.TaskResult[fnx.Unit] {
		return func(context.Context) fnx.Result[fnx.Unit] { panic("release panicked") }
	}
	r := fnx.Bracket(openHandle(), panicky, func(*handle) fnx.TaskResult[int] {
		return fnx.TaskFailErr[int](useErr)
	}).Run(context.Background())
	errs := multierr.Errors(r.Err())
	var pe *fnx.PanicError
	if len(errs) != 2 || errs[0] != useErr || !errors.As(errs[1], &pe) {
		t.Fatalf("got %v, want [use panic]", errs)
	}

	r = fnx.Bracket(openHandle(), panicky, func(*handle) fnx.TaskResult[int] {
		return fnx.TaskOk(1)
	}).Run(context.Background())
	if !errors.As(r.Err(), &pe) || pe.Value != "release panicked" {
		t.Fatalf("got %v, want *PanicError", r.Err())
	}
}

func TestOnErrorCleanupPanicIsFailure(t *testing.T) {
	r := fnx.OnError(fnx.TaskFail[int]("body"), func(error) fnx.TaskResult[fnx.Unit] {
		return func(context.Context) fnx.Result[fnx.Unit] { panic("cleanup panicked") }
	}).Run(context.Background())
	errs := multierr.Errors(r.Err())
	var pe *fnx.PanicError
	if len(errs) != 2 || errs[0].Error() != "body" || !errors.As(errs[1], &pe) {
		t.Fatalf("got %v, want [body panic]", errs)
	}
}
