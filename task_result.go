// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import (
	"context"
	"errors"
)

// TaskResult is a deferred, context-aware computation that reports failure
// as a value. Collaborators that do I/O expose their operations as
// TaskResults so composition never has to deal with panics or bare errors.
type TaskResult[A any] func(ctx context.Context) Result[A]

// TaskOk lifts a value into a successful TaskResult.
func TaskOk[A any](a A) TaskResult[A] {
	return func(context.Context) Result[A] { return Ok(a) }
}

// TaskFail creates a TaskResult failing with msg.
func TaskFail[A any](msg string) TaskResult[A] {
	r := Fail[A](msg)
	return func(context.Context) Result[A] { return r }
}

// TaskFailErr creates a TaskResult failing with err.
func TaskFailErr[A any](err error) TaskResult[A] {
	r := FailErr[A](err)
	return func(context.Context) Result[A] { return r }
}

// FromResult lifts an already computed Result.
func FromResult[A any](r Result[A]) TaskResult[A] {
	return func(context.Context) Result[A] { return r }
}

// TaskFrom adapts a Go-style fallible call. Returned errors and panics
// both become failures.
func TaskFrom[A any](f func(context.Context) (A, error)) TaskResult[A] {
	return func(ctx context.Context) Result[A] {
		return ResultTry(func() (A, error) { return f(ctx) })
	}
}

// Run executes the task. A context that is already done, or a failure that
// is a context cancellation or deadline, is reported as ErrCancelled.
func (t TaskResult[A]) Run(ctx context.Context) Result[A] {
	if ctx.Err() != nil {
		return FailErr[A](ErrCancelled)
	}
	r := t(ctx)
	if r.err != nil && isContextErr(r.err) {
		return FailErr[A](ErrCancelled)
	}
	return r
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Recover turns a failure into a success using f.
func (t TaskResult[A]) Recover(f func(error) A) TaskResult[A] {
	return func(ctx context.Context) Result[A] {
		return t.Run(ctx).Recover(f)
	}
}

// OrElse runs the fallback produced by f when t fails.
func (t TaskResult[A]) OrElse(f func(error) TaskResult[A]) TaskResult[A] {
	return func(ctx context.Context) Result[A] {
		r := t.Run(ctx)
		if r.err == nil {
			return r
		}
		return f(r.err).Run(ctx)
	}
}

// MapErr transforms the failure error.
func (t TaskResult[A]) MapErr(f func(error) error) TaskResult[A] {
	return func(ctx context.Context) Result[A] {
		return t.Run(ctx).MapErr(f)
	}
}

// Tap calls f with a success value without changing the result.
func (t TaskResult[A]) Tap(f func(A)) TaskResult[A] {
	return func(ctx context.Context) Result[A] {
		return t.Run(ctx).Tap(f)
	}
}

// MapTaskResult applies a pure function to the success value.
func MapTaskResult[A, B any](t TaskResult[A], f func(A) B) TaskResult[B] {
	return func(ctx context.Context) Result[B] {
		return MapResult(t.Run(ctx), f)
	}
}

// BindTaskResult sequences two tasks. f runs only after t succeeds; a
// failure of t is the final outcome.
func BindTaskResult[A, B any](t TaskResult[A], f func(A) TaskResult[B]) TaskResult[B] {
	return func(ctx context.Context) Result[B] {
		r := t.Run(ctx)
		if r.err != nil {
			return Result[B]{err: r.err}
		}
		return f(r.value).Run(ctx)
	}
}

// ApplyTaskResult applies a wrapped function to a wrapped value.
// tf is awaited before ta; ta is not started when tf fails.
func ApplyTaskResult[A, B any](tf TaskResult[func(A) B], ta TaskResult[A]) TaskResult[B] {
	return func(ctx context.Context) Result[B] {
		rf := tf.Run(ctx)
		if rf.err != nil {
			return Result[B]{err: rf.err}
		}
		return MapResult(ta.Run(ctx), rf.value)
	}
}

// ZipWithTaskResult runs ta then tb and combines their values with f.
func ZipWithTaskResult[A, B, C any](ta TaskResult[A], tb TaskResult[B], f func(A, B) C) TaskResult[C] {
	return func(ctx context.Context) Result[C] {
		ra := ta.Run(ctx)
		if ra.err != nil {
			return Result[C]{err: ra.err}
		}
		rb := tb.Run(ctx)
		if rb.err != nil {
			return Result[C]{err: rb.err}
		}
		return Ok(f(ra.value, rb.value))
	}
}

// TraverseTaskResult runs f over items one at a time, in order, stopping at
// the first failure.
func TraverseTaskResult[A, B any](items []A, f func(A) TaskResult[B]) TaskResult[[]B] {
	return func(ctx context.Context) Result[[]B] {
		out := make([]B, 0, len(items))
		for _, it := range items {
			r := f(it).Run(ctx)
			if r.err != nil {
				return Result[[]B]{err: r.err}
			}
			out = append(out, r.value)
		}
		return Ok(out)
	}
}

// MatchTaskResult runs t and eliminates the outcome.
func MatchTaskResult[A, T any](ctx context.Context, t TaskResult[A], onOk func(A) T, onFail func(error) T) T {
	return MatchResult(t.Run(ctx), onOk, onFail)
}
