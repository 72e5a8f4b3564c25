// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "context"

// IO is a deferred synchronous computation.
// Nothing happens until Run is called; each Run repeats the effect.
type IO[A any] func() A

// IOOf lifts a pure value into IO.
func IOOf[A any](a A) IO[A] {
	return func() A { return a }
}

// Run executes the computation.
func (io IO[A]) Run() A {
	return io()
}

// MapIO applies a pure function to the result of io.
func MapIO[A, B any](io IO[A], f func(A) B) IO[B] {
	return func() B { return f(io()) }
}

// BindIO sequences two IO computations.
func BindIO[A, B any](io IO[A], f func(A) IO[B]) IO[B] {
	return func() B { return f(io())() }
}

// TaskIO is a deferred computation that may block and observes a context.
// It has no failure channel of its own; see WithCancellation.
type TaskIO[A any] func(ctx context.Context) A

// FromTask wraps a context-aware function as a TaskIO.
func FromTask[A any](f func(context.Context) A) TaskIO[A] {
	return TaskIO[A](f)
}

// TaskIOOf lifts a pure value into TaskIO.
func TaskIOOf[A any](a A) TaskIO[A] {
	return func(context.Context) A { return a }
}

// LiftIO converts an IO into a TaskIO that ignores its context.
func LiftIO[A any](io IO[A]) TaskIO[A] {
	return func(context.Context) A { return io() }
}

// Run executes the task on the calling goroutine.
func (t TaskIO[A]) Run(ctx context.Context) A {
	return t(ctx)
}

// WithCancellation runs the task on its own goroutine and races it against
// ctx. If ctx is done first the TaskResult fails with ErrCancelled; the task
// goroutine exits once the task returns. A panic in the task becomes a
// failure carrying *PanicError.
func (t TaskIO[A]) WithCancellation() TaskResult[A] {
	return func(ctx context.Context) Result[A] {
		if ctx.Err() != nil {
			return FailErr[A](ErrCancelled)
		}
		done := make(chan Result[A], 1)
		go func() {
			defer func() {
				if p := recover(); p != nil {
					done <- Result[A]{err: newPanicError(p)}
				}
			}()
			done <- Ok(t(ctx))
		}()
		select {
		case r := <-done:
			return r
		case <-ctx.Done():
			return FailErr[A](ErrCancelled)
		}
	}
}

// MapTaskIO applies a pure function to the result of t.
func MapTaskIO[A, B any](t TaskIO[A], f func(A) B) TaskIO[B] {
	return func(ctx context.Context) B { return f(t(ctx)) }
}

// BindTaskIO sequences two tasks; the second starts after the first returns.
func BindTaskIO[A, B any](t TaskIO[A], f func(A) TaskIO[B]) TaskIO[B] {
	return func(ctx context.Context) B { return f(t(ctx))(ctx) }
}
