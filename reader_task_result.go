// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "context"

// ReaderTaskResult is a TaskResult that also reads an environment E.
// It is the usual shape of an application operation: dependencies come in
// through E, failures come out as a Result.
type ReaderTaskResult[E, A any] func(ctx context.Context, env E) Result[A]

// ReaderTaskResultOf lifts a value.
func ReaderTaskResultOf[E, A any](a A) ReaderTaskResult[E, A] {
	return func(context.Context, E) Result[A] { return Ok(a) }
}

// ReaderTaskResultFail creates a computation failing with err.
func ReaderTaskResultFail[E, A any](err error) ReaderTaskResult[E, A] {
	r := FailErr[A](err)
	return func(context.Context, E) Result[A] { return r }
}

// AskReaderTaskResult returns the environment.
func AskReaderTaskResult[E any]() ReaderTaskResult[E, E] {
	return func(_ context.Context, env E) Result[E] { return Ok(env) }
}

// AsksReaderTaskResult projects a value out of the environment.
func AsksReaderTaskResult[E, A any](f func(E) A) ReaderTaskResult[E, A] {
	return func(_ context.Context, env E) Result[A] { return Ok(f(env)) }
}

// LiftReaderTaskResult lifts a TaskResult that does not need the environment.
func LiftReaderTaskResult[E, A any](t TaskResult[A]) ReaderTaskResult[E, A] {
	return func(ctx context.Context, _ E) Result[A] { return t.Run(ctx) }
}

// FromReaderTaskResult builds a computation from a function choosing a
// TaskResult from the environment.
func FromReaderTaskResult[E, A any](f func(E) TaskResult[A]) ReaderTaskResult[E, A] {
	return func(ctx context.Context, env E) Result[A] { return f(env).Run(ctx) }
}

// Run supplies the environment and executes the computation.
func (m ReaderTaskResult[E, A]) Run(ctx context.Context, env E) Result[A] {
	if ctx.Err() != nil {
		return FailErr[A](ErrCancelled)
	}
	r := m(ctx, env)
	if r.err != nil && isContextErr(r.err) {
		return FailErr[A](ErrCancelled)
	}
	return r
}

// Local returns a computation that runs m against f(env).
func (m ReaderTaskResult[E, A]) Local(f func(E) E) ReaderTaskResult[E, A] {
	return func(ctx context.Context, env E) Result[A] { return m.Run(ctx, f(env)) }
}

// Task fixes the environment, yielding a plain TaskResult.
func (m ReaderTaskResult[E, A]) Task(env E) TaskResult[A] {
	return func(ctx context.Context) Result[A] { return m.Run(ctx, env) }
}

// MapReaderTaskResult applies a pure function to the success value.
func MapReaderTaskResult[E, A, B any](m ReaderTaskResult[E, A], f func(A) B) ReaderTaskResult[E, B] {
	return func(ctx context.Context, env E) Result[B] {
		return MapResult(m.Run(ctx, env), f)
	}
}

// BindReaderTaskResult sequences two computations over the same environment.
// f is not called when m fails.
func BindReaderTaskResult[E, A, B any](m ReaderTaskResult[E, A], f func(A) ReaderTaskResult[E, B]) ReaderTaskResult[E, B] {
	return func(ctx context.Context, env E) Result[B] {
		r := m.Run(ctx, env)
		if r.err != nil {
			return Result[B]{err: r.err}
		}
		return f(r.value).Run(ctx, env)
	}
}
