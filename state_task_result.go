// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "context"

// StateTaskResult threads a state S through context-aware fallible steps.
// The state is always returned, even on failure: it is the state reached
// when the failing step ran.
type StateTaskResult[S, A any] func(ctx context.Context, s S) (Result[A], S)

// StateTaskResultOf lifts a value, leaving the state unchanged.
func StateTaskResultOf[S, A any](a A) StateTaskResult[S, A] {
	return func(_ context.Context, s S) (Result[A], S) { return Ok(a), s }
}

// GetStateTaskResult returns the current state.
func GetStateTaskResult[S any]() StateTaskResult[S, S] {
	return func(_ context.Context, s S) (Result[S], S) { return Ok(s), s }
}

// PutStateTaskResult replaces the state.
func PutStateTaskResult[S any](next S) StateTaskResult[S, Unit] {
	return func(context.Context, S) (Result[Unit], S) { return Ok(Unit{}), next }
}

// ModifyStateTaskResult replaces the state with f(state).
func ModifyStateTaskResult[S any](f func(S) S) StateTaskResult[S, Unit] {
	return func(_ context.Context, s S) (Result[Unit], S) { return Ok(Unit{}), f(s) }
}

// LiftStateTaskResult lifts a TaskResult that does not touch the state.
func LiftStateTaskResult[S, A any](t TaskResult[A]) StateTaskResult[S, A] {
	return func(ctx context.Context, s S) (Result[A], S) { return t.Run(ctx), s }
}

// Run executes the computation from initial.
func (m StateTaskResult[S, A]) Run(ctx context.Context, initial S) (Result[A], S) {
	if ctx.Err() != nil {
		return FailErr[A](ErrCancelled), initial
	}
	r, s := m(ctx, initial)
	if r.err != nil && isContextErr(r.err) {
		return FailErr[A](ErrCancelled), s
	}
	return r, s
}

// Evaluate runs the computation and returns only the Result.
func (m StateTaskResult[S, A]) Evaluate(ctx context.Context, initial S) Result[A] {
	r, _ := m.Run(ctx, initial)
	return r
}

// Execute runs the computation and returns only the final state.
func (m StateTaskResult[S, A]) Execute(ctx context.Context, initial S) S {
	_, s := m.Run(ctx, initial)
	return s
}

// MapStateTaskResult applies a pure function to the success value.
func MapStateTaskResult[S, A, B any](m StateTaskResult[S, A], f func(A) B) StateTaskResult[S, B] {
	return func(ctx context.Context, s S) (Result[B], S) {
		r, s1 := m.Run(ctx, s)
		return MapResult(r, f), s1
	}
}

// BindStateTaskResult threads the state of m into the step chosen by f.
// f is not called when m fails.
func BindStateTaskResult[S, A, B any](m StateTaskResult[S, A], f func(A) StateTaskResult[S, B]) StateTaskResult[S, B] {
	return func(ctx context.Context, s S) (Result[B], S) {
		r, s1 := m.Run(ctx, s)
		if r.err != nil {
			return Result[B]{err: r.err}, s1
		}
		return f(r.value).Run(ctx, s1)
	}
}
