// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "context"

// DoScope sequences TaskResult steps written in direct style.
//
// The scope records the first failure. Every later Await, Ensure or ForEach
// returns false without running anything, so a workflow that ignores the
// returned flag still never performs a step after a failure, and Do reports
// the recorded failure regardless of what the body returns.
//
//	checkout := fnx.Do(func(s *fnx.DoScope) fnx.Result[Receipt] {
//		cart, ok := fnx.Await(s, loadCart(id))
//		if !ok || !s.Ensure(len(cart.Items) > 0, "cart is empty") {
//			return fnx.Abort[Receipt](s)
//		}
//		receipt, _ := fnx.Await(s, charge(cart))
//		return fnx.Ok(receipt)
//	})
type DoScope struct {
	ctx context.Context
	err error
}

// Do builds a TaskResult from a direct-style body.
//
// A panic inside body is recovered and reported as a failure wrapping
// *PanicError, so it can still be told apart from business failures with
// errors.As. Its message is the panic value prefixed with "panic: ", as in
// "panic: boom".
func Do[A any](body func(s *DoScope) Result[A]) TaskResult[A] {
	return func(ctx context.Context) (r Result[A]) {
		s := &DoScope{ctx: ctx}
		defer func() {
			if p := recover(); p != nil {
				r = Result[A]{err: newPanicError(p)}
			}
		}()
		res := body(s)
		if s.err != nil {
			return Result[A]{err: s.err}
		}
		return res
	}
}

// Context returns the context the scope runs under.
func (s *DoScope) Context() context.Context {
	return s.ctx
}

// Failed reports whether a step has failed.
func (s *DoScope) Failed() bool {
	return s.err != nil
}

// Err returns the recorded failure, or nil.
func (s *DoScope) Err() error {
	return s.err
}

// Fail records err as the scope's failure unless one is already recorded.
// It always returns false so it can end a guard expression.
func (s *DoScope) Fail(err error) bool {
	if s.err == nil {
		s.err = nonNil(err)
	}
	return false
}

// Ensure records a failure with msg when cond is false.
func (s *DoScope) Ensure(cond bool, msg string) bool {
	if s.err != nil {
		return false
	}
	if !cond {
		s.err = Fail[Unit](msg).err
		return false
	}
	return true
}

// Await runs t and returns its value. On failure, or when the scope has
// already failed, it returns (zero, false); in the latter case t is not run.
func Await[A any](s *DoScope, t TaskResult[A]) (A, bool) {
	var zero A
	if s.err != nil {
		return zero, false
	}
	r := t.Run(s.ctx)
	if r.err != nil {
		s.err = r.err
		return zero, false
	}
	return r.value, true
}

// AwaitResult is Await for an already computed Result.
func AwaitResult[A any](s *DoScope, r Result[A]) (A, bool) {
	return Await(s, FromResult(r))
}

// ForEach runs f for every item in order. Cancellation is checked before
// each item and recorded as ErrCancelled.
func ForEach[A any](s *DoScope, items []A, f func(A) TaskResult[Unit]) bool {
	for _, it := range items {
		if s.err != nil {
			return false
		}
		if s.ctx.Err() != nil {
			s.err = ErrCancelled
			return false
		}
		if _, ok := Await(s, f(it)); !ok {
			return false
		}
	}
	return s.err == nil
}

// Abort returns a failed Result carrying the scope's failure. Bodies use it
// to leave early after a false step.
func Abort[A any](s *DoScope) Result[A] {
	return Result[A]{err: nonNil(s.err)}
}
