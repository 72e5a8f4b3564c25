// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import (
	"errors"
	"fmt"
)

// Result is either a success value (Ok) or a failure (Fail).
// A failure always carries a non-nil error; its Message is what a boundary
// shows to the user.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail creates a failed Result with the given message.
func Fail[T any](msg string) Result[T] {
	return Result[T]{err: errors.New(msg)}
}

// FailErr creates a failed Result carrying err.
// A nil err is replaced by a placeholder so the Result still fails.
func FailErr[T any](err error) Result[T] {
	return Result[T]{err: nonNil(err)}
}

// FromTuple converts Go's (value, error) pair into a Result.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Ok(v)
}

// ResultTry runs f and captures both its error and any panic as a failure.
func ResultTry[T any](f func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = Result[T]{err: newPanicError(p)}
		}
	}()
	return FromTuple(f())
}

// IsOk returns true for a success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsFail returns true for a failure.
func (r Result[T]) IsFail() bool {
	return r.err != nil
}

// Get returns the value and error in Go's usual order.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Err returns the failure error, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// Message returns the failure message, or "" for a success.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// OrElse returns the value, or fallback on failure.
func (r Result[T]) OrElse(fallback T) T {
	if r.err == nil {
		return r.value
	}
	return fallback
}

// Recover turns a failure into a success using f.
func (r Result[T]) Recover(f func(error) T) Result[T] {
	if r.err == nil {
		return r
	}
	return Ok(f(r.err))
}

// OrElseWith replaces a failure with the Result produced by f.
func (r Result[T]) OrElseWith(f func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return f(r.err)
}

// MapErr transforms the failure error. Successes pass through.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Result[T]{err: nonNil(f(r.err))}
}

// Tap calls f with the value of a success and returns r unchanged.
func (r Result[T]) Tap(f func(T)) Result[T] {
	if r.err == nil {
		f(r.value)
	}
	return r
}

func (r Result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return "Error(" + r.err.Error() + ")"
}

// MapResult applies f to a success value. Failures pass through untouched.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err}
	}
	return Ok(f(r.value))
}

// BindResult sequences two Result computations.
// A failure keeps its original error and f is never called.
func BindResult[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err}
	}
	return f(r.value)
}

// MatchResult pattern matches on the Result, calling onOk or onFail.
func MatchResult[A, T any](r Result[A], onOk func(A) T, onFail func(error) T) T {
	if r.err != nil {
		return onFail(r.err)
	}
	return onOk(r.value)
}

// ApplyResult applies a wrapped function to a wrapped value.
// The function side's failure wins when both fail.
func ApplyResult[A, B any](rf Result[func(A) B], ra Result[A]) Result[B] {
	if rf.err != nil {
		return Result[B]{err: rf.err}
	}
	if ra.err != nil {
		return Result[B]{err: ra.err}
	}
	return Ok(rf.value(ra.value))
}

// ZipWithResult combines two Results with f, failing with the first failure.
func ZipWithResult[A, B, C any](ra Result[A], rb Result[B], f func(A, B) C) Result[C] {
	if ra.err != nil {
		return Result[C]{err: ra.err}
	}
	if rb.err != nil {
		return Result[C]{err: rb.err}
	}
	return Ok(f(ra.value, rb.value))
}

// TraverseResult maps f over items and stops at the first failure.
func TraverseResult[A, B any](items []A, f func(A) Result[B]) Result[[]B] {
	out := make([]B, 0, len(items))
	for _, it := range items {
		r := f(it)
		if r.err != nil {
			return Result[[]B]{err: r.err}
		}
		out = append(out, r.value)
	}
	return Ok(out)
}

// EqualResult reports structural equality: both successes with equal values,
// or both failures with equal messages.
func EqualResult[T comparable](a, b Result[T]) bool {
	if a.err != nil || b.err != nil {
		return a.err != nil && b.err != nil && a.err.Error() == b.err.Error()
	}
	return a.value == b.value
}
