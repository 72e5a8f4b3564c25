// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import (
	"context"
	"slices"
)

// WriterTaskResult is a TaskResult that also accumulates a log.
// Entries written before a failing step are kept.
type WriterTaskResult[A, W any] func(ctx context.Context) (Result[A], []W)

// WriterTaskResultOf lifts a value with an empty log.
func WriterTaskResultOf[W, A any](a A) WriterTaskResult[A, W] {
	return func(context.Context) (Result[A], []W) { return Ok(a), nil }
}

// TellWriterTaskResult records entries.
func TellWriterTaskResult[W any](entries ...W) WriterTaskResult[Unit, W] {
	logs := slices.Clone(entries)
	return func(context.Context) (Result[Unit], []W) { return Ok(Unit{}), logs }
}

// LiftWriterTaskResult lifts a TaskResult with an empty log.
func LiftWriterTaskResult[W, A any](t TaskResult[A]) WriterTaskResult[A, W] {
	return func(ctx context.Context) (Result[A], []W) { return t.Run(ctx), nil }
}

// FromWriter lifts an already computed Writer.
func FromWriter[A, W any](w Writer[A, W]) WriterTaskResult[A, W] {
	return func(context.Context) (Result[A], []W) { return Ok(w.value), w.logs }
}

// Run executes the computation, returning its Result and a copy of the log.
func (m WriterTaskResult[A, W]) Run(ctx context.Context) (Result[A], []W) {
	r, logs := m.run(ctx)
	return r, slices.Clone(logs)
}

func (m WriterTaskResult[A, W]) run(ctx context.Context) (Result[A], []W) {
	if ctx.Err() != nil {
		return FailErr[A](ErrCancelled), nil
	}
	r, logs := m(ctx)
	if r.err != nil && isContextErr(r.err) {
		return FailErr[A](ErrCancelled), logs
	}
	return r, logs
}

// MapWriterTaskResult applies a pure function to the success value.
func MapWriterTaskResult[A, B, W any](m WriterTaskResult[A, W], f func(A) B) WriterTaskResult[B, W] {
	return func(ctx context.Context) (Result[B], []W) {
		r, logs := m.run(ctx)
		return MapResult(r, f), logs
	}
}

// BindWriterTaskResult sequences two steps, concatenating their logs in
// order. f is not called when m fails.
func BindWriterTaskResult[A, B, W any](m WriterTaskResult[A, W], f func(A) WriterTaskResult[B, W]) WriterTaskResult[B, W] {
	return func(ctx context.Context) (Result[B], []W) {
		r, logs := m.run(ctx)
		if r.err != nil {
			return Result[B]{err: r.err}, logs
		}
		next, more := f(r.value).run(ctx)
		return next, concatLogs(logs, more)
	}
}
