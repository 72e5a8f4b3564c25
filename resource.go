// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import (
	"context"

	"go.uber.org/multierr"
)

// Resource safety for TaskResult: acquire → use → release, where release
// runs whenever acquire succeeded, even if use fails or panics.

// Bracket acquires a resource, uses it, and always releases it.
// When both use and release fail the errors are combined, use first.
// A panic in use or release is reported as a failure carrying *PanicError;
// release still runs after a panic in use.
func Bracket[R, A any](
	acquire TaskResult[R],
	release func(R) TaskResult[Unit],
	use func(R) TaskResult[A],
) TaskResult[A] {
	return func(ctx context.Context) Result[A] {
		acquired := acquire.Run(ctx)
		if acquired.err != nil {
			return Result[A]{err: acquired.err}
		}
		used := ResultTry(func() (A, error) { return use(acquired.value).Run(ctx).Get() })
		// release must run even when ctx is already done.
		released := ResultTry(func() (Unit, error) {
			return release(acquired.value)(context.WithoutCancel(ctx)).Get()
		})
		if err := multierr.Append(used.err, released.err); err != nil {
			return Result[A]{err: err}
		}
		return used
	}
}

// OnError runs cleanup only if body fails, then reports body's failure
// combined with any cleanup failure. A panic in cleanup is such a failure.
func OnError[A any](body TaskResult[A], cleanup func(error) TaskResult[Unit]) TaskResult[A] {
	return func(ctx context.Context) Result[A] {
		r := body.Run(ctx)
		if r.err == nil {
			return r
		}
		c := ResultTry(func() (Unit, error) {
			return cleanup(r.err)(context.WithoutCancel(ctx)).Get()
		})
		return Result[A]{err: multierr.Append(r.err, c.err)}
	}
}
