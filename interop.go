// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

import "github.com/samber/mo"

// Conversions to and from github.com/samber/mo, for code that already
// passes mo values around.

// OptionFromMo converts a mo.Option.
func OptionFromMo[T any](o mo.Option[T]) Option[T] {
	return FromOk(o.Get())
}

// OptionToMo converts to a mo.Option.
func OptionToMo[T any](o Option[T]) mo.Option[T] {
	if o.ok {
		return mo.Some(o.value)
	}
	return mo.None[T]()
}

// ResultFromMo converts a mo.Result.
func ResultFromMo[T any](r mo.Result[T]) Result[T] {
	return FromTuple(r.Get())
}

// ResultToMo converts to a mo.Result.
func ResultToMo[T any](r Result[T]) mo.Result[T] {
	if r.err != nil {
		return mo.Err[T](r.err)
	}
	return mo.Ok(r.value)
}
