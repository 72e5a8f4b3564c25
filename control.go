// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx

// Delimited control in the style of Danvy and Filinski (1990).

// Shift captures the current continuation up to the nearest Reset.
// f may call the captured k zero or more times.
//
// Example:
//
//	Reset[int](Bind(Shift(func(k func(int) int) int {
//	    return k(k(3))
//	}), func(x int) Cont[int, int] {
//	    return Return[int](x * 2)
//	}))
//	// Result: 12
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Reset delimits the continuation captured by Shift inside m.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return func(k func(A) R) R { return k(Run(m)) }
}

// CallCC calls f with an escape continuation. Invoking escape abandons the
// rest of f and makes its argument the value of the whole CallCC.
func CallCC[R, A, B any](f func(escape func(A) Cont[R, B]) Cont[R, A]) Cont[R, A] {
	return func(k func(A) R) R {
		escape := func(a A) Cont[R, B] {
			return func(func(B) R) R { return k(a) }
		}
		return f(escape)(k)
	}
}
