// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"iter"
	"slices"
	"strings"

	"code.hybscloud.com/fnx"
	"github.com/samber/lo"
)

// Terminal folds a sequence into a single value. It ends a pipeline.
type Terminal[A, R any] func(src iter.Seq[A]) R

// Run folds src.
func (t Terminal[A, R]) Run(src iter.Seq[A]) R {
	return t(src)
}

// RunSlice folds the elements of src.
func (t Terminal[A, R]) RunSlice(src []A) R {
	return t(slices.Values(src))
}

// Into applies p before t.
func Into[A, B, R any](p Pipe[A, B], t Terminal[B, R]) Terminal[A, R] {
	return func(src iter.Seq[A]) R { return t(p.Apply(src)) }
}

// Number is the set of element types Sum accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds all elements; an empty sequence sums to zero.
func Sum[A Number]() Terminal[A, A] {
	return func(src iter.Seq[A]) A { return lo.Sum(slices.Collect(src)) }
}

// Count returns the number of elements.
func Count[A any]() Terminal[A, int] {
	return func(src iter.Seq[A]) int {
		n := 0
		for range src {
			n++
		}
		return n
	}
}

// JoinStrings concatenates the elements with sep between them.
func JoinStrings(sep string) Terminal[string, string] {
	return func(src iter.Seq[string]) string {
		return strings.Join(slices.Collect(src), sep)
	}
}

// SequenceEqual reports whether the sequence equals other element by
// element, including length.
func SequenceEqual[A comparable](other []A) Terminal[A, bool] {
	return func(src iter.Seq[A]) bool {
		i := 0
		for a := range src {
			if i >= len(other) || other[i] != a {
				return false
			}
			i++
		}
		return i == len(other)
	}
}

// Fold combines the elements left to right starting from seed.
func Fold[A, R any](seed R, f func(R, A) R) Terminal[A, R] {
	return func(src iter.Seq[A]) R {
		acc := seed
		for a := range src {
			acc = f(acc, a)
		}
		return acc
	}
}

// First returns the first element, reading nothing beyond it.
func First[A any]() Terminal[A, fnx.Option[A]] {
	return func(src iter.Seq[A]) fnx.Option[A] {
		for a := range src {
			return fnx.Some(a)
		}
		return fnx.None[A]()
	}
}

// ToSlice collects the sequence.
func ToSlice[A any]() Terminal[A, []A] {
	return func(src iter.Seq[A]) []A { return slices.Collect(src) }
}
