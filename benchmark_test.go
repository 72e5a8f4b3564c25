// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx_test

import (
	"context"
	"testing"

	"code.hybscloud.com/fnx"
	"code.hybscloud.com/fnx/seq"
)

// BenchmarkBindResultChain measures a chain of 10 successful binds.
func BenchmarkBindResultChain(b *testing.B) {
	inc := func(x int) fnx.Result[int] { return fnx.Ok(x + 1) }
	for b.Loop() {
		r := fnx.Ok(0)
		for range 10 {
			r = fnx.BindResult(r, inc)
		}
		_ = r
	}
}

// BenchmarkBindTaskResultChain measures building and running 10 binds.
func BenchmarkBindTaskResultChain(b *testing.B) {
	inc := func(x int) fnx.TaskResult[int] { return fnx.TaskOk(x + 1) }
	ctx := context.Background()
	for b.Loop() {
		t := fnx.TaskOk(0)
		for range 10 {
			t = fnx.BindTaskResult(t, inc)
		}
		_ = t.Run(ctx)
	}
}

// BenchmarkDoScope measures the direct-style equivalent of the chain above.
func BenchmarkDoScope(b *testing.B) {
	ctx := context.Background()
	m := fnx.Do(func(s *fnx.DoScope) fnx.Result[int] {
		x := 0
		for range 10 {
			x, _ = fnx.Await(s, fnx.TaskOk(x+1))
		}
		return fnx.Ok(x)
	})
	for b.Loop() {
		_ = m.Run(ctx)
	}
}

// BenchmarkValidatorApply measures a three-rule validator on a valid subject.
func BenchmarkValidatorApply(b *testing.B) {
	for b.Loop() {
		_ = orderValidator().Apply(order{CustomerID: "c1", Quantity: 1, Ship: address{City: "Kyoto"}})
	}
}

// BenchmarkWriterBind measures log concatenation across 10 binds.
func BenchmarkWriterBind(b *testing.B) {
	step := func(x int) fnx.Writer[int, string] { return fnx.WriterFrom(x+1, "step") }
	for b.Loop() {
		w := fnx.WriterOf[string](0)
		for range 10 {
			w = fnx.BindWriter(w, step)
		}
		_ = w
	}
}

// BenchmarkPipe measures a filter-map-take pipeline over 1000 elements.
func BenchmarkPipe(b *testing.B) {
	src := make([]int, 1000)
	for i := range src {
		src[i] = i
	}
	p := seq.Then(seq.Then(seq.Filter(func(n int) bool { return n%3 == 0 }), seq.Map(func(n int) int { return n * n })), seq.Take[int](100))
	total := seq.Into(p, seq.Sum[int]())
	for b.Loop() {
		_ = total.RunSlice(src)
	}
}
