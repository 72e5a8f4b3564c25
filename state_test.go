// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/fnx"
)

func counterTick() fnx.State[int, int] {
	return fnx.BindState(fnx.GetState[int](), func(n int) fnx.State[int, int] {
		return fnx.BindState(fnx.PutState(n+1), func(fnx.Unit) fnx.State[int, int] {
			return fnx.StateOf[int](n)
		})
	})
}

func TestStateThreadsState(t *testing.T) {
	ticks := fnx.SequenceState([]fnx.State[int, int]{counterTick(), counterTick(), counterTick()})
	got, final := ticks.Run(10)
	if !slices.Equal(got, []int{10, 11, 12}) {
		t.Fatalf("got %v, want [10 11 12]", got)
	}
	if final != 13 {
		t.Fatalf("got final %d, want 13", final)
	}
}

func TestStateModifyGets(t *testing.T) {
	m := fnx.BindState(fnx.ModifyState(func(s []string) []string { return append(slices.Clip(s), "x") }), func(fnx.Unit) fnx.State[[]string, int] {
		return fnx.GetsState(func(s []string) int { return len(s) })
	})
	if got := fnx.MapState(m, func(n int) int { return n * 10 }).Evaluate([]string{"a"}); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
	if got := m.Execute(nil); !slices.Equal(got, []string{"x"}) {
		t.Fatalf("got %v, want [x]", got)
	}
}
