// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/fnx"
)

func TestOptionSomeMap(t *testing.T) {
	got := fnx.MatchOption(fnx.MapOption(fnx.Some(20), func(x int) int { return x + 1 }),
		func(x int) string { return strconv.Itoa(x) },
		func() string { return "none" },
	)
	if got != "21" {
		t.Fatalf("got %q, want %q", got, "21")
	}
}

func TestOptionNoneMapNotCalled(t *testing.T) {
	called := false
	o := fnx.MapOption(fnx.None[int](), func(x int) int { called = true; return x })
	if called {
		t.Fatal("map function called on None")
	}
	if o.IsSome() {
		t.Fatal("expected None")
	}
}

func TestOptionBindShortCircuit(t *testing.T) {
	calls := 0
	half := func(x int) fnx.Option[int] {
		calls++
		if x%2 != 0 {
			return fnx.None[int]()
		}
		return fnx.Some(x / 2)
	}
	o := fnx.BindOption(fnx.BindOption(fnx.BindOption(fnx.Some(12), half), half), half)
	if o.IsSome() {
		t.Fatalf("got %v, want None", o)
	}
	if calls != 3 {
		t.Fatalf("got %d calls, want 3", calls)
	}

	calls = 0
	o = fnx.BindOption(fnx.BindOption(fnx.Some(3), half), half)
	if o.IsSome() || calls != 1 {
		t.Fatalf("got %v after %d calls, want None after 1", o, calls)
	}
}

func TestOptionZeroIsNone(t *testing.T) {
	var o fnx.Option[string]
	if !o.IsNone() {
		t.Fatal("zero Option should be None")
	}
	if o != fnx.None[string]() {
		t.Fatal("zero Option should equal None")
	}
}

func TestOptionEquality(t *testing.T) {
	if fnx.Some(3) != fnx.Some(3) {
		t.Fatal("Some(3) != Some(3)")
	}
	if fnx.Some(3) == fnx.Some(4) {
		t.Fatal("Some(3) == Some(4)")
	}
	if fnx.Some(0) == fnx.None[int]() {
		t.Fatal("Some(0) == None")
	}
}

func TestOptionFromPtrAndOk(t *testing.T) {
	var nilPtr *int
	if fnx.FromPtr(nilPtr).IsSome() {
		t.Fatal("FromPtr(nil) should be None")
	}
	v := 7
	if got := fnx.FromPtr(&v).OrElse(0); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	m := map[string]int{"a": 1}
	v2, ok := m["b"]
	if fnx.FromOk(v2, ok).IsSome() {
		t.Fatal("missing key should be None")
	}
}

func TestOptionOrElseGetLazy(t *testing.T) {
	called := false
	got := fnx.Some(1).OrElseGet(func() int { called = true; return 2 })
	if got != 1 || called {
		t.Fatalf("got %d (called=%v), want 1 without calling fallback", got, called)
	}
	if got := fnx.None[int]().OrElseGet(func() int { return 2 }); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestOptionOrFilter(t *testing.T) {
	if got := fnx.None[int]().Or(fnx.Some(5)); got != fnx.Some(5) {
		t.Fatalf("got %v, want Some(5)", got)
	}
	if got := fnx.Some(4).Filter(func(x int) bool { return x > 5 }); got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
}

func TestOptionApplyZip(t *testing.T) {
	inc := fnx.Some(func(x int) int { return x + 1 })
	if got := fnx.ApplyOption(inc, fnx.Some(1)); got != fnx.Some(2) {
		t.Fatalf("got %v, want Some(2)", got)
	}
	if got := fnx.ApplyOption(inc, fnx.None[int]()); got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
	sum := fnx.ZipWithOption(fnx.Some(2), fnx.Some(3), func(a, b int) int { return a + b })
	if sum != fnx.Some(5) {
		t.Fatalf("got %v, want Some(5)", sum)
	}
}

func TestOptionString(t *testing.T) {
	if got := fnx.Some(3).String(); got != "Some(3)" {
		t.Fatalf("got %q", got)
	}
	if got := fnx.None[int]().String(); got != "None" {
		t.Fatalf("got %q", got)
	}
}

func TestOptionToResult(t *testing.T) {
	if r := fnx.OptionToResult(fnx.None[int](), "missing"); r.Message() != "missing" {
		t.Fatalf("got %v, want Error(missing)", r)
	}
	if r := fnx.OptionToResult(fnx.Some(1), "missing"); !r.IsOk() {
		t.Fatalf("got %v, want Ok(1)", r)
	}
}
