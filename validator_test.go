// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/fnx"
)

type order struct {
	CustomerID string
	Quantity   int
	Ship       address
}

var (
	orderRoot     = fnx.IdentityLens[order]("Order")
	orderCustomer = fnx.ComposeLens(orderRoot, fnx.NewLensAt("CustomerID",
		func(o order) string { return o.CustomerID },
		func(o order, id string) order { o.CustomerID = id; return o }))
	orderQuantity = fnx.ComposeLens(orderRoot, fnx.NewLensAt("Quantity",
		func(o order) int { return o.Quantity },
		func(o order, q int) order { o.Quantity = q; return o }))
	orderShip = fnx.ComposeLens(orderRoot, fnx.NewLensAt("Ship",
		func(o order) address { return o.Ship },
		func(o order, a address) order { o.Ship = a; return o }))
)

func orderValidator() fnx.Validator[order] {
	v := fnx.EnsureAt(fnx.NewValidator[order](), orderCustomer, func(id string) bool { return id != "" }, "is required")
	v = fnx.EnsureAt(v, orderQuantity, func(q int) bool { return q > 0 }, "must be positive")
	return fnx.ValidateAt(v, orderShip, fnx.EnsureAt(fnx.NewValidator[address](), addressCity,
		func(c string) bool { return c != "" }, "is required"))
}

func TestValidatorReportsAllInOrder(t *testing.T) {
	res := orderValidator().Apply(order{Quantity: -5})
	want := []string{
		"Order.CustomerID: is required",
		"Order.Quantity: must be positive",
		"Order.Ship: City: is required",
	}
	if !slices.Equal(res.Errors(), want) {
		t.Fatalf("got %q, want %q", res.Errors(), want)
	}
}

func TestValidatorValidSubject(t *testing.T) {
	o := order{CustomerID: "c1", Quantity: 1, Ship: address{City: "Kyoto"}}
	got, ok := orderValidator().Apply(o).Value()
	if !ok || got != o {
		t.Fatalf("got %+v (ok=%v)", got, ok)
	}
}

func TestValidatorImmutable(t *testing.T) {
	base := fnx.NewValidator[int]().Ensure(func(n int) bool { return n > 0 }, "positive")
	a := base.Ensure(func(n int) bool { return n%2 == 0 }, "even")
	b := base.Ensure(func(n int) bool { return n < 10 }, "small")
	if base.Len() != 1 || a.Len() != 2 || b.Len() != 2 {
		t.Fatalf("got lens %d %d %d", base.Len(), a.Len(), b.Len())
	}
	if got := a.Apply(11).Errors(); !slices.Equal(got, []string{"even"}) {
		t.Fatalf("got %v", got)
	}
	if got := b.Apply(11).Errors(); !slices.Equal(got, []string{"small"}) {
		t.Fatalf("got %v", got)
	}
}

func TestValidatorAppendAssociative(t *testing.T) {
	rule := func(msg string) fnx.Validator[int] {
		return fnx.NewValidator[int]().Ensure(func(int) bool { return false }, msg)
	}
	x, y, z := rule("x"), rule("y"), rule("z")
	left := x.Append(y).Append(z).Apply(0).Errors()
	right := x.Append(y.Append(z)).Apply(0).Errors()
	if !slices.Equal(left, right) || !slices.Equal(left, []string{"x", "y", "z"}) {
		t.Fatalf("got %v and %v", left, right)
	}
	empty := fnx.NewValidator[int]()
	if got := empty.Append(x).Apply(0).Errors(); !slices.Equal(got, []string{"x"}) {
		t.Fatalf("got %v", got)
	}
}

func TestValidatorCheckFuncs(t *testing.T) {
	v := fnx.NewValidator[order]().EnsureFunc(func(o order) error {
		if o.Quantity > 100 {
			return errors.New("too many items")
		}
		return nil
	})
	v = fnx.CheckAt(v, orderCustomer, func(id string) error {
		if len(id) > 3 {
			return errors.New("is too long")
		}
		return nil
	})
	got := v.Apply(order{CustomerID: "abcd", Quantity: 101}).Errors()
	if !slices.Equal(got, []string{"too many items", "Order.CustomerID: is too long"}) {
		t.Fatalf("got %v", got)
	}
}
