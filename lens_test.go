// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnx_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/fnx"
)

type address struct {
	Street string
	City   string
}

type person struct {
	Name    string
	Address address
}

var (
	personAddress = fnx.NewLensAt("Address",
		func(p person) address { return p.Address },
		func(p person, a address) person { p.Address = a; return p })
	addressCity = fnx.NewLensAt("City",
		func(a address) string { return a.City },
		func(a address, c string) address { a.City = c; return a })
	personCity = fnx.ComposeLens(personAddress, addressCity)
)

func TestLensLaws(t *testing.T) {
	p := person{Name: "ada", Address: address{Street: "1 Main", City: "London"}}
	if got := personCity.Get(personCity.Set(p, "Paris")); got != "Paris" {
		t.Fatalf("get-set: got %q, want Paris", got)
	}
	if got := personCity.Set(p, personCity.Get(p)); got != p {
		t.Fatalf("set-get: got %+v, want %+v", got, p)
	}
	twice := personCity.Set(personCity.Set(p, "Rome"), "Oslo")
	if twice != personCity.Set(p, "Oslo") {
		t.Fatalf("set-set: got %+v", twice)
	}
}

func TestLensLawsZeroValue(t *testing.T) {
	var p person
	if got := personCity.Get(personCity.Set(p, "Paris")); got != "Paris" {
		t.Fatalf("get-set: got %q, want Paris", got)
	}
	if got := personCity.Set(p, personCity.Get(p)); got != p {
		t.Fatalf("set-get: got %+v, want %+v", got, p)
	}
	if got := personCity.Set(personCity.Set(p, "Paris"), ""); got != p {
		t.Fatalf("set back to zero: got %+v, want %+v", got, p)
	}
}

func TestLensSetDoesNotMutate(t *testing.T) {
	p := person{Address: address{City: "Lyon"}}
	q := personCity.Over(p, func(c string) string { return c + "!" })
	if p.Address.City != "Lyon" || q.Address.City != "Lyon!" {
		t.Fatalf("got %+v and %+v", p, q)
	}
	if q.Address.Street != p.Address.Street {
		t.Fatal("Over touched other fields")
	}
}

func TestLensPath(t *testing.T) {
	if got := personCity.Path(); got != "Address.City" {
		t.Fatalf("got %q, want Address.City", got)
	}
	rooted := fnx.ComposeLens(fnx.IdentityLens[person]("Person"), personCity)
	if got := rooted.Describe(); got != "Person.Address.City" {
		t.Fatalf("got %q", got)
	}
	anon := fnx.NewLens(func(p person) string { return p.Name }, func(p person, n string) person { p.Name = n; return p })
	if got := anon.Describe(); got != "Lens[fnx_test.person, string]" {
		t.Fatalf("got %q", got)
	}
	if got := fnx.ComposeLens(personAddress.WithPath(""), addressCity).Path(); got != "City" {
		t.Fatalf("got %q, want City", got)
	}
}

func TestLensUninitializedPanics(t *testing.T) {
	var zero fnx.Lens[person, string]
	if zero.Initialized() {
		t.Fatal("zero lens reported initialized")
	}
	defer func() {
		p := recover()
		err, ok := p.(error)
		if !ok || !errors.Is(err, fnx.ErrLensNotInitialized) {
			t.Fatalf("got panic %v, want ErrLensNotInitialized", p)
		}
	}()
	zero.Get(person{})
}
