// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package crm is a small contact manager built on fnx.
//
// Records are immutable values updated through lenses, checked by
// Validators that report every problem at once, and persisted by a SQLite
// Store whose operations are TaskResults. Service operations are
// ReaderTaskResults over Env, so dependencies are supplied once at the edge.
package crm

import (
	"errors"
	"time"

	"code.hybscloud.com/fnx"
)

// ErrNotFound is reported when a contact ID does not exist.
var ErrNotFound = errors.New("crm: contact not found")

// Geo locates an address.
type Geo struct {
	City    string `json:"city" yaml:"city"`
	Country string `json:"country" yaml:"country"`
}

// Address is a postal address.
type Address struct {
	Street string `json:"street" yaml:"street"`
	Geo    Geo    `json:"geo" yaml:"geo"`
}

// Contact is one person in the address book.
type Contact struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	Phone     string    `json:"phone,omitempty" yaml:"phone"`
	Company   string    `json:"company,omitempty" yaml:"company"`
	Address   Address   `json:"address" yaml:"address"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

var contactRoot = fnx.IdentityLens[Contact]("Contact")

// Contact field lenses. Paths start at "Contact", so validation messages
// read like "Contact.Address.Geo.City: City is required.".
var (
	ContactName = fnx.ComposeLens(contactRoot, fnx.NewLensAt("Name",
		func(c Contact) string { return c.Name },
		func(c Contact, v string) Contact { c.Name = v; return c }))

	ContactEmail = fnx.ComposeLens(contactRoot, fnx.NewLensAt("Email",
		func(c Contact) string { return c.Email },
		func(c Contact, v string) Contact { c.Email = v; return c }))

	ContactPhone = fnx.ComposeLens(contactRoot, fnx.NewLensAt("Phone",
		func(c Contact) string { return c.Phone },
		func(c Contact, v string) Contact { c.Phone = v; return c }))

	ContactCompany = fnx.ComposeLens(contactRoot, fnx.NewLensAt("Company",
		func(c Contact) string { return c.Company },
		func(c Contact, v string) Contact { c.Company = v; return c }))

	ContactAddress = fnx.ComposeLens(contactRoot, fnx.NewLensAt("Address",
		func(c Contact) Address { return c.Address },
		func(c Contact, v Address) Contact { c.Address = v; return c }))

	ContactStreet = fnx.ComposeLens(ContactAddress, fnx.NewLensAt("Street",
		func(a Address) string { return a.Street },
		func(a Address, v string) Address { a.Street = v; return a }))

	ContactGeo = fnx.ComposeLens(ContactAddress, fnx.NewLensAt("Geo",
		func(a Address) Geo { return a.Geo },
		func(a Address, v Geo) Address { a.Geo = v; return a }))

	ContactCity = fnx.ComposeLens(ContactGeo, fnx.NewLensAt("City",
		func(g Geo) string { return g.City },
		func(g Geo, v string) Geo { g.City = v; return g }))

	ContactCountry = fnx.ComposeLens(ContactGeo, fnx.NewLensAt("Country",
		func(g Geo) string { return g.Country },
		func(g Geo, v string) Geo { g.Country = v; return g }))
)
