// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm

import (
	"fmt"

	"code.hybscloud.com/fnx"
)

// Patch lists the fields to change. Absent fields are left as they are.
type Patch struct {
	Name    fnx.Option[string]
	Email   fnx.Option[string]
	Phone   fnx.Option[string]
	Company fnx.Option[string]
	Street  fnx.Option[string]
	City    fnx.Option[string]
	Country fnx.Option[string]
}

type patchField struct {
	lens  fnx.Lens[Contact, string]
	value fnx.Option[string]
}

func (p Patch) fields() []patchField {
	return []patchField{
		{ContactName, p.Name},
		{ContactEmail, p.Email},
		{ContactPhone, p.Phone},
		{ContactCompany, p.Company},
		{ContactStreet, p.Street},
		{ContactCity, p.City},
		{ContactCountry, p.Country},
	}
}

// IsEmpty reports whether the patch sets no field.
func (p Patch) IsEmpty() bool {
	for _, f := range p.fields() {
		if f.value.IsSome() {
			return false
		}
	}
	return true
}

// Apply returns c with the patch applied and one audit entry per field
// that actually changed, in field order.
func (p Patch) Apply(c Contact) fnx.Writer[Contact, string] {
	w := fnx.WriterOf[string](c)
	for _, f := range p.fields() {
		w = fnx.BindWriter(w, setField(f))
	}
	return w
}

func setField(f patchField) func(Contact) fnx.Writer[Contact, string] {
	return func(c Contact) fnx.Writer[Contact, string] {
		next, ok := f.value.Get()
		prev := f.lens.Get(c)
		if !ok || prev == next {
			return fnx.WriterOf[string](c)
		}
		return fnx.WriterFrom(f.lens.Set(c, next), fmt.Sprintf("%s: %q -> %q", f.lens.Path(), prev, next))
	}
}
