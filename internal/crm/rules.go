// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm

import (
	"errors"
	"strings"

	"code.hybscloud.com/fnx"
	"github.com/go-playground/validator/v10"
)

// validate checks single-field formats. It is safe for concurrent use.
var validate = validator.New()

// formatRule reports msg when s does not satisfy the validator tag.
func formatRule(tag, msg string) func(string) error {
	return func(s string) error {
		if err := validate.Var(s, tag); err != nil {
			return errors.New(msg)
		}
		return nil
	}
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

var contactRules = func() fnx.Validator[Contact] {
	v := fnx.EnsureAt(fnx.NewValidator[Contact](), ContactName, notBlank, "Name is required.")
	v = fnx.CheckAt(v, ContactName, formatRule("max=120", "Name must be at most 120 characters."))
	v = fnx.CheckAt(v, ContactEmail, formatRule("required,email", "Email must be a valid address."))
	v = fnx.CheckAt(v, ContactPhone, formatRule("omitempty,e164", "Phone must be in E.164 form."))
	v = fnx.EnsureAt(v, ContactCity, notBlank, "City is required.")
	return fnx.CheckAt(v, ContactCountry, formatRule("omitempty,iso3166_1_alpha2", "Country must be an ISO 3166 alpha-2 code."))
}()

// ContactValidator returns the rules every stored contact satisfies.
func ContactValidator() fnx.Validator[Contact] {
	return contactRules
}

// ValidateContact runs ContactValidator on c.
func ValidateContact(c Contact) fnx.Validation[Contact] {
	return contactRules.Apply(c)
}
