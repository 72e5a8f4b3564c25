// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crm

import "code.hybscloud.com/fnx"

// MaxOrderTotal is the largest total a single order may carry.
const MaxOrderTotal = 50000

// OrderDraft is an order before it is accepted.
type OrderDraft struct {
	CustomerID string  `json:"customer_id"`
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
}

// OrderValidator checks, in order: customer present, total positive, total
// within MaxOrderTotal, three-letter currency.
func OrderValidator() fnx.Validator[OrderDraft] {
	return fnx.NewValidator[OrderDraft]().
		Ensure(func(o OrderDraft) bool { return notBlank(o.CustomerID) }, "CustomerId is required.").
		Ensure(func(o OrderDraft) bool { return o.Total > 0 }, "Total must be greater than zero.").
		Ensure(func(o OrderDraft) bool { return o.Total <= MaxOrderTotal }, "Total must not exceed 50000.").
		EnsureFunc(func(o OrderDraft) error {
			return formatRule("len=3", "Currency must be a 3-letter code.")(o.Currency)
		})
}
