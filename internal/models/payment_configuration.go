package models

import (
	"time"
)

// PaymentConfiguration toggles a payment method on or off. An empty
// CategoryID marks a global default that applies to every category
// without its own rows. IsEnabled stays an integer 1/0 across storage
// and JSON.
type PaymentConfiguration struct {
	ID            string    `json:"id"`
	CategoryID    *string   `json:"categoryId"`
	PaymentMethod string    `json:"paymentMethod"`
	IsEnabled     int       `json:"isEnabled"`
	UpdatedAt     time.Time `json:"updatedAt"`
	UpdatedBy     *string   `json:"updatedBy"`
}

func (c PaymentConfiguration) Validate() []FieldError {
	var details []FieldError
	details = required(details, "paymentMethod", c.PaymentMethod)
	details = oneOf(details, "paymentMethod", c.PaymentMethod,
		MethodCard, MethodBankTransfer, MethodUSSD, MethodMobileMoney)
	if c.IsEnabled != 0 && c.IsEnabled != 1 {
		details = append(details, FieldError{Field: "isEnabled", Message: "must be 0 or 1"})
	}
	return details
}

type PaymentConfigurationUpdate struct {
	CategoryID    *string `json:"categoryId"`
	PaymentMethod *string `json:"paymentMethod"`
	IsEnabled     *int    `json:"isEnabled"`
	UpdatedBy     *string `json:"updatedBy"`
}

func (c PaymentConfigurationUpdate) Validate() []FieldError {
	var details []FieldError
	if c.PaymentMethod != nil {
		details = oneOf(details, "paymentMethod", *c.PaymentMethod,
			MethodCard, MethodBankTransfer, MethodUSSD, MethodMobileMoney)
	}
	if c.IsEnabled != nil && *c.IsEnabled != 0 && *c.IsEnabled != 1 {
		details = append(details, FieldError{Field: "isEnabled", Message: "must be 0 or 1"})
	}
	return details
}
