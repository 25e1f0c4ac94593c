package models

import (
	"github.com/shopspring/decimal"
)

type RevenueCategory struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Department  string          `json:"department"`
	Amount      decimal.Decimal `json:"amount"`
	IsActive    int             `json:"isActive"`
}

func (c RevenueCategory) Validate() []FieldError {
	var details []FieldError
	details = required(details, "name", c.Name)
	details = required(details, "description", c.Description)
	details = required(details, "department", c.Department)
	if c.Amount.IsZero() {
		details = append(details, FieldError{Field: "amount", Message: "is required"})
	} else if c.Amount.IsNegative() {
		details = append(details, FieldError{Field: "amount", Message: "must not be negative"})
	}
	return details
}

type RevenueCategoryUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Department  *string          `json:"department"`
	Amount      *decimal.Decimal `json:"amount"`
	IsActive    *int             `json:"isActive"`
}

func (c RevenueCategoryUpdate) Validate() []FieldError {
	var details []FieldError
	if c.Amount != nil && c.Amount.IsNegative() {
		details = append(details, FieldError{Field: "amount", Message: "must not be negative"})
	}
	return details
}
