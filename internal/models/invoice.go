package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	TaxpayerID    string          `json:"taxpayerId"`
	CategoryID    string          `json:"categoryId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DueDate       time.Time       `json:"dueDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	Description   string          `json:"description"`
}

func (i Invoice) Validate() []FieldError {
	var details []FieldError
	details = required(details, "invoiceNumber", i.InvoiceNumber)
	details = required(details, "taxpayerId", i.TaxpayerID)
	details = required(details, "categoryId", i.CategoryID)
	details = required(details, "status", i.Status)
	details = oneOf(details, "status", i.Status, InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled)
	if i.Amount.IsZero() {
		details = append(details, FieldError{Field: "amount", Message: "is required"})
	}
	if i.DueDate.IsZero() {
		details = append(details, FieldError{Field: "dueDate", Message: "is required"})
	}
	return details
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateInvoiceStatusRequest) Validate() []FieldError {
	var details []FieldError
	details = required(details, "status", r.Status)
	details = oneOf(details, "status", r.Status, InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled)
	return details
}

// EnrichedInvoice is the list view joined with taxpayer and category names.
type EnrichedInvoice struct {
	Invoice
	TaxpayerName  string `json:"taxpayerName"`
	TaxpayerEmail string `json:"taxpayerEmail"`
	CategoryName  string `json:"categoryName"`
}
