package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodUSSD         = "ussd"
	MethodMobileMoney  = "mobile_money"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusSuccessful = "successful"
	PaymentStatusFailed     = "failed"
)

type Payment struct {
	ID              string          `json:"id"`
	RRR             string          `json:"rrr"`
	InvoiceID       string          `json:"invoiceId"`
	TaxpayerID      string          `json:"taxpayerId"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	TransactionDate time.Time       `json:"transactionDate"`
	PayerName       string          `json:"payerName"`
	PayerEmail      string          `json:"payerEmail"`
	PayerPhone      string          `json:"payerPhone"`
}

type PaymentUpdate struct {
	RRR           *string          `json:"rrr"`
	InvoiceID     *string          `json:"invoiceId"`
	TaxpayerID    *string          `json:"taxpayerId"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"paymentMethod"`
	Status        *string          `json:"status"`
	PayerName     *string          `json:"payerName"`
	PayerEmail    *string          `json:"payerEmail"`
	PayerPhone    *string          `json:"payerPhone"`
}

func (p PaymentUpdate) Validate() []FieldError {
	var details []FieldError
	if p.PaymentMethod != nil {
		details = oneOf(details, "paymentMethod", *p.PaymentMethod, MethodCard, MethodBankTransfer, MethodUSSD, MethodMobileMoney)
	}
	if p.Status != nil {
		details = oneOf(details, "status", *p.Status, PaymentStatusPending, PaymentStatusSuccessful, PaymentStatusFailed)
	}
	return details
}

// EnrichedPayment is the list view joined with the invoice number.
type EnrichedPayment struct {
	Payment
	InvoiceNumber string `json:"invoiceNumber"`
}

type ProcessPaymentRequest struct {
	CategoryID    string          `json:"categoryId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PayerName     string          `json:"payerName"`
	PayerEmail    string          `json:"payerEmail"`
	PayerPhone    string          `json:"payerPhone"`
}

func (r ProcessPaymentRequest) Validate() []FieldError {
	var details []FieldError
	details = required(details, "categoryId", r.CategoryID)
	details = required(details, "paymentMethod", r.PaymentMethod)
	details = oneOf(details, "paymentMethod", r.PaymentMethod, MethodCard, MethodBankTransfer, MethodUSSD, MethodMobileMoney)
	details = required(details, "payerName", r.PayerName)
	details = required(details, "payerEmail", r.PayerEmail)
	details = required(details, "payerPhone", r.PayerPhone)
	if r.Amount.IsZero() {
		details = append(details, FieldError{Field: "amount", Message: "is required"})
	} else if r.Amount.IsNegative() {
		details = append(details, FieldError{Field: "amount", Message: "must not be negative"})
	}
	return details
}

type ProcessPaymentResponse struct {
	RRR     string  `json:"rrr"`
	Payment Payment `json:"payment"`
}

type VerifyPaymentRequest struct {
	RRR string `json:"rrr"`
}

func (r VerifyPaymentRequest) Validate() []FieldError {
	return required(nil, "rrr", r.RRR)
}

// VerifyPaymentResult flattens the payment fields next to "found" so the
// response matches {found:true, ...payment, invoiceNumber}.
type VerifyPaymentResult struct {
	Found           bool             `json:"found"`
	ID              string           `json:"id,omitempty"`
	RRR             string           `json:"rrr,omitempty"`
	InvoiceID       string           `json:"invoiceId,omitempty"`
	TaxpayerID      string           `json:"taxpayerId,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod   string           `json:"paymentMethod,omitempty"`
	Status          string           `json:"status,omitempty"`
	TransactionDate *time.Time       `json:"transactionDate,omitempty"`
	PayerName       string           `json:"payerName,omitempty"`
	PayerEmail      string           `json:"payerEmail,omitempty"`
	PayerPhone      string           `json:"payerPhone,omitempty"`
	InvoiceNumber   string           `json:"invoiceNumber,omitempty"`
}
