package models

import (
	"errors"
)

var (
	ErrNoRecord               = errors.New("models: no matching record found")
	ErrInvalidCredentials     = errors.New("models: invalid credentials")
	ErrUserNotFound           = errors.New("models: user not found")
	ErrTaxpayerNotFound       = errors.New("models: taxpayer not found")
	ErrCategoryNotFound       = errors.New("models: category not found")
	ErrInvoiceNotFound        = errors.New("models: invoice not found")
	ErrPaymentNotFound        = errors.New("models: payment not found")
	ErrRegistrationNotFound   = errors.New("models: registration not found")
	ErrConfigurationNotFound  = errors.New("models: configuration not found")
	ErrDuplicateUsername      = errors.New("models: duplicate username")
	ErrDuplicateRegistration  = errors.New("models: registration number already exists")
	ErrReferenceCodeExhausted = errors.New("models: could not allocate unique reference code")
)
