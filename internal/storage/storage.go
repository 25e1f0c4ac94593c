package storage

import (
	"context"

	"revenueBack/internal/models"
)

// Storage is the CRUD contract shared by the in-memory and Postgres
// backends. Handlers and services depend only on this interface; the
// concrete backend is chosen once at startup.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, updates models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)

	// Taxpayers
	GetTaxpayer(ctx context.Context, id string) (models.Taxpayer, error)
	GetTaxpayerByTaxpayerID(ctx context.Context, taxpayerID string) (models.Taxpayer, error)
	GetAllTaxpayers(ctx context.Context) ([]models.Taxpayer, error)
	CreateTaxpayer(ctx context.Context, taxpayer models.Taxpayer) (models.Taxpayer, error)
	UpdateTaxpayer(ctx context.Context, id string, updates models.TaxpayerUpdate) (models.Taxpayer, error)
	DeleteTaxpayer(ctx context.Context, id string) (bool, error)
	// NextTaxpayerSequence hands out the next value for generated
	// taxpayer IDs. Counting rows and adding one races under
	// concurrent writers, so each backend keeps a real counter.
	NextTaxpayerSequence(ctx context.Context) (int64, error)

	// Revenue categories
	GetRevenueCategory(ctx context.Context, id string) (models.RevenueCategory, error)
	GetAllRevenueCategories(ctx context.Context) ([]models.RevenueCategory, error)
	CreateRevenueCategory(ctx context.Context, category models.RevenueCategory) (models.RevenueCategory, error)
	UpdateRevenueCategory(ctx context.Context, id string, updates models.RevenueCategoryUpdate) (models.RevenueCategory, error)
	DeleteRevenueCategory(ctx context.Context, id string) (bool, error)

	// Invoices
	GetInvoice(ctx context.Context, id string) (models.Invoice, error)
	GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (models.Invoice, error)
	GetAllInvoices(ctx context.Context) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id string, status string) (models.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) (bool, error)

	// Payments
	GetPayment(ctx context.Context, id string) (models.Payment, error)
	GetPaymentByRRR(ctx context.Context, rrr string) (models.Payment, error)
	GetAllPayments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error)
	UpdatePayment(ctx context.Context, id string, updates models.PaymentUpdate) (models.Payment, error)
	DeletePayment(ctx context.Context, id string) (bool, error)

	// Business registrations
	GetBusinessRegistration(ctx context.Context, id string) (models.BusinessRegistration, error)
	GetBusinessRegistrationByNumber(ctx context.Context, registrationNumber string) (models.BusinessRegistration, error)
	GetAllBusinessRegistrations(ctx context.Context) ([]models.BusinessRegistration, error)
	CreateBusinessRegistration(ctx context.Context, registration models.BusinessRegistration) (models.BusinessRegistration, error)
	UpdateBusinessRegistrationStatus(ctx context.Context, id string, status string, rejectionReason, reviewedBy *string) (models.BusinessRegistration, error)
	DeleteBusinessRegistration(ctx context.Context, id string) (bool, error)

	// Payment configurations
	GetPaymentConfiguration(ctx context.Context, id string) (models.PaymentConfiguration, error)
	GetAllPaymentConfigurations(ctx context.Context) ([]models.PaymentConfiguration, error)
	// GetPaymentConfigurationsByCategory returns the rows scoped to the
	// given category; an empty categoryID selects the global rows.
	GetPaymentConfigurationsByCategory(ctx context.Context, categoryID string) ([]models.PaymentConfiguration, error)
	CreatePaymentConfiguration(ctx context.Context, config models.PaymentConfiguration) (models.PaymentConfiguration, error)
	UpdatePaymentConfiguration(ctx context.Context, id string, updates models.PaymentConfigurationUpdate) (models.PaymentConfiguration, error)
	DeletePaymentConfiguration(ctx context.Context, id string) (bool, error)
}
