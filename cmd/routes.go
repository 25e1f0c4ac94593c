package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"revenueBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Auth
	mux.Post("/api/auth/login", standardMiddleware.ThenFunc(app.authHandler.Login))

	// Users
	mux.Get("/api/users", standardMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Get("/api/users/:id", standardMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Post("/api/users", standardMiddleware.ThenFunc(app.userHandler.CreateUser))
	mux.Put("/api/users/:id", standardMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/api/users/:id", adminAuthMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Taxpayers
	mux.Get("/api/taxpayers", standardMiddleware.ThenFunc(app.taxpayerHandler.GetTaxpayers))
	mux.Get("/api/taxpayers/:id", standardMiddleware.ThenFunc(app.taxpayerHandler.GetTaxpayerByID))
	mux.Post("/api/taxpayers", standardMiddleware.ThenFunc(app.taxpayerHandler.CreateTaxpayer))
	mux.Put("/api/taxpayers/:id", standardMiddleware.ThenFunc(app.taxpayerHandler.UpdateTaxpayer))
	mux.Del("/api/taxpayers/:id", adminAuthMiddleware.ThenFunc(app.taxpayerHandler.DeleteTaxpayer))

	// Revenue categories
	mux.Get("/api/revenue-categories", standardMiddleware.ThenFunc(app.categoryHandler.GetCategories))
	mux.Get("/api/revenue-categories/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByID))
	mux.Post("/api/revenue-categories", standardMiddleware.ThenFunc(app.categoryHandler.CreateCategory))
	mux.Put("/api/revenue-categories/:id", standardMiddleware.ThenFunc(app.categoryHandler.UpdateCategory))
	mux.Del("/api/revenue-categories/:id", adminAuthMiddleware.ThenFunc(app.categoryHandler.DeleteCategory))

	// Invoices
	mux.Get("/api/invoices", standardMiddleware.ThenFunc(app.invoiceHandler.GetInvoices))
	mux.Get("/api/invoices/:id", standardMiddleware.ThenFunc(app.invoiceHandler.GetInvoiceByID))
	mux.Post("/api/invoices", standardMiddleware.ThenFunc(app.invoiceHandler.CreateInvoice))
	mux.Put("/api/invoices/:id", standardMiddleware.ThenFunc(app.invoiceHandler.UpdateInvoiceStatus))
	mux.Del("/api/invoices/:id", adminAuthMiddleware.ThenFunc(app.invoiceHandler.DeleteInvoice))

	// Payments
	mux.Post("/api/payments/process", standardMiddleware.ThenFunc(app.paymentHandler.ProcessPayment))
	mux.Post("/api/payments/verify", standardMiddleware.ThenFunc(app.paymentHandler.VerifyPayment))
	mux.Get("/api/payments", standardMiddleware.ThenFunc(app.paymentHandler.GetPayments))
	mux.Get("/api/payments/:id", standardMiddleware.ThenFunc(app.paymentHandler.GetPaymentByID))
	mux.Put("/api/payments/:id", standardMiddleware.ThenFunc(app.paymentHandler.UpdatePayment))
	mux.Del("/api/payments/:id", adminAuthMiddleware.ThenFunc(app.paymentHandler.DeletePayment))
	mux.Get("/api/payment-methods", standardMiddleware.ThenFunc(app.paymentHandler.GetPaymentMethods))

	// Business registrations
	mux.Post("/api/business/register", standardMiddleware.ThenFunc(app.businessHandler.RegisterBusiness))
	mux.Get("/api/admin/business-registrations", adminAuthMiddleware.ThenFunc(app.businessHandler.GetRegistrations))
	mux.Get("/api/admin/business-registrations/:id", adminAuthMiddleware.ThenFunc(app.businessHandler.GetRegistrationByID))
	mux.Put("/api/admin/business-registrations/:id/status", adminAuthMiddleware.ThenFunc(app.businessHandler.UpdateRegistrationStatus))
	mux.Del("/api/admin/business-registrations/:id", adminAuthMiddleware.ThenFunc(app.businessHandler.DeleteRegistration))

	// Payment configurations
	mux.Get("/api/admin/payment-configurations", adminAuthMiddleware.ThenFunc(app.paymentConfigHandler.GetConfigurations))
	mux.Post("/api/admin/payment-configurations", adminAuthMiddleware.ThenFunc(app.paymentConfigHandler.CreateConfiguration))
	mux.Put("/api/admin/payment-configurations/:id", adminAuthMiddleware.ThenFunc(app.paymentConfigHandler.UpdateConfiguration))
	mux.Del("/api/admin/payment-configurations/:id", adminAuthMiddleware.ThenFunc(app.paymentConfigHandler.DeleteConfiguration))

	// Reports
	mux.Get("/api/dashboard/stats", standardMiddleware.ThenFunc(app.reportHandler.GetDashboardStats))
	mux.Get("/api/dashboard/revenue-by-department", standardMiddleware.ThenFunc(app.reportHandler.GetRevenueByDepartment))
	mux.Get("/api/dashboard/revenue-by-source", standardMiddleware.ThenFunc(app.reportHandler.GetRevenueBySource))
	mux.Get("/api/dashboard/monthly-trends", standardMiddleware.ThenFunc(app.reportHandler.GetMonthlyTrends))
	mux.Get("/api/reports", standardMiddleware.ThenFunc(app.reportHandler.GetReport))

	return mux
}
