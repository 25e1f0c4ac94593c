package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

// maxRRRAttempts bounds the regenerate-on-collision loop. The suffix
// gives 10,000 codes per millisecond bucket, so more than a couple of
// retries means the clock is stuck.
const maxRRRAttempts = 5

type PaymentService struct {
	Store   storage.Storage
	Gateway Gateway
}

// ProcessPayment runs the full mock payment flow: category lookup,
// reference code generation, taxpayer find-or-create, invoice creation,
// gateway authorization and the final payment record. The invoice is
// written with status "paid" before the gateway responds; that mirrors
// the demo flow, and the ordering is pending product clarification.
func (s *PaymentService) ProcessPayment(ctx context.Context, req models.ProcessPaymentRequest) (models.ProcessPaymentResponse, error) {
	category, err := s.Store.GetRevenueCategory(ctx, req.CategoryID)
	if err != nil {
		return models.ProcessPaymentResponse{}, err
	}

	rrr, err := s.generateRRR(ctx)
	if err != nil {
		return models.ProcessPaymentResponse{}, err
	}

	taxpayer, err := s.resolveTaxpayer(ctx, req)
	if err != nil {
		return models.ProcessPaymentResponse{}, err
	}

	invoiceNumber, err := s.nextInvoiceNumber(ctx)
	if err != nil {
		return models.ProcessPaymentResponse{}, err
	}
	invoice, err := s.Store.CreateInvoice(ctx, models.Invoice{
		InvoiceNumber: invoiceNumber,
		TaxpayerID:    taxpayer.ID,
		CategoryID:    req.CategoryID,
		Amount:        req.Amount,
		Status:        models.InvoiceStatusPaid,
		DueDate:       time.Now().Add(30 * 24 * time.Hour),
		Description:   category.Name,
	})
	if err != nil {
		return models.ProcessPaymentResponse{}, err
	}

	result, err := s.Gateway.Authorize(ctx, GatewayRequest{
		RRR:           rrr,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return models.ProcessPaymentResponse{}, err
	}

	payment, err := s.Store.CreatePayment(ctx, models.Payment{
		RRR:           rrr,
		InvoiceID:     invoice.ID,
		TaxpayerID:    taxpayer.ID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        result.Status,
		PayerName:     req.PayerName,
		PayerEmail:    req.PayerEmail,
		PayerPhone:    req.PayerPhone,
	})
	if err != nil {
		return models.ProcessPaymentResponse{}, err
	}

	return models.ProcessPaymentResponse{RRR: rrr, Payment: payment}, nil
}

// generateRRR builds a 12-digit reference: the low 8 digits of the
// current unix milliseconds plus a 4-digit random suffix, re-rolled if
// the code is already taken.
func (s *PaymentService) generateRRR(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxRRRAttempts; attempt++ {
		millis := fmt.Sprintf("%d", time.Now().UnixMilli())
		candidate := millis[len(millis)-8:] + fmt.Sprintf("%04d", rand.Intn(10000))

		_, err := s.Store.GetPaymentByRRR(ctx, candidate)
		if errors.Is(err, models.ErrPaymentNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", models.ErrReferenceCodeExhausted
}

// resolveTaxpayer reuses the taxpayer whose email matches the payer, or
// registers a new individual with a generated ABU-IND id.
func (s *PaymentService) resolveTaxpayer(ctx context.Context, req models.ProcessPaymentRequest) (models.Taxpayer, error) {
	taxpayers, err := s.Store.GetAllTaxpayers(ctx)
	if err != nil {
		return models.Taxpayer{}, err
	}
	for _, t := range taxpayers {
		if t.Email == req.PayerEmail {
			return t, nil
		}
	}

	seq, err := s.Store.NextTaxpayerSequence(ctx)
	if err != nil {
		return models.Taxpayer{}, err
	}
	return s.Store.CreateTaxpayer(ctx, models.Taxpayer{
		TaxpayerID: fmt.Sprintf("ABU-IND-%d-%04d", time.Now().Year(), seq),
		Type:       models.TaxpayerIndividual,
		FullName:   req.PayerName,
		Email:      req.PayerEmail,
		Phone:      req.PayerPhone,
		Address:    "N/A",
	})
}

func (s *PaymentService) nextInvoiceNumber(ctx context.Context) (string, error) {
	invoices, err := s.Store.GetAllInvoices(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%04d", time.Now().Year(), len(invoices)+1), nil
}

// VerifyPayment looks a payment up by reference code. A miss is a
// normal outcome for the public verification page, not an error.
func (s *PaymentService) VerifyPayment(ctx context.Context, rrr string) (models.VerifyPaymentResult, error) {
	payment, err := s.Store.GetPaymentByRRR(ctx, rrr)
	if errors.Is(err, models.ErrPaymentNotFound) {
		return models.VerifyPaymentResult{Found: false}, nil
	}
	if err != nil {
		return models.VerifyPaymentResult{}, err
	}

	invoiceNumber := "Unknown"
	invoice, err := s.Store.GetInvoice(ctx, payment.InvoiceID)
	if err == nil {
		invoiceNumber = invoice.InvoiceNumber
	} else if !errors.Is(err, models.ErrInvoiceNotFound) {
		return models.VerifyPaymentResult{}, err
	}

	amount := payment.Amount
	transactionDate := payment.TransactionDate
	return models.VerifyPaymentResult{
		Found:           true,
		ID:              payment.ID,
		RRR:             payment.RRR,
		InvoiceID:       payment.InvoiceID,
		TaxpayerID:      payment.TaxpayerID,
		Amount:          &amount,
		PaymentMethod:   payment.PaymentMethod,
		Status:          payment.Status,
		TransactionDate: &transactionDate,
		PayerName:       payment.PayerName,
		PayerEmail:      payment.PayerEmail,
		PayerPhone:      payment.PayerPhone,
		InvoiceNumber:   invoiceNumber,
	}, nil
}

// GetEnrichedPayments joins each payment with its invoice number for
// the list view.
func (s *PaymentService) GetEnrichedPayments(ctx context.Context) ([]models.EnrichedPayment, error) {
	payments, err := s.Store.GetAllPayments(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.Store.GetAllInvoices(ctx)
	if err != nil {
		return nil, err
	}

	numbers := make(map[string]string, len(invoices))
	for _, i := range invoices {
		numbers[i.ID] = i.InvoiceNumber
	}

	enriched := make([]models.EnrichedPayment, 0, len(payments))
	for _, p := range payments {
		number, ok := numbers[p.InvoiceID]
		if !ok {
			number = "Unknown"
		}
		enriched = append(enriched, models.EnrichedPayment{Payment: p, InvoiceNumber: number})
	}
	return enriched, nil
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, id string) (models.Payment, error) {
	return s.Store.GetPayment(ctx, id)
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id string, updates models.PaymentUpdate) (models.Payment, error) {
	return s.Store.UpdatePayment(ctx, id, updates)
}

func (s *PaymentService) DeletePayment(ctx context.Context, id string) error {
	deleted, err := s.Store.DeletePayment(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrPaymentNotFound
	}
	return nil
}
