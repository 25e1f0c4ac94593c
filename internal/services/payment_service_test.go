package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

func newPaymentService() *PaymentService {
	return &PaymentService{
		Store:   storage.NewMemoryStore(),
		Gateway: &MockGateway{},
	}
}

func payRequest(email string) models.ProcessPaymentRequest {
	return models.ProcessPaymentRequest{
		CategoryID:    "rc1",
		Amount:        decimal.RequireFromString("15000.00"),
		PaymentMethod: models.MethodCard,
		PayerName:     "Test Payer",
		PayerEmail:    email,
		PayerPhone:    "+234 800 000 0000",
	}
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a 12-digit numeric reference", func(t *testing.T) {
		svc := newPaymentService()
		resp, err := svc.ProcessPayment(ctx, payRequest("new.payer@email.com"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.RRR) != 12 {
			t.Fatalf("expected 12-digit reference, got %q", resp.RRR)
		}
		for _, c := range resp.RRR {
			if c < '0' || c > '9' {
				t.Fatalf("expected numeric reference, got %q", resp.RRR)
			}
		}
		if resp.Payment.Status != models.PaymentStatusSuccessful {
			t.Fatalf("expected successful payment, got %s", resp.Payment.Status)
		}
	})

	t.Run("registers a new taxpayer for an unknown email", func(t *testing.T) {
		svc := newPaymentService()
		resp, err := svc.ProcessPayment(ctx, payRequest("new.payer@email.com"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		taxpayer, err := svc.Store.GetTaxpayer(ctx, resp.Payment.TaxpayerID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := fmt.Sprintf("ABU-IND-%d-0006", time.Now().Year())
		if taxpayer.TaxpayerID != want {
			t.Fatalf("expected %s, got %s", want, taxpayer.TaxpayerID)
		}
		if taxpayer.Type != models.TaxpayerIndividual {
			t.Fatalf("expected individual, got %s", taxpayer.Type)
		}
	})

	t.Run("reuses the taxpayer matching the payer email", func(t *testing.T) {
		svc := newPaymentService()
		resp, err := svc.ProcessPayment(ctx, payRequest("chidi.nnamdi@email.com"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Payment.TaxpayerID != "tp1" {
			t.Fatalf("expected tp1, got %s", resp.Payment.TaxpayerID)
		}
		taxpayers, _ := svc.Store.GetAllTaxpayers(ctx)
		if len(taxpayers) != 5 {
			t.Fatalf("expected no new taxpayer, got %d", len(taxpayers))
		}
	})

	t.Run("creates a paid invoice with a sequential number", func(t *testing.T) {
		svc := newPaymentService()
		resp, err := svc.ProcessPayment(ctx, payRequest("new.payer@email.com"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		invoice, err := svc.Store.GetInvoice(ctx, resp.Payment.InvoiceID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if invoice.Status != models.InvoiceStatusPaid {
			t.Fatalf("expected paid invoice, got %s", invoice.Status)
		}
		if !strings.HasPrefix(invoice.InvoiceNumber, "INV-") || !strings.HasSuffix(invoice.InvoiceNumber, "-0006") {
			t.Fatalf("unexpected invoice number %q", invoice.InvoiceNumber)
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		svc := newPaymentService()
		req := payRequest("new.payer@email.com")
		req.CategoryID = "missing"
		_, err := svc.ProcessPayment(ctx, req)
		if err != models.ErrCategoryNotFound {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("issues distinct references across payments", func(t *testing.T) {
		svc := newPaymentService()
		seen := make(map[string]bool)
		for i := 0; i < 5; i++ {
			resp, err := svc.ProcessPayment(ctx, payRequest("new.payer@email.com"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen[resp.RRR] {
				t.Fatalf("duplicate reference %s", resp.RRR)
			}
			seen[resp.RRR] = true
		}
	})
}

// collidingStore reports the first collisions candidates as taken and
// leaves every other Storage method on the embedded nil interface.
type collidingStore struct {
	storage.Storage
	collisions int
	calls      int
}

func (s *collidingStore) GetPaymentByRRR(ctx context.Context, rrr string) (models.Payment, error) {
	s.calls++
	if s.calls <= s.collisions {
		return models.Payment{RRR: rrr}, nil
	}
	return models.Payment{}, models.ErrPaymentNotFound
}

func TestGenerateRRRCollisions(t *testing.T) {
	ctx := context.Background()

	t.Run("re-rolls past taken codes", func(t *testing.T) {
		store := &collidingStore{collisions: 2}
		svc := &PaymentService{Store: store, Gateway: &MockGateway{}}

		rrr, err := svc.generateRRR(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rrr) != 12 {
			t.Fatalf("expected 12-digit reference, got %q", rrr)
		}
		if store.calls != 3 {
			t.Fatalf("expected 3 lookups, got %d", store.calls)
		}
	})

	t.Run("gives up when every candidate is taken", func(t *testing.T) {
		store := &collidingStore{collisions: maxRRRAttempts}
		svc := &PaymentService{Store: store, Gateway: &MockGateway{}}

		_, err := svc.generateRRR(ctx)
		if err != models.ErrReferenceCodeExhausted {
			t.Fatalf("expected ErrReferenceCodeExhausted, got %v", err)
		}
		if store.calls != maxRRRAttempts {
			t.Fatalf("expected %d lookups, got %d", maxRRRAttempts, store.calls)
		}
	})
}

func TestVerifyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a processed payment", func(t *testing.T) {
		svc := newPaymentService()
		resp, err := svc.ProcessPayment(ctx, payRequest("new.payer@email.com"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result, err := svc.VerifyPayment(ctx, resp.RRR)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Found {
			t.Fatal("expected payment to be found")
		}
		if result.Amount == nil || !result.Amount.Equal(decimal.RequireFromString("15000.00")) {
			t.Fatalf("expected amount 15000.00, got %v", result.Amount)
		}
		if result.InvoiceNumber == "" || result.InvoiceNumber == "Unknown" {
			t.Fatalf("expected a real invoice number, got %q", result.InvoiceNumber)
		}
	})

	t.Run("reports a miss without error", func(t *testing.T) {
		svc := newPaymentService()
		result, err := svc.VerifyPayment(ctx, "999999999999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Found {
			t.Fatal("expected found to be false")
		}
		if result.RRR != "" {
			t.Fatalf("expected empty payment fields, got rrr %q", result.RRR)
		}
	})

	t.Run("finds a seeded payment", func(t *testing.T) {
		svc := newPaymentService()
		result, err := svc.VerifyPayment(ctx, "240200000001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Found {
			t.Fatal("expected payment to be found")
		}
		if result.InvoiceNumber != "INV-2024-0001" {
			t.Fatalf("expected INV-2024-0001, got %s", result.InvoiceNumber)
		}
	})
}

func TestGetEnrichedPayments(t *testing.T) {
	svc := newPaymentService()
	payments, err := svc.GetEnrichedPayments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(payments))
	}
	for _, p := range payments {
		if p.InvoiceNumber == "" || p.InvoiceNumber == "Unknown" {
			t.Fatalf("expected every seeded payment to resolve an invoice number, got %q", p.InvoiceNumber)
		}
	}
}
