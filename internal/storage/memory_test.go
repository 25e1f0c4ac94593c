package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"revenueBack/internal/models"
)

func TestMemoryStoreSeed(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	users, _ := store.GetAllUsers(ctx)
	if len(users) != 4 {
		t.Fatalf("expected 4 users, got %d", len(users))
	}
	taxpayers, _ := store.GetAllTaxpayers(ctx)
	if len(taxpayers) != 5 {
		t.Fatalf("expected 5 taxpayers, got %d", len(taxpayers))
	}
	categories, _ := store.GetAllRevenueCategories(ctx)
	if len(categories) != 8 {
		t.Fatalf("expected 8 categories, got %d", len(categories))
	}
	invoices, _ := store.GetAllInvoices(ctx)
	if len(invoices) != 5 {
		t.Fatalf("expected 5 invoices, got %d", len(invoices))
	}
	payments, _ := store.GetAllPayments(ctx)
	if len(payments) != 3 {
		t.Fatalf("expected 3 payments, got %d", len(payments))
	}
	registrations, _ := store.GetAllBusinessRegistrations(ctx)
	if len(registrations) != 3 {
		t.Fatalf("expected 3 registrations, got %d", len(registrations))
	}
	configs, _ := store.GetAllPaymentConfigurations(ctx)
	if len(configs) != 4 {
		t.Fatalf("expected 4 configurations, got %d", len(configs))
	}
}

func TestMemoryStoreNaturalKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("user by username", func(t *testing.T) {
		user, err := store.GetUserByUsername(ctx, "admin1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != models.RoleAdmin {
			t.Fatalf("expected role %q, got %q", models.RoleAdmin, user.Role)
		}

		_, err = store.GetUserByUsername(ctx, "nobody")
		if err != models.ErrUserNotFound {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("taxpayer by generated id", func(t *testing.T) {
		taxpayer, err := store.GetTaxpayerByTaxpayerID(ctx, "ABU-IND-2024-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if taxpayer.ID != "tp1" {
			t.Fatalf("expected tp1, got %s", taxpayer.ID)
		}
	})

	t.Run("invoice by number", func(t *testing.T) {
		invoice, err := store.GetInvoiceByNumber(ctx, "INV-2024-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if invoice.ID != "inv1" {
			t.Fatalf("expected inv1, got %s", invoice.ID)
		}
	})

	t.Run("payment by rrr", func(t *testing.T) {
		payment, err := store.GetPaymentByRRR(ctx, "240200000001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.InvoiceID != "inv1" {
			t.Fatalf("expected inv1, got %s", payment.InvoiceID)
		}

		_, err = store.GetPaymentByRRR(ctx, "000000000000")
		if err != models.ErrPaymentNotFound {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("registration by number", func(t *testing.T) {
		reg, err := store.GetBusinessRegistrationByNumber(ctx, "BN-2024-1002")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reg.Status != models.RegistrationStatusApproved {
			t.Fatalf("expected approved, got %s", reg.Status)
		}
	})
}

func TestMemoryStoreTaxpayerSequence(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.NextTaxpayerSequence(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 6 {
		t.Fatalf("expected sequence to continue after seeded taxpayers, got %d", first)
	}

	second, _ := store.NextTaxpayerSequence(ctx)
	if second != first+1 {
		t.Fatalf("expected %d, got %d", first+1, second)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	deleted, err := store.DeleteRevenueCategory(ctx, "rc8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report true for an existing row")
	}

	deleted, err = store.DeleteRevenueCategory(ctx, "rc8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Fatal("expected delete to report false for a missing row")
	}
}

func TestMemoryStorePartialUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	newAmount := decimal.RequireFromString("18000.00")
	updated, err := store.UpdateRevenueCategory(ctx, "rc1", models.RevenueCategoryUpdate{Amount: &newAmount})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Amount.Equal(newAmount) {
		t.Fatalf("expected amount %s, got %s", newAmount, updated.Amount)
	}
	if updated.Name != "Market Stall Permit" {
		t.Fatalf("expected untouched name, got %q", updated.Name)
	}
	if updated.IsActive != 1 {
		t.Fatalf("expected untouched isActive, got %d", updated.IsActive)
	}
}

func TestMemoryStoreRegistrationStatus(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	reason := "Missing tax clearance"
	reviewer := "2"
	updated, err := store.UpdateBusinessRegistrationStatus(ctx, "br1", models.RegistrationStatusRejected, &reason, &reviewer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.RegistrationStatusRejected {
		t.Fatalf("expected rejected, got %s", updated.Status)
	}
	if updated.RejectionReason == nil || *updated.RejectionReason != reason {
		t.Fatal("expected rejection reason to be stored")
	}
	if updated.ReviewedAt == nil {
		t.Fatal("expected reviewedAt to be set")
	}
}
