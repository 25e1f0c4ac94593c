package services

import (
	"context"
	"testing"

	"revenueBack/internal/storage"
)

func TestGetEnrichedInvoices(t *testing.T) {
	svc := &InvoiceService{Store: storage.NewMemoryStore()}

	invoices, err := svc.GetEnrichedInvoices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invoices) != 5 {
		t.Fatalf("expected 5 invoices, got %d", len(invoices))
	}

	byNumber := make(map[string]string, len(invoices))
	for _, inv := range invoices {
		if inv.TaxpayerName == "Unknown" || inv.CategoryName == "Unknown" {
			t.Fatalf("expected seeded invoice %s to resolve names, got %q/%q",
				inv.InvoiceNumber, inv.TaxpayerName, inv.CategoryName)
		}
		byNumber[inv.InvoiceNumber] = inv.CategoryName
	}
	if byNumber["INV-2024-0001"] != "Market Stall Permit" {
		t.Fatalf("expected Market Stall Permit, got %q", byNumber["INV-2024-0001"])
	}
}
