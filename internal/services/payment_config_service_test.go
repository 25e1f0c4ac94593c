package services

import (
	"context"
	"sort"
	"testing"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

func TestEnabledPaymentMethods(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to global defaults", func(t *testing.T) {
		svc := &PaymentConfigService{Store: storage.NewMemoryStore()}
		methods, err := svc.EnabledPaymentMethods(ctx, "rc1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sort.Strings(methods)
		want := []string{models.MethodBankTransfer, models.MethodCard, models.MethodUSSD}
		if len(methods) != len(want) {
			t.Fatalf("expected %v, got %v", want, methods)
		}
		for i := range want {
			if methods[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, methods)
			}
		}
	})

	t.Run("disabled methods are filtered out", func(t *testing.T) {
		svc := &PaymentConfigService{Store: storage.NewMemoryStore()}
		methods, _ := svc.EnabledPaymentMethods(ctx, "")
		for _, m := range methods {
			if m == models.MethodMobileMoney {
				t.Fatal("expected mobile_money to be filtered out")
			}
		}
	})

	t.Run("category rows replace globals without merging", func(t *testing.T) {
		store := storage.NewMemoryStore()
		svc := &PaymentConfigService{Store: store}

		categoryID := "rc1"
		_, err := store.CreatePaymentConfiguration(ctx, models.PaymentConfiguration{
			CategoryID:    &categoryID,
			PaymentMethod: models.MethodCard,
			IsEnabled:     0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		methods, err := svc.EnabledPaymentMethods(ctx, categoryID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(methods) != 0 {
			t.Fatalf("expected the single disabled category row to hide the globals, got %v", methods)
		}
	})

	t.Run("category enable only exposes that method", func(t *testing.T) {
		store := storage.NewMemoryStore()
		svc := &PaymentConfigService{Store: store}

		categoryID := "rc2"
		store.CreatePaymentConfiguration(ctx, models.PaymentConfiguration{
			CategoryID:    &categoryID,
			PaymentMethod: models.MethodBankTransfer,
			IsEnabled:     1,
		})

		methods, _ := svc.EnabledPaymentMethods(ctx, categoryID)
		if len(methods) != 1 || methods[0] != models.MethodBankTransfer {
			t.Fatalf("expected [bank_transfer], got %v", methods)
		}
	})

	t.Run("duplicate rows are deduplicated", func(t *testing.T) {
		store := storage.NewMemoryStore()
		svc := &PaymentConfigService{Store: store}

		store.CreatePaymentConfiguration(ctx, models.PaymentConfiguration{
			PaymentMethod: models.MethodCard,
			IsEnabled:     1,
		})

		methods, _ := svc.EnabledPaymentMethods(ctx, "")
		count := 0
		for _, m := range methods {
			if m == models.MethodCard {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("expected card to appear once, got %d", count)
		}
	})

	t.Run("empty result is a slice, not nil", func(t *testing.T) {
		store := storage.NewMemoryStore()
		svc := &PaymentConfigService{Store: store}

		for _, id := range []string{"pc1", "pc2", "pc3", "pc4"} {
			store.DeletePaymentConfiguration(ctx, id)
		}

		methods, err := svc.EnabledPaymentMethods(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if methods == nil {
			t.Fatal("expected an empty slice")
		}
		if len(methods) != 0 {
			t.Fatalf("expected no methods, got %v", methods)
		}
	})
}
