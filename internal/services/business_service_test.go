package services

import (
	"context"
	"testing"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

func registrationFixture(number string) models.BusinessRegistration {
	return models.BusinessRegistration{
		BusinessName:       "Test Ventures",
		BusinessType:       "sole_proprietorship",
		RegistrationNumber: number,
		Address:            "1 Test Street",
		City:               "Abua",
		State:              "Rivers",
		ContactPerson:      "Test Person",
		ContactEmail:       "test@business.com",
		ContactPhone:       "+234 800 000 0000",
	}
}

func TestRegisterBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("new registration starts pending", func(t *testing.T) {
		svc := &BusinessService{Store: storage.NewMemoryStore()}
		created, err := svc.RegisterBusiness(ctx, registrationFixture("BN-2024-2001"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != models.RegistrationStatusPending {
			t.Fatalf("expected pending, got %s", created.Status)
		}
		if created.ID == "" {
			t.Fatal("expected an assigned id")
		}
	})

	t.Run("duplicate registration number is rejected", func(t *testing.T) {
		svc := &BusinessService{Store: storage.NewMemoryStore()}
		_, err := svc.RegisterBusiness(ctx, registrationFixture("BN-2024-1001"))
		if err != models.ErrDuplicateRegistration {
			t.Fatalf("expected ErrDuplicateRegistration, got %v", err)
		}
	})
}

func TestUpdateRegistrationStatus(t *testing.T) {
	svc := &BusinessService{Store: storage.NewMemoryStore()}
	reviewer := "2"

	updated, err := svc.UpdateRegistrationStatus(context.Background(), "br1", models.UpdateRegistrationStatusRequest{
		Status:     models.RegistrationStatusApproved,
		ReviewedBy: &reviewer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.RegistrationStatusApproved {
		t.Fatalf("expected approved, got %s", updated.Status)
	}
	if updated.ReviewedAt == nil {
		t.Fatal("expected reviewedAt to be set")
	}
	if updated.ReviewedBy == nil || *updated.ReviewedBy != reviewer {
		t.Fatal("expected reviewedBy to be stored")
	}
}
