package services

import (
	"context"
	"errors"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

type BusinessService struct {
	Store storage.Storage
}

// RegisterBusiness files a new registration in pending status. The
// registration number is the natural key; a duplicate is rejected
// before the insert so the caller gets a clean conflict error.
func (s *BusinessService) RegisterBusiness(ctx context.Context, reg models.BusinessRegistration) (models.BusinessRegistration, error) {
	_, err := s.Store.GetBusinessRegistrationByNumber(ctx, reg.RegistrationNumber)
	if err == nil {
		return models.BusinessRegistration{}, models.ErrDuplicateRegistration
	}
	if !errors.Is(err, models.ErrRegistrationNotFound) {
		return models.BusinessRegistration{}, err
	}

	reg.Status = models.RegistrationStatusPending
	return s.Store.CreateBusinessRegistration(ctx, reg)
}

func (s *BusinessService) GetAllRegistrations(ctx context.Context) ([]models.BusinessRegistration, error) {
	return s.Store.GetAllBusinessRegistrations(ctx)
}

func (s *BusinessService) GetRegistrationByID(ctx context.Context, id string) (models.BusinessRegistration, error) {
	return s.Store.GetBusinessRegistration(ctx, id)
}

func (s *BusinessService) UpdateRegistrationStatus(ctx context.Context, id string, req models.UpdateRegistrationStatusRequest) (models.BusinessRegistration, error) {
	return s.Store.UpdateBusinessRegistrationStatus(ctx, id, req.Status, req.RejectionReason, req.ReviewedBy)
}

func (s *BusinessService) DeleteRegistration(ctx context.Context, id string) error {
	deleted, err := s.Store.DeleteBusinessRegistration(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrRegistrationNotFound
	}
	return nil
}
