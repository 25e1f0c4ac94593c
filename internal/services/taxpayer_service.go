package services

import (
	"context"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

type TaxpayerService struct {
	Store storage.Storage
}

func (s *TaxpayerService) GetAllTaxpayers(ctx context.Context) ([]models.Taxpayer, error) {
	return s.Store.GetAllTaxpayers(ctx)
}

func (s *TaxpayerService) GetTaxpayerByID(ctx context.Context, id string) (models.Taxpayer, error) {
	return s.Store.GetTaxpayer(ctx, id)
}

func (s *TaxpayerService) CreateTaxpayer(ctx context.Context, taxpayer models.Taxpayer) (models.Taxpayer, error) {
	return s.Store.CreateTaxpayer(ctx, taxpayer)
}

func (s *TaxpayerService) UpdateTaxpayer(ctx context.Context, id string, updates models.TaxpayerUpdate) (models.Taxpayer, error) {
	return s.Store.UpdateTaxpayer(ctx, id, updates)
}

func (s *TaxpayerService) DeleteTaxpayer(ctx context.Context, id string) error {
	deleted, err := s.Store.DeleteTaxpayer(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrTaxpayerNotFound
	}
	return nil
}
