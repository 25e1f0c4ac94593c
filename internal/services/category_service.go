package services

import (
	"context"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

type CategoryService struct {
	Store storage.Storage
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.RevenueCategory, error) {
	return s.Store.GetAllRevenueCategories(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (models.RevenueCategory, error) {
	return s.Store.GetRevenueCategory(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category models.RevenueCategory) (models.RevenueCategory, error) {
	return s.Store.CreateRevenueCategory(ctx, category)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, updates models.RevenueCategoryUpdate) (models.RevenueCategory, error) {
	return s.Store.UpdateRevenueCategory(ctx, id, updates)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	deleted, err := s.Store.DeleteRevenueCategory(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrCategoryNotFound
	}
	return nil
}
