package services

import (
	"context"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

type PaymentConfigService struct {
	Store storage.Storage
}

// EnabledPaymentMethods resolves which methods are available for a
// category. Category-specific rows replace the global defaults
// entirely; the two scopes are never merged. An empty categoryID asks
// for the global set directly. The result is a de-duplicated list and
// may be empty when nothing is configured.
func (s *PaymentConfigService) EnabledPaymentMethods(ctx context.Context, categoryID string) ([]string, error) {
	var configs []models.PaymentConfiguration
	var err error

	if categoryID != "" {
		configs, err = s.Store.GetPaymentConfigurationsByCategory(ctx, categoryID)
		if err != nil {
			return nil, err
		}
		if len(configs) == 0 {
			configs, err = s.Store.GetPaymentConfigurationsByCategory(ctx, "")
			if err != nil {
				return nil, err
			}
		}
	} else {
		configs, err = s.Store.GetPaymentConfigurationsByCategory(ctx, "")
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool, len(configs))
	methods := make([]string, 0, len(configs))
	for _, c := range configs {
		if c.IsEnabled != 1 || seen[c.PaymentMethod] {
			continue
		}
		seen[c.PaymentMethod] = true
		methods = append(methods, c.PaymentMethod)
	}
	return methods, nil
}

func (s *PaymentConfigService) GetAllConfigurations(ctx context.Context) ([]models.PaymentConfiguration, error) {
	return s.Store.GetAllPaymentConfigurations(ctx)
}

func (s *PaymentConfigService) CreateConfiguration(ctx context.Context, config models.PaymentConfiguration) (models.PaymentConfiguration, error) {
	return s.Store.CreatePaymentConfiguration(ctx, config)
}

func (s *PaymentConfigService) UpdateConfiguration(ctx context.Context, id string, updates models.PaymentConfigurationUpdate) (models.PaymentConfiguration, error) {
	return s.Store.UpdatePaymentConfiguration(ctx, id, updates)
}

func (s *PaymentConfigService) DeleteConfiguration(ctx context.Context, id string) error {
	deleted, err := s.Store.DeletePaymentConfiguration(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrConfigurationNotFound
	}
	return nil
}
