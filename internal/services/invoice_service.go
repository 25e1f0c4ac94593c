package services

import (
	"context"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

type InvoiceService struct {
	Store storage.Storage
}

// GetEnrichedInvoices joins each invoice with its taxpayer and category
// names for the admin list view.
func (s *InvoiceService) GetEnrichedInvoices(ctx context.Context) ([]models.EnrichedInvoice, error) {
	invoices, err := s.Store.GetAllInvoices(ctx)
	if err != nil {
		return nil, err
	}
	taxpayers, err := s.Store.GetAllTaxpayers(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.Store.GetAllRevenueCategories(ctx)
	if err != nil {
		return nil, err
	}

	taxpayerByID := make(map[string]models.Taxpayer, len(taxpayers))
	for _, t := range taxpayers {
		taxpayerByID[t.ID] = t
	}
	categoryByID := make(map[string]models.RevenueCategory, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	enriched := make([]models.EnrichedInvoice, 0, len(invoices))
	for _, invoice := range invoices {
		e := models.EnrichedInvoice{
			Invoice:       invoice,
			TaxpayerName:  "Unknown",
			TaxpayerEmail: "",
			CategoryName:  "Unknown",
		}
		if t, ok := taxpayerByID[invoice.TaxpayerID]; ok {
			e.TaxpayerName = t.FullName
			e.TaxpayerEmail = t.Email
		}
		if c, ok := categoryByID[invoice.CategoryID]; ok {
			e.CategoryName = c.Name
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

func (s *InvoiceService) GetInvoiceByID(ctx context.Context, id string) (models.Invoice, error) {
	return s.Store.GetInvoice(ctx, id)
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	return s.Store.CreateInvoice(ctx, invoice)
}

func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, id, status string) (models.Invoice, error) {
	return s.Store.UpdateInvoiceStatus(ctx, id, status)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	deleted, err := s.Store.DeleteInvoice(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.ErrInvoiceNotFound
	}
	return nil
}
