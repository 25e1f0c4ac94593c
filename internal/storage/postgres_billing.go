package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"revenueBack/internal/models"
)

// Revenue categories

func (s *PostgresStore) GetRevenueCategory(ctx context.Context, id string) (models.RevenueCategory, error) {
	return s.scanCategory(s.DB.QueryRowContext(ctx, `
		SELECT id, name, description, department, amount, is_active
		FROM revenue_categories WHERE id = $1
	`, id))
}

func (s *PostgresStore) scanCategory(row *sql.Row) (models.RevenueCategory, error) {
	var c models.RevenueCategory
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Department, &c.Amount, &c.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RevenueCategory{}, models.ErrCategoryNotFound
		}
		return models.RevenueCategory{}, err
	}
	return c, nil
}

func (s *PostgresStore) GetAllRevenueCategories(ctx context.Context) ([]models.RevenueCategory, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, description, department, amount, is_active
		FROM revenue_categories
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.RevenueCategory, 0)
	for rows.Next() {
		var c models.RevenueCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Department, &c.Amount, &c.IsActive); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresStore) CreateRevenueCategory(ctx context.Context, category models.RevenueCategory) (models.RevenueCategory, error) {
	category.ID = uuid.NewString()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO revenue_categories (id, name, description, department, amount, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, category.ID, category.Name, category.Description, category.Department, category.Amount, category.IsActive)
	if err != nil {
		return models.RevenueCategory{}, err
	}
	return category, nil
}

func (s *PostgresStore) UpdateRevenueCategory(ctx context.Context, id string, updates models.RevenueCategoryUpdate) (models.RevenueCategory, error) {
	var set setClause
	if updates.Name != nil {
		set.add("name", *updates.Name)
	}
	if updates.Description != nil {
		set.add("description", *updates.Description)
	}
	if updates.Department != nil {
		set.add("department", *updates.Department)
	}
	if updates.Amount != nil {
		set.add("amount", *updates.Amount)
	}
	if updates.IsActive != nil {
		set.add("is_active", *updates.IsActive)
	}
	if set.empty() {
		return s.GetRevenueCategory(ctx, id)
	}
	placeholder, args := set.where(id)
	return s.scanCategory(s.DB.QueryRowContext(ctx, `
		UPDATE revenue_categories SET `+set.sql()+` WHERE id = `+placeholder+`
		RETURNING id, name, description, department, amount, is_active
	`, args...))
}

func (s *PostgresStore) DeleteRevenueCategory(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "revenue_categories", id)
}

// Invoices

const invoiceColumns = `id, invoice_number, taxpayer_id, category_id, amount, status,
	due_date, created_at, description`

func (s *PostgresStore) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	return s.scanInvoice(s.DB.QueryRowContext(ctx, `
		SELECT `+invoiceColumns+` FROM invoices WHERE id = $1
	`, id))
}

func (s *PostgresStore) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (models.Invoice, error) {
	return s.scanInvoice(s.DB.QueryRowContext(ctx, `
		SELECT `+invoiceColumns+` FROM invoices WHERE invoice_number = $1
	`, invoiceNumber))
}

func (s *PostgresStore) scanInvoice(row *sql.Row) (models.Invoice, error) {
	var i models.Invoice
	err := row.Scan(&i.ID, &i.InvoiceNumber, &i.TaxpayerID, &i.CategoryID, &i.Amount,
		&i.Status, &i.DueDate, &i.CreatedAt, &i.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Invoice{}, models.ErrInvoiceNotFound
		}
		return models.Invoice{}, err
	}
	return i, nil
}

func (s *PostgresStore) GetAllInvoices(ctx context.Context) ([]models.Invoice, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+invoiceColumns+` FROM invoices`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0)
	for rows.Next() {
		var i models.Invoice
		if err := rows.Scan(&i.ID, &i.InvoiceNumber, &i.TaxpayerID, &i.CategoryID, &i.Amount,
			&i.Status, &i.DueDate, &i.CreatedAt, &i.Description); err != nil {
			return nil, err
		}
		invoices = append(invoices, i)
	}
	return invoices, rows.Err()
}

func (s *PostgresStore) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	invoice.ID = uuid.NewString()
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO invoices (id, invoice_number, taxpayer_id, category_id, amount, status,
			due_date, created_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $8)
		RETURNING created_at
	`, invoice.ID, invoice.InvoiceNumber, invoice.TaxpayerID, invoice.CategoryID,
		invoice.Amount, invoice.Status, invoice.DueDate, invoice.Description).Scan(&invoice.CreatedAt)
	if err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

func (s *PostgresStore) UpdateInvoiceStatus(ctx context.Context, id string, status string) (models.Invoice, error) {
	return s.scanInvoice(s.DB.QueryRowContext(ctx, `
		UPDATE invoices SET status = $1 WHERE id = $2
		RETURNING `+invoiceColumns+`
	`, status, id))
}

func (s *PostgresStore) DeleteInvoice(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "invoices", id)
}
