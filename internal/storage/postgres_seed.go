package storage

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData loads the demo dataset into Postgres. Demo account
// passwords are generated fresh on every run, bcrypt-hashed in the
// database and printed once to the log. Existing rows are left alone.
func (s *PostgresStore) SeedDemoData(ctx context.Context, infoLog *log.Logger) error {
	data := DemoData()

	infoLog.Println("Seeding database with demo data")
	for _, u := range data.Users {
		password, err := generatePassword()
		if err != nil {
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = s.DB.ExecContext(ctx, `
			INSERT INTO users (id, username, password, full_name, email, phone, role)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, u.ID, u.Username, string(hashed), u.FullName, u.Email, u.Phone, u.Role)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		infoLog.Printf("demo account %s password: %s", u.Username, password)
	}

	for _, t := range data.Taxpayers {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO taxpayers (id, taxpayer_id, type, full_name, email, phone, address,
				business_name, business_type, registration_number, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING
		`, t.ID, t.TaxpayerID, t.Type, t.FullName, t.Email, t.Phone, t.Address,
			t.BusinessName, t.BusinessType, t.RegistrationNumber, t.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed taxpayers: %w", err)
		}
	}

	for _, c := range data.Categories {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO revenue_categories (id, name, description, department, amount, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.Name, c.Description, c.Department, c.Amount, c.IsActive)
		if err != nil {
			return fmt.Errorf("seed revenue categories: %w", err)
		}
	}

	for _, i := range data.Invoices {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO invoices (id, invoice_number, taxpayer_id, category_id, amount, status,
				due_date, created_at, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING
		`, i.ID, i.InvoiceNumber, i.TaxpayerID, i.CategoryID, i.Amount, i.Status,
			i.DueDate, i.CreatedAt, i.Description)
		if err != nil {
			return fmt.Errorf("seed invoices: %w", err)
		}
	}

	for _, p := range data.Payments {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO payments (id, rrr, invoice_id, taxpayer_id, amount, payment_method, status,
				transaction_date, payer_name, payer_email, payer_phone)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.RRR, p.InvoiceID, p.TaxpayerID, p.Amount, p.PaymentMethod, p.Status,
			p.TransactionDate, p.PayerName, p.PayerEmail, p.PayerPhone)
		if err != nil {
			return fmt.Errorf("seed payments: %w", err)
		}
	}

	for _, r := range data.Registrations {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO business_registrations (id, business_name, business_type, registration_number,
				tax_id, address, city, state, contact_person, contact_email, contact_phone, status,
				rejection_reason, submitted_at, reviewed_at, reviewed_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			ON CONFLICT (id) DO NOTHING
		`, r.ID, r.BusinessName, r.BusinessType, r.RegistrationNumber, r.TaxID, r.Address,
			r.City, r.State, r.ContactPerson, r.ContactEmail, r.ContactPhone, r.Status,
			r.RejectionReason, r.SubmittedAt, r.ReviewedAt, r.ReviewedBy)
		if err != nil {
			return fmt.Errorf("seed business registrations: %w", err)
		}
	}

	for _, c := range data.Configurations {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO payment_configurations (id, category_id, payment_method, is_enabled, updated_at, updated_by)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.CategoryID, c.PaymentMethod, c.IsEnabled, c.UpdatedAt, c.UpdatedBy)
		if err != nil {
			return fmt.Errorf("seed payment configurations: %w", err)
		}
	}

	infoLog.Println("Database seeding completed")
	return nil
}

func generatePassword() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
