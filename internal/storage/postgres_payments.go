package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"revenueBack/internal/models"
)

// Payments

const paymentColumns = `id, rrr, invoice_id, taxpayer_id, amount, payment_method, status,
	transaction_date, payer_name, payer_email, payer_phone`

func (s *PostgresStore) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	return s.scanPayment(s.DB.QueryRowContext(ctx, `
		SELECT `+paymentColumns+` FROM payments WHERE id = $1
	`, id))
}

func (s *PostgresStore) GetPaymentByRRR(ctx context.Context, rrr string) (models.Payment, error) {
	return s.scanPayment(s.DB.QueryRowContext(ctx, `
		SELECT `+paymentColumns+` FROM payments WHERE rrr = $1
	`, rrr))
}

func (s *PostgresStore) scanPayment(row *sql.Row) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.RRR, &p.InvoiceID, &p.TaxpayerID, &p.Amount, &p.PaymentMethod,
		&p.Status, &p.TransactionDate, &p.PayerName, &p.PayerEmail, &p.PayerPhone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, models.ErrPaymentNotFound
		}
		return models.Payment{}, err
	}
	return p, nil
}

func (s *PostgresStore) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+paymentColumns+` FROM payments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.RRR, &p.InvoiceID, &p.TaxpayerID, &p.Amount, &p.PaymentMethod,
			&p.Status, &p.TransactionDate, &p.PayerName, &p.PayerEmail, &p.PayerPhone); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (s *PostgresStore) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	payment.ID = uuid.NewString()
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO payments (id, rrr, invoice_id, taxpayer_id, amount, payment_method, status,
			transaction_date, payer_name, payer_email, payer_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $8, $9, $10)
		RETURNING transaction_date
	`, payment.ID, payment.RRR, payment.InvoiceID, payment.TaxpayerID, payment.Amount,
		payment.PaymentMethod, payment.Status, payment.PayerName, payment.PayerEmail,
		payment.PayerPhone).Scan(&payment.TransactionDate)
	if err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (s *PostgresStore) UpdatePayment(ctx context.Context, id string, updates models.PaymentUpdate) (models.Payment, error) {
	var set setClause
	if updates.RRR != nil {
		set.add("rrr", *updates.RRR)
	}
	if updates.InvoiceID != nil {
		set.add("invoice_id", *updates.InvoiceID)
	}
	if updates.TaxpayerID != nil {
		set.add("taxpayer_id", *updates.TaxpayerID)
	}
	if updates.Amount != nil {
		set.add("amount", *updates.Amount)
	}
	if updates.PaymentMethod != nil {
		set.add("payment_method", *updates.PaymentMethod)
	}
	if updates.Status != nil {
		set.add("status", *updates.Status)
	}
	if updates.PayerName != nil {
		set.add("payer_name", *updates.PayerName)
	}
	if updates.PayerEmail != nil {
		set.add("payer_email", *updates.PayerEmail)
	}
	if updates.PayerPhone != nil {
		set.add("payer_phone", *updates.PayerPhone)
	}
	if set.empty() {
		return s.GetPayment(ctx, id)
	}
	placeholder, args := set.where(id)
	return s.scanPayment(s.DB.QueryRowContext(ctx, `
		UPDATE payments SET `+set.sql()+` WHERE id = `+placeholder+`
		RETURNING `+paymentColumns+`
	`, args...))
}

func (s *PostgresStore) DeletePayment(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "payments", id)
}

// Payment configurations

const configColumns = `id, category_id, payment_method, is_enabled, updated_at, updated_by`

func (s *PostgresStore) GetPaymentConfiguration(ctx context.Context, id string) (models.PaymentConfiguration, error) {
	return s.scanConfiguration(s.DB.QueryRowContext(ctx, `
		SELECT `+configColumns+` FROM payment_configurations WHERE id = $1
	`, id))
}

func (s *PostgresStore) scanConfiguration(row *sql.Row) (models.PaymentConfiguration, error) {
	var c models.PaymentConfiguration
	err := row.Scan(&c.ID, &c.CategoryID, &c.PaymentMethod, &c.IsEnabled, &c.UpdatedAt, &c.UpdatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PaymentConfiguration{}, models.ErrConfigurationNotFound
		}
		return models.PaymentConfiguration{}, err
	}
	return c, nil
}

func (s *PostgresStore) GetAllPaymentConfigurations(ctx context.Context) ([]models.PaymentConfiguration, error) {
	return s.queryConfigurations(ctx, `SELECT `+configColumns+` FROM payment_configurations`)
}

func (s *PostgresStore) GetPaymentConfigurationsByCategory(ctx context.Context, categoryID string) ([]models.PaymentConfiguration, error) {
	if categoryID == "" {
		return s.queryConfigurations(ctx, `
			SELECT `+configColumns+` FROM payment_configurations WHERE category_id IS NULL
		`)
	}
	return s.queryConfigurations(ctx, `
		SELECT `+configColumns+` FROM payment_configurations WHERE category_id = $1
	`, categoryID)
}

func (s *PostgresStore) queryConfigurations(ctx context.Context, query string, args ...interface{}) ([]models.PaymentConfiguration, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := make([]models.PaymentConfiguration, 0)
	for rows.Next() {
		var c models.PaymentConfiguration
		if err := rows.Scan(&c.ID, &c.CategoryID, &c.PaymentMethod, &c.IsEnabled, &c.UpdatedAt, &c.UpdatedBy); err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

func (s *PostgresStore) CreatePaymentConfiguration(ctx context.Context, config models.PaymentConfiguration) (models.PaymentConfiguration, error) {
	config.ID = uuid.NewString()
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO payment_configurations (id, category_id, payment_method, is_enabled, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, now(), $5)
		RETURNING updated_at
	`, config.ID, config.CategoryID, config.PaymentMethod, config.IsEnabled, config.UpdatedBy).Scan(&config.UpdatedAt)
	if err != nil {
		return models.PaymentConfiguration{}, err
	}
	return config, nil
}

func (s *PostgresStore) UpdatePaymentConfiguration(ctx context.Context, id string, updates models.PaymentConfigurationUpdate) (models.PaymentConfiguration, error) {
	var set setClause
	if updates.CategoryID != nil {
		set.add("category_id", *updates.CategoryID)
	}
	if updates.PaymentMethod != nil {
		set.add("payment_method", *updates.PaymentMethod)
	}
	if updates.IsEnabled != nil {
		set.add("is_enabled", *updates.IsEnabled)
	}
	if updates.UpdatedBy != nil {
		set.add("updated_by", *updates.UpdatedBy)
	}
	if set.empty() {
		return s.GetPaymentConfiguration(ctx, id)
	}
	placeholder, args := set.where(id)
	return s.scanConfiguration(s.DB.QueryRowContext(ctx, `
		UPDATE payment_configurations SET `+set.sql()+`, updated_at = now()
		WHERE id = `+placeholder+`
		RETURNING `+configColumns+`
	`, args...))
}

func (s *PostgresStore) DeletePaymentConfiguration(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "payment_configurations", id)
}
