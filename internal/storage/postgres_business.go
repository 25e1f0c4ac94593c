package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"revenueBack/internal/models"
)

const registrationColumns = `id, business_name, business_type, registration_number, tax_id,
	address, city, state, contact_person, contact_email, contact_phone, status,
	rejection_reason, submitted_at, reviewed_at, reviewed_by`

func (s *PostgresStore) GetBusinessRegistration(ctx context.Context, id string) (models.BusinessRegistration, error) {
	return s.scanRegistration(s.DB.QueryRowContext(ctx, `
		SELECT `+registrationColumns+` FROM business_registrations WHERE id = $1
	`, id))
}

func (s *PostgresStore) GetBusinessRegistrationByNumber(ctx context.Context, registrationNumber string) (models.BusinessRegistration, error) {
	return s.scanRegistration(s.DB.QueryRowContext(ctx, `
		SELECT `+registrationColumns+` FROM business_registrations WHERE registration_number = $1
	`, registrationNumber))
}

func (s *PostgresStore) scanRegistration(row *sql.Row) (models.BusinessRegistration, error) {
	var r models.BusinessRegistration
	err := row.Scan(&r.ID, &r.BusinessName, &r.BusinessType, &r.RegistrationNumber, &r.TaxID,
		&r.Address, &r.City, &r.State, &r.ContactPerson, &r.ContactEmail, &r.ContactPhone,
		&r.Status, &r.RejectionReason, &r.SubmittedAt, &r.ReviewedAt, &r.ReviewedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BusinessRegistration{}, models.ErrRegistrationNotFound
		}
		return models.BusinessRegistration{}, err
	}
	return r, nil
}

func (s *PostgresStore) GetAllBusinessRegistrations(ctx context.Context) ([]models.BusinessRegistration, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+registrationColumns+` FROM business_registrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]models.BusinessRegistration, 0)
	for rows.Next() {
		var r models.BusinessRegistration
		if err := rows.Scan(&r.ID, &r.BusinessName, &r.BusinessType, &r.RegistrationNumber, &r.TaxID,
			&r.Address, &r.City, &r.State, &r.ContactPerson, &r.ContactEmail, &r.ContactPhone,
			&r.Status, &r.RejectionReason, &r.SubmittedAt, &r.ReviewedAt, &r.ReviewedBy); err != nil {
			return nil, err
		}
		registrations = append(registrations, r)
	}
	return registrations, rows.Err()
}

func (s *PostgresStore) CreateBusinessRegistration(ctx context.Context, registration models.BusinessRegistration) (models.BusinessRegistration, error) {
	registration.ID = uuid.NewString()
	if registration.Status == "" {
		registration.Status = models.RegistrationStatusPending
	}
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO business_registrations (id, business_name, business_type, registration_number,
			tax_id, address, city, state, contact_person, contact_email, contact_phone, status,
			submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		RETURNING submitted_at
	`, registration.ID, registration.BusinessName, registration.BusinessType,
		registration.RegistrationNumber, registration.TaxID, registration.Address,
		registration.City, registration.State, registration.ContactPerson,
		registration.ContactEmail, registration.ContactPhone, registration.Status).Scan(&registration.SubmittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.BusinessRegistration{}, models.ErrDuplicateRegistration
		}
		return models.BusinessRegistration{}, err
	}
	return registration, nil
}

func (s *PostgresStore) UpdateBusinessRegistrationStatus(ctx context.Context, id string, status string, rejectionReason, reviewedBy *string) (models.BusinessRegistration, error) {
	var set setClause
	set.add("status", status)
	if rejectionReason != nil {
		set.add("rejection_reason", *rejectionReason)
	}
	if reviewedBy != nil {
		set.add("reviewed_by", *reviewedBy)
	}
	placeholder, args := set.where(id)
	return s.scanRegistration(s.DB.QueryRowContext(ctx, `
		UPDATE business_registrations SET `+set.sql()+`, reviewed_at = now()
		WHERE id = `+placeholder+`
		RETURNING `+registrationColumns+`
	`, args...))
}

func (s *PostgresStore) DeleteBusinessRegistration(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "business_registrations", id)
}
