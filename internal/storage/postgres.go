package storage

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"revenueBack/internal/models"
)

// PostgresStore is the durable backend. Monetary columns are
// numeric(10,2); identifiers are generated here rather than by the
// database so both backends behave the same.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// isUniqueViolation reports whether the error is a Postgres unique
// constraint failure so duplicates surface as client errors instead of
// generic 500s.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// setClause builds "col1 = $1, col2 = $2" for partial updates along
// with the matching argument slice. Columns arrive in a fixed order so
// the generated SQL is deterministic.
type setClause struct {
	cols []string
	args []interface{}
}

func (c *setClause) add(col string, value interface{}) {
	c.cols = append(c.cols, col+" = $"+strconv.Itoa(len(c.cols)+1))
	c.args = append(c.args, value)
}

func (c *setClause) empty() bool { return len(c.cols) == 0 }

func (c *setClause) sql() string { return strings.Join(c.cols, ", ") }

func (c *setClause) where(value interface{}) (string, []interface{}) {
	placeholder := "$" + strconv.Itoa(len(c.cols)+1)
	return placeholder, append(c.args, value)
}

// Users

func (s *PostgresStore) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.scanUser(s.DB.QueryRowContext(ctx, `
		SELECT id, username, password, full_name, email, phone, role
		FROM users WHERE id = $1
	`, id))
}

func (s *PostgresStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.scanUser(s.DB.QueryRowContext(ctx, `
		SELECT id, username, password, full_name, email, phone, role
		FROM users WHERE username = $1
	`, username))
}

func (s *PostgresStore) scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email, &u.Phone, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *PostgresStore) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, username, password, full_name, email, phone, role
		FROM users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.FullName, &u.Email, &u.Phone, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.ID = uuid.NewString()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO users (id, username, password, full_name, email, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.Username, user.Password, user.FullName, user.Email, user.Phone, user.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *PostgresStore) UpdateUser(ctx context.Context, id string, updates models.UserUpdate) (models.User, error) {
	var set setClause
	if updates.Username != nil {
		set.add("username", *updates.Username)
	}
	if updates.Password != nil {
		set.add("password", *updates.Password)
	}
	if updates.FullName != nil {
		set.add("full_name", *updates.FullName)
	}
	if updates.Email != nil {
		set.add("email", *updates.Email)
	}
	if updates.Phone != nil {
		set.add("phone", *updates.Phone)
	}
	if updates.Role != nil {
		set.add("role", *updates.Role)
	}
	if set.empty() {
		return s.GetUser(ctx, id)
	}
	placeholder, args := set.where(id)
	return s.scanUser(s.DB.QueryRowContext(ctx, `
		UPDATE users SET `+set.sql()+` WHERE id = `+placeholder+`
		RETURNING id, username, password, full_name, email, phone, role
	`, args...))
}

func (s *PostgresStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "users", id)
}

func (s *PostgresStore) deleteByID(ctx context.Context, table, id string) (bool, error) {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Taxpayers

const taxpayerColumns = `id, taxpayer_id, type, full_name, email, phone, address,
	business_name, business_type, registration_number, created_at`

func (s *PostgresStore) GetTaxpayer(ctx context.Context, id string) (models.Taxpayer, error) {
	return s.scanTaxpayer(s.DB.QueryRowContext(ctx, `
		SELECT `+taxpayerColumns+` FROM taxpayers WHERE id = $1
	`, id))
}

func (s *PostgresStore) GetTaxpayerByTaxpayerID(ctx context.Context, taxpayerID string) (models.Taxpayer, error) {
	return s.scanTaxpayer(s.DB.QueryRowContext(ctx, `
		SELECT `+taxpayerColumns+` FROM taxpayers WHERE taxpayer_id = $1
	`, taxpayerID))
}

func (s *PostgresStore) scanTaxpayer(row *sql.Row) (models.Taxpayer, error) {
	var t models.Taxpayer
	err := row.Scan(&t.ID, &t.TaxpayerID, &t.Type, &t.FullName, &t.Email, &t.Phone, &t.Address,
		&t.BusinessName, &t.BusinessType, &t.RegistrationNumber, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Taxpayer{}, models.ErrTaxpayerNotFound
		}
		return models.Taxpayer{}, err
	}
	return t, nil
}

func (s *PostgresStore) GetAllTaxpayers(ctx context.Context) ([]models.Taxpayer, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+taxpayerColumns+` FROM taxpayers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taxpayers := make([]models.Taxpayer, 0)
	for rows.Next() {
		var t models.Taxpayer
		if err := rows.Scan(&t.ID, &t.TaxpayerID, &t.Type, &t.FullName, &t.Email, &t.Phone, &t.Address,
			&t.BusinessName, &t.BusinessType, &t.RegistrationNumber, &t.CreatedAt); err != nil {
			return nil, err
		}
		taxpayers = append(taxpayers, t)
	}
	return taxpayers, rows.Err()
}

func (s *PostgresStore) CreateTaxpayer(ctx context.Context, taxpayer models.Taxpayer) (models.Taxpayer, error) {
	taxpayer.ID = uuid.NewString()
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO taxpayers (id, taxpayer_id, type, full_name, email, phone, address,
			business_name, business_type, registration_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		RETURNING created_at
	`, taxpayer.ID, taxpayer.TaxpayerID, taxpayer.Type, taxpayer.FullName, taxpayer.Email,
		taxpayer.Phone, taxpayer.Address, taxpayer.BusinessName, taxpayer.BusinessType,
		taxpayer.RegistrationNumber).Scan(&taxpayer.CreatedAt)
	if err != nil {
		return models.Taxpayer{}, err
	}
	return taxpayer, nil
}

func (s *PostgresStore) UpdateTaxpayer(ctx context.Context, id string, updates models.TaxpayerUpdate) (models.Taxpayer, error) {
	var set setClause
	if updates.TaxpayerID != nil {
		set.add("taxpayer_id", *updates.TaxpayerID)
	}
	if updates.Type != nil {
		set.add("type", *updates.Type)
	}
	if updates.FullName != nil {
		set.add("full_name", *updates.FullName)
	}
	if updates.Email != nil {
		set.add("email", *updates.Email)
	}
	if updates.Phone != nil {
		set.add("phone", *updates.Phone)
	}
	if updates.Address != nil {
		set.add("address", *updates.Address)
	}
	if updates.BusinessName != nil {
		set.add("business_name", *updates.BusinessName)
	}
	if updates.BusinessType != nil {
		set.add("business_type", *updates.BusinessType)
	}
	if updates.RegistrationNumber != nil {
		set.add("registration_number", *updates.RegistrationNumber)
	}
	if set.empty() {
		return s.GetTaxpayer(ctx, id)
	}
	placeholder, args := set.where(id)
	return s.scanTaxpayer(s.DB.QueryRowContext(ctx, `
		UPDATE taxpayers SET `+set.sql()+` WHERE id = `+placeholder+`
		RETURNING `+taxpayerColumns+`
	`, args...))
}

func (s *PostgresStore) DeleteTaxpayer(ctx context.Context, id string) (bool, error) {
	return s.deleteByID(ctx, "taxpayers", id)
}

func (s *PostgresStore) NextTaxpayerSequence(ctx context.Context) (int64, error) {
	var seq int64
	err := s.DB.QueryRowContext(ctx, `SELECT nextval('taxpayer_seq')`).Scan(&seq)
	if err != nil {
		return 0, err
	}
	return seq, nil
}
