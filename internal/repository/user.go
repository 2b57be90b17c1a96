package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-tracker/backend/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates the user repository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, name, phone, occupation, monthly_income,
	 date_of_birth, profile_image, address_street, address_city, address_state, address_postal_code,
	 created_at, updated_at`

// ProfileUpdate carries the editable profile fields; nil leaves a text
// field empty, monthly income is always written.
type ProfileUpdate struct {
	Name          *string
	Phone         *string
	Occupation    *string
	MonthlyIncome float64
	DateOfBirth   *time.Time
	ProfileImage  *string
	Address       models.Address
}

// Create inserts a user.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, name *string) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1, $2, $3)
		 RETURNING `+userColumns,
		email, passwordHash, name,
	).Scan(scanUserFields(&user)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user, ErrConflict
		}
		return user, err
	}

	return user, nil
}

// GetByEmail returns the user with the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Scan(scanUserFields(&user)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// GetByID returns the user with the given identifier.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	).Scan(scanUserFields(&user)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

// UpdateProfile replaces the editable profile fields of a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (models.User, error) {
	var user models.User

	err := r.db.QueryRow(ctx,
		`UPDATE users
		 SET name = $2, phone = $3, occupation = $4, monthly_income = $5,
		     date_of_birth = $6, profile_image = $7,
		     address_street = $8, address_city = $9, address_state = $10, address_postal_code = $11,
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, update.Name, update.Phone, update.Occupation, update.MonthlyIncome,
		update.DateOfBirth, update.ProfileImage,
		update.Address.Street, update.Address.City, update.Address.State, update.Address.PostalCode,
	).Scan(scanUserFields(&user)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrNotFound
		}
		return user, err
	}

	return user, nil
}

func scanUserFields(user *models.User) []any {
	return []any{
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.Phone, &user.Occupation,
		&user.MonthlyIncome, &user.DateOfBirth, &user.ProfileImage,
		&user.Address.Street, &user.Address.City, &user.Address.State, &user.Address.PostalCode,
		&user.CreatedAt, &user.UpdatedAt,
	}
}
