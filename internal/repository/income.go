package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-tracker/backend/internal/models"
)

type IncomeRepository struct {
	db *pgxpool.Pool
}

// NewIncomeRepository creates the income repository.
func NewIncomeRepository(db *pgxpool.Pool) *IncomeRepository {
	return &IncomeRepository{db: db}
}

const incomeColumns = `id, user_id, amount, category, source, frequency, date, created_at, updated_at`

// Create inserts an income record.
func (r *IncomeRepository) Create(ctx context.Context, income models.Income) (models.Income, error) {
	var created models.Income

	err := r.db.QueryRow(ctx,
		`INSERT INTO incomes (user_id, amount, category, source, frequency, date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+incomeColumns,
		income.UserID, income.Amount, income.Category, income.Source, income.Frequency, income.Date,
	).Scan(scanIncomeFields(&created)...)
	if err != nil {
		return created, err
	}

	return created, nil
}

// Update replaces the editable fields of an income owned by the user.
func (r *IncomeRepository) Update(ctx context.Context, userID uuid.UUID, income models.Income) (models.Income, error) {
	var updated models.Income

	err := r.db.QueryRow(ctx,
		`UPDATE incomes
		 SET amount = $3, category = $4, source = $5, frequency = $6, date = $7, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+incomeColumns,
		income.ID, userID, income.Amount, income.Category, income.Source, income.Frequency, income.Date,
	).Scan(scanIncomeFields(&updated)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return updated, ErrNotFound
		}
		return updated, err
	}

	return updated, nil
}

// Delete removes an income owned by the user.
func (r *IncomeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM incomes WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ListByUser returns the user's incomes, newest first.
func (r *IncomeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Income, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+incomeColumns+` FROM incomes WHERE user_id = $1 ORDER BY date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	incomes := make([]models.Income, 0)
	for rows.Next() {
		var income models.Income
		if err := rows.Scan(scanIncomeFields(&income)...); err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return incomes, nil
}

// SumBetween returns the total income amount for a date range.
func (r *IncomeRepository) SumBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM incomes
		 WHERE user_id = $1 AND date >= $2 AND date <= $3`,
		userID, start, end,
	).Scan(&total)
	return total, err
}

// Total returns the all-time income amount of a user.
func (r *IncomeRepository) Total(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE user_id = $1`,
		userID,
	).Scan(&total)
	return total, err
}

func scanIncomeFields(income *models.Income) []any {
	return []any{
		&income.ID, &income.UserID, &income.Amount, &income.Category, &income.Source,
		&income.Frequency, &income.Date, &income.CreatedAt, &income.UpdatedAt,
	}
}
