package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-tracker/backend/internal/models"
)

type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository creates the expense repository.
func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `id, user_id, amount, category, description, date, need_or_want, created_at, updated_at`

// Create inserts an expense. Blank categories are normalized at this
// boundary so the calculators never see one.
func (r *ExpenseRepository) Create(ctx context.Context, expense models.Expense) (models.Expense, error) {
	var created models.Expense

	err := r.db.QueryRow(ctx,
		`INSERT INTO expenses (user_id, amount, category, description, date, need_or_want)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+expenseColumns,
		expense.UserID, expense.Amount, normalizeExpenseCategory(expense.Category),
		expense.Description, expense.Date, expense.NeedOrWant,
	).Scan(scanExpenseFields(&created)...)
	if err != nil {
		return created, err
	}

	return created, nil
}

// Update replaces the editable fields of an expense owned by the user.
func (r *ExpenseRepository) Update(ctx context.Context, userID uuid.UUID, expense models.Expense) (models.Expense, error) {
	var updated models.Expense

	err := r.db.QueryRow(ctx,
		`UPDATE expenses
		 SET amount = $3, category = $4, description = $5, date = $6, need_or_want = $7, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+expenseColumns,
		expense.ID, userID, expense.Amount, normalizeExpenseCategory(expense.Category),
		expense.Description, expense.Date, expense.NeedOrWant,
	).Scan(scanExpenseFields(&updated)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return updated, ErrNotFound
		}
		return updated, err
	}

	return updated, nil
}

// Delete removes an expense owned by the user.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM expenses WHERE id = $1 AND user_id = $2`,
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

// GetByID returns an expense owned by the user.
func (r *ExpenseRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (models.Expense, error) {
	var expense models.Expense

	err := r.db.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(scanExpenseFields(&expense)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense, ErrNotFound
		}
		return expense, err
	}

	return expense, nil
}

// ListByUser returns the user's expenses, newest first.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	return r.list(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE user_id = $1 ORDER BY date DESC, created_at DESC`,
		userID,
	)
}

// ListByUserBetween returns the user's expenses with a date inside
// [start, end], newest first.
func (r *ExpenseRepository) ListByUserBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]models.Expense, error) {
	return r.list(ctx,
		`SELECT `+expenseColumns+`
		 FROM expenses
		 WHERE user_id = $1 AND date >= $2 AND date <= $3
		 ORDER BY date DESC, created_at DESC`,
		userID, start, end,
	)
}

// SumBetween returns the total expense amount for a date range.
func (r *ExpenseRepository) SumBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM expenses
		 WHERE user_id = $1 AND date >= $2 AND date <= $3`,
		userID, start, end,
	).Scan(&total)
	return total, err
}

// Total returns the all-time expense amount of a user.
func (r *ExpenseRepository) Total(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1`,
		userID,
	).Scan(&total)
	return total, err
}

func (r *ExpenseRepository) list(ctx context.Context, query string, args ...any) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(scanExpenseFields(&expense)...); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}

func scanExpenseFields(expense *models.Expense) []any {
	return []any{
		&expense.ID, &expense.UserID, &expense.Amount, &expense.Category, &expense.Description,
		&expense.Date, &expense.NeedOrWant, &expense.CreatedAt, &expense.UpdatedAt,
	}
}

func normalizeExpenseCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return models.DefaultCategory
	}
	return category
}
