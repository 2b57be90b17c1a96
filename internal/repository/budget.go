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

type BudgetRepository struct {
	db *pgxpool.Pool
}

// NewBudgetRepository creates the budget repository.
func NewBudgetRepository(db *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{db: db}
}

const budgetColumns = `id, user_id, name, category, amount, spent, start_date, end_date,
	 is_recurring, rollover_enabled, rollover_amount,
	 alert_50, alert_75, alert_100, alert_exceeded, priority,
	 created_at, updated_at`

// Create inserts a budget.
func (r *BudgetRepository) Create(ctx context.Context, budget models.Budget) (models.Budget, error) {
	var created models.Budget

	err := r.db.QueryRow(ctx,
		`INSERT INTO budgets (user_id, name, category, amount, spent, start_date, end_date,
		     is_recurring, rollover_enabled, rollover_amount,
		     alert_50, alert_75, alert_100, alert_exceeded, priority)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING `+budgetColumns,
		budget.UserID, budget.Name, budget.Category, budget.Amount, budget.Spent,
		budget.StartDate, budget.EndDate, budget.IsRecurring,
		budget.RolloverEnabled, budget.RolloverAmount,
		budget.Alert50, budget.Alert75, budget.Alert100, budget.AlertExceeded, budget.Priority,
	).Scan(scanBudgetFields(&created)...)
	if err != nil {
		return created, err
	}

	return created, nil
}

// Update replaces the editable fields of a budget owned by the user.
func (r *BudgetRepository) Update(ctx context.Context, userID uuid.UUID, budget models.Budget) (models.Budget, error) {
	var updated models.Budget

	err := r.db.QueryRow(ctx,
		`UPDATE budgets
		 SET name = $3, category = $4, amount = $5, start_date = $6, end_date = $7,
		     is_recurring = $8, rollover_enabled = $9,
		     alert_50 = $10, alert_75 = $11, alert_100 = $12, alert_exceeded = $13,
		     priority = $14, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+budgetColumns,
		budget.ID, userID, budget.Name, budget.Category, budget.Amount,
		budget.StartDate, budget.EndDate, budget.IsRecurring, budget.RolloverEnabled,
		budget.Alert50, budget.Alert75, budget.Alert100, budget.AlertExceeded,
		budget.Priority,
	).Scan(scanBudgetFields(&updated)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return updated, ErrNotFound
		}
		return updated, err
	}

	return updated, nil
}

// UpdateSpent sets the spent amount of a budget owned by the user.
func (r *BudgetRepository) UpdateSpent(ctx context.Context, userID, id uuid.UUID, spent float64) (models.Budget, error) {
	var updated models.Budget

	err := r.db.QueryRow(ctx,
		`UPDATE budgets
		 SET spent = $3, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+budgetColumns,
		id, userID, spent,
	).Scan(scanBudgetFields(&updated)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return updated, ErrNotFound
		}
		return updated, err
	}

	return updated, nil
}

// Delete removes a budget owned by the user.
func (r *BudgetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM budgets WHERE id = $1 AND user_id = $2`,
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

// GetByID returns a budget owned by the user.
func (r *BudgetRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (models.Budget, error) {
	var budget models.Budget

	err := r.db.QueryRow(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(scanBudgetFields(&budget)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return budget, ErrNotFound
		}
		return budget, err
	}

	return budget, nil
}

// ListByUser returns the user's budgets, most recent period first.
func (r *BudgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	return r.list(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 ORDER BY start_date DESC, created_at DESC`,
		userID,
	)
}

// ListRecurringExpired returns the user's recurring budgets whose period
// ended before the given instant.
func (r *BudgetRepository) ListRecurringExpired(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.Budget, error) {
	return r.list(ctx,
		`SELECT `+budgetColumns+`
		 FROM budgets
		 WHERE user_id = $1 AND is_recurring = TRUE AND end_date < $2
		 ORDER BY end_date ASC`,
		userID, now,
	)
}

// HasForPeriod reports whether the user already has a budget for the
// category starting on the given day. Guards renewal idempotency.
func (r *BudgetRepository) HasForPeriod(ctx context.Context, userID uuid.UUID, category string, start time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM budgets
		     WHERE user_id = $1 AND category = $2 AND start_date::date = $3::date
		 )`,
		userID, category, start,
	).Scan(&exists)
	return exists, err
}

func (r *BudgetRepository) list(ctx context.Context, query string, args ...any) ([]models.Budget, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0)
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(scanBudgetFields(&budget)...); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return budgets, nil
}

func scanBudgetFields(budget *models.Budget) []any {
	return []any{
		&budget.ID, &budget.UserID, &budget.Name, &budget.Category, &budget.Amount, &budget.Spent,
		&budget.StartDate, &budget.EndDate, &budget.IsRecurring,
		&budget.RolloverEnabled, &budget.RolloverAmount,
		&budget.Alert50, &budget.Alert75, &budget.Alert100, &budget.AlertExceeded,
		&budget.Priority, &budget.CreatedAt, &budget.UpdatedAt,
	}
}
