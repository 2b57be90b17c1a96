package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-tracker/backend/internal/models"
)

type DebtRepository struct {
	db *pgxpool.Pool
}

// NewDebtRepository creates the debt repository.
func NewDebtRepository(db *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{db: db}
}

const debtColumns = `id, user_id, name, original_amount, current_balance, interest_rate,
	 minimum_payment, due_date, created_at, updated_at`

// DebtTotals aggregates outstanding balances and the monthly minimum
// payment load of a user.
type DebtTotals struct {
	TotalBalance        float64
	TotalMinimumPayment float64
}

// Create inserts a debt.
func (r *DebtRepository) Create(ctx context.Context, debt models.Debt) (models.Debt, error) {
	var created models.Debt

	err := r.db.QueryRow(ctx,
		`INSERT INTO debts (user_id, name, original_amount, current_balance, interest_rate, minimum_payment, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+debtColumns,
		debt.UserID, debt.Name, debt.OriginalAmount, debt.CurrentBalance,
		debt.InterestRate, debt.MinimumPayment, debt.DueDate,
	).Scan(scanDebtFields(&created)...)
	if err != nil {
		return created, err
	}

	return created, nil
}

// Update replaces the editable fields of a debt owned by the user.
func (r *DebtRepository) Update(ctx context.Context, userID uuid.UUID, debt models.Debt) (models.Debt, error) {
	var updated models.Debt

	err := r.db.QueryRow(ctx,
		`UPDATE debts
		 SET name = $3, original_amount = $4, current_balance = $5, interest_rate = $6,
		     minimum_payment = $7, due_date = $8, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+debtColumns,
		debt.ID, userID, debt.Name, debt.OriginalAmount, debt.CurrentBalance,
		debt.InterestRate, debt.MinimumPayment, debt.DueDate,
	).Scan(scanDebtFields(&updated)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return updated, ErrNotFound
		}
		return updated, err
	}

	return updated, nil
}

// Delete removes a debt owned by the user.
func (r *DebtRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM debts WHERE id = $1 AND user_id = $2`,
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

// ListByUser returns the user's debts, largest balance first.
func (r *DebtRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Debt, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+debtColumns+` FROM debts WHERE user_id = $1 ORDER BY current_balance DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := make([]models.Debt, 0)
	for rows.Next() {
		var debt models.Debt
		if err := rows.Scan(scanDebtFields(&debt)...); err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return debts, nil
}

// Totals returns the outstanding balance and minimum payment sums of a user.
func (r *DebtRepository) Totals(ctx context.Context, userID uuid.UUID) (DebtTotals, error) {
	var totals DebtTotals
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(current_balance), 0), COALESCE(SUM(minimum_payment), 0)
		 FROM debts
		 WHERE user_id = $1`,
		userID,
	).Scan(&totals.TotalBalance, &totals.TotalMinimumPayment)
	return totals, err
}

func scanDebtFields(debt *models.Debt) []any {
	return []any{
		&debt.ID, &debt.UserID, &debt.Name, &debt.OriginalAmount, &debt.CurrentBalance,
		&debt.InterestRate, &debt.MinimumPayment, &debt.DueDate, &debt.CreatedAt, &debt.UpdatedAt,
	}
}
