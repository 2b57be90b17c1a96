package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/finance-tracker/backend/internal/models"
)

type InvestmentRepository struct {
	db *pgxpool.Pool
}

// NewInvestmentRepository creates the investment repository.
func NewInvestmentRepository(db *pgxpool.Pool) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

const investmentColumns = `id, user_id, name, type, ticker_symbol, sector, category, risk_level,
	 invested_amount, current_value, purchase_date, is_sip, sip_amount, sip_start_date, sip_frequency,
	 created_at, updated_at`

const sipTransactionColumns = `id, investment_id, amount, units, nav, date, created_at`

// Create inserts an investment.
func (r *InvestmentRepository) Create(ctx context.Context, investment models.Investment) (models.Investment, error) {
	var created models.Investment

	err := r.db.QueryRow(ctx,
		`INSERT INTO investments (user_id, name, type, ticker_symbol, sector, category, risk_level,
		     invested_amount, current_value, purchase_date, is_sip, sip_amount, sip_start_date, sip_frequency)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING `+investmentColumns,
		investment.UserID, investment.Name, investment.Type, investment.TickerSymbol,
		investment.Sector, investment.Category, investment.RiskLevel,
		investment.InvestedAmount, investment.CurrentValue, investment.PurchaseDate,
		investment.IsSIP, investment.SIPAmount, investment.SIPStartDate, investment.SIPFrequency,
	).Scan(scanInvestmentFields(&created)...)
	if err != nil {
		return created, err
	}

	return created, nil
}

// Update replaces the editable fields of an investment owned by the user.
func (r *InvestmentRepository) Update(ctx context.Context, userID uuid.UUID, investment models.Investment) (models.Investment, error) {
	var updated models.Investment

	err := r.db.QueryRow(ctx,
		`UPDATE investments
		 SET name = $3, type = $4, ticker_symbol = $5, sector = $6, category = $7, risk_level = $8,
		     invested_amount = $9, current_value = $10, purchase_date = $11,
		     is_sip = $12, sip_amount = $13, sip_start_date = $14, sip_frequency = $15,
		     updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+investmentColumns,
		investment.ID, userID, investment.Name, investment.Type, investment.TickerSymbol,
		investment.Sector, investment.Category, investment.RiskLevel,
		investment.InvestedAmount, investment.CurrentValue, investment.PurchaseDate,
		investment.IsSIP, investment.SIPAmount, investment.SIPStartDate, investment.SIPFrequency,
	).Scan(scanInvestmentFields(&updated)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return updated, ErrNotFound
		}
		return updated, err
	}

	return updated, nil
}

// Delete removes an investment owned by the user together with its SIP
// transactions.
func (r *InvestmentRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM investments WHERE id = $1 AND user_id = $2`,
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

// GetByID returns an investment owned by the user.
func (r *InvestmentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (models.Investment, error) {
	var investment models.Investment

	err := r.db.QueryRow(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(scanInvestmentFields(&investment)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return investment, ErrNotFound
		}
		return investment, err
	}

	return investment, nil
}

// ListByUser returns the user's investments, newest purchase first.
func (r *InvestmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Investment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+investmentColumns+` FROM investments WHERE user_id = $1 ORDER BY purchase_date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := make([]models.Investment, 0)
	for rows.Next() {
		var investment models.Investment
		if err := rows.Scan(scanInvestmentFields(&investment)...); err != nil {
			return nil, err
		}
		investments = append(investments, investment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return investments, nil
}

// CreateSIPTransaction records a SIP installment against an investment
// owned by the user.
func (r *InvestmentRepository) CreateSIPTransaction(ctx context.Context, userID uuid.UUID, tx models.SIPTransaction) (models.SIPTransaction, error) {
	var created models.SIPTransaction

	err := r.db.QueryRow(ctx,
		`INSERT INTO sip_transactions (investment_id, amount, units, nav, date)
		 SELECT $1, $3, $4, $5, $6
		 WHERE EXISTS (SELECT 1 FROM investments WHERE id = $1 AND user_id = $2)
		 RETURNING `+sipTransactionColumns,
		tx.InvestmentID, userID, tx.Amount, tx.Units, tx.NAV, tx.Date,
	).Scan(scanSIPTransactionFields(&created)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return created, ErrNotFound
		}
		return created, err
	}

	return created, nil
}

// ListSIPTransactions returns the SIP installments of an investment owned
// by the user, oldest first.
func (r *InvestmentRepository) ListSIPTransactions(ctx context.Context, userID, investmentID uuid.UUID) ([]models.SIPTransaction, error) {
	if _, err := r.GetByID(ctx, userID, investmentID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+sipTransactionColumns+`
		 FROM sip_transactions
		 WHERE investment_id = $1
		 ORDER BY date ASC, created_at ASC`,
		investmentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.SIPTransaction, 0)
	for rows.Next() {
		var tx models.SIPTransaction
		if err := rows.Scan(scanSIPTransactionFields(&tx)...); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}

func scanInvestmentFields(investment *models.Investment) []any {
	return []any{
		&investment.ID, &investment.UserID, &investment.Name, &investment.Type,
		&investment.TickerSymbol, &investment.Sector, &investment.Category, &investment.RiskLevel,
		&investment.InvestedAmount, &investment.CurrentValue, &investment.PurchaseDate,
		&investment.IsSIP, &investment.SIPAmount, &investment.SIPStartDate, &investment.SIPFrequency,
		&investment.CreatedAt, &investment.UpdatedAt,
	}
}

func scanSIPTransactionFields(tx *models.SIPTransaction) []any {
	return []any{
		&tx.ID, &tx.InvestmentID, &tx.Amount, &tx.Units, &tx.NAV, &tx.Date, &tx.CreatedAt,
	}
}
