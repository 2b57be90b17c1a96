package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates the admin repository.
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// AdminUser is the per-user row of the admin listing.
type AdminUser struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        *string   `json:"name,omitempty"`
	CreatedAt   string    `json:"created_at"`
	RecordCount int64     `json:"record_count"`
}

// UsageStats aggregates record counts across the whole database.
type UsageStats struct {
	Users          int64 `json:"users"`
	Expenses       int64 `json:"expenses"`
	Incomes        int64 `json:"incomes"`
	Debts          int64 `json:"debts"`
	Investments    int64 `json:"investments"`
	Budgets        int64 `json:"budgets"`
	ActiveSessions int64 `json:"active_sessions"`
}

// ListUsers returns all users with their total record counts, newest first.
func (r *AdminRepository) ListUsers(ctx context.Context) ([]AdminUser, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.email, u.name, to_char(u.created_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"'),
		     (SELECT COUNT(*) FROM expenses e WHERE e.user_id = u.id)
		     + (SELECT COUNT(*) FROM incomes i WHERE i.user_id = u.id)
		     + (SELECT COUNT(*) FROM debts d WHERE d.user_id = u.id)
		     + (SELECT COUNT(*) FROM investments v WHERE v.user_id = u.id)
		     + (SELECT COUNT(*) FROM budgets b WHERE b.user_id = u.id) AS record_count
		 FROM users u
		 ORDER BY u.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]AdminUser, 0)
	for rows.Next() {
		var user AdminUser
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.RecordCount); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Usage returns the global record counts.
func (r *AdminRepository) Usage(ctx context.Context) (UsageStats, error) {
	var stats UsageStats
	err := r.db.QueryRow(ctx,
		`SELECT
		     (SELECT COUNT(*) FROM users),
		     (SELECT COUNT(*) FROM expenses),
		     (SELECT COUNT(*) FROM incomes),
		     (SELECT COUNT(*) FROM debts),
		     (SELECT COUNT(*) FROM investments),
		     (SELECT COUNT(*) FROM budgets),
		     (SELECT COUNT(*) FROM refresh_tokens WHERE revoked_at IS NULL AND expires_at > NOW())`,
	).Scan(&stats.Users, &stats.Expenses, &stats.Incomes, &stats.Debts,
		&stats.Investments, &stats.Budgets, &stats.ActiveSessions)
	return stats, err
}
