package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type PostgresXPRepository struct {
	db *sqlx.DB
}

func NewPostgresXPRepository(db *sqlx.DB) *PostgresXPRepository {
	return &PostgresXPRepository{db: db}
}

func (r *PostgresXPRepository) GetTotal(ctx context.Context, userID string) (int, error) {
	var total int
	query := `SELECT total_xp FROM user_xp WHERE user_id = $1`

	err := r.db.GetContext(ctx, &total, query, userID)
	if err != nil {
		// No row means the user has never earned XP.
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return total, nil
}

func (r *PostgresXPRepository) SetTotal(ctx context.Context, userID string, total int) error {
	if total < 0 {
		total = 0
	}

	query := `
		INSERT INTO user_xp (user_id, total_xp, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			total_xp   = EXCLUDED.total_xp,
			updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, userID, total)
	return err
}

// AddDelta applies the adjustment in a single statement so concurrent
// awards never lose updates. The total floors at zero.
func (r *PostgresXPRepository) AddDelta(ctx context.Context, userID string, delta int) (int, error) {
	var total int

	query := `
		INSERT INTO user_xp (user_id, total_xp, updated_at)
		VALUES ($1, GREATEST(0, $2), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			total_xp   = GREATEST(0, user_xp.total_xp + $2),
			updated_at = NOW()
		RETURNING total_xp`

	err := r.db.QueryRowContext(ctx, query, userID, delta).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
