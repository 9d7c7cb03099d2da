package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

type PostgresProgressRepository struct {
	db *sqlx.DB
}

func NewPostgresProgressRepository(db *sqlx.DB) *PostgresProgressRepository {
	return &PostgresProgressRepository{db: db}
}

func (r *PostgresProgressRepository) Create(ctx context.Context, entry *domain.DailyProgress) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO daily_progress (
			id, habit_id, user_id,
			date, progress,
			created_at, updated_at
		) VALUES (
			:id, :habit_id, :user_id,
			:date, :progress,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return domain.ErrHabitNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresProgressRepository) Update(ctx context.Context, entry *domain.DailyProgress) error {
	entry.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE daily_progress
		SET date = :date,
		    progress = :progress,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProgressNotFound
	}
	return nil
}

func (r *PostgresProgressRepository) Delete(ctx context.Context, id string, userID string) error {
	query := `
		DELETE FROM daily_progress
		WHERE id = $1
		  AND user_id = $2 -- Security Check`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProgressNotFound
	}
	return nil
}

func (r *PostgresProgressRepository) GetByID(ctx context.Context, id string) (*domain.DailyProgress, error) {
	var entry domain.DailyProgress
	query := `SELECT * FROM daily_progress WHERE id = $1`

	err := r.db.GetContext(ctx, &entry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresProgressRepository) ListByHabitID(ctx context.Context, habitID string, from, to time.Time) ([]*domain.DailyProgress, error) {
	entries := []*domain.DailyProgress{}

	query := `
		SELECT * FROM daily_progress
		WHERE habit_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date DESC`

	err := r.db.SelectContext(ctx, &entries, query, habitID, from, to)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresProgressRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.DailyProgress, error) {
	entries := []*domain.DailyProgress{}

	query := `
		SELECT * FROM daily_progress
		WHERE user_id = $1
		ORDER BY date DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
