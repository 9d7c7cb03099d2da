package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

type PostgresTodoRepository struct {
	db *sqlx.DB
}

func NewPostgresTodoRepository(db *sqlx.DB) *PostgresTodoRepository {
	return &PostgresTodoRepository{db: db}
}

func (r *PostgresTodoRepository) RecordCompletion(ctx context.Context, todo *domain.TodoCompletion) error {
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}

	query := `
		INSERT INTO todo_completions (
			id, user_id, title, due_at, location, updated_at
		) VALUES (
			:id, :user_id, :title, :due_at, :location, :updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			title      = EXCLUDED.title,
			due_at     = EXCLUDED.due_at,
			location   = EXCLUDED.location,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, todo)
	return err
}

func (r *PostgresTodoRepository) ListCompletedByUserID(ctx context.Context, userID string, since time.Time) ([]*domain.TodoCompletion, error) {
	todos := []*domain.TodoCompletion{}

	query := `
		SELECT * FROM todo_completions
		WHERE user_id = $1
		  AND updated_at >= $2
		ORDER BY updated_at DESC`

	err := r.db.SelectContext(ctx, &todos, query, userID, since)
	if err != nil {
		return nil, err
	}
	return todos, nil
}
