package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

var ErrInvalidTodoUser = errors.New("todo completion requires a user id")

type TodoService struct {
	repo      domain.TodoRepository
	refresher Refresher
}

func NewTodoService(repo domain.TodoRepository, refresher Refresher) *TodoService {
	return &TodoService{
		repo:      repo,
		refresher: orNoop(refresher),
	}
}

type RecordCompletionInput struct {
	UserID      string
	Title       string
	DueAt       *time.Time
	Location    string
	CompletedAt time.Time
}

// RecordCompletion stores a completed-todo event for the activity feed.
// A zero CompletedAt defaults to now.
func (s *TodoService) RecordCompletion(ctx context.Context, input RecordCompletionInput) (*domain.TodoCompletion, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, ErrInvalidTodoUser
	}

	completedAt := input.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	todo := &domain.TodoCompletion{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Title:     strings.TrimSpace(input.Title),
		DueAt:     input.DueAt,
		Location:  strings.TrimSpace(input.Location),
		UpdatedAt: completedAt.UTC(),
	}

	if err := s.repo.RecordCompletion(ctx, todo); err != nil {
		return nil, err
	}

	s.refresher.Enqueue(todo.UserID)

	return todo, nil
}

func (s *TodoService) ListRecent(ctx context.Context, userID string, since time.Time) ([]*domain.TodoCompletion, error) {
	return s.repo.ListCompletedByUserID(ctx, userID, since)
}
