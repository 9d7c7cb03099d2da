package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrUnauthorized  = errors.New("resource does not belong to user")
)

type HabitRepository interface {
	// Create persists a new habit definition in the storage.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by its unique identifier.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// ListByUserID retrieves all habits associated with a specific user.
	ListByUserID(ctx context.Context, userID string) ([]*Habit, error)

	// Update modifies the state of an existing habit.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit and cascades to its progress.
	Delete(ctx context.Context, id string) error
}

var ErrProgressNotFound = errors.New("daily progress not found")

type ProgressRepository interface {
	// Create persists a new progress entry.
	Create(ctx context.Context, entry *DailyProgress) error

	// Update modifies an existing entry.
	Update(ctx context.Context, entry *DailyProgress) error

	// Delete removes an entry. It requires userID to ensure the user
	// actually owns the entry being deleted.
	Delete(ctx context.Context, id string, userID string) error

	// GetByID retrieves a single entry by its ID.
	GetByID(ctx context.Context, id string) (*DailyProgress, error)

	// ListByHabitID retrieves entries for one habit within a date range.
	ListByHabitID(ctx context.Context, habitID string, from, to time.Time) ([]*DailyProgress, error)

	// ListByUserID retrieves every entry belonging to a user. The progress
	// engine aggregates across all of a user's habits, so the read model
	// always loads the full set.
	ListByUserID(ctx context.Context, userID string) ([]*DailyProgress, error)
}

type TodoRepository interface {
	// RecordCompletion persists a completed-todo record.
	RecordCompletion(ctx context.Context, todo *TodoCompletion) error

	// ListCompletedByUserID retrieves completions since a cutoff, most
	// recent first.
	ListCompletedByUserID(ctx context.Context, userID string, since time.Time) ([]*TodoCompletion, error)
}

type XPRepository interface {
	// GetTotal returns the authoritative lifetime XP total for a user.
	// A user with no row has total 0.
	GetTotal(ctx context.Context, userID string) (int, error)

	// SetTotal overwrites the authoritative total (reconciliation path).
	SetTotal(ctx context.Context, userID string, total int) error

	// AddDelta atomically adjusts the total, flooring at zero, and returns
	// the new value (optimistic-update path).
	AddDelta(ctx context.Context, userID string, delta int) (int, error)
}
