package services

import (
	"context"
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

type ProgressService struct {
	repo      domain.ProgressRepository
	habitRepo domain.HabitRepository
	refresher Refresher
}

func NewProgressService(repo domain.ProgressRepository, habitRepo domain.HabitRepository, refresher Refresher) *ProgressService {
	return &ProgressService{
		repo:      repo,
		habitRepo: habitRepo,
		refresher: orNoop(refresher),
	}
}

type LogProgressInput struct {
	HabitID string
	UserID  string
	Date    time.Time
	Amount  float64
}

// Log appends a progress entry for the UTC day of input.Date. Entries for
// the same habit and day accumulate; the read model sums them before
// computing ratios.
func (s *ProgressService) Log(ctx context.Context, input LogProgressInput) (*domain.DailyProgress, error) {
	entry := domain.NewDailyProgress(input.HabitID, input.UserID, input.Date, input.Amount)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	habit, err := s.habitRepo.GetByID(ctx, entry.HabitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != entry.UserID {
		return nil, domain.ErrUnauthorized
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.refresher.Enqueue(entry.UserID)

	return entry, nil
}

type UpdateProgressInput struct {
	ID     string
	UserID string
	Amount float64
}

func (s *ProgressService) Update(ctx context.Context, input UpdateProgressInput) (*domain.DailyProgress, error) {
	existing, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	existing.Progress = input.Amount
	existing.UpdatedAt = time.Now().UTC()
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	s.refresher.Enqueue(existing.UserID)

	return existing, nil
}

func (s *ProgressService) GetByID(ctx context.Context, id, userID string) (*domain.DailyProgress, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return entry, nil
}

func (s *ProgressService) ListByHabitID(ctx context.Context, habitID, userID string, from, to time.Time) ([]*domain.DailyProgress, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	return s.repo.ListByHabitID(ctx, habitID, from, to)
}

func (s *ProgressService) Delete(ctx context.Context, id, userID string) error {
	entry, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, entry.ID, userID); err != nil {
		return err
	}

	s.refresher.Enqueue(userID)

	return nil
}
