package services

import (
	"context"
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

type HabitService struct {
	repo      domain.HabitRepository
	refresher Refresher
}

func NewHabitService(repo domain.HabitRepository, refresher Refresher) *HabitService {
	return &HabitService{
		repo:      repo,
		refresher: orNoop(refresher),
	}
}

type CreateHabitInput struct {
	UserID     string
	Name       string
	GoalAmount float64
	GoalUnit   string
	Cadence    string
	StartDate  time.Time
}

type UpdateHabitInput struct {
	ID         string
	UserID     string
	Name       string
	GoalAmount float64
	GoalUnit   string
	Cadence    string
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.UserID, input.Name, input.GoalUnit, input.Cadence, input.GoalAmount, input.StartDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	s.refresher.Enqueue(habit.UserID)

	return habit, nil
}

func (s *HabitService) GetByID(ctx context.Context, id, userID string) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrUnauthorized
	}
	return habit, nil
}

func (s *HabitService) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.GetByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := habit.Rename(input.Name, input.GoalUnit, input.Cadence, input.GoalAmount); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	s.refresher.Enqueue(habit.UserID)

	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id, userID string) error {
	habit, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, habit.ID); err != nil {
		return err
	}

	s.refresher.Enqueue(userID)

	return nil
}
