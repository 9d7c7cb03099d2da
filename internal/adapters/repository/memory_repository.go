package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

type InMemoryHabitRepository struct {
	store map[string]*domain.Habit

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[string]*domain.Habit),
	}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[habit.ID] = habit
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}

func (r *InMemoryHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range r.store {
		if h.UserID == userID {
			habits = append(habits, h)
		}
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}

	r.store[habit.ID] = habit
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.store, id)
	return nil
}

type InMemoryProgressRepository struct {
	store map[string]*domain.DailyProgress

	mu sync.RWMutex
}

func NewInMemoryProgressRepository() *InMemoryProgressRepository {
	return &InMemoryProgressRepository{
		store: make(map[string]*domain.DailyProgress),
	}
}

func (r *InMemoryProgressRepository) Create(ctx context.Context, entry *domain.DailyProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[entry.ID] = entry
	return nil
}

func (r *InMemoryProgressRepository) Update(ctx context.Context, entry *domain.DailyProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[entry.ID]; !ok {
		return domain.ErrProgressNotFound
	}

	r.store[entry.ID] = entry
	return nil
}

func (r *InMemoryProgressRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.store[id]
	if !ok || entry.UserID != userID {
		return domain.ErrProgressNotFound
	}

	delete(r.store, id)
	return nil
}

func (r *InMemoryProgressRepository) GetByID(ctx context.Context, id string) (*domain.DailyProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[id]
	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	return entry, nil
}

func (r *InMemoryProgressRepository) ListByHabitID(ctx context.Context, habitID string, from, to time.Time) ([]*domain.DailyProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.DailyProgress{}
	for _, e := range r.store {
		if e.HabitID != habitID {
			continue
		}
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries, nil
}

func (r *InMemoryProgressRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.DailyProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.DailyProgress{}
	for _, e := range r.store {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries, nil
}

type InMemoryTodoRepository struct {
	store map[string]*domain.TodoCompletion

	mu sync.RWMutex
}

func NewInMemoryTodoRepository() *InMemoryTodoRepository {
	return &InMemoryTodoRepository{
		store: make(map[string]*domain.TodoCompletion),
	}
}

func (r *InMemoryTodoRepository) RecordCompletion(ctx context.Context, todo *domain.TodoCompletion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[todo.ID] = todo
	return nil
}

func (r *InMemoryTodoRepository) ListCompletedByUserID(ctx context.Context, userID string, since time.Time) ([]*domain.TodoCompletion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := []*domain.TodoCompletion{}
	for _, t := range r.store {
		if t.UserID == userID && !t.UpdatedAt.Before(since) {
			todos = append(todos, t)
		}
	}

	sort.Slice(todos, func(i, j int) bool {
		return todos[i].UpdatedAt.After(todos[j].UpdatedAt)
	})

	return todos, nil
}

type InMemoryXPRepository struct {
	totals map[string]int

	mu sync.RWMutex
}

func NewInMemoryXPRepository() *InMemoryXPRepository {
	return &InMemoryXPRepository{
		totals: make(map[string]int),
	}
}

func (r *InMemoryXPRepository) GetTotal(ctx context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.totals[userID], nil
}

func (r *InMemoryXPRepository) SetTotal(ctx context.Context, userID string, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if total < 0 {
		total = 0
	}
	r.totals[userID] = total
	return nil
}

func (r *InMemoryXPRepository) AddDelta(ctx context.Context, userID string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := r.totals[userID] + delta
	if total < 0 {
		total = 0
	}
	r.totals[userID] = total
	return total, nil
}
