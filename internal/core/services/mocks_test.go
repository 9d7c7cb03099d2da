package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

type MockHabitRepo struct {
	mock.Mock
}

func (m *MockHabitRepo) Create(ctx context.Context, habit *domain.Habit) error {
	args := m.Called(ctx, habit)
	return args.Error(0)
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	args := m.Called(ctx, id)
	var habit *domain.Habit
	if args.Get(0) != nil {
		habit = args.Get(0).(*domain.Habit)
	}
	return habit, args.Error(1)
}

func (m *MockHabitRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	args := m.Called(ctx, userID)
	var habits []*domain.Habit
	if args.Get(0) != nil {
		habits = args.Get(0).([]*domain.Habit)
	}
	return habits, args.Error(1)
}

func (m *MockHabitRepo) Update(ctx context.Context, habit *domain.Habit) error {
	args := m.Called(ctx, habit)
	return args.Error(0)
}

func (m *MockHabitRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProgressRepo struct {
	mock.Mock
}

func (m *MockProgressRepo) Create(ctx context.Context, entry *domain.DailyProgress) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockProgressRepo) Update(ctx context.Context, entry *domain.DailyProgress) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockProgressRepo) Delete(ctx context.Context, id string, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockProgressRepo) GetByID(ctx context.Context, id string) (*domain.DailyProgress, error) {
	args := m.Called(ctx, id)
	var entry *domain.DailyProgress
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.DailyProgress)
	}
	return entry, args.Error(1)
}

func (m *MockProgressRepo) ListByHabitID(ctx context.Context, habitID string, from, to time.Time) ([]*domain.DailyProgress, error) {
	args := m.Called(ctx, habitID, from, to)
	var entries []*domain.DailyProgress
	if args.Get(0) != nil {
		entries = args.Get(0).([]*domain.DailyProgress)
	}
	return entries, args.Error(1)
}

func (m *MockProgressRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.DailyProgress, error) {
	args := m.Called(ctx, userID)
	var entries []*domain.DailyProgress
	if args.Get(0) != nil {
		entries = args.Get(0).([]*domain.DailyProgress)
	}
	return entries, args.Error(1)
}

type MockTodoRepo struct {
	mock.Mock
}

func (m *MockTodoRepo) RecordCompletion(ctx context.Context, todo *domain.TodoCompletion) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockTodoRepo) ListCompletedByUserID(ctx context.Context, userID string, since time.Time) ([]*domain.TodoCompletion, error) {
	args := m.Called(ctx, userID, since)
	var todos []*domain.TodoCompletion
	if args.Get(0) != nil {
		todos = args.Get(0).([]*domain.TodoCompletion)
	}
	return todos, args.Error(1)
}

type MockXPRepo struct {
	mock.Mock
}

func (m *MockXPRepo) GetTotal(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockXPRepo) SetTotal(ctx context.Context, userID string, total int) error {
	args := m.Called(ctx, userID, total)
	return args.Error(0)
}

func (m *MockXPRepo) AddDelta(ctx context.Context, userID string, delta int) (int, error) {
	args := m.Called(ctx, userID, delta)
	return args.Int(0), args.Error(1)
}

// fakeRefresher records enqueued user IDs.
type fakeRefresher struct {
	mu    sync.Mutex
	users []string
}

func (f *fakeRefresher) Enqueue(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID)
}

func (f *fakeRefresher) enqueued() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.users...)
}

// fakeCache is an in-memory SnapshotCache.
type fakeCache struct {
	mu    sync.Mutex
	store map[string]*domain.Dashboard
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]*domain.Dashboard)}
}

func (f *fakeCache) Get(ctx context.Context, userID string) (*domain.Dashboard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store[userID], nil
}

func (f *fakeCache) Set(ctx context.Context, userID string, d *domain.Dashboard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[userID] = d
	f.sets++
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, userID)
	return nil
}
