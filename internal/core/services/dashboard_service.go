package services

import (
	"context"
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
	"github.com/ritmolab/ritmo-engine/internal/core/engine"
)

// SnapshotCache stores computed dashboards keyed by user. Get returns
// (nil, nil) on a miss. Implemented by the Redis adapter.
type SnapshotCache interface {
	Get(ctx context.Context, userID string) (*domain.Dashboard, error)
	Set(ctx context.Context, userID string, d *domain.Dashboard) error
	Invalidate(ctx context.Context, userID string) error
}

// DashboardService assembles the full read model: it loads a user's
// records and runs the progress engine over them. Build is deterministic
// for a given now; Get adds the snapshot-cache fast path.
type DashboardService struct {
	habitRepo    domain.HabitRepository
	progressRepo domain.ProgressRepository
	todoRepo     domain.TodoRepository
	xpRepo       domain.XPRepository
	cache        SnapshotCache
	cfg          engine.Config
}

func NewDashboardService(
	habitRepo domain.HabitRepository,
	progressRepo domain.ProgressRepository,
	todoRepo domain.TodoRepository,
	xpRepo domain.XPRepository,
	cache SnapshotCache,
	cfg engine.Config,
) *DashboardService {
	return &DashboardService{
		habitRepo:    habitRepo,
		progressRepo: progressRepo,
		todoRepo:     todoRepo,
		xpRepo:       xpRepo,
		cache:        cache,
		cfg:          cfg,
	}
}

// Get returns the dashboard for a user, serving a cached snapshot when one
// exists for the same UTC day as now. A snapshot from another day is stale
// by definition (every walk starts at "today") and is rebuilt.
func (s *DashboardService) Get(ctx context.Context, userID string, now time.Time) (*domain.Dashboard, error) {
	if s.cache != nil {
		snapshot, err := s.cache.Get(ctx, userID)
		if err == nil && snapshot != nil && domain.DayKey(snapshot.GeneratedAt) == domain.DayKey(now) {
			return snapshot, nil
		}
	}

	dashboard, err := s.Build(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Best effort; the cache logs its own failures.
		_ = s.cache.Set(ctx, userID, dashboard)
	}

	return dashboard, nil
}

// Build recomputes the dashboard from the repositories, bypassing the
// cache.
func (s *DashboardService) Build(ctx context.Context, userID string, now time.Time) (*domain.Dashboard, error) {
	habits, err := s.habitRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := s.progressRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Todos only feed the activity feed and the bonus streak, both bounded
	// by the lookback window. Habit goal-met events stay unbounded on
	// purpose: the feed limit already trims them, and streaks need the
	// full progress history anyway.
	since := domain.DayStart(now).AddDate(0, 0, -(s.cfg.LookbackWindowDays - 1))
	todos, err := s.todoRepo.ListCompletedByUserID(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	totalXP, err := s.xpRepo.GetTotal(ctx, userID)
	if err != nil {
		return nil, err
	}

	perHabitDay := engine.SumByHabitDay(entries)

	stats := make([]domain.HabitStats, 0, len(habits))
	for _, h := range habits {
		byDay := perHabitDay[h.ID]
		lookback := s.cfg.Lookback(h, byDay, now)
		stats = append(stats, domain.HabitStats{
			HabitID:           h.ID,
			Name:              h.Name,
			Streak:            s.cfg.HabitStreak(h, byDay, now),
			AverageCompletion: lookback.AverageCompletion,
			SuccessRate:       lookback.SuccessRate,
		})
	}

	heatmap := engine.AggregateByDay(habits, entries)
	dayStreak := s.cfg.DayStreak(engine.TodoCountByDay(todos), heatmap, now)

	return &domain.Dashboard{
		Habits:   stats,
		Heatmap:  heatmap,
		Weekdays: engine.WeekdayPerformance(habits, entries),
		Level:    s.cfg.LevelFromXP(totalXP),
		XP: domain.XPSummary{
			TotalXP:     totalXP,
			TodayXP:     s.cfg.DayXP(todos, habits, entries, now),
			StreakBonus: s.cfg.StreakBonus(dayStreak),
		},
		Feed:        s.cfg.BuildFeed(todos, habits, entries),
		GeneratedAt: now.UTC(),
	}, nil
}

// HabitStats computes the per-habit triple for a single habit.
func (s *DashboardService) HabitStats(ctx context.Context, habitID, userID string, now time.Time) (*domain.HabitStats, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	// The streak can run all the way back to the start date, so the range
	// is not bounded by the lookback window.
	entries, err := s.progressRepo.ListByHabitID(ctx, habitID, domain.DayStart(habit.StartDate), domain.DayStart(now).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	byDay := engine.SumByHabitDay(entries)[habitID]
	lookback := s.cfg.Lookback(habit, byDay, now)

	return &domain.HabitStats{
		HabitID:           habit.ID,
		Name:              habit.Name,
		Streak:            s.cfg.HabitStreak(habit, byDay, now),
		AverageCompletion: lookback.AverageCompletion,
		SuccessRate:       lookback.SuccessRate,
	}, nil
}
