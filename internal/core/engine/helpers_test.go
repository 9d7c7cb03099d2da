package engine_test

import (
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

// now is the pinned clock for every engine test: Wed 2024-03-20 15:04 UTC.
var testNow = time.Date(2024, 3, 20, 15, 4, 5, 0, time.UTC)

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func testHabit(id, name string, goal float64, start time.Time) *domain.Habit {
	return &domain.Habit{
		ID:         id,
		UserID:     "user-1",
		Name:       name,
		GoalAmount: goal,
		GoalUnit:   "units",
		Cadence:    domain.CadenceDaily,
		StartDate:  domain.DayStart(start),
	}
}

func testEntry(habitID string, date time.Time, amount float64) *domain.DailyProgress {
	return &domain.DailyProgress{
		ID:       habitID + "-" + domain.DayKey(date),
		HabitID:  habitID,
		UserID:   "user-1",
		Date:     domain.DayStart(date),
		Progress: amount,
	}
}

func testTodo(id, title string, completedAt time.Time) *domain.TodoCompletion {
	return &domain.TodoCompletion{
		ID:        id,
		UserID:    "user-1",
		Title:     title,
		UpdatedAt: completedAt,
	}
}

// progressMap builds the dayKey -> summed amount view a single habit's
// computations consume.
func progressMap(entries ...*domain.DailyProgress) map[string]float64 {
	m := make(map[string]float64, len(entries))
	for _, e := range entries {
		m[e.Day()] += e.Progress
	}
	return m
}
