package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
	"github.com/ritmolab/ritmo-engine/internal/core/engine"
)

func TestBuildFeed(t *testing.T) {
	cfg := engine.DefaultConfig() // limit 8, 10 XP/todo, 20 XP/habit

	t.Run("Success: merges both sources most recent first", func(t *testing.T) {
		h := testHabit("h1", "Run", 5, daysAgo(30))
		todos := []*domain.TodoCompletion{
			testTodo("t1", "Ship report", testNow.Add(-1*time.Hour)),
		}
		entries := []*domain.DailyProgress{
			testEntry("h1", daysAgo(1), 5),
		}

		feed := cfg.BuildFeed(todos, []*domain.Habit{h}, entries)
		require.Len(t, feed, 2)

		assert.Equal(t, domain.ActivityTodo, feed[0].Kind)
		assert.Equal(t, "Ship report", feed[0].Label)
		assert.Equal(t, 10, feed[0].XP)

		assert.Equal(t, domain.ActivityHabit, feed[1].Kind)
		assert.Equal(t, "Run completed", feed[1].Label)
		assert.Equal(t, "5 units", feed[1].Detail)
		assert.Equal(t, 20, feed[1].XP)
		assert.Equal(t, domain.DayStart(daysAgo(1)), feed[1].Timestamp)
	})

	t.Run("Success: caps at the limit in strictly descending order", func(t *testing.T) {
		h := testHabit("h1", "Read", 1, daysAgo(40))
		var todos []*domain.TodoCompletion
		var entries []*domain.DailyProgress
		for i := 0; i < 10; i++ {
			todos = append(todos, testTodo("t", "todo", testNow.Add(-time.Duration(2*i+1)*time.Hour)))
			entries = append(entries, testEntry("h1", daysAgo(i+1), 1))
		}

		feed := cfg.BuildFeed(todos, []*domain.Habit{h}, entries)
		require.Len(t, feed, cfg.FeedLimit)
		for i := 1; i < len(feed); i++ {
			assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp),
				"feed out of order at %d", i)
		}
	})

	t.Run("Success: two same-day entries reaching the goal yield one row", func(t *testing.T) {
		h := testHabit("h1", "Hydrate", 4, daysAgo(30))
		entries := []*domain.DailyProgress{
			testEntry("h1", daysAgo(0), 2),
			{ID: "later", HabitID: "h1", UserID: "user-1", Date: domain.DayStart(daysAgo(0)), Progress: 2},
		}

		feed := cfg.BuildFeed(nil, []*domain.Habit{h}, entries)
		require.Len(t, feed, 1)
		assert.Equal(t, domain.ActivityHabit, feed[0].Kind)
	})

	t.Run("Success: below-goal days contribute nothing", func(t *testing.T) {
		h := testHabit("h1", "Hydrate", 4, daysAgo(30))
		entries := []*domain.DailyProgress{testEntry("h1", daysAgo(0), 3)}

		assert.Empty(t, cfg.BuildFeed(nil, []*domain.Habit{h}, entries))
	})

	t.Run("Success: untitled todos get the fallback label", func(t *testing.T) {
		feed := cfg.BuildFeed([]*domain.TodoCompletion{testTodo("t1", "  ", testNow)}, nil, nil)
		require.Len(t, feed, 1)
		assert.Equal(t, "Todo complete", feed[0].Label)
	})

	t.Run("Success: due date beats location in the detail", func(t *testing.T) {
		due := time.Date(2024, 3, 25, 9, 0, 0, 0, time.UTC)
		todo := testTodo("t1", "Dentist", testNow)
		todo.DueAt = &due
		todo.Location = "Downtown"

		feed := cfg.BuildFeed([]*domain.TodoCompletion{todo}, nil, nil)
		require.Len(t, feed, 1)
		assert.Equal(t, "due Mar 25, 2024", feed[0].Detail)

		todo.DueAt = nil
		feed = cfg.BuildFeed([]*domain.TodoCompletion{todo}, nil, nil)
		assert.Equal(t, "Downtown", feed[0].Detail)
	})

	t.Run("Determinism: identical input yields an identical feed", func(t *testing.T) {
		h1 := testHabit("h1", "Alpha", 1, daysAgo(30))
		h2 := testHabit("h2", "Beta", 1, daysAgo(30))
		entries := []*domain.DailyProgress{
			testEntry("h1", daysAgo(0), 1),
			testEntry("h2", daysAgo(0), 1),
			testEntry("h1", daysAgo(1), 1),
			testEntry("h2", daysAgo(1), 1),
		}
		todos := []*domain.TodoCompletion{testTodo("t1", "Tie", domain.DayStart(daysAgo(0)))}

		first := cfg.BuildFeed(todos, []*domain.Habit{h1, h2}, entries)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, cfg.BuildFeed(todos, []*domain.Habit{h1, h2}, entries))
		}
	})

	t.Run("Edge Case: zero limit leaves the feed uncapped", func(t *testing.T) {
		open := cfg
		open.FeedLimit = 0

		var todos []*domain.TodoCompletion
		for i := 0; i < 12; i++ {
			todos = append(todos, testTodo("t", "todo", testNow.Add(-time.Duration(i)*time.Minute)))
		}
		assert.Len(t, open.BuildFeed(todos, nil, nil), 12)
	})
}

func TestDayXP(t *testing.T) {
	cfg := engine.DefaultConfig()

	t.Run("Success: sums todays todos and completed habits", func(t *testing.T) {
		h1 := testHabit("h1", "Run", 5, daysAgo(30))
		h2 := testHabit("h2", "Read", 10, daysAgo(30))
		todos := []*domain.TodoCompletion{
			testTodo("t1", "A", testNow),
			testTodo("t2", "B", testNow),
			testTodo("t3", "C", daysAgo(1)), // not today
		}
		entries := []*domain.DailyProgress{
			testEntry("h1", daysAgo(0), 5),  // complete today
			testEntry("h2", daysAgo(0), 4),  // incomplete
			testEntry("h1", daysAgo(1), 5),  // yesterday
		}

		got := cfg.DayXP(todos, []*domain.Habit{h1, h2}, entries, testNow)
		assert.Equal(t, 2*cfg.XPPerTodo+cfg.XPPerHabit, got)
	})

	t.Run("Edge Case: quiet day earns nothing", func(t *testing.T) {
		assert.Equal(t, 0, cfg.DayXP(nil, nil, nil, testNow))
	})
}
