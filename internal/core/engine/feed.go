package engine

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

// BuildFeed merges todo completions and habit goal completions into one
// time-ranked activity log, most recent first, capped at FeedLimit.
//
// Every todo completion is one entry. A habit contributes at most one entry
// per calendar day, and only when the day's summed progress reaches the
// goal; logging the goal across several entries on one day still yields a
// single feed row. The feed is presentation data only and never feeds back
// into the persisted XP total.
func (c Config) BuildFeed(todos []*domain.TodoCompletion, habits []*domain.Habit, entries []*domain.DailyProgress) []domain.ActivityEntry {
	feed := make([]domain.ActivityEntry, 0, len(todos))

	for _, t := range todos {
		feed = append(feed, domain.ActivityEntry{
			Kind:      domain.ActivityTodo,
			Label:     t.Label(),
			Detail:    todoDetail(t),
			XP:        c.XPPerTodo,
			Timestamp: t.UpdatedAt,
		})
	}

	byID := habitIndex(habits)
	for habitID, days := range SumByHabitDay(entries) {
		h, ok := byID[habitID]
		if !ok {
			continue
		}
		for key, total := range days {
			if CompletionRatio(total, h.GoalAmount) < 1 {
				continue
			}
			day, err := domain.ParseDayKey(key)
			if err != nil {
				continue
			}
			feed = append(feed, domain.ActivityEntry{
				Kind:      domain.ActivityHabit,
				Label:     h.Name + " completed",
				Detail:    goalDetail(h),
				XP:        c.XPPerHabit,
				Timestamp: day,
			})
		}
	}

	// Full ordering, not just timestamps: map iteration above is random,
	// and identical inputs must produce identical feeds.
	sort.Slice(feed, func(i, j int) bool {
		if !feed[i].Timestamp.Equal(feed[j].Timestamp) {
			return feed[i].Timestamp.After(feed[j].Timestamp)
		}
		if feed[i].Kind != feed[j].Kind {
			return feed[i].Kind < feed[j].Kind
		}
		return feed[i].Label < feed[j].Label
	})

	if c.FeedLimit > 0 && len(feed) > c.FeedLimit {
		feed = feed[:c.FeedLimit]
	}
	return feed
}

// DayXP totals the XP of the qualifying events on the UTC day of now,
// independent of the capped feed, so a busy day is never undercounted.
func (c Config) DayXP(todos []*domain.TodoCompletion, habits []*domain.Habit, entries []*domain.DailyProgress, now time.Time) int {
	today := domain.DayKey(now)

	xp := TodoCountByDay(todos)[today] * c.XPPerTodo

	byID := habitIndex(habits)
	for habitID, days := range SumByHabitDay(entries) {
		h, ok := byID[habitID]
		if !ok {
			continue
		}
		if CompletionRatio(days[today], h.GoalAmount) >= 1 {
			xp += c.XPPerHabit
		}
	}
	return xp
}

func todoDetail(t *domain.TodoCompletion) string {
	if t.DueAt != nil {
		return "due " + t.DueAt.UTC().Format("Jan 2, 2006")
	}
	return t.Location
}

func goalDetail(h *domain.Habit) string {
	amount := strconv.FormatFloat(h.GoalAmount, 'f', -1, 64)
	return strings.TrimSpace(amount + " " + h.GoalUnit)
}
