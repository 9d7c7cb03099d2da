package engine

import (
	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// SumByHabitDay groups raw progress entries into habitID -> dayKey -> summed
// amount. Several entries for one habit and day collapse into a single
// per-day total, which is the shape every other computation consumes.
func SumByHabitDay(entries []*domain.DailyProgress) map[string]map[string]float64 {
	sums := make(map[string]map[string]float64)
	for _, e := range entries {
		days, ok := sums[e.HabitID]
		if !ok {
			days = make(map[string]float64)
			sums[e.HabitID] = days
		}
		days[e.Day()] += e.Progress
	}
	return sums
}

// TodoCountByDay counts todo completions per UTC day key.
func TodoCountByDay(todos []*domain.TodoCompletion) map[string]int {
	counts := make(map[string]int, len(todos))
	for _, t := range todos {
		counts[domain.DayKey(t.UpdatedAt)]++
	}
	return counts
}

func habitIndex(habits []*domain.Habit) map[string]*domain.Habit {
	byID := make(map[string]*domain.Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}
	return byID
}

// AggregateByDay folds every habit's per-day ratio into one completion
// fraction per calendar day, for calendar heatmaps. Each day's ratio sum is
// divided by the number of habits that had started by that day, not the
// full roster, so early days are not understated by habits that did not
// exist yet. If no habit was active on a day (which only happens with
// entries logged before every start date), the divisor falls back to the
// roster size to avoid a division by zero. Values are clamped to [0,1];
// with an empty roster the map is empty. Entries referencing unknown habits
// are skipped.
func AggregateByDay(habits []*domain.Habit, entries []*domain.DailyProgress) map[string]float64 {
	out := make(map[string]float64)
	if len(habits) == 0 {
		return out
	}

	byID := habitIndex(habits)

	ratioSums := make(map[string]float64)
	for habitID, days := range SumByHabitDay(entries) {
		h, ok := byID[habitID]
		if !ok {
			continue
		}
		for key, total := range days {
			ratioSums[key] += CompletionRatio(total, h.GoalAmount)
		}
	}

	for key, sum := range ratioSums {
		day, err := domain.ParseDayKey(key)
		if err != nil {
			continue
		}

		active := 0
		for _, h := range habits {
			if h.ActiveOn(day) {
				active++
			}
		}
		if active == 0 {
			active = len(habits)
		}

		value := sum / float64(active)
		if value > 1 {
			value = 1
		}
		if value < 0 {
			value = 0
		}
		out[key] = value
	}

	return out
}

// WeekdayPerformance averages per-habit day ratios by UTC weekday across
// all habits, Sun..Sat. Each bucket is a plain arithmetic mean of the
// ratios observed on that weekday; weekdays with no entries report zero.
func WeekdayPerformance(habits []*domain.Habit, entries []*domain.DailyProgress) [7]domain.WeekdayBucket {
	byID := habitIndex(habits)

	var sums [7]float64
	var counts [7]int

	for habitID, days := range SumByHabitDay(entries) {
		h, ok := byID[habitID]
		if !ok {
			continue
		}
		for key, total := range days {
			day, err := domain.ParseDayKey(key)
			if err != nil {
				continue
			}
			idx := domain.WeekdayIndex(day)
			sums[idx] += CompletionRatio(total, h.GoalAmount)
			counts[idx]++
		}
	}

	var buckets [7]domain.WeekdayBucket
	for i := range buckets {
		buckets[i].Label = weekdayLabels[i]
		if counts[i] > 0 {
			buckets[i].Value = sums[i] / float64(counts[i])
		}
	}
	return buckets
}
