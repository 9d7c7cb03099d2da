package engine

import (
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

// HabitStreak counts consecutive qualifying days for one habit, walking
// backward from the UTC day of now. progressByDay maps day keys to the
// habit's summed raw progress; a missing day reads as zero progress. The
// walk stops at the first day whose ratio falls below the threshold, or
// once the cursor moves before the habit's start date (the start day itself
// still counts).
func (c Config) HabitStreak(h *domain.Habit, progressByDay map[string]float64, now time.Time) int {
	day := domain.DayStart(now)
	start := domain.DayStart(h.StartDate)

	streak := 0
	for !day.Before(start) {
		ratio := CompletionRatio(progressByDay[domain.DayKey(day)], h.GoalAmount)
		if ratio < c.StreakThreshold {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// DayStreak counts the cross-habit completion streak that feeds the bonus.
// A day qualifies when at least one todo was completed on it, or when the
// aggregated cross-habit ratio for it meets the streak threshold. The walk
// runs backward from now and is bounded to the lookback window.
func (c Config) DayStreak(todosByDay map[string]int, dayRatios map[string]float64, now time.Time) int {
	day := domain.DayStart(now)

	streak := 0
	for i := 0; i < c.LookbackWindowDays; i++ {
		key := domain.DayKey(day)
		if todosByDay[key] <= 0 && dayRatios[key] < c.StreakThreshold {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// StreakBonus converts a day streak into bonus XP, capped.
func (c Config) StreakBonus(streakDays int) int {
	if streakDays <= 0 {
		return 0
	}

	bonus := streakDays * c.StreakBonusPerDay
	if bonus > c.StreakBonusCap {
		bonus = c.StreakBonusCap
	}
	if bonus < 0 {
		bonus = 0
	}
	return bonus
}
