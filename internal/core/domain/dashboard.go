package domain

import "time"

// HabitStats is the per-habit triple the dashboard renders.
type HabitStats struct {
	HabitID           string `json:"habit_id"`
	Name              string `json:"name"`
	Streak            int    `json:"streak"`
	AverageCompletion int    `json:"average_completion"`
	SuccessRate       int    `json:"success_rate"`
}

// LookbackStats holds the rolling-window percentages for one habit.
type LookbackStats struct {
	AverageCompletion int `json:"average_completion"`
	SuccessRate       int `json:"success_rate"`
}

// WeekdayBucket is one of the seven Sun..Sat performance buckets.
type WeekdayBucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// LevelState is the decomposition of a lifetime XP total.
// Progress is the floor percentage into the current level, 0..100.
type LevelState struct {
	Level              int `json:"level"`
	XPGainedInLevel    int `json:"xp_gained_in_level"`
	XPNeededForLevelUp int `json:"xp_needed_for_level_up"`
	Progress           int `json:"progress"`
}

// XPDelta is the result of applying an XP change to a previous total.
// CrossedLevel distinguishes a level-up celebration from an ordinary gain.
type XPDelta struct {
	NewTotal     int  `json:"new_total"`
	CrossedLevel bool `json:"crossed_level"`
	NewLevel     int  `json:"new_level"`
}

// XPSummary is the gamification header block. TodayXP counts today's
// qualifying events only; StreakBonus is reported separately.
type XPSummary struct {
	TotalXP     int `json:"total_xp"`
	TodayXP     int `json:"today_xp"`
	StreakBonus int `json:"streak_bonus"`
}

const (
	ActivityTodo  = "todo"
	ActivityHabit = "habit"
)

// ActivityEntry is one row of the activity feed. Kind tags the source
// variant (todo completion or habit goal met); the remaining fields are the
// common projection both variants share, so merging and ranking is a single
// sort over one type.
type ActivityEntry struct {
	Kind      string    `json:"kind"`
	Label     string    `json:"label"`
	Detail    string    `json:"detail,omitempty"`
	XP        int       `json:"xp"`
	Timestamp time.Time `json:"timestamp"`
}

// Dashboard is the full read-model a client renders. It is a pure function
// of the persisted records and GeneratedAt, safe to discard and recompute.
type Dashboard struct {
	Habits      []HabitStats       `json:"habits"`
	Heatmap     map[string]float64 `json:"heatmap"`
	Weekdays    [7]WeekdayBucket   `json:"weekdays"`
	Level       LevelState         `json:"level"`
	XP          XPSummary          `json:"xp"`
	Feed        []ActivityEntry    `json:"feed"`
	GeneratedAt time.Time          `json:"generated_at"`
}
