// Package engine is the habit progress and gamification kernel: pure,
// deterministic functions over persisted records and an explicit "now".
// Nothing here reads a clock, performs I/O, or keeps state between calls,
// so every result can be discarded and recomputed at any time.
package engine

// Config carries every tunable constant the engine depends on. Values are
// injected by the caller (see internal/config); the engine never reads the
// environment itself.
type Config struct {
	// StreakThreshold is the minimum day ratio (0 < t <= 1) that keeps a
	// streak alive. The cross-habit bonus streak uses the same threshold.
	StreakThreshold float64

	// LookbackWindowDays bounds the rolling analytics window and the
	// bonus-streak walk.
	LookbackWindowDays int

	// LevelBaseCost and LevelCostIncrement define the linearly escalating
	// per-level XP cost: cost(n) = base + (n-1)*increment.
	LevelBaseCost      int
	LevelCostIncrement int

	// XPPerTodo and XPPerHabit are the fixed awards for a completed todo
	// and a habit that met its daily goal.
	XPPerTodo  int
	XPPerHabit int

	// StreakBonusPerDay and StreakBonusCap shape the capped bonus for the
	// cross-habit day streak.
	StreakBonusPerDay int
	StreakBonusCap    int

	// FeedLimit caps the activity feed length.
	FeedLimit int
}

// DefaultConfig returns the stock constants.
func DefaultConfig() Config {
	return Config{
		StreakThreshold:    0.8,
		LookbackWindowDays: 21,
		LevelBaseCost:      100,
		LevelCostIncrement: 25,
		XPPerTodo:          10,
		XPPerHabit:         20,
		StreakBonusPerDay:  10,
		StreakBonusCap:     200,
		FeedLimit:          8,
	}
}
