package engine

import (
	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

// XPForLevel returns the XP cost of advancing past the given level.
func (c Config) XPForLevel(level int) int {
	return c.LevelBaseCost + (level-1)*c.LevelCostIncrement
}

// LevelFromXP decomposes a lifetime XP total into a level, the XP gained
// inside that level, and the cost of the next level-up. Negative totals
// read as zero. The climb stops as soon as the next level's cost exceeds
// the remaining XP, or when a misconfigured non-positive cost would
// otherwise loop forever.
func (c Config) LevelFromXP(totalXP int) domain.LevelState {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	remaining := totalXP
	for {
		cost := c.XPForLevel(level)
		if cost <= 0 || remaining < cost {
			break
		}
		remaining -= cost
		level++
	}

	needed := c.XPForLevel(level)
	return domain.LevelState{
		Level:              level,
		XPGainedInLevel:    remaining,
		XPNeededForLevelUp: needed,
		Progress:           progressPercent(remaining, needed),
	}
}

// progressPercent is the floor percentage into the current level, clamped
// to [0,100]. A non-positive cost reports zero rather than dividing by it.
func progressPercent(gained, needed int) int {
	if needed <= 0 {
		return 0
	}
	pct := gained * 100 / needed
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ApplyDelta applies an XP gain or loss to a previous total. The new total
// floors at zero, and CrossedLevel reports whether the change pushed the
// user past at least one level boundary, which drives the celebratory
// event distinct from an ordinary gain.
func (c Config) ApplyDelta(previousTotal, delta int) domain.XPDelta {
	if previousTotal < 0 {
		previousTotal = 0
	}

	newTotal := previousTotal + delta
	if newTotal < 0 {
		newTotal = 0
	}

	after := c.LevelFromXP(newTotal)
	return domain.XPDelta{
		NewTotal:     newTotal,
		CrossedLevel: after.Level > c.LevelFromXP(previousTotal).Level,
		NewLevel:     after.Level,
	}
}
