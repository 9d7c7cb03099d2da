package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ritmolab/ritmo-engine/internal/core/engine"
)

func TestLevelFromXP(t *testing.T) {
	cfg := engine.DefaultConfig() // base 100, increment 25

	t.Run("Success: fresh account is level 1", func(t *testing.T) {
		state := cfg.LevelFromXP(0)
		assert.Equal(t, 1, state.Level)
		assert.Equal(t, 0, state.XPGainedInLevel)
		assert.Equal(t, 100, state.XPNeededForLevelUp)
		assert.Equal(t, 0, state.Progress)
	})

	t.Run("Success: 250 XP climbs past levels 1 and 2", func(t *testing.T) {
		// 250 - cost(1)=100 -> 150, - cost(2)=125 -> 25, cost(3)=150 > 25.
		state := cfg.LevelFromXP(250)
		assert.Equal(t, 3, state.Level)
		assert.Equal(t, 25, state.XPGainedInLevel)
		assert.Equal(t, 150, state.XPNeededForLevelUp)
		assert.Equal(t, 16, state.Progress) // floor(100*25/150)
	})

	t.Run("Success: exact boundary lands at the start of the next level", func(t *testing.T) {
		state := cfg.LevelFromXP(100)
		assert.Equal(t, 2, state.Level)
		assert.Equal(t, 0, state.XPGainedInLevel)
		assert.Equal(t, 125, state.XPNeededForLevelUp)
	})

	t.Run("Property: level is non-decreasing and gained stays below needed", func(t *testing.T) {
		prevLevel := 0
		for xp := 0; xp <= 5000; xp += 7 {
			state := cfg.LevelFromXP(xp)
			assert.GreaterOrEqual(t, state.Level, prevLevel, "xp=%d", xp)
			assert.GreaterOrEqual(t, state.XPGainedInLevel, 0, "xp=%d", xp)
			assert.Less(t, state.XPGainedInLevel, state.XPNeededForLevelUp, "xp=%d", xp)
			assert.GreaterOrEqual(t, state.Progress, 0, "xp=%d", xp)
			assert.LessOrEqual(t, state.Progress, 100, "xp=%d", xp)
			prevLevel = state.Level
		}
	})

	t.Run("Edge Case: negative total reads as zero", func(t *testing.T) {
		assert.Equal(t, cfg.LevelFromXP(0), cfg.LevelFromXP(-500))
	})

	t.Run("Edge Case: non-positive level cost halts the climb", func(t *testing.T) {
		broken := cfg
		broken.LevelBaseCost = 0
		broken.LevelCostIncrement = 0

		state := broken.LevelFromXP(10_000)
		assert.Equal(t, 1, state.Level)
		assert.Equal(t, 10_000, state.XPGainedInLevel)
		assert.Equal(t, 0, state.XPNeededForLevelUp)
		assert.Equal(t, 0, state.Progress)
	})

	t.Run("Edge Case: decreasing costs cannot loop forever", func(t *testing.T) {
		broken := cfg
		broken.LevelBaseCost = 50
		broken.LevelCostIncrement = -25

		state := broken.LevelFromXP(1_000_000)
		assert.GreaterOrEqual(t, state.Level, 1)
	})
}

func TestApplyDelta(t *testing.T) {
	cfg := engine.DefaultConfig()

	t.Run("Success: crossing the first boundary", func(t *testing.T) {
		res := cfg.ApplyDelta(95, 10)
		assert.Equal(t, 105, res.NewTotal)
		assert.True(t, res.CrossedLevel)
		assert.Equal(t, 2, res.NewLevel)
	})

	t.Run("Success: small gain inside a level", func(t *testing.T) {
		res := cfg.ApplyDelta(95, 3)
		assert.Equal(t, 98, res.NewTotal)
		assert.False(t, res.CrossedLevel)
		assert.Equal(t, 1, res.NewLevel)
	})

	t.Run("Success: losing XP never reports a crossing", func(t *testing.T) {
		res := cfg.ApplyDelta(130, -50)
		assert.Equal(t, 80, res.NewTotal)
		assert.False(t, res.CrossedLevel)
		assert.Equal(t, 1, res.NewLevel)
	})

	t.Run("Edge Case: total floors at zero", func(t *testing.T) {
		res := cfg.ApplyDelta(5, -40)
		assert.Equal(t, 0, res.NewTotal)
		assert.False(t, res.CrossedLevel)
		assert.Equal(t, 1, res.NewLevel)
	})

	t.Run("Edge Case: large delta can cross several levels", func(t *testing.T) {
		res := cfg.ApplyDelta(0, 250)
		assert.True(t, res.CrossedLevel)
		assert.Equal(t, 3, res.NewLevel)
	})
}

func TestXPForLevel(t *testing.T) {
	cfg := engine.DefaultConfig()

	assert.Equal(t, 100, cfg.XPForLevel(1))
	assert.Equal(t, 125, cfg.XPForLevel(2))
	assert.Equal(t, 150, cfg.XPForLevel(3))
	assert.Equal(t, 100+9*25, cfg.XPForLevel(10))
}
