package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

func TestDayKey(t *testing.T) {
	t.Run("Success: collapses to the UTC calendar day", func(t *testing.T) {
		ts := time.Date(2024, 3, 20, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, "2024-03-20", domain.DayKey(ts))
		assert.Equal(t, "2024-03-20", domain.DayKey(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("Success: timezone independent near midnight", func(t *testing.T) {
		// The same instant expressed in offsets that straddle the UTC day
		// boundary must map to the same key.
		instant := time.Date(2024, 3, 20, 1, 30, 0, 0, time.UTC)

		west := instant.In(time.FixedZone("UTC-11", -11*60*60)) // local date 2024-03-19
		east := instant.In(time.FixedZone("UTC+11", 11*60*60))

		assert.Equal(t, "2024-03-20", domain.DayKey(west))
		assert.Equal(t, "2024-03-20", domain.DayKey(east))
		assert.Equal(t, domain.DayKey(west), domain.DayKey(east))
	})

	t.Run("Success: round-trips through ParseDayKey", func(t *testing.T) {
		ts := time.Date(2021, 12, 31, 18, 5, 0, 0, time.UTC)
		day, err := domain.ParseDayKey(domain.DayKey(ts))
		require.NoError(t, err)
		assert.Equal(t, domain.DayStart(ts), day)
	})

	t.Run("Fail: malformed keys are rejected", func(t *testing.T) {
		_, err := domain.ParseDayKey("20-03-2024")
		assert.Error(t, err)
	})
}

func TestDayStart(t *testing.T) {
	local := time.Date(2024, 3, 20, 2, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60))
	start := domain.DayStart(local)

	// 2024-03-20 02:00 +05:00 is 2024-03-19 21:00 UTC.
	assert.Equal(t, time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.UTC, start.Location())
}

func TestWeekdayIndex(t *testing.T) {
	sunday := time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, domain.WeekdayIndex(sunday.AddDate(0, 0, i)))
	}
}
