package engine

import (
	"math"
	"time"

	"github.com/ritmolab/ritmo-engine/internal/core/domain"
)

// Lookback computes the rolling-window analytics for one habit: the average
// completion percentage and the fraction of fully completed days, both
// rounded to whole percent. The walk runs backward from the UTC day of now
// for up to LookbackWindowDays, shrinking the effective window as soon as
// the cursor would precede the habit's start date. A habit that starts
// after now counts zero days and reports zeros.
func (c Config) Lookback(h *domain.Habit, progressByDay map[string]float64, now time.Time) domain.LookbackStats {
	day := domain.DayStart(now)
	start := domain.DayStart(h.StartDate)

	var ratioSum float64
	counted := 0
	fullDays := 0

	for i := 0; i < c.LookbackWindowDays && !day.Before(start); i++ {
		ratio := CompletionRatio(progressByDay[domain.DayKey(day)], h.GoalAmount)
		ratioSum += ratio
		if ratio >= 1 {
			fullDays++
		}
		counted++
		day = day.AddDate(0, 0, -1)
	}

	if counted == 0 {
		return domain.LookbackStats{}
	}

	return domain.LookbackStats{
		AverageCompletion: int(math.Round(100 * ratioSum / float64(counted))),
		SuccessRate:       int(math.Round(100 * float64(fullDays) / float64(counted))),
	}
}
