package engine

import "math"

// CompletionRatio converts a raw logged amount and a goal amount into a
// completion ratio clamped to [0,1]. A goal that is non-finite or not
// strictly positive is treated as 1, so a malformed habit still yields a
// usable ratio instead of NaN or a division blow-up.
func CompletionRatio(progress, goalAmount float64) float64 {
	goal := goalAmount
	if math.IsNaN(goal) || math.IsInf(goal, 0) || goal <= 0 {
		goal = 1
	}

	return math.Min(1, math.Max(0, progress/goal))
}
