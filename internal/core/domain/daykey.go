package domain

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey collapses a timestamp to its UTC calendar day, formatted as
// YYYY-MM-DD. Two instants on the same UTC day always map to the same key,
// regardless of the process-local timezone.
func DayKey(t time.Time) string {
	y, m, d := t.UTC().Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// DayStart returns midnight UTC of the calendar day containing t.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDayKey is the inverse of DayKey.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// WeekdayIndex returns the UTC weekday of t as 0=Sunday..6=Saturday.
func WeekdayIndex(t time.Time) int {
	return int(t.UTC().Weekday())
}
