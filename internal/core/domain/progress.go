package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidProgress = errors.New("invalid daily progress data")

// DailyProgress is one logged amount against a habit on a UTC calendar day.
// Several rows may exist for the same habit and day; consumers sum them
// before computing the day's completion ratio.
type DailyProgress struct {
	ID      string `json:"id" db:"id"`
	HabitID string `json:"habit_id" db:"habit_id"`
	UserID  string `json:"user_id" db:"user_id"`

	Date     time.Time `json:"date" db:"date"`
	Progress float64   `json:"progress" db:"progress"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewDailyProgress records amount against a habit for the UTC day of date.
func NewDailyProgress(habitID, userID string, date time.Time, amount float64) *DailyProgress {
	now := time.Now().UTC()

	return &DailyProgress{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		UserID:    userID,
		Date:      DayStart(date),
		Progress:  amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *DailyProgress) Validate() error {
	if strings.TrimSpace(p.HabitID) == "" {
		return errors.New("habit_id is required")
	}
	if strings.TrimSpace(p.UserID) == "" {
		return errors.New("user_id is required")
	}
	if p.Progress < 0 {
		return errors.New("progress cannot be negative")
	}
	if p.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

// Day returns the canonical day key of the entry.
func (p *DailyProgress) Day() string {
	return DayKey(p.Date)
}
