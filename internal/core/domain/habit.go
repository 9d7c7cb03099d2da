package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty     = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong   = errors.New("habit name is too long (max 100 chars)")
	ErrHabitInvalidUserID = errors.New("invalid user id")
	ErrInvalidCadence     = errors.New("invalid cadence (must be daily, weekly, or monthly)")
)

const (
	CadenceDaily   = "daily"
	CadenceWeekly  = "weekly"
	CadenceMonthly = "monthly"
	MaxNameLen     = 100
)

// Habit is a tracked goal: log GoalAmount GoalUnit per day. Cadence is
// informational to the progress engine; every aggregate walks calendar days.
// Days before StartDate never count against the habit.
type Habit struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	GoalAmount float64   `json:"goal_amount" db:"goal_amount"`
	GoalUnit   string    `json:"goal_unit" db:"goal_unit"`
	Cadence    string    `json:"cadence" db:"cadence"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func validateHabit(name, cadence string) (string, string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", ErrHabitNameEmpty
	}
	if len(trimmed) > MaxNameLen {
		return "", "", ErrHabitNameTooLong
	}

	if cadence == "" {
		cadence = CadenceDaily
	}
	switch cadence {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
	default:
		return "", "", ErrInvalidCadence
	}

	return trimmed, cadence, nil
}

// NewHabit builds a habit starting on the UTC calendar day of startDate.
// A zero startDate means the habit starts on the day of creation. The goal
// amount is stored as given; normalization of non-positive or non-finite
// goals happens at computation time, not here.
func NewHabit(userID, name, goalUnit, cadence string, goalAmount float64, startDate time.Time) (*Habit, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrHabitInvalidUserID
	}

	cleanName, safeCadence, err := validateHabit(name, cadence)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if startDate.IsZero() {
		startDate = now
	}

	return &Habit{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       cleanName,
		GoalAmount: goalAmount,
		GoalUnit:   goalUnit,
		Cadence:    safeCadence,
		StartDate:  DayStart(startDate),
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Rename updates the display name and goal settings.
func (h *Habit) Rename(name, goalUnit, cadence string, goalAmount float64) error {
	cleanName, safeCadence, err := validateHabit(name, cadence)
	if err != nil {
		return err
	}

	h.Name = cleanName
	h.GoalUnit = goalUnit
	h.Cadence = safeCadence
	h.GoalAmount = goalAmount
	h.UpdatedAt = time.Now().UTC()
	return nil
}

// ActiveOn reports whether the habit had started by the UTC day of t.
func (h *Habit) ActiveOn(t time.Time) bool {
	return !DayStart(t).Before(DayStart(h.StartDate))
}
