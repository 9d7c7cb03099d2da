package domain

import (
	"strings"
	"time"
)

// TodoCompletion is the completed-todo view consumed by the activity feed.
// UpdatedAt is the completion instant; DueAt and Location are optional
// display details.
type TodoCompletion struct {
	ID       string     `json:"id" db:"id"`
	UserID   string     `json:"user_id" db:"user_id"`
	Title    string     `json:"title" db:"title"`
	DueAt    *time.Time `json:"due_at,omitempty" db:"due_at"`
	Location string     `json:"location,omitempty" db:"location"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Label returns the feed label for the completion, with a fallback for
// todos saved without a title.
func (t *TodoCompletion) Label() string {
	if strings.TrimSpace(t.Title) == "" {
		return "Todo complete"
	}
	return t.Title
}
