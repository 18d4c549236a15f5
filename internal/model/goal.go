package model

import (
	"time"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

type Goal struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"-"`
	Text        string    `db:"text" json:"text"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedDate string    `db:"created_date" json:"created_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (g *Goal) Status() string {
	if g.Completed {
		return GoalStatusCompleted
	}
	return GoalStatusActive
}

// Toggle flips the goal between active and completed.
func (g *Goal) Toggle() {
	g.Completed = !g.Completed
}
