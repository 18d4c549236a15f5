package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// GoalSnapshot is the copy of a goal stored with a history entry.
// Later edits to the live goal never reach it.
type GoalSnapshot struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CreatedDate string `json:"created_date"`
}

// Snapshots is stored as a JSON column.
type Snapshots []GoalSnapshot

func (s Snapshots) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Snapshots) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*s = Snapshots{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported snapshot column type %T", src)
	}

	if len(data) == 0 {
		*s = Snapshots{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// SnapshotGoals copies goals by value so the result shares no state with them.
func SnapshotGoals(goals []*Goal) Snapshots {
	snapshots := make(Snapshots, 0, len(goals))
	for _, g := range goals {
		snapshots = append(snapshots, GoalSnapshot{
			ID:          g.ID,
			Text:        g.Text,
			Completed:   g.Completed,
			CreatedDate: g.CreatedDate,
		})
	}
	return snapshots
}

type HistoryEntry struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	Date      string    `db:"date" json:"date"`
	Progress  int       `db:"progress" json:"progress"`
	Goals     Snapshots `db:"goals" json:"goals"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CalendarDay is one cell of the month view. Progress is nil when the
// day has no history entry.
type CalendarDay struct {
	Date     string `json:"date"`
	Progress *int   `json:"progress"`
	Level    string `json:"level"`
}
