package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goalboard/internal/model"
)

var (
	ErrHistoryNotFound = errors.New("history entry not found")
)

// HistoryRepository keeps at most one entry per owner and date.
type HistoryRepository interface {
	// Upsert writes the entry for (UserID, Date), overwriting progress
	// and goals of an existing one.
	Upsert(entry *model.HistoryEntry) error
	ByDate(userID, date string) (*model.HistoryEntry, error)
	Entries(userID string) ([]*model.HistoryEntry, error)
}

type historyRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Upsert(entry *model.HistoryEntry) error {
	query := `INSERT INTO goal_history (id, user_id, date, progress, goals, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (user_id, date) DO UPDATE
	          SET progress = excluded.progress, goals = excluded.goals, updated_at = excluded.updated_at`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.Progress,
		entry.Goals,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	return err
}

func (r *historyRepository) ByDate(userID, date string) (*model.HistoryEntry, error) {
	entry := &model.HistoryEntry{}
	query := `SELECT * FROM goal_history WHERE user_id = $1 AND date = $2`

	err := r.db.Get(entry, query, userID, date)
	if err == sql.ErrNoRows {
		return nil, ErrHistoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Entries returns the owner's entries oldest first.
func (r *historyRepository) Entries(userID string) ([]*model.HistoryEntry, error) {
	var entries []*model.HistoryEntry
	query := `SELECT * FROM goal_history WHERE user_id = $1 ORDER BY date ASC`

	err := r.db.Select(&entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
