package model

import (
	"time"
)

const CommentTypeGeneral = "general"

type Comment struct {
	ID         string    `db:"id" json:"id"`
	AuthorID   string    `db:"author_id" json:"author_id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Text       string    `db:"text" json:"text"`
	Type       string    `db:"type" json:"type"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Date returns the creation day as YYYY-MM-DD.
func (c *Comment) Date() string {
	return c.CreatedAt.Format(time.DateOnly)
}
