package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/templui/goalboard/internal/model"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	Recent(limit int) ([]*model.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	query := `INSERT INTO comments (id, author_id, author_name, text, type, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		comment.ID,
		comment.AuthorID,
		comment.AuthorName,
		comment.Text,
		comment.Type,
		comment.CreatedAt,
	)

	return err
}

// Recent returns up to limit comments, newest first.
func (r *commentRepository) Recent(limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	query := `SELECT * FROM comments ORDER BY created_at DESC LIMIT $1`

	err := r.db.Select(&comments, query, limit)
	if err != nil {
		return nil, err
	}

	return comments, nil
}
