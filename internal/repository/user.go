package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/templui/goalboard/internal/model"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	Upsert(user *model.User) error
	ByID(id string) (*model.User, error)
	All() ([]*model.User, error)
	Delete(id string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert inserts the user or refreshes nickname and profile image of an
// existing one. created_at is kept from the first login.
func (r *userRepository) Upsert(user *model.User) error {
	query := `INSERT INTO users (id, nickname, profile_image, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (id) DO UPDATE
	          SET nickname = excluded.nickname, profile_image = excluded.profile_image, updated_at = excluded.updated_at`

	_, err := r.db.Exec(query,
		user.ID,
		user.Nickname,
		user.ProfileImage,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return err
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) All() ([]*model.User, error) {
	var users []*model.User
	query := `SELECT * FROM users ORDER BY created_at ASC, id ASC`

	err := r.db.Select(&users, query)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Delete(id string) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
