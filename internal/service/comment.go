package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/validation"
)

const commentListLimit = 100

var ErrGuestComment = errors.New("guests cannot post comments")

type CommentService struct {
	repo repository.CommentRepository
}

func NewCommentService(repo repository.CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

// Comments returns the most recent comments, newest first.
func (s *CommentService) Comments() ([]*model.Comment, error) {
	comments, err := s.repo.Recent(commentListLimit)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []*model.Comment{}
	}
	return comments, nil
}

func (s *CommentService) Add(author *model.User, text, commentType string) (*model.Comment, error) {
	if author == nil {
		return nil, ErrGuestComment
	}

	text, err := validation.CommentText(text)
	if err != nil {
		return nil, err
	}

	commentType, err = validation.CommentType(commentType)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:         uuid.New().String(),
		AuthorID:   author.ID,
		AuthorName: author.Nickname,
		Text:       text,
		Type:       commentType,
		CreatedAt:  time.Now().UTC(),
	}

	err = s.repo.Create(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
