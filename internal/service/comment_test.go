package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalboard/internal/model"
	"github.com/templui/goalboard/internal/repository"
	"github.com/templui/goalboard/internal/validation"
)

func TestCommentService(t *testing.T) {
	f := newFixture(t, "2024-03-06 09:00")
	author := f.addUser(t, "u1", "minsu")
	comments := NewCommentService(repository.NewCommentRepository(f.db))

	list, err := comments.Comments()
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	_, err = comments.Add(nil, "hello", "")
	assert.ErrorIs(t, err, ErrGuestComment)

	_, err = comments.Add(author, "   ", "")
	assert.ErrorIs(t, err, validation.ErrCommentRequired)

	first, err := comments.Add(author, "first!", "")
	require.NoError(t, err)
	assert.Equal(t, model.CommentTypeGeneral, first.Type)
	assert.Equal(t, "minsu", first.AuthorName)

	time.Sleep(5 * time.Millisecond)
	second, err := comments.Add(author, " cheer up ", "cheer")
	require.NoError(t, err)
	assert.Equal(t, "cheer up", second.Text)

	list, err = comments.Comments()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
