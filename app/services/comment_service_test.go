package services

import (
	"testing"

	"frontpage/app/models"
	"frontpage/app/repositories"
	"frontpage/app/repositories/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*CommentService, *mock.PostRepository, *models.Post) {
	postRepo := mock.NewPostRepository()
	post := &models.Post{Title: "Post", AuthorID: uuid.NewString()}
	require.NoError(t, postRepo.Create(post))
	return NewCommentService(postRepo), postRepo, post
}

func TestCommentServiceAddComment(t *testing.T) {
	svc, postRepo, post := newCommentFixture(t)
	commenter := uuid.NewString()

	comment, err := svc.AddComment(post.ID, commenter, "well said")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)

	got, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "well said", got.Comments[0].Content)
}

func TestCommentServiceAddCommentValidation(t *testing.T) {
	svc, _, post := newCommentFixture(t)

	_, err := svc.AddComment(post.ID, uuid.NewString(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCommentServiceAddCommentMissingPost(t *testing.T) {
	svc, _, _ := newCommentFixture(t)

	_, err := svc.AddComment(uuid.NewString(), uuid.NewString(), "hello")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCommentServiceDeleteByCommentAuthor(t *testing.T) {
	svc, postRepo, post := newCommentFixture(t)
	commenter := uuid.NewString()

	comment, err := svc.AddComment(post.ID, commenter, "mine")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(post.ID, comment.ID, commenter))

	got, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Comments)
}

func TestCommentServiceDeleteByPostAuthor(t *testing.T) {
	svc, _, post := newCommentFixture(t)

	comment, err := svc.AddComment(post.ID, uuid.NewString(), "on your post")
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteComment(post.ID, comment.ID, post.AuthorID))
}

func TestCommentServiceDeleteForbidden(t *testing.T) {
	svc, postRepo, post := newCommentFixture(t)

	comment, err := svc.AddComment(post.ID, uuid.NewString(), "someone else's")
	require.NoError(t, err)

	err = svc.DeleteComment(post.ID, comment.ID, uuid.NewString())
	assert.ErrorIs(t, err, ErrForbidden)

	// the comment sequence must be unchanged after the refused delete
	got, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 1)
}

func TestCommentServiceDeleteMissingComment(t *testing.T) {
	svc, _, post := newCommentFixture(t)

	err := svc.DeleteComment(post.ID, uuid.NewString(), post.AuthorID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
