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

func newPostFixture(t *testing.T) (*PostService, *mock.PostRepository, *mock.UserRepository, *models.User) {
	postRepo := mock.NewPostRepository()
	userRepo := mock.NewUserRepository()
	author := &models.User{Username: "author", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(author))
	return NewPostService(postRepo, userRepo), postRepo, userRepo, author
}

func TestPostServiceCreatePost(t *testing.T) {
	svc, _, _, author := newPostFixture(t)

	post, err := svc.CreatePost(author.ID, "  A Title  ", "some content")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "A Title", post.Title)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, 0, post.Score)
}

func TestPostServiceCreatePostRequiresTitle(t *testing.T) {
	svc, _, _, author := newPostFixture(t)

	_, err := svc.CreatePost(author.ID, "   ", "content")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPostServiceGetPost(t *testing.T) {
	svc, postRepo, userRepo, author := newPostFixture(t)

	post, err := svc.CreatePost(author.ID, "Title", "content")
	require.NoError(t, err)

	commenter := &models.User{Username: "commenter", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(commenter))
	require.NoError(t, postRepo.AttachComment(post.ID, &models.Comment{
		AuthorID: commenter.ID,
		Content:  "nice",
	}))

	detail, err := svc.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "author", detail.Author.Username)
	require.Len(t, detail.Post.Comments, 1)
	assert.Equal(t, "commenter", detail.CommentAuthors[commenter.ID].Username)
}

func TestPostServiceGetPostMissingAuthorFailsLoudly(t *testing.T) {
	postRepo := mock.NewPostRepository()
	userRepo := mock.NewUserRepository()
	svc := NewPostService(postRepo, userRepo)

	post := &models.Post{Title: "orphan", AuthorID: uuid.NewString()}
	require.NoError(t, postRepo.Create(post))

	_, err := svc.GetPost(post.ID)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrNotFound, "author violation is an internal error, not a 404")
}

func TestPostServiceGetPostNotFound(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)

	_, err := svc.GetPost(uuid.NewString())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPostServiceEditPost(t *testing.T) {
	svc, postRepo, _, author := newPostFixture(t)

	post, err := svc.CreatePost(author.ID, "Old Title", "old content")
	require.NoError(t, err)

	newTitle := "New Title"
	require.NoError(t, svc.EditPost(post.ID, author.ID, &newTitle, nil))

	got, err := postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Title", got.Title)
	assert.Equal(t, "old content", got.Content, "nil content leaves the field untouched")

	newContent := "new content"
	require.NoError(t, svc.EditPost(post.ID, author.ID, nil, &newContent))
	got, err = postRepo.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "new content", got.Content)
}

func TestPostServiceEditPostAuthorization(t *testing.T) {
	svc, _, _, author := newPostFixture(t)

	post, err := svc.CreatePost(author.ID, "Title", "content")
	require.NoError(t, err)

	title := "hijacked"
	err = svc.EditPost(post.ID, uuid.NewString(), &title, nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestPostServiceEditPostEmptyTitle(t *testing.T) {
	svc, _, _, author := newPostFixture(t)

	post, err := svc.CreatePost(author.ID, "Title", "content")
	require.NoError(t, err)

	empty := "  "
	err = svc.EditPost(post.ID, author.ID, &empty, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPostServiceDeletePost(t *testing.T) {
	svc, postRepo, _, author := newPostFixture(t)

	post, err := svc.CreatePost(author.ID, "Title", "content")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePost(post.ID, uuid.NewString()), ErrForbidden)

	require.NoError(t, svc.DeletePost(post.ID, author.ID))
	_, err = postRepo.GetByID(post.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, svc.DeletePost(post.ID, author.ID), repositories.ErrNotFound)
}
