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

func newVoteFixture(t *testing.T) (*VoteService, *models.Post) {
	postRepo := mock.NewPostRepository()
	post := &models.Post{Title: "Post", AuthorID: uuid.NewString()}
	require.NoError(t, postRepo.Create(post))
	return NewVoteService(postRepo), post
}

func TestVoteServiceUpThenDown(t *testing.T) {
	svc, post := newVoteFixture(t)
	voter := uuid.NewString()

	got, err := svc.Vote(post.ID, voter, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Score)

	// switching direction: upvote cleared, downvote recorded
	got, err = svc.Vote(post.ID, voter, models.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, -1, got.Score)
	assert.Empty(t, got.Upvoters)
	assert.Equal(t, []string{voter}, got.Downvoters)
}

func TestVoteServiceIdempotentToggle(t *testing.T) {
	svc, post := newVoteFixture(t)
	voter := uuid.NewString()

	_, err := svc.Vote(post.ID, voter, models.VoteUp)
	require.NoError(t, err)

	got, err := svc.Vote(post.ID, voter, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Score)
	assert.Empty(t, got.Upvoters)
	assert.Empty(t, got.Downvoters)
}

func TestVoteServiceSelfVoteAllowed(t *testing.T) {
	svc, post := newVoteFixture(t)

	got, err := svc.Vote(post.ID, post.AuthorID, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Score)
}

func TestVoteServiceUnknownDirection(t *testing.T) {
	svc, post := newVoteFixture(t)

	_, err := svc.Vote(post.ID, uuid.NewString(), models.VoteDirection("sideways"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVoteServiceMissingPost(t *testing.T) {
	svc, _ := newVoteFixture(t)

	_, err := svc.Vote(uuid.NewString(), uuid.NewString(), models.VoteUp)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
