package services

import (
	"fmt"

	"frontpage/app/models"
	"frontpage/app/repositories"
)

// VoteService applies toggle votes to posts
type VoteService struct {
	postRepo repositories.PostRepository
}

// NewVoteService creates a new VoteService
func NewVoteService(postRepo repositories.PostRepository) *VoteService {
	return &VoteService{postRepo: postRepo}
}

// Vote applies a vote by voterID on postID. The toggle rules and the score
// recomputation run inside the repository's single-transaction ApplyVote, so
// the stored score never disagrees with the vote sets.
func (s *VoteService) Vote(postID, voterID string, direction models.VoteDirection) (*models.Post, error) {
	if direction != models.VoteUp && direction != models.VoteDown {
		return nil, fmt.Errorf("%w: unknown vote direction %q", ErrInvalidInput, direction)
	}
	return s.postRepo.ApplyVote(postID, voterID, direction)
}
