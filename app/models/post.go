package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
	if p.Upvoters == nil {
		p.Upvoters = []string{}
	}
	if p.Downvoters == nil {
		p.Downvoters = []string{}
	}
	if p.Comments == nil {
		p.Comments = []*Comment{}
	}
}

// Upvote applies an upvote by userID using toggle semantics: a repeated
// upvote retracts the vote, an existing downvote is cleared before the
// upvote is recorded.
func (p *Post) Upvote(userID string) {
	if contains(p.Upvoters, userID) {
		p.Upvoters = remove(p.Upvoters, userID)
		return
	}

	if contains(p.Downvoters, userID) {
		p.Downvoters = remove(p.Downvoters, userID)
	}

	p.Upvoters = append(p.Upvoters, userID)
}

// Downvote applies a downvote by userID, mirroring Upvote.
func (p *Post) Downvote(userID string) {
	if contains(p.Downvoters, userID) {
		p.Downvoters = remove(p.Downvoters, userID)
		return
	}

	if contains(p.Upvoters, userID) {
		p.Upvoters = remove(p.Upvoters, userID)
	}

	p.Downvoters = append(p.Downvoters, userID)
}

// Vote dispatches to Upvote or Downvote by direction.
func (p *Post) Vote(userID string, direction VoteDirection) error {
	switch direction {
	case VoteUp:
		p.Upvote(userID)
	case VoteDown:
		p.Downvote(userID)
	default:
		return errors.New("unknown vote direction")
	}
	return nil
}

// RecomputeScore sets the derived score from the vote sets. It must be
// called before persisting any mutation of Upvoters or Downvoters so the
// stored score and vote sets are written in the same operation.
func (p *Post) RecomputeScore() {
	p.Score = len(p.Upvoters) - len(p.Downvoters)
}

// HasUpvoted reports whether userID is in the upvoter set.
func (p *Post) HasUpvoted(userID string) bool {
	return contains(p.Upvoters, userID)
}

// HasDownvoted reports whether userID is in the downvoter set.
func (p *Post) HasDownvoted(userID string) bool {
	return contains(p.Downvoters, userID)
}

// AddComment appends a comment to the post
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}

// FindComment returns the embedded comment with the given ID, or nil.
func (p *Post) FindComment(commentID string) *Comment {
	for _, comment := range p.Comments {
		if comment.ID == commentID {
			return comment
		}
	}
	return nil
}

// RemoveComment removes a comment from the post
func (p *Post) RemoveComment(commentID string) error {
	for i, comment := range p.Comments {
		if comment.ID == commentID {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return errors.New("comment not found")
}

func contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}

func remove(set []string, id string) []string {
	for i, v := range set {
		if v == id {
			return append(set[:i], set[i+1:]...)
		}
	}
	return set
}
