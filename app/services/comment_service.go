package services

import (
	"fmt"
	"strings"

	"frontpage/app/models"
	"frontpage/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	postRepo repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(postRepo repositories.PostRepository) *CommentService {
	return &CommentService{postRepo: postRepo}
}

// AddComment attaches a new comment by authorID to the post
func (s *CommentService) AddComment(postID, authorID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	comment := &models.Comment{
		AuthorID: authorID,
		Content:  content,
	}

	if err := s.postRepo.AttachComment(postID, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment from its post. Permitted only for the
// post's author or the comment's author.
func (s *CommentService) DeleteComment(postID, commentID, requesterID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	comment := post.FindComment(commentID)
	if comment == nil {
		return repositories.ErrNotFound
	}

	if post.AuthorID != requesterID && comment.AuthorID != requesterID {
		return fmt.Errorf("%w: you are not allowed to delete this comment", ErrForbidden)
	}

	return s.postRepo.DetachComment(postID, commentID)
}
