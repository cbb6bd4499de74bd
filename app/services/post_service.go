package services

import (
	"fmt"
	"strings"
	"time"

	"frontpage/app/models"
	"frontpage/app/repositories"
)

// PostService handles business logic for posts
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// PostDetail is a post joined with the identities it references.
type PostDetail struct {
	Post   *models.Post
	Author *models.User

	// CommentAuthors maps comment author IDs to users.
	CommentAuthors map[string]*models.User
}

// CreatePost creates a new post authored by authorID
func (s *PostService) CreatePost(authorID, title, content string) (*models.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post with its author and comment authors resolved.
// An unresolvable author reference is an invariant violation and fails the
// whole read rather than being silently omitted.
func (s *PostService) GetPost(id string) (*PostDetail, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("post %s references missing author %s: %v", post.ID, post.AuthorID, err)
	}

	commentAuthors := make(map[string]*models.User)
	for _, comment := range post.Comments {
		if _, seen := commentAuthors[comment.AuthorID]; seen {
			continue
		}
		user, err := s.userRepo.GetByID(comment.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("comment %s references missing author %s: %v", comment.ID, comment.AuthorID, err)
		}
		commentAuthors[comment.AuthorID] = user
	}

	return &PostDetail{
		Post:           post,
		Author:         author,
		CommentAuthors: commentAuthors,
	}, nil
}

// EditPost updates title and/or content. Only the author may edit.
func (s *PostService) EditPost(postID, requesterID string, title, content *string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		return fmt.Errorf("%w: you are not allowed to edit this post", ErrForbidden)
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		post.Title = trimmed
	}
	if content != nil {
		post.Content = *content
	}
	post.UpdatedAt = time.Now()

	return s.postRepo.Update(post)
}

// DeletePost deletes a post and its comments. Only the author may delete.
func (s *PostService) DeletePost(postID, requesterID string) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}

	if post.AuthorID != requesterID {
		return fmt.Errorf("%w: you are not allowed to delete this post", ErrForbidden)
	}

	return s.postRepo.Delete(postID)
}
