package repositories

import "frontpage/app/models"

// PostRepository defines the interface for post data access. Comments are
// embedded in the post document; attach/detach also maintain the standalone
// comment records in the same transaction.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	Count() (int, error)
	Update(post *models.Post) error
	Delete(id string) error
	ApplyVote(postID, voterID string, direction models.VoteDirection) (*models.Post, error)
	AttachComment(postID string, comment *models.Comment) error
	DetachComment(postID, commentID string) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}
