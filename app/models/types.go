package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// VoteDirection identifies which vote set a vote targets.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Post represents a forum post with embedded comments and vote sets.
type Post struct {
	ID         string     `json:"id" validate:"required,uuid4"`
	Title      string     `json:"title" validate:"required,min=1,max=200"`
	Content    string     `json:"content"`
	AuthorID   string     `json:"authorId" validate:"required,uuid4"`
	Comments   []*Comment `json:"comments" validate:"-"`
	Upvoters   []string   `json:"upvoters"`
	Downvoters []string   `json:"downvoters"`
	Score      int        `json:"score"`
	CreatedAt  time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Comment represents a comment owned by its parent post.
type Comment struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	PostID    string    `json:"postId" validate:"required,uuid4"`
	AuthorID  string    `json:"authorId" validate:"required,uuid4"`
	Content   string    `json:"content" validate:"required,min=1,max=500"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// User is an account identity. The password hash is stored with the document
// but never included in API responses, which are built from explicit fields.
type User struct {
	ID           string    `json:"id" validate:"required,uuid4"`
	Username     string    `json:"username" validate:"required,min=2,max=50"`
	PasswordHash string    `json:"passwordHash" validate:"required"`
	CreatedAt    time.Time `json:"createdAt" validate:"required"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
