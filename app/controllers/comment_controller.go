package controllers

import (
	"encoding/json"
	"net/http"

	"frontpage/app/middleware"
	"frontpage/app/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
	logger         *zap.Logger
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService, logger *zap.Logger) *CommentController {
	return &CommentController{
		commentService: commentService,
		logger:         logger,
	}
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// Create attaches a new comment to a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing user id")
		return
	}

	postID := mux.Vars(r)["id"]
	if _, err := uuid.Parse(postID); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Malformed content")
		return
	}

	comment, err := cc.commentService.AddComment(postID, userID, req.Content)
	if err != nil {
		sendServiceError(w, cc.logger, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusCreated, map[string]string{"id": comment.ID})
}

// Delete removes a comment from a post
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing user id")
		return
	}

	vars := mux.Vars(r)
	postID := vars["postId"]
	commentID := vars["commentId"]

	if _, err := uuid.Parse(postID); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	if _, err := uuid.Parse(commentID); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := cc.commentService.DeleteComment(postID, commentID, userID); err != nil {
		sendServiceError(w, cc.logger, err, "Comment not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}
