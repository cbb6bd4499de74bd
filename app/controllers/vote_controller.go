package controllers

import (
	"net/http"

	"frontpage/app/middleware"
	"frontpage/app/models"
	"frontpage/app/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// VoteController handles HTTP requests for voting on posts
type VoteController struct {
	voteService *services.VoteService
	logger      *zap.Logger
}

// NewVoteController creates a new VoteController
func NewVoteController(voteService *services.VoteService, logger *zap.Logger) *VoteController {
	return &VoteController{
		voteService: voteService,
		logger:      logger,
	}
}

// Upvote registers a toggle upvote on the post
func (vc *VoteController) Upvote(w http.ResponseWriter, r *http.Request) {
	vc.vote(w, r, models.VoteUp)
}

// Downvote registers a toggle downvote on the post
func (vc *VoteController) Downvote(w http.ResponseWriter, r *http.Request) {
	vc.vote(w, r, models.VoteDown)
}

func (vc *VoteController) vote(w http.ResponseWriter, r *http.Request, direction models.VoteDirection) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing user id")
		return
	}

	postID := mux.Vars(r)["postId"]
	if _, err := uuid.Parse(postID); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if _, err := vc.voteService.Vote(postID, userID, direction); err != nil {
		sendServiceError(w, vc.logger, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Vote registered"})
}
