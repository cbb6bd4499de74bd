package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"frontpage/app/middleware"
	"frontpage/app/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// PostController handles HTTP requests for posts and the ranked feed
type PostController struct {
	postService *services.PostService
	feedService *services.FeedService
	logger      *zap.Logger
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, feedService *services.FeedService, logger *zap.Logger) *PostController {
	return &PostController{
		postService: postService,
		feedService: feedService,
		logger:      logger,
	}
}

// Index returns one page of the ranked feed
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := 1, 10

	// missing parameters default; malformed ones are a client error
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil {
			sendError(w, http.StatusBadRequest, "Limit and page has to be valid numbers")
			return
		}
		page = p
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil {
			sendError(w, http.StatusBadRequest, "Limit and page has to be valid numbers")
			return
		}
		limit = l
	}

	feed, err := pc.feedService.ListFeed(page, limit)
	if err != nil {
		sendServiceError(w, pc.logger, err, "Post not found")
		return
	}

	posts := make([]map[string]interface{}, 0, len(feed.Items))
	for _, item := range feed.Items {
		post := item.Post
		posts = append(posts, map[string]interface{}{
			"id":    post.ID,
			"title": strings.ToUpper(post.Title),
			"author": map[string]string{
				"username": item.AuthorUsername,
			},
			"content":   item.Preview,
			"score":     post.Score,
			"upvotes":   post.Upvoters,
			"downvotes": post.Downvoters,
			"createdAt": post.CreatedAt.Format(displayTime),
			"updatedAt": post.UpdatedAt.Format(displayTimeFull),
		})
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts":    posts,
		"nextPage": feed.NextPage,
	})
}

// Show returns a single post with full content and comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	detail, err := pc.postService.GetPost(id)
	if err != nil {
		sendServiceError(w, pc.logger, err, "Post not found")
		return
	}

	post := detail.Post
	comments := make([]map[string]interface{}, 0, len(post.Comments))
	for _, comment := range post.Comments {
		author := detail.CommentAuthors[comment.AuthorID]
		comments = append(comments, map[string]interface{}{
			"id":      comment.ID,
			"content": comment.Content,
			"author": map[string]string{
				"id":       author.ID,
				"username": author.Username,
			},
			"createdAt": comment.CreatedAt.Format(displayTime),
			"updatedAt": comment.UpdatedAt.Format(displayTimeFull),
		})
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"id":      post.ID,
		"title":   strings.ToUpper(post.Title),
		"content": post.Content,
		"author": map[string]string{
			"id":       detail.Author.ID,
			"username": detail.Author.Username,
		},
		"comments":  comments,
		"score":     post.Score,
		"createdAt": post.CreatedAt.Format(displayTime),
		"updatedAt": post.UpdatedAt.Format(displayTimeFull),
	})
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing user id")
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Malformed title")
		return
	}

	post, err := pc.postService.CreatePost(userID, req.Title, req.Content)
	if err != nil {
		sendServiceError(w, pc.logger, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusCreated, map[string]string{"id": post.ID})
}

type editPostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Edit handles updating an existing post's title and/or content
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing user id")
		return
	}

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req editPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Malformed title")
		return
	}

	if err := pc.postService.EditPost(id, userID, req.Title, req.Content); err != nil {
		sendServiceError(w, pc.logger, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Post updated"})
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		sendError(w, http.StatusUnauthorized, "Missing user id")
		return
	}

	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := pc.postService.DeletePost(id, userID); err != nil {
		sendServiceError(w, pc.logger, err, "Post not found")
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}
