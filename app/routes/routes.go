package routes

import (
	"net/http"
	"time"

	"frontpage/app/controllers"
	"frontpage/app/middleware"
	"frontpage/app/repositories"
	"frontpage/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Options carries the configuration the route tree needs.
type Options struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// SetupRoutes wires repositories, services and controllers onto a router
// backed by the given Badger DB.
func SetupRoutes(db *badger.DB, logger *zap.Logger, opts Options) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	authService := services.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL, opts.BcryptCost)
	postService := services.NewPostService(postRepo, userRepo)
	feedService := services.NewFeedService(postRepo, userRepo)
	voteService := services.NewVoteService(postRepo)
	commentService := services.NewCommentService(postRepo)

	authController := controllers.NewAuthController(authService, logger)
	postController := controllers.NewPostController(postService, feedService, logger)
	voteController := controllers.NewVoteController(voteService, logger)
	commentController := controllers.NewCommentController(commentService, logger)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	authenticate := middleware.Authenticate(authService)

	// Public endpoints
	router.HandleFunc("/auth/sign-up", authController.SignUp).Methods("POST")
	router.HandleFunc("/auth/log-in", authController.LogIn).Methods("POST")
	router.HandleFunc("/posts", postController.Index).Methods("GET")
	router.HandleFunc("/posts/{id}", postController.Show).Methods("GET")

	// Authenticated endpoints
	router.Handle("/profile", authenticate(http.HandlerFunc(authController.Profile))).Methods("GET")
	router.Handle("/posts", authenticate(http.HandlerFunc(postController.Create))).Methods("POST")
	router.Handle("/posts/{id}", authenticate(http.HandlerFunc(postController.Edit))).Methods("PUT")
	router.Handle("/posts/{id}", authenticate(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	router.Handle("/posts/{id}/comments", authenticate(http.HandlerFunc(commentController.Create))).Methods("POST")
	router.Handle("/posts/{postId}/comments/{commentId}", authenticate(http.HandlerFunc(commentController.Delete))).Methods("DELETE")
	router.Handle("/votes/{postId}/upvote", authenticate(http.HandlerFunc(voteController.Upvote))).Methods("PUT")
	router.Handle("/votes/{postId}/downvote", authenticate(http.HandlerFunc(voteController.Downvote))).Methods("PUT")

	return router
}
