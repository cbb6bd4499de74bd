package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"frontpage/app/models"
	"frontpage/app/repositories"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService handles sign-up, log-in and token verification
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

type authClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// SignUp registers a new user with a bcrypt-hashed password
func (s *AuthService) SignUp(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: missing username or password", ErrInvalidInput)
	}

	user := &models.User{Username: username}
	if err := user.SetPassword(password, s.bcryptCost); err != nil {
		return nil, err
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LogIn verifies credentials and issues a signed access token
func (s *AuthService) LogIn(username, password string) (string, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", "", fmt.Errorf("%w: missing username or password", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUsername(username)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", "", ErrWrongCredentials
	}
	if err != nil {
		return "", "", err
	}

	if !user.CheckPassword(password) {
		return "", "", ErrWrongCredentials
	}

	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", "", err
	}
	return token, user.ID, nil
}

// VerifyToken parses and validates an access token and confirms the subject
// user still exists. Returns the verified user ID.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", errors.New("invalid token")
	}

	if _, err := s.userRepo.GetByID(claims.UserID); err != nil {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}

// Profile returns the account of the authenticated user
func (s *AuthService) Profile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}
