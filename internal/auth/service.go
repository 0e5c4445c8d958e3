package auth

import (
	"errors"
	"fmt"

	"github.com/akupelikilinc/TalhaBookLib/internal/database/users"
	"github.com/akupelikilinc/TalhaBookLib/internal/entities"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore defines the user lookups the service needs.
type UserStore interface {
	GetByUsername(username string) (*entities.User, error)
	GetByID(id uint) (*entities.User, error)
}

// UserSummary is the caller-facing view of an authenticated user.
type UserSummary struct {
	ID       uint              `json:"id"`
	Username string            `json:"username"`
	Role     entities.UserRole `json:"role"`
}

// Service handles login and token verification.
type Service struct {
	store  UserStore
	tokens *TokenManager
}

// NewService creates a new authentication service.
func NewService(store UserStore, tokens *TokenManager) *Service {
	return &Service{store: store, tokens: tokens}
}

// Login validates the credentials and returns a signed bearer token with
// the user summary. A wrong username and a wrong password fail the same
// way, and never yield a token.
func (s *Service) Login(username, password string) (string, *UserSummary, error) {
	user, err := s.store.GetByUsername(username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}

	return token, summarize(user), nil
}

// Verify checks the token signature and expiry, then loads the embedded
// user. Tokens referencing a deleted user are rejected.
func (s *Service) Verify(token string) (*UserSummary, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetByID(userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return summarize(user), nil
}

func summarize(user *entities.User) *UserSummary {
	return &UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
