package service

import (
	"errors"
	"fmt"

	"vocabdrill/internal/repository"
)

// ErrOwnerTaken is returned when another chat already owns the practice session
var ErrOwnerTaken = errors.New("practice session belongs to another chat")

// AuthService handles authentication logic. Only one chat can be
// authorized, since there is a single practice session.
type AuthService struct {
	userRepo    repository.UserRepository
	botPassword string
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, botPassword string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// AuthorizeUser makes the user the session owner unless another chat already is
func (s *AuthService) AuthorizeUser(userID int64) error {
	owner, ok, err := s.userRepo.AuthorizedUser()
	if err != nil {
		return fmt.Errorf("lookup owner: %w", err)
	}
	if ok && owner != userID {
		return ErrOwnerTaken
	}
	return s.userRepo.AuthorizeUser(userID)
}

// EnsureUserExists creates user record if doesn't exist
func (s *AuthService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}
