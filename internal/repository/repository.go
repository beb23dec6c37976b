package repository

import (
	"errors"

	"vocabdrill/internal/domain"
)

// ErrFileNotFound is returned when a level has no catalog entry or its file is absent
var ErrFileNotFound = errors.New("word list file not found")

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	AuthorizedUser() (int64, bool, error)
}

// WordListRepository reads the word pairs of one level
type WordListRepository interface {
	LoadLevel(level domain.Level) ([]domain.WordPair, error)
}
