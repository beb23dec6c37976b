package testutil

import (
	"vocabdrill/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) AuthorizedUser() (int64, bool, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// MockWordListRepository is a mock for WordListRepository
type MockWordListRepository struct {
	mock.Mock
}

func (m *MockWordListRepository) LoadLevel(level domain.Level) ([]domain.WordPair, error) {
	args := m.Called(level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}
