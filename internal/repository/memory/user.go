package memory

import (
	"sync"
	"time"

	"vocabdrill/internal/domain"
)

// UserRepo implements repository.UserRepository in process memory.
// Nothing survives a restart.
type UserRepo struct {
	mu    sync.RWMutex
	users map[int64]*domain.User
}

// NewUserRepo creates a new user repository
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[int64]*domain.User)}
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	return ok && u.Authorized, nil
}

// AuthorizeUser marks an existing or new user as authorized
func (r *UserRepo) AuthorizeUser(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.ensure(userID)
	u.Authorized = true
	return nil
}

// EnsureUserExists creates user record if doesn't exist
func (r *UserRepo) EnsureUserExists(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensure(userID)
	return nil
}

// AuthorizedUser returns the first authorized user, if any
func (r *UserRepo) AuthorizedUser() (int64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owner *domain.User
	for _, u := range r.users {
		if !u.Authorized {
			continue
		}
		if owner == nil || u.CreatedAt.Before(owner.CreatedAt) {
			owner = u
		}
	}
	if owner == nil {
		return 0, false, nil
	}
	return owner.UserID, true, nil
}

func (r *UserRepo) ensure(userID int64) *domain.User {
	u, ok := r.users[userID]
	if !ok {
		u = &domain.User{UserID: userID, CreatedAt: time.Now()}
		r.users[userID] = u
	}
	return u
}
