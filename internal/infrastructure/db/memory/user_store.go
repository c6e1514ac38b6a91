package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// UserStore is an in-process credential store. Registration is check-then-
// insert, so the whole operation runs under one mutex: of any number of
// concurrent registrations for a username, exactly one succeeds.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*domain.User)}
}

// Create inserts the user if the username is absent, otherwise returns
// domain.ErrUserExists. The stored copy is never handed out by reference.
func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	s.users[stored.Username] = &stored

	out := stored
	return &out, nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	out := *user
	return &out, nil
}
