package auth

import (
	"context"
	"sync"
)

// InMemoryUserStore keeps the auth flows testable without a database.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[string]User)}
}

func (s *InMemoryUserStore) Create(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return ErrDuplicateEmail
	}
	s.users[user.Email] = *user
	return nil
}

func (s *InMemoryUserStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[email]; ok {
		return &user, nil
	}
	return nil, ErrNotFound
}
