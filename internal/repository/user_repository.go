package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/model"
)

// UserRepository is the in-memory user store, keyed by username.
// Users are created once and never updated or deleted.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]model.User)}
}

// Register stores a new user, or ErrUserExists when the username is
// already taken (regardless of password).
func (r *UserRepository) Register(ctx context.Context, username, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return fmt.Errorf("UserRepository.Register: %s: %w", username, ErrUserExists)
	}
	r.users[username] = model.User{Username: username, Password: password}
	return nil
}

// Match reports whether the username is registered with exactly this
// password. Case-sensitive on both fields.
func (r *UserRepository) Match(ctx context.Context, username, password string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	return ok && u.Password == password
}

// Exists reports whether the username is registered.
func (r *UserRepository) Exists(ctx context.Context, username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[username]
	return ok
}
