package service

import (
	"context"
	"fmt"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
)

// UserService contains business logic for registration and login.
type UserService struct {
	users *repository.UserRepository
}

// NewUserService constructs a UserService over the given store.
func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register validates both fields and stores the user. Registering an
// existing username always fails, whatever the password.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("UserService.Register: username and password required: %w", ErrInvalidInput)
	}
	if err := s.users.Register(ctx, username, password); err != nil {
		return fmt.Errorf("UserService.Register: %w", err)
	}
	return nil
}

// Login checks the credentials with an exact, case-sensitive match.
// No rate limiting, no lockout.
func (s *UserService) Login(ctx context.Context, username, password string) error {
	if !s.users.Match(ctx, username, password) {
		return fmt.Errorf("UserService.Login: %s: %w", username, ErrInvalidCredentials)
	}
	return nil
}
