package service

import "errors"

var (
	// ErrInvalidInput marks a request missing a required field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials marks a failed login: unknown username or
	// password mismatch, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
