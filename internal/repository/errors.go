package repository

import "errors"

// Sentinel errors returned by the stores. Handlers match on them with
// errors.Is to pick the HTTP status code.
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrBookExists     = errors.New("book already exists")
	ErrUserExists     = errors.New("user already exists")
	ErrReviewNotFound = errors.New("review not found for this user")
)
