package repository

import (
	"context"
	"fmt"
)

// ReviewRepository mutates the review maps owned by the catalog's books.
// It shares the BookRepository's state the same way a reviews table shares
// the database with the books table; every operation checks the book first
// and holds the catalog lock for the whole mutation.
type ReviewRepository struct {
	books *BookRepository
}

func NewReviewRepository(books *BookRepository) *ReviewRepository {
	return &ReviewRepository{books: books}
}

// ForBook returns a copy of the review map for the given ISBN, or
// ErrBookNotFound.
func (r *ReviewRepository) ForBook(ctx context.Context, isbn string) (map[string]string, error) {
	r.books.mu.RLock()
	defer r.books.mu.RUnlock()

	b, ok := r.books.books[isbn]
	if !ok {
		return nil, fmt.Errorf("ReviewRepository.ForBook: %s: %w", isbn, ErrBookNotFound)
	}
	return cloneReviews(b.Reviews), nil
}

// Upsert sets the user's review text on the book, overwriting any prior
// review by the same user, and returns the updated map. A user can never
// hold more than one review per book.
func (r *ReviewRepository) Upsert(ctx context.Context, isbn, username, text string) (map[string]string, error) {
	r.books.mu.Lock()
	defer r.books.mu.Unlock()

	b, ok := r.books.books[isbn]
	if !ok {
		return nil, fmt.Errorf("ReviewRepository.Upsert: %s: %w", isbn, ErrBookNotFound)
	}
	b.Reviews[username] = text
	return cloneReviews(b.Reviews), nil
}

// Delete removes the user's review and returns the updated map. The book
// is checked before the review: a missing book is ErrBookNotFound, a
// present book without a review by this user is ErrReviewNotFound.
func (r *ReviewRepository) Delete(ctx context.Context, isbn, username string) (map[string]string, error) {
	r.books.mu.Lock()
	defer r.books.mu.Unlock()

	b, ok := r.books.books[isbn]
	if !ok {
		return nil, fmt.Errorf("ReviewRepository.Delete: %s: %w", isbn, ErrBookNotFound)
	}
	if _, ok := b.Reviews[username]; !ok {
		return nil, fmt.Errorf("ReviewRepository.Delete: %s by %s: %w", isbn, username, ErrReviewNotFound)
	}
	delete(b.Reviews, username)
	return cloneReviews(b.Reviews), nil
}

func cloneReviews(reviews map[string]string) map[string]string {
	out := make(map[string]string, len(reviews))
	for user, text := range reviews {
		out[user] = text
	}
	return out
}
