package service

import (
	"context"
	"fmt"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
)

// ReviewService contains business logic for book reviews. All operations
// are scoped to a book; the store reports a missing book before anything
// else is considered.
type ReviewService struct {
	reviews *repository.ReviewRepository
}

// NewReviewService constructs a ReviewService over the given repository.
func NewReviewService(reviews *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// GetReviews returns the username→text map for a book.
func (s *ReviewService) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	reviews, err := s.reviews.ForBook(ctx, isbn)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.GetReviews: %w", err)
	}
	return reviews, nil
}

// SaveReview adds or replaces the acting user's review on the book and
// returns the updated map. Empty text is a valid review: a request
// without a review field saves "".
func (s *ReviewService) SaveReview(ctx context.Context, isbn, username, text string) (map[string]string, error) {
	reviews, err := s.reviews.Upsert(ctx, isbn, username, text)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.SaveReview: %w", err)
	}
	return reviews, nil
}

// DeleteReview removes the acting user's review and returns the updated
// map. Book existence is checked before review existence; the two
// failures carry distinct errors even though both surface as 404.
func (s *ReviewService) DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error) {
	reviews, err := s.reviews.Delete(ctx, isbn, username)
	if err != nil {
		return nil, fmt.Errorf("ReviewService.DeleteReview: %w", err)
	}
	return reviews, nil
}
