package service

import (
	"context"
	"fmt"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/model"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
)

// CatalogService contains business logic for the book catalog.
type CatalogService struct {
	books *repository.BookRepository
}

// NewCatalogService constructs a CatalogService over the given store.
func NewCatalogService(books *repository.BookRepository) *CatalogService {
	return &CatalogService{books: books}
}

// ListBooks returns every book without its reviews. Always succeeds.
func (s *CatalogService) ListBooks(ctx context.Context) []model.BookSummary {
	return s.books.ListAll(ctx)
}

// GetBook fetches a single book, reviews included.
func (s *CatalogService) GetBook(ctx context.Context, isbn string) (*model.Book, error) {
	b, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, fmt.Errorf("CatalogService.GetBook: %w", err)
	}
	return b, nil
}

// SearchByAuthor matches books whose author contains the query,
// case-insensitive. No match is a success with an empty result, not an
// error.
func (s *CatalogService) SearchByAuthor(ctx context.Context, query string) []model.Book {
	return s.books.SearchByAuthor(ctx, query)
}

// SearchByTitle is SearchByAuthor applied to titles.
func (s *CatalogService) SearchByTitle(ctx context.Context, query string) []model.Book {
	return s.books.SearchByTitle(ctx, query)
}

// AddBook validates the three required fields and inserts the book.
func (s *CatalogService) AddBook(ctx context.Context, isbn, title, author string) (*model.Book, error) {
	// 1) All three fields are required.
	if isbn == "" || title == "" || author == "" {
		return nil, fmt.Errorf("CatalogService.AddBook: isbn, title and author required: %w", ErrInvalidInput)
	}

	// 2) Insert; the store reports a duplicate ISBN.
	b, err := s.books.Insert(ctx, isbn, title, author)
	if err != nil {
		return nil, fmt.Errorf("CatalogService.AddBook: %w", err)
	}
	return b, nil
}
