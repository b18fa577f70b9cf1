package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/model"
)

// BookRepository is the in-memory catalog store, keyed by ISBN.
// All access goes through the mutex; books and review maps handed out to
// callers are always copies, never the live entries.
type BookRepository struct {
	mu    sync.RWMutex
	books map[string]*model.Book
}

func NewBookRepository() *BookRepository {
	return &BookRepository{books: make(map[string]*model.Book)}
}

// Seed loads a book with any pre-existing reviews, replacing a previous
// entry with the same ISBN. Startup use only.
func (r *BookRepository) Seed(book model.Book) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if book.Reviews == nil {
		book.Reviews = make(map[string]string)
	}
	r.books[book.ISBN] = &book
}

// ListAll returns every book as a summary (reviews excluded), sorted by
// ISBN for stable output.
func (r *BookRepository) ListAll(ctx context.Context) []model.BookSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]model.BookSummary, 0, len(r.books))
	for _, b := range r.books {
		list = append(list, b.Summary())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ISBN < list[j].ISBN })
	return list
}

// GetByISBN returns a copy of the book, or ErrBookNotFound.
func (r *BookRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, fmt.Errorf("BookRepository.GetByISBN: %s: %w", isbn, ErrBookNotFound)
	}
	return cloneBook(b), nil
}

// SearchByAuthor returns all books whose author contains the query,
// case-insensitive. An empty query matches everything.
func (r *BookRepository) SearchByAuthor(ctx context.Context, query string) []model.Book {
	return r.search(func(b *model.Book) string { return b.Author }, query)
}

// SearchByTitle is SearchByAuthor applied to the title field.
func (r *BookRepository) SearchByTitle(ctx context.Context, query string) []model.Book {
	return r.search(func(b *model.Book) string { return b.Title }, query)
}

// Insert adds a new book with an empty review map, or ErrBookExists when
// the ISBN is already taken.
func (r *BookRepository) Insert(ctx context.Context, isbn, title, author string) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[isbn]; ok {
		return nil, fmt.Errorf("BookRepository.Insert: %s: %w", isbn, ErrBookExists)
	}
	b := &model.Book{
		ISBN:    isbn,
		Title:   title,
		Author:  author,
		Reviews: make(map[string]string),
	}
	r.books[isbn] = b
	return cloneBook(b), nil
}

func (r *BookRepository) search(field func(*model.Book) string, query string) []model.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	found := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		if strings.Contains(strings.ToLower(field(b)), query) {
			found = append(found, *cloneBook(b))
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ISBN < found[j].ISBN })
	return found
}

func cloneBook(b *model.Book) *model.Book {
	out := &model.Book{
		ISBN:    b.ISBN,
		Title:   b.Title,
		Author:  b.Author,
		Reviews: make(map[string]string, len(b.Reviews)),
	}
	for user, text := range b.Reviews {
		out.Reviews[user] = text
	}
	return out
}
