package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
)

func TestAddBookValidation(t *testing.T) {
	svc := NewCatalogService(repository.NewBookRepository())

	cases := []struct{ isbn, title, author string }{
		{"", "The Hobbit", "J.R.R. Tolkien"},
		{"9780547928227", "", "J.R.R. Tolkien"},
		{"9780547928227", "The Hobbit", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		_, err := svc.AddBook(context.Background(), tc.isbn, tc.title, tc.author)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	b, err := svc.AddBook(context.Background(), "9780547928227", "The Hobbit", "J.R.R. Tolkien")
	require.NoError(t, err)
	assert.Equal(t, "9780547928227", b.ISBN)

	_, err = svc.AddBook(context.Background(), "9780547928227", "The Hobbit", "J.R.R. Tolkien")
	assert.ErrorIs(t, err, repository.ErrBookExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository())

	assert.ErrorIs(t, svc.Register(context.Background(), "", "pw"), ErrInvalidInput)
	assert.ErrorIs(t, svc.Register(context.Background(), "bob", ""), ErrInvalidInput)

	require.NoError(t, svc.Register(context.Background(), "bob", "pw"))
	assert.ErrorIs(t, svc.Register(context.Background(), "bob", "other"), repository.ErrUserExists)
}

func TestLogin(t *testing.T) {
	users := repository.NewUserRepository()
	svc := NewUserService(users)
	require.NoError(t, users.Register(context.Background(), "bob", "pw"))

	assert.NoError(t, svc.Login(context.Background(), "bob", "pw"))
	assert.ErrorIs(t, svc.Login(context.Background(), "bob", "PW"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Login(context.Background(), "nobody", "pw"), ErrInvalidCredentials)
}

func TestDeleteReviewErrorOrder(t *testing.T) {
	books := repository.NewBookRepository()
	_, err := books.Insert(context.Background(), "9780140449136", "The Odyssey", "Homer")
	require.NoError(t, err)
	svc := NewReviewService(repository.NewReviewRepository(books))

	// Book check comes first: an unknown book with an unknown reviewer is
	// a book error, not a review error.
	_, err = svc.DeleteReview(context.Background(), "0000000000000", "carol")
	assert.ErrorIs(t, err, repository.ErrBookNotFound)

	_, err = svc.DeleteReview(context.Background(), "9780140449136", "carol")
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}
