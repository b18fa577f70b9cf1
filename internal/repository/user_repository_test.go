package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndExists(t *testing.T) {
	r := NewUserRepository()

	assert.False(t, r.Exists(context.Background(), "bob"))
	require.NoError(t, r.Register(context.Background(), "bob", "pw"))
	assert.True(t, r.Exists(context.Background(), "bob"))
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewUserRepository()

	require.NoError(t, r.Register(context.Background(), "bob", "pw"))

	// Rejected regardless of the password value.
	err := r.Register(context.Background(), "bob", "pw")
	assert.ErrorIs(t, err, ErrUserExists)
	err = r.Register(context.Background(), "bob", "other")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestMatchExactCaseSensitive(t *testing.T) {
	r := NewUserRepository()
	require.NoError(t, r.Register(context.Background(), "bob", "Secret"))

	assert.True(t, r.Match(context.Background(), "bob", "Secret"))
	assert.False(t, r.Match(context.Background(), "bob", "secret"))
	assert.False(t, r.Match(context.Background(), "bob", ""))
	assert.False(t, r.Match(context.Background(), "nobody", "Secret"))
}
