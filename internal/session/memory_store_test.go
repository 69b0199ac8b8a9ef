package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	userID := uuid.New()

	token, err := store.Create(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	// Each session gets its own token.
	token2, err := store.Create(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)

	require.NoError(t, store.Delete(ctx, token))
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is harmless.
	assert.NoError(t, store.Delete(ctx, token))

	_, err = store.Get(ctx, "unknown-token")
	assert.ErrorIs(t, err, ErrNotFound)
}
