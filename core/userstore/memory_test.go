package userstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/principal"
	"github.com/dmitrymomot/authkit/core/userstore"
)

func newPrincipal(t *testing.T, username string) principal.Principal {
	t.Helper()
	p, err := principal.New(username, "", "$2a$10$digest", principal.RoleUser)
	require.NoError(t, err)
	return p
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("insert and find", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		p := newPrincipal(t, "alice")

		require.NoError(t, store.Insert(context.Background(), p))

		got, err := store.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		require.NoError(t, store.Insert(context.Background(), newPrincipal(t, "Bob")))

		_, err := store.FindByUsername(context.Background(), "bob")
		assert.NoError(t, err)
		_, err = store.FindByUsername(context.Background(), "BOB")
		assert.NoError(t, err)
	})

	t.Run("missing identifier", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		_, err := store.FindByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, userstore.ErrNotFound)
	})

	t.Run("duplicate identifier rejected regardless of case", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		require.NoError(t, store.Insert(context.Background(), newPrincipal(t, "carol")))

		err := store.Insert(context.Background(), newPrincipal(t, "Carol"))
		assert.ErrorIs(t, err, userstore.ErrDuplicate)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("canceled context stops lookup", func(t *testing.T) {
		t.Parallel()

		store := userstore.NewMemoryStore()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := store.FindByUsername(ctx, "anyone")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
