package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/core/password"
)

func TestHasher_Hash(t *testing.T) {
	t.Parallel()

	t.Run("produces verifiable digest", func(t *testing.T) {
		t.Parallel()

		h := password.New(password.WithCost(bcrypt.MinCost))

		digest, err := h.Hash("s3cret-passw0rd")
		require.NoError(t, err)
		require.NotEmpty(t, digest)
		assert.NotEqual(t, "s3cret-passw0rd", digest)

		assert.True(t, h.Verify("s3cret-passw0rd", digest))
	})

	t.Run("salts every digest independently", func(t *testing.T) {
		t.Parallel()

		h := password.New(password.WithCost(bcrypt.MinCost))

		first, err := h.Hash("same-input")
		require.NoError(t, err)
		second, err := h.Hash("same-input")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, h.Verify("same-input", first))
		assert.True(t, h.Verify("same-input", second))
	})

	t.Run("rejects empty password", func(t *testing.T) {
		t.Parallel()

		h := password.New(password.WithCost(bcrypt.MinCost))

		_, err := h.Hash("")
		assert.ErrorIs(t, err, password.ErrEmptyPassword)
	})

	t.Run("rejects over-long password", func(t *testing.T) {
		t.Parallel()

		h := password.New(password.WithCost(bcrypt.MinCost))

		_, err := h.Hash(strings.Repeat("x", 73))
		assert.ErrorIs(t, err, password.ErrPasswordTooLong)
	})
}

func TestHasher_Verify(t *testing.T) {
	t.Parallel()

	t.Run("mismatch is false, not an error", func(t *testing.T) {
		t.Parallel()

		h := password.New(password.WithCost(bcrypt.MinCost))

		digest, err := h.Hash("correct-horse")
		require.NoError(t, err)

		assert.False(t, h.Verify("battery-staple", digest))
	})

	t.Run("garbage digest is false", func(t *testing.T) {
		t.Parallel()

		h := password.New(password.WithCost(bcrypt.MinCost))
		assert.False(t, h.Verify("anything", "not-a-bcrypt-digest"))
	})
}

func TestHasher_Cost(t *testing.T) {
	t.Parallel()

	t.Run("defaults to bcrypt default cost", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, bcrypt.DefaultCost, password.New().Cost())
	})

	t.Run("clamps out-of-range costs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, bcrypt.DefaultCost, password.New(password.WithCost(-1)).Cost())
		assert.Equal(t, bcrypt.MaxCost, password.New(password.WithCost(99)).Cost())
	})

	t.Run("accepts explicit cost", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 12, password.New(password.WithCost(12)).Cost())
	})
}
