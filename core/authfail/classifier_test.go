package authfail_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/core/authfail"
	"github.com/dmitrymomot/authkit/core/userstore"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		kind authfail.Kind
	}{
		{"bad credentials", authfail.ErrBadCredentials, authfail.KindInvalidCredentials},
		{"unknown user", authfail.ErrUnknownUser, authfail.KindInvalidCredentials},
		{"inactive account", authfail.ErrAccountInactive, authfail.KindInvalidCredentials},
		{"store not found", userstore.ErrNotFound, authfail.KindInvalidCredentials},
		{"lookup failure", authfail.ErrLookupFailed, authfail.KindAccountLookupError},
		{"store query failure", userstore.ErrQueryFailed, authfail.KindAccountLookupError},
		{"lookup timeout", context.DeadlineExceeded, authfail.KindAccountLookupError},
		{"lookup canceled", context.Canceled, authfail.KindAccountLookupError},
		{"no credentials", authfail.ErrNoCredentials, authfail.KindNoCredentials},
		{"wrapped sentinel", fmt.Errorf("login: %w", authfail.ErrBadCredentials), authfail.KindInvalidCredentials},
		{"joined sentinel", errors.Join(authfail.ErrLookupFailed, errors.New("dial tcp: refused")), authfail.KindAccountLookupError},
		{"arbitrary error", errors.New("something else"), authfail.KindUnknown},
		{"nil error", nil, authfail.KindUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, authfail.Classify(tt.err))
		})
	}
}

func TestKind_Message(t *testing.T) {
	t.Parallel()

	// Unknown identifier and wrong password must read identically so the
	// login form cannot be used to probe registered accounts.
	unknownKind := authfail.Classify(authfail.ErrUnknownUser)
	badPassKind := authfail.Classify(authfail.ErrBadCredentials)

	assert.Equal(t, unknownKind.Message(), badPassKind.Message())
	assert.Equal(t, "account or password mismatch", badPassKind.Message())
}

func TestClassifier_Redirect(t *testing.T) {
	t.Parallel()

	t.Run("encodes message into failure path", func(t *testing.T) {
		t.Parallel()

		c := authfail.NewClassifier("")
		kind, target := c.Redirect(authfail.ErrBadCredentials)

		assert.Equal(t, authfail.KindInvalidCredentials, kind)
		assert.Equal(t, "/auth/fail?message=account+or+password+mismatch", target)
	})

	t.Run("custom failure path", func(t *testing.T) {
		t.Parallel()

		c := authfail.NewClassifier("/login/error")
		_, target := c.Redirect(authfail.ErrLookupFailed)

		assert.Equal(t, "/login/error?message=server+error+occurred+during+authentication", target)
	})

	t.Run("unclassified errors still redirect", func(t *testing.T) {
		t.Parallel()

		c := authfail.NewClassifier("")
		kind, target := c.Redirect(errors.New("surprise"))

		assert.Equal(t, authfail.KindUnknown, kind)
		assert.Contains(t, target, "/auth/fail?message=")
	})
}
