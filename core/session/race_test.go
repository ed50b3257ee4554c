package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
)

// TestConcurrentLoginsKeepSingleSession verifies the single-session
// invariant under concurrent logins: whichever Save lands last supersedes
// every other session for the principal, so exactly one stays active.
func TestConcurrentLoginsKeepSingleSession(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	mgr := session.NewManager(store, session.WithTTL(time.Hour))
	principalID := uuid.New()

	const numLogins = 50
	errs := make(chan error, numLogins)
	var wg sync.WaitGroup
	wg.Add(numLogins)

	for i := 0; i < numLogins; i++ {
		go func() {
			defer wg.Done()
			_, err := mgr.Start(context.Background(), principalID, []string{"USER"})
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, 1, store.Len())

	sess, err := store.GetByPrincipal(context.Background(), principalID)
	require.NoError(t, err)
	require.Equal(t, principalID, sess.PrincipalID)

	// The surviving token must resolve; every other token was removed.
	_, err = store.GetByToken(context.Background(), sess.Token)
	require.NoError(t, err)
}

// TestConcurrentReadsDuringLogin exercises parallel authorization-style
// reads against concurrent login writes.
func TestConcurrentReadsDuringLogin(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	mgr := session.NewManager(store, session.WithTTL(time.Hour))
	principalID := uuid.New()

	first, err := mgr.Start(context.Background(), principalID, []string{"USER"})
	require.NoError(t, err)

	errs := make(chan error, 40)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			// Reads may observe either generation; they must never error
			// with anything besides not-found during the swap.
			if _, err := store.GetByToken(context.Background(), first.Token); err != nil && !errors.Is(err, session.ErrNotFound) {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			_, err := mgr.Start(context.Background(), principalID, []string{"USER"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, 1, store.Len())
}
