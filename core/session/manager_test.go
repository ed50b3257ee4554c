package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/session"
)

// mockStore implements session.Store for testing manager behavior in
// isolation from a real store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetByToken(ctx context.Context, token string) (session.Session, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *mockStore) GetByPrincipal(ctx context.Context, principalID uuid.UUID) (session.Session, error) {
	args := m.Called(ctx, principalID)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *mockStore) Save(ctx context.Context, sess session.Session) (bool, error) {
	args := m.Called(ctx, sess)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockStore) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func expiredSession(t *testing.T) session.Session {
	t.Helper()
	sess, err := session.New(uuid.New(), nil, -time.Hour)
	require.NoError(t, err)
	return sess
}

func TestManager_Start(t *testing.T) {
	t.Parallel()

	t.Run("creates and saves session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, session.WithTTL(time.Hour))
		principalID := uuid.New()

		store.On("Save", mock.Anything, mock.MatchedBy(func(s session.Session) bool {
			return s.PrincipalID == principalID && s.Token != ""
		})).Return(false, nil)

		sess, err := mgr.Start(context.Background(), principalID, []string{"USER"})
		require.NoError(t, err)

		assert.Equal(t, principalID, sess.PrincipalID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)
		store.AssertExpectations(t)
	})

	t.Run("wraps store failure", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store)

		store.On("Save", mock.Anything, mock.Anything).Return(false, assert.AnError)

		_, err := mgr.Start(context.Background(), uuid.New(), nil)
		assert.ErrorIs(t, err, session.ErrSaveSession)
	})
}

func TestManager_GetByToken(t *testing.T) {
	t.Parallel()

	t.Run("returns valid session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store)

		valid, err := session.New(uuid.New(), nil, time.Hour)
		require.NoError(t, err)
		store.On("GetByToken", mock.Anything, valid.Token).Return(valid, nil)

		got, err := mgr.GetByToken(context.Background(), valid.Token)
		require.NoError(t, err)
		assert.Equal(t, valid.Token, got.Token)
	})

	t.Run("expired session is removed and reported", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store)

		dead := expiredSession(t)
		store.On("GetByToken", mock.Anything, dead.Token).Return(dead, nil)
		store.On("Delete", mock.Anything, dead.Token).Return(nil)

		_, err := mgr.GetByToken(context.Background(), dead.Token)
		assert.ErrorIs(t, err, session.ErrExpired)
		store.AssertExpectations(t)
	})

	t.Run("empty token is not found", func(t *testing.T) {
		t.Parallel()

		mgr := session.NewManager(&mockStore{})
		_, err := mgr.GetByToken(context.Background(), "")
		assert.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestManager_Touch(t *testing.T) {
	t.Parallel()

	t.Run("saves when interval elapsed", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, session.WithTTL(time.Hour), session.WithTouchInterval(5*time.Minute))

		sess, err := session.New(uuid.New(), nil, time.Hour)
		require.NoError(t, err)
		sess.LastAccessedAt = time.Now().Add(-10 * time.Minute)

		store.On("Save", mock.Anything, mock.Anything).Return(false, nil)

		touched, err := mgr.Touch(context.Background(), sess)
		require.NoError(t, err)
		assert.True(t, touched.LastAccessedAt.After(sess.LastAccessedAt))
		store.AssertExpectations(t)
	})

	t.Run("skips save inside interval", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store, session.WithTouchInterval(5*time.Minute))

		sess, err := session.New(uuid.New(), nil, time.Hour)
		require.NoError(t, err)

		got, err := mgr.Touch(context.Background(), sess)
		require.NoError(t, err)
		assert.Equal(t, sess, got)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestManager_Logout(t *testing.T) {
	t.Parallel()

	t.Run("removes active session", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store)

		store.On("Delete", mock.Anything, "tok").Return(nil)
		require.NoError(t, mgr.Logout(context.Background(), "tok"))
		store.AssertExpectations(t)
	})

	t.Run("missing session is a no-op success", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store)

		store.On("Delete", mock.Anything, "gone").Return(session.ErrNotFound)
		assert.NoError(t, mgr.Logout(context.Background(), "gone"))
	})

	t.Run("empty token is a no-op success", func(t *testing.T) {
		t.Parallel()

		mgr := session.NewManager(&mockStore{})
		assert.NoError(t, mgr.Logout(context.Background(), ""))
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		t.Parallel()

		store := &mockStore{}
		mgr := session.NewManager(store)

		store.On("Delete", mock.Anything, "tok").Return(assert.AnError)
		assert.ErrorIs(t, mgr.Logout(context.Background(), "tok"), session.ErrDeleteSession)
	})
}
