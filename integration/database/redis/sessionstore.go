package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/core/session"
)

const (
	tokenKeyPrefix     = "authkit:session:token:"
	principalKeyPrefix = "authkit:session:principal:"
)

// saveScript inserts the session and supersedes any other session held by
// the same principal in one atomic step, so two concurrent logins for one
// principal always converge on a single active session.
//
// KEYS[1] = token key, KEYS[2] = principal key
// ARGV[1] = session JSON, ARGV[2] = token, ARGV[3] = token key prefix,
// ARGV[4] = TTL in milliseconds
var saveScript = redis.NewScript(`
local superseded = 0
local old = redis.call("GET", KEYS[2])
if old and old ~= ARGV[2] then
  redis.call("DEL", ARGV[3] .. old)
  superseded = 1
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[4])
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[4])
return superseded
`)

// deleteScript removes the token record and clears the principal index only
// if it still points at this token; a concurrent login may already have
// replaced it.
//
// KEYS[1] = token key, KEYS[2] = principal key, ARGV[1] = token
var deleteScript = redis.NewScript(`
local removed = redis.call("DEL", KEYS[1])
if redis.call("GET", KEYS[2]) == ARGV[1] then
  redis.call("DEL", KEYS[2])
end
return removed
`)

// SessionStore is a Redis-backed session.Store. Sessions live under a token
// key with the principal index pointing at the active token; both keys carry
// the session TTL so Redis expires them natively.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a session store over the Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// GetByToken returns the session stored under the token.
func (s *SessionStore) GetByToken(ctx context.Context, token string) (session.Session, error) {
	data, err := s.client.Get(ctx, tokenKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, err
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

// GetByPrincipal returns the principal's active session.
func (s *SessionStore) GetByPrincipal(ctx context.Context, principalID uuid.UUID) (session.Session, error) {
	token, err := s.client.Get(ctx, principalKeyPrefix+principalID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, err
	}
	return s.GetByToken(ctx, token)
}

// Save inserts or updates the session, superseding any other active session
// for the same principal atomically server-side.
func (s *SessionStore) Save(ctx context.Context, sess session.Session) (bool, error) {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return false, session.ErrExpired
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return false, err
	}

	keys := []string{
		tokenKeyPrefix + sess.Token,
		principalKeyPrefix + sess.PrincipalID.String(),
	}
	superseded, err := saveScript.Run(ctx, s.client, keys,
		data, sess.Token, tokenKeyPrefix, ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return superseded == 1, nil
}

// Delete removes the session with the given token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	sess, err := s.GetByToken(ctx, token)
	if err != nil {
		return err
	}

	keys := []string{
		tokenKeyPrefix + token,
		principalKeyPrefix + sess.PrincipalID.String(),
	}
	removed, err := deleteScript.Run(ctx, s.client, keys, token).Int()
	if err != nil {
		return err
	}
	if removed == 0 {
		return session.ErrNotFound
	}
	return nil
}

// DeleteExpired is a no-op: both session keys carry the session TTL, so
// Redis expires them natively.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
