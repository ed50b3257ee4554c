package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/core/principal"
	"github.com/dmitrymomot/authkit/core/userstore"
)

// UserStore is the Postgres-backed credential store adapter.
// Persistence errors are normalized into the userstore taxonomy: unique
// violations become ErrDuplicate, grammar/schema errors and everything else
// wrap ErrQueryFailed, so the core never sees raw driver errors.
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore creates a user store over the connection pool.
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

const findByUsernameQuery = `
SELECT id, username, display_name, password_hash, role,
       disabled, locked, credentials_expire_at, expires_at, created_at
FROM users
WHERE lower(username) = lower($1)`

// FindByUsername returns the principal registered under the identifier.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (principal.Principal, error) {
	var (
		p       principal.Principal
		role    string
		credExp *time.Time
		accExp  *time.Time
	)

	err := s.pool.QueryRow(ctx, findByUsernameQuery, username).Scan(
		&p.ID, &p.Username, &p.DisplayName, &p.PasswordHash, &role,
		&p.Disabled, &p.Locked, &credExp, &accExp, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return principal.Principal{}, userstore.ErrNotFound
		}
		return principal.Principal{}, errors.Join(userstore.ErrQueryFailed, err)
	}

	p.Role, err = principal.ParseRole(role)
	if err != nil {
		return principal.Principal{}, errors.Join(userstore.ErrQueryFailed, err)
	}
	if credExp != nil {
		p.CredentialsExpireAt = *credExp
	}
	if accExp != nil {
		p.ExpiresAt = *accExp
	}
	return p, nil
}

const insertQuery = `
INSERT INTO users (id, username, display_name, password_hash, role,
                   disabled, locked, credentials_expire_at, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Insert persists a new registration.
func (s *UserStore) Insert(ctx context.Context, p principal.Principal) error {
	_, err := s.pool.Exec(ctx, insertQuery,
		p.ID, p.Username, p.DisplayName, p.PasswordHash, p.Role.String(),
		p.Disabled, p.Locked, nullableTime(p.CredentialsExpireAt), nullableTime(p.ExpiresAt), p.CreatedAt,
	)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return userstore.ErrDuplicate
		}
		return errors.Join(userstore.ErrQueryFailed, err)
	}
	return nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
