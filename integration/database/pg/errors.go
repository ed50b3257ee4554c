package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrInvalidConnString indicates the connection string could not be parsed.
	ErrInvalidConnString = errors.New("invalid postgres connection string")
	// ErrConnectionFailed indicates the pool could not be established.
	ErrConnectionFailed = errors.New("failed to connect to postgres")
	// ErrHealthcheckFailed indicates the ping check failed.
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")
	// ErrMigrationFailed indicates goose could not apply migrations.
	ErrMigrationFailed = errors.New("failed to apply migrations")
)

// IsDuplicateKeyError reports whether the error is a unique constraint
// violation (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsGrammarError reports whether the error is a SQL syntax or schema error
// (SQLSTATE class 42), e.g. an undefined table or column.
func IsGrammarError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "42"
}
