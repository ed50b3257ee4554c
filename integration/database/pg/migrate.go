package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies pending goose migrations from the configured directory.
// goose drives a database/sql handle, so a short-lived one is opened over
// the pgx stdlib driver alongside the pool.
func Migrate(ctx context.Context, cfg Config, log *slog.Logger) error {
	db, err := sql.Open("pgx", cfg.ConnectionString)
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	defer func() {
		if err := db.Close(); err != nil && log != nil {
			log.WarnContext(ctx, "failed to close migration db handle", slog.Any("error", err))
		}
	}()

	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	if err := goose.UpContext(ctx, db, cfg.MigrationsPath); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	if log != nil {
		log.InfoContext(ctx, "migrations applied", slog.String("path", cfg.MigrationsPath))
	}
	return nil
}
