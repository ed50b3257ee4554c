// Package pg provides PostgreSQL connection management, migrations, and the
// Postgres-backed credential store adapter.
//
// Connect wraps the pgx pool with retry logic and a connectivity ping;
// Migrate applies goose migrations (the users table schema ships in
// migrations/). UserStore implements userstore.Store, classifying driver
// errors into the adapter taxonomy: SQLSTATE 23505 unique violations map to
// userstore.ErrDuplicate, and every other failure, including SQL
// grammar/schema errors, wraps userstore.ErrQueryFailed. The core treats
// both as "no row inserted"; raw driver errors never cross the adapter
// boundary.
//
// Configuration comes from environment variables via the Config struct:
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//	pool, err := pg.Connect(ctx, cfg)
package pg
