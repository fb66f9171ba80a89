// Package postgres provides the optional check-history repository.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds a pgx pool and verifies the connection.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connected", "max_conns", poolCfg.MaxConns)
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS live_checks (
    id             BIGSERIAL PRIMARY KEY,
    channel_id     TEXT NOT NULL DEFAULT '',
    channel_input  TEXT NOT NULL DEFAULT '',
    is_live        BOOLEAN NOT NULL,
    livestream_url TEXT NOT NULL DEFAULT '',
    title          TEXT NOT NULL DEFAULT '',
    error          TEXT NOT NULL DEFAULT '',
    checked_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS live_checks_checked_at_idx ON live_checks (checked_at DESC);
`

// ApplySchema creates the history table if it does not exist yet.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
