package postgres

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

func New(dsn string) (*sqlx.DB, error) {
	return sqlx.Connect("pgx", dsn)
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS catalog_card (
		page        TEXT NOT NULL,
		id          INTEGER NOT NULL,
		position    INTEGER NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		image_url   TEXT NOT NULL,
		cta         TEXT NOT NULL,
		route       TEXT NOT NULL DEFAULT '#',
		rating      DOUBLE PRECISION,
		price       DOUBLE PRECISION,
		currency    TEXT,
		badge       TEXT,
		highlights  TEXT[] NOT NULL DEFAULT '{}',
		PRIMARY KEY (page, id)
	)`,
	`CREATE TABLE IF NOT EXISTS catalog_guide (
		slug       TEXT PRIMARY KEY,
		body       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS local_storage (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the catalog and local-storage tables when missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres: ensure schema: %w", err)
		}
	}
	return nil
}
