package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is the full DDL for the gateway. Statements are idempotent so the
// seeder and integration tests can both apply them.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id uuid PRIMARY KEY,
		email text NOT NULL UNIQUE,
		hashed_password text NOT NULL,
		hospital_name text NOT NULL,
		role text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS batches (
		id uuid PRIMARY KEY,
		batch_code text NOT NULL UNIQUE,
		medicine_name text NOT NULL,
		manufacturer text NOT NULL,
		expiry_date date NOT NULL,
		purity double precision NOT NULL,
		is_recalled boolean NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS scan_logs (
		seq bigserial,
		id uuid PRIMARY KEY,
		batch_code text NOT NULL,
		status text NOT NULL,
		scanned_by text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS scan_logs_recent_idx ON scan_logs (created_at DESC, seq DESC)`,
}

// EnsureSchema applies the DDL. Safe to run repeatedly.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
