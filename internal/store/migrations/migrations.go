// Package migrations creates and upgrades the agent's database schema.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS hosts (
		address VARCHAR PRIMARY KEY,
		cluster VARCHAR NOT NULL DEFAULT '',
		ssh_key_path VARCHAR NOT NULL DEFAULT '',
		status VARCHAR NOT NULL,
		os_family VARCHAR NOT NULL DEFAULT '',
		facts VARCHAR,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clusters (
		name VARCHAR PRIMARY KEY,
		network VARCHAR NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS networks (
		name VARCHAR PRIMARY KEY,
		type VARCHAR NOT NULL,
		options VARCHAR
	)`,
}

// Run applies every schema statement. Statements are idempotent, so Run is
// safe to call on every agent start.
func Run(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
