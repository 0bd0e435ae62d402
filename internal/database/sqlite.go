package database

import (
	"context"
	"database/sql"
	"fmt"
)

// sqliteSchema mirrors migrations/postgresql for SQLite. Timestamps are INTEGER unix nanoseconds.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS auth_tokens (
		id TEXT PRIMARY KEY,
		stored_value TEXT NOT NULL UNIQUE,
		parameter_value TEXT NOT NULL,
		token_type TEXT,
		status TEXT NOT NULL CHECK (status IN ('ACTIVE', 'PARTIALLY_USED', 'USED', 'INVALIDATED')),
		expiry_time INTEGER NOT NULL,
		usage_limit INTEGER CHECK (usage_limit IS NULL OR usage_limit >= 1),
		usage_count INTEGER NOT NULL DEFAULT 0,
		hashing_mode TEXT NOT NULL DEFAULT 'NONE' CHECK (hashing_mode IN ('NONE', 'SHA256')),
		metadata TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		used_at INTEGER,
		CHECK (usage_count >= 0 AND (usage_limit IS NULL OR usage_count <= usage_limit))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_auth_tokens_parameter_type ON auth_tokens (parameter_value, token_type)`,
	`CREATE INDEX IF NOT EXISTS idx_auth_tokens_expiry_time ON auth_tokens (expiry_time)`,
	`CREATE INDEX IF NOT EXISTS idx_auth_tokens_status ON auth_tokens (status)`,
}

// EnsureSQLiteSchema creates the SQLite tables and indexes if they do not exist.
// It is safe to call on every start.
func EnsureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply sqlite schema: %w", err)
		}
	}
	return nil
}
