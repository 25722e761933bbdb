package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Key-value backing store; the profile blob lives under a single key.
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS game_reports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			raw_score REAL NOT NULL,
			score INTEGER NOT NULL,
			xp_awarded INTEGER NOT NULL,
			reported_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_game_reports_reported_at ON game_reports(reported_at);`,
		`CREATE INDEX IF NOT EXISTS idx_game_reports_game_id ON game_reports(game_id);`,
	}

	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		return nil
	})
}
