package database

import (
	"context"
	"database/sql"

	"github.com/tavlaboard/tavla/internal/models"
)

// runMigrations creates the schema and seeds the configured columns
func runMigrations(ctx context.Context, db *sql.DB, columns []*models.Column) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS columns (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			column_key TEXT NOT NULL,
			rank INTEGER NOT NULL,
			title TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			flagged INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (column_key) REFERENCES columns(key)
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS item_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_id TEXT NOT NULL,
			entry_date DATETIME NOT NULL,
			description TEXT NOT NULL,
			FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Single-row revision counter; every reconciled write bumps it so racing
	// writers can detect that the collection changed under them.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS board_meta (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			revision INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT OR IGNORE INTO board_meta (id, revision) VALUES (1, 0)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_items_column
		ON items(column_key, rank)
	`)
	if err != nil {
		return err
	}

	return seedColumns(ctx, db, columns)
}

// seedColumns upserts the configured columns. Column config is authoritative
// for display names and ordering; items referencing removed columns keep their
// rows and reappear if the column is restored.
func seedColumns(ctx context.Context, db *sql.DB, columns []*models.Column) error {
	for _, col := range columns {
		_, err := db.ExecContext(ctx,
			`INSERT INTO columns (key, name, position) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET name = excluded.name, position = excluded.position`,
			col.Key.String(), col.Name, col.Position,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
