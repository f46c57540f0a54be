package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tavlaboard/tavla/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// bumpRevision increments the board revision counter inside a transaction,
// verifying it still matches the value read at the start of the operation.
// A mismatch means another writer reconciled the board concurrently.
func bumpRevision(ctx context.Context, tx *sql.Tx, read int64) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE board_meta SET revision = revision + 1 WHERE id = 1 AND revision = ?`,
		read,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return models.ErrStaleRevision
	}
	return nil
}

func readRevision(ctx context.Context, q queryer) (int64, error) {
	var rev int64
	err := q.QueryRowContext(ctx, `SELECT revision FROM board_meta WHERE id = 1`).Scan(&rev)
	if err != nil {
		return 0, err
	}
	return rev, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
