package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

// MoveItem is the authoritative move reconciler. In a single transaction it:
//   - validates the item, target column, and target index before mutating,
//   - appends a history entry and updates the column when the column changes,
//   - clamps the target index to [0, destination size] and assigns the moved
//     item's rank,
//   - renumbers every other item in the destination column, skipping the
//     moved item's slot, and independently renumbers the source column when
//     the move crossed columns,
//   - bumps the board revision, failing with ErrStaleRevision if another
//     writer got in between the read and the write.
//
// After a successful call both affected columns satisfy the dense-rank
// invariant.
func (r *Repository) MoveItem(ctx context.Context, req MoveRequest) (*models.Item, error) {
	if req.TargetIndex != nil && *req.TargetIndex < 0 {
		return nil, models.ErrInvalidIndex
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		rev, err := readRevision(ctx, tx)
		if err != nil {
			return err
		}

		var currentColumn string
		err = tx.QueryRowContext(ctx,
			`SELECT column_key FROM items WHERE id = ?`, req.ItemID.String(),
		).Scan(&currentColumn)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrItemNotFound
		}
		if err != nil {
			return err
		}

		source := types.ColumnID(currentColumn)
		dest := source
		if req.TargetColumn != nil {
			dest = *req.TargetColumn
		}

		columnChanged := dest != source
		if columnChanged {
			if err := columnExists(ctx, tx, dest); err != nil {
				return err
			}
			if err := appendTransition(ctx, tx, req.ItemID, source, dest); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE items SET column_key = ? WHERE id = ?`,
				dest.String(), req.ItemID.String(),
			); err != nil {
				return err
			}
		}

		// Destination rank: requested index clamped to the column size, or
		// append at the end when no index was given.
		others, err := columnRanksExcept(ctx, tx, dest, req.ItemID)
		if err != nil {
			return err
		}
		index := len(others)
		if req.TargetIndex != nil {
			index = min(*req.TargetIndex, len(others))
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET rank = ? WHERE id = ?`,
			index, req.ItemID.String(),
		); err != nil {
			return err
		}

		// Renumber the destination's other items around the reserved slot.
		if err := assignRanks(ctx, tx, others, index); err != nil {
			return err
		}

		// A cross-column move leaves a hole in the source column; close it in
		// the same transaction so both columns come out dense.
		if columnChanged {
			if err := renumberColumn(ctx, tx, source, req.ItemID, -1); err != nil {
				return err
			}
		}

		return bumpRevision(ctx, tx, rev)
	})
	if err != nil {
		return nil, err
	}

	return r.GetItem(ctx, req.ItemID)
}

// appendTransition records a human-readable history entry for a column
// change, using the columns' display names.
func appendTransition(ctx context.Context, tx *sql.Tx, id types.ItemID, from, to types.ColumnID) error {
	fromName, err := columnName(ctx, tx, from)
	if err != nil {
		return err
	}
	toName, err := columnName(ctx, tx, to)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO item_history (item_id, entry_date, description) VALUES (?, ?, ?)`,
		id.String(), time.Now().UTC(), fmt.Sprintf("Moved from %s to %s", fromName, toName),
	)
	return err
}

// columnName resolves a column's display name, falling back to the key for
// columns no longer present in configuration.
func columnName(ctx context.Context, tx *sql.Tx, col types.ColumnID) (string, error) {
	var name string
	err := tx.QueryRowContext(ctx,
		`SELECT name FROM columns WHERE key = ?`, col.String(),
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return col.String(), nil
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// columnRanksExcept returns the IDs of a column's items sorted by their
// existing rank, excluding one item.
func columnRanksExcept(ctx context.Context, tx *sql.Tx, col types.ColumnID, except types.ItemID) ([]string, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM items WHERE column_key = ? AND id != ? ORDER BY rank`,
		col.String(), except.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// assignRanks writes dense sequential ranks to the given items, in order,
// skipping the numeric slot equal to skip (-1 skips nothing).
func assignRanks(ctx context.Context, tx *sql.Tx, ids []string, skip int) error {
	next := 0
	for _, id := range ids {
		if next == skip {
			next++
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET rank = ? WHERE id = ?`, next, id,
		); err != nil {
			return err
		}
		next++
	}
	return nil
}

// renumberColumn reassigns dense ranks to a whole column, excluding one item
func renumberColumn(ctx context.Context, tx *sql.Tx, col types.ColumnID, except types.ItemID, skip int) error {
	ids, err := columnRanksExcept(ctx, tx, col, except)
	if err != nil {
		return err
	}
	return assignRanks(ctx, tx, ids, skip)
}
