package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

// Repository implements Store on top of SQLite
type Repository struct {
	db *sql.DB
}

// NewRepository creates a Repository wrapping the given database connection
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetColumns retrieves the board's columns in display order
func (r *Repository) GetColumns(ctx context.Context) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, name, position FROM columns ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		var col models.Column
		var key string
		if err := rows.Scan(&key, &col.Name, &col.Position); err != nil {
			return nil, err
		}
		col.Key = types.ColumnID(key)
		columns = append(columns, &col)
	}
	return columns, rows.Err()
}

// GetAllItems retrieves the full item collection with history, ordered by
// column and rank. This is the read the resync trigger depends on.
func (r *Repository) GetAllItems(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, column_key, rank, title, note, flagged, created_at
		 FROM items
		 ORDER BY column_key, rank`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	byID := make(map[types.ItemID]*models.Item)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		byID[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachHistory(ctx, byID); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem retrieves a single item with its history
func (r *Repository) GetItem(ctx context.Context, id types.ItemID) (*models.Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, column_key, rank, title, note, flagged, created_at
		 FROM items WHERE id = ?`,
		id.String(),
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrItemNotFound
		}
		return nil, err
	}

	byID := map[types.ItemID]*models.Item{item.ID: item}
	if err := r.attachHistory(ctx, byID); err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem appends a new item at the end of the given column
func (r *Repository) CreateItem(ctx context.Context, title, note string, column types.ColumnID) (*models.Item, error) {
	id := types.ItemID(uuid.NewString())
	now := time.Now().UTC()

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		rev, err := readRevision(ctx, tx)
		if err != nil {
			return err
		}

		if err := columnExists(ctx, tx, column); err != nil {
			return err
		}

		var count int
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM items WHERE column_key = ?`, column.String(),
		).Scan(&count)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO items (id, column_key, rank, title, note, flagged, created_at)
			 VALUES (?, ?, ?, ?, ?, 0, ?)`,
			id.String(), column.String(), count, title, note, now,
		)
		if err != nil {
			return err
		}

		return bumpRevision(ctx, tx, rev)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return r.GetItem(ctx, id)
}

// UpdateItem updates an item's title and note
func (r *Repository) UpdateItem(ctx context.Context, id types.ItemID, title, note string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET title = ?, note = ? WHERE id = ?`,
		title, note, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return requireRow(res)
}

// SetItemFlag sets or clears an item's flag
func (r *Repository) SetItemFlag(ctx context.Context, id types.ItemID, flagged bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET flagged = ? WHERE id = ?`,
		flagged, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to flag item: %w", err)
	}
	return requireRow(res)
}

// DeleteItem removes an item and renumbers its column to restore density
func (r *Repository) DeleteItem(ctx context.Context, id types.ItemID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		rev, err := readRevision(ctx, tx)
		if err != nil {
			return err
		}

		var column string
		err = tx.QueryRowContext(ctx,
			`SELECT column_key FROM items WHERE id = ?`, id.String(),
		).Scan(&column)
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrItemNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id.String()); err != nil {
			return err
		}

		if err := renumberColumn(ctx, tx, types.ColumnID(column), "", -1); err != nil {
			return err
		}

		return bumpRevision(ctx, tx, rev)
	})
}

// Revision returns the board's current revision counter
func (r *Repository) Revision(ctx context.Context) (int64, error) {
	return readRevision(ctx, r.db)
}

// attachHistory loads history entries for the given items, oldest first
func (r *Repository) attachHistory(ctx context.Context, byID map[types.ItemID]*models.Item) error {
	if len(byID) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id, entry_date, description FROM item_history ORDER BY id`,
	)
	if err != nil {
		return fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID string
		var entry models.HistoryEntry
		if err := rows.Scan(&itemID, &entry.Date, &entry.Description); err != nil {
			return err
		}
		if item, ok := byID[types.ItemID(itemID)]; ok {
			item.History = append(item.History, entry)
		}
	}
	return rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var id, column string
	if err := row.Scan(&id, &column, &item.Rank, &item.Title, &item.Note, &item.Flagged, &item.CreatedAt); err != nil {
		return nil, err
	}
	item.ID = types.ItemID(id)
	item.Column = types.ColumnID(column)
	return &item, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrItemNotFound
	}
	return nil
}

func columnExists(ctx context.Context, tx *sql.Tx, column types.ColumnID) error {
	var one int
	err := tx.QueryRowContext(ctx,
		`SELECT 1 FROM columns WHERE key = ?`, column.String(),
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", models.ErrUnknownColumn, column)
	}
	return err
}
