package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	columns := []*models.Column{
		{Key: "todo", Name: "todo", Position: 0},
		{Key: "doing", Name: "doing", Position: 1},
		{Key: "done", Name: "done", Position: 2},
	}
	if err := runMigrations(ctx, db, columns); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewRepository(db)
}

// seedItem inserts an item with an explicit rank, bypassing CreateItem
func seedItem(t *testing.T, r *Repository, id, column string, rank int) {
	t.Helper()
	_, err := r.db.ExecContext(context.Background(),
		`INSERT INTO items (id, column_key, rank, title, note, created_at)
		 VALUES (?, ?, ?, ?, '', ?)`,
		id, column, rank, id, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("Failed to seed item %s: %v", id, err)
	}
}

// assertColumnOrder verifies a column contains exactly the given items in
// order, with dense ranks 0..n-1.
func assertColumnOrder(t *testing.T, r *Repository, column string, want []string) {
	t.Helper()

	rows, err := r.db.QueryContext(context.Background(),
		`SELECT id, rank FROM items WHERE column_key = ? ORDER BY rank`, column,
	)
	if err != nil {
		t.Fatalf("Failed to query column %s: %v", column, err)
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		var id string
		var rank int
		if err := rows.Scan(&id, &rank); err != nil {
			t.Fatalf("Failed to scan row: %v", err)
		}
		if i >= len(want) {
			t.Fatalf("Column %s has more than %d items", column, len(want))
		}
		if id != want[i] {
			t.Errorf("Column %s position %d: expected %s, got %s", column, i, want[i], id)
		}
		if rank != i {
			t.Errorf("Column %s item %s: expected rank %d, got %d", column, id, i, rank)
		}
		i++
	}
	if i != len(want) {
		t.Errorf("Column %s: expected %d items, got %d", column, len(want), i)
	}
}

func TestCreateItemAppendsAtEnd(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	first, err := repo.CreateItem(ctx, "First", "", "todo")
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}
	second, err := repo.CreateItem(ctx, "Second", "some note", "todo")
	if err != nil {
		t.Fatalf("Failed to create item: %v", err)
	}

	if first.Rank != 0 {
		t.Errorf("Expected first item rank 0, got %d", first.Rank)
	}
	if second.Rank != 1 {
		t.Errorf("Expected second item rank 1, got %d", second.Rank)
	}
	if second.Note != "some note" {
		t.Errorf("Expected note to round-trip, got %q", second.Note)
	}
}

func TestCreateItemUnknownColumn(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.CreateItem(context.Background(), "Task", "", "archive")
	if !errors.Is(err, models.ErrUnknownColumn) {
		t.Errorf("Expected ErrUnknownColumn, got %v", err)
	}
}

func TestGetItemNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetItem(context.Background(), "no-such-item")
	if !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItem(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	seedItem(t, repo, "a", "todo", 0)

	if err := repo.UpdateItem(ctx, "a", "New title", "new note"); err != nil {
		t.Fatalf("Failed to update item: %v", err)
	}

	item, err := repo.GetItem(ctx, "a")
	if err != nil {
		t.Fatalf("Failed to get item: %v", err)
	}
	if item.Title != "New title" || item.Note != "new note" {
		t.Errorf("Expected updated fields, got title %q note %q", item.Title, item.Note)
	}

	if err := repo.UpdateItem(ctx, "ghost", "x", ""); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestSetItemFlag(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	seedItem(t, repo, "a", "todo", 0)

	if err := repo.SetItemFlag(ctx, "a", true); err != nil {
		t.Fatalf("Failed to flag item: %v", err)
	}

	item, err := repo.GetItem(ctx, "a")
	if err != nil {
		t.Fatalf("Failed to get item: %v", err)
	}
	if !item.Flagged {
		t.Error("Expected item to be flagged")
	}
}

func TestDeleteItemRenumbersColumn(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	seedItem(t, repo, "a", "todo", 0)
	seedItem(t, repo, "b", "todo", 1)
	seedItem(t, repo, "c", "todo", 2)

	if err := repo.DeleteItem(ctx, "b"); err != nil {
		t.Fatalf("Failed to delete item: %v", err)
	}

	assertColumnOrder(t, repo, "todo", []string{"a", "c"})

	if err := repo.DeleteItem(ctx, "b"); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestGetAllItemsIncludesHistory(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	seedItem(t, repo, "a", "todo", 0)

	dest := types.ColumnID("done")
	if _, err := repo.MoveItem(ctx, MoveRequest{ItemID: "a", TargetColumn: &dest}); err != nil {
		t.Fatalf("Failed to move item: %v", err)
	}

	items, err := repo.GetAllItems(ctx)
	if err != nil {
		t.Fatalf("Failed to get items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if len(items[0].History) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(items[0].History))
	}
	if items[0].History[0].Description != "Moved from todo to done" {
		t.Errorf("Unexpected history entry: %q", items[0].History[0].Description)
	}
}

func TestGetColumnsOrderedByPosition(t *testing.T) {
	repo := setupTestDB(t)

	columns, err := repo.GetColumns(context.Background())
	if err != nil {
		t.Fatalf("Failed to get columns: %v", err)
	}
	want := []string{"todo", "doing", "done"}
	if len(columns) != len(want) {
		t.Fatalf("Expected %d columns, got %d", len(want), len(columns))
	}
	for i, col := range columns {
		if col.Key.String() != want[i] {
			t.Errorf("Expected column %s at position %d, got %s", want[i], i, col.Key)
		}
	}
}
