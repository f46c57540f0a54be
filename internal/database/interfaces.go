package database

import (
	"context"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

// Store defines the authoritative board operations the client consumes.
// The interface enables fakes for unit testing the move orchestration.
type Store interface {
	// Columns
	GetColumns(ctx context.Context) ([]*models.Column, error)

	// Items
	GetAllItems(ctx context.Context) ([]*models.Item, error)
	GetItem(ctx context.Context, id types.ItemID) (*models.Item, error)
	CreateItem(ctx context.Context, title, note string, column types.ColumnID) (*models.Item, error)
	UpdateItem(ctx context.Context, id types.ItemID, title, note string) error
	SetItemFlag(ctx context.Context, id types.ItemID, flagged bool) error
	DeleteItem(ctx context.Context, id types.ItemID) error

	// MoveItem is the authoritative reconciler: it recomputes ranks for every
	// item in the affected column(s), appends a history entry on column
	// change, and returns the moved item's final state.
	MoveItem(ctx context.Context, req MoveRequest) (*models.Item, error)

	// Revision returns the board's current revision counter
	Revision(ctx context.Context) (int64, error)
}

// MoveRequest carries a move intent across the store boundary.
// Nil fields mean "leave unchanged".
type MoveRequest struct {
	ItemID       types.ItemID
	TargetColumn *types.ColumnID
	TargetIndex  *int
}

// Compile-time verification that *Repository implements Store
var _ Store = (*Repository)(nil)
