package board

import (
	"fmt"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

// ApplyMove applies a move intent to the collection in place, before any
// store confirmation. The moved item takes the target column and index; every
// other item in the source and destination columns is renumbered so both
// columns stay dense. The arithmetic mirrors the store-side reconciler, so the
// optimistic result normally matches what resync later pulls.
func (s *State) ApplyMove(intent models.MoveIntent) error {
	moved := s.Find(intent.ItemID)
	if moved == nil {
		return fmt.Errorf("apply move: %w", models.ErrItemNotFound)
	}

	prevColumn := moved.Column

	// Everyone else currently in the destination, in their old visual order.
	others := s.columnExcept(intent.TargetColumn, moved.ID)

	index := ClampIndex(intent.TargetIndex, len(others))
	moved.Column = intent.TargetColumn
	moved.Rank = index

	// Renumber destination neighbours, skipping the moved item's slot so it
	// is never double-assigned.
	Renumber(others, index)

	// A cross-column move leaves a hole in the source column; close it.
	if prevColumn != intent.TargetColumn {
		Renumber(s.columnExcept(prevColumn, moved.ID), -1)
	}

	return nil
}

// columnExcept returns the column's items sorted by rank, excluding one item
func (s *State) columnExcept(col types.ColumnID, except types.ItemID) []*models.Item {
	items := s.Column(col)
	filtered := items[:0]
	for _, item := range items {
		if item.ID != except {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
