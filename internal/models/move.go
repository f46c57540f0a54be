package models

import "github.com/tavlaboard/tavla/internal/types"

// MoveIntent describes one requested reorder: drop this item into the target
// column at the target index. It is a transient value that exists only for the
// duration of a single move operation and is never persisted.
type MoveIntent struct {
	ItemID       types.ItemID
	TargetColumn types.ColumnID
	TargetIndex  int
}
