package models

import (
	"time"

	"github.com/tavlaboard/tavla/internal/types"
)

// Item represents a single work item on the board.
// Column and Rank together define the item's position: within a column,
// ranks are dense, zero-based, and match visual top-to-bottom order.
type Item struct {
	ID        types.ItemID
	Column    types.ColumnID
	Rank      int
	Title     string
	Note      string // free-text note, rendered as markdown in the detail view
	Flagged   bool
	History   []HistoryEntry
	CreatedAt time.Time
}

// HistoryEntry is one line of an item's append-only transition log,
// e.g. "Moved from Waiting to Done".
type HistoryEntry struct {
	Date        time.Time
	Description string
}

// Clone returns a copy of the item with its own history slice.
func (i *Item) Clone() *Item {
	c := *i
	c.History = make([]HistoryEntry, len(i.History))
	copy(c.History, i.History)
	return &c
}
