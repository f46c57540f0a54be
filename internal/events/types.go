package events

import (
	"time"

	"github.com/tavlaboard/tavla/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventCollectionChanged signals that the item collection was rewritten
	// (create, update, delete, or a confirmed resync)
	EventCollectionChanged EventType = "collection_changed"

	// EventItemMoved signals a confirmed, store-reconciled move
	EventItemMoved EventType = "item_moved"

	// EventMoveReverted signals a failed move that was rolled back
	EventMoveReverted EventType = "move_reverted"
)

// Event represents a board change notification
type Event struct {
	Type       EventType
	ItemID     types.ItemID // item the change concerns, if any
	Timestamp  time.Time    // when the event occurred
	SequenceID int64        // monotonically increasing sequence number for ordering
}
