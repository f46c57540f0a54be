// Package board holds the client's in-memory view of the item collection and
// the rank arithmetic that keeps each column's ordering dense.
package board

import (
	"sort"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

// State is the single in-memory container for the item collection.
// It is owned by the TUI session and mutated only by ApplyMove and Replace;
// the move orchestration's lock guarantees those never interleave.
type State struct {
	items []*models.Item
}

// NewState creates a state container around the given collection
func NewState(items []*models.Item) *State {
	return &State{items: items}
}

// Items returns the live collection. Callers must not reorder or mutate it
// outside of the move orchestration.
func (s *State) Items() []*models.Item {
	return s.items
}

// Replace swaps the entire collection atomically. Used by the resync trigger
// (adopting the store's authoritative view) and by rollback.
func (s *State) Replace(items []*models.Item) {
	s.items = items
}

// Find returns the item with the given ID, or nil
func (s *State) Find(id types.ItemID) *models.Item {
	for _, item := range s.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Column returns the items of one column sorted by ascending rank
func (s *State) Column(col types.ColumnID) []*models.Item {
	var items []*models.Item
	for _, item := range s.items {
		if item.Column == col {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Rank < items[j].Rank
	})
	return items
}

// Len returns the total number of items on the board
func (s *State) Len() int {
	return len(s.items)
}
