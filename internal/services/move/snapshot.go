package move

import (
	"github.com/brunoga/deep"

	"github.com/tavlaboard/tavla/internal/board"
	"github.com/tavlaboard/tavla/internal/models"
)

// Snapshot is a fully independent deep copy of the item collection, taken
// synchronously before an optimistic mutation. It is held solely by the
// in-flight move: discarded after a successful resync, consumed by Restore
// on rollback.
type Snapshot struct {
	items []*models.Item
}

// Capture deep-copies the current collection
func Capture(state *board.State) Snapshot {
	return Snapshot{items: deep.MustCopy(state.Items())}
}

// Restore atomically replaces the live collection with the snapshot,
// reverting every rank the optimistic mutator speculatively changed.
// The snapshot must not be reused afterwards.
func (s Snapshot) Restore(state *board.State) {
	state.Replace(s.items)
}

// Items exposes the copied collection for equality checks in tests
func (s Snapshot) Items() []*models.Item {
	return s.items
}
