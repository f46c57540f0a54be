package board

import (
	"fmt"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

// CheckDense verifies the column ordering invariant: a column with n items
// must carry exactly the ranks {0, 1, ..., n-1}, no gaps, no duplicates.
// Returns nil if the invariant holds.
func CheckDense(items []*models.Item, col types.ColumnID) error {
	seen := make(map[int]types.ItemID)
	n := 0
	for _, item := range items {
		if item.Column != col {
			continue
		}
		if item.Rank < 0 {
			return fmt.Errorf("column %s: item %s has negative rank %d", col, item.ID, item.Rank)
		}
		if other, ok := seen[item.Rank]; ok {
			return fmt.Errorf("column %s: items %s and %s share rank %d", col, other, item.ID, item.Rank)
		}
		seen[item.Rank] = item.ID
		n++
	}
	for rank := 0; rank < n; rank++ {
		if _, ok := seen[rank]; !ok {
			return fmt.Errorf("column %s: rank %d missing from %d items", col, rank, n)
		}
	}
	return nil
}

// Renumber reassigns dense sequential ranks to the given items, which must
// already be sorted in the desired order. When skip is >= 0 that numeric slot
// is left unassigned, reserving it for an item placed there separately.
func Renumber(items []*models.Item, skip int) {
	next := 0
	for _, item := range items {
		if next == skip {
			next++
		}
		item.Rank = next
		next++
	}
}

// ClampIndex bounds a requested insertion index to [0, size]. The reconciler
// and the optimistic mutator share this so client math never drifts from the
// store on out-of-range drops.
func ClampIndex(index, size int) int {
	if index < 0 {
		return 0
	}
	if index > size {
		return size
	}
	return index
}
