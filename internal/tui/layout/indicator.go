package layout

import "github.com/tavlaboard/tavla/internal/types"

// Indicator tracks where the drop marker is shown during a drag. Placement
// is idempotent: re-placing at an unchanged slot reports no change, so the
// renderer can skip redundant churn while the pointer hovers in place.
type Indicator struct {
	visible bool
	column  types.ColumnID
	index   int
}

// Place moves the indicator to the given slot. Returns true if the indicator
// actually moved or appeared.
func (ind *Indicator) Place(column types.ColumnID, index int) bool {
	if ind.visible && ind.column == column && ind.index == index {
		return false
	}
	ind.visible = true
	ind.column = column
	ind.index = index
	return true
}

// Clear hides the indicator (drag-leave or drop)
func (ind *Indicator) Clear() {
	ind.visible = false
}

// At reports whether the indicator is currently shown at the given slot
func (ind *Indicator) At(column types.ColumnID, index int) bool {
	return ind.visible && ind.column == column && ind.index == index
}

// Visible reports whether the indicator is shown at all
func (ind *Indicator) Visible() bool {
	return ind.visible
}

// Slot returns the indicator's current column and index
func (ind *Indicator) Slot() (types.ColumnID, int) {
	return ind.column, ind.index
}
