// Package layout computes drop targets from pointer coordinates and the
// geometry of rendered cards. It is pure: no dependency on the rendering
// layer beyond the card bounds it is handed.
package layout

// CardBounds describes the vertical extent of one rendered card, in rows
// relative to the top of its column's card area.
type CardBounds struct {
	Top    int
	Height int
}

// Midpoint returns the card's vertical center row
func (c CardBounds) Midpoint() int {
	return c.Top + c.Height/2
}

// InsertionIndex translates a pointer's vertical coordinate into a zero-based
// insertion index. cards must be the currently rendered items of the column
// under the pointer, in display order, excluding the item being dragged (its
// visual slot is not a valid target). The index is the position of the first
// card whose midpoint lies below the pointer; when the pointer is below every
// midpoint, the drop appends at the end.
func InsertionIndex(pointerY int, cards []CardBounds) int {
	for i, card := range cards {
		if pointerY < card.Midpoint() {
			return i
		}
	}
	return len(cards)
}

// Stack lays out cards of uniform height, separated by gap rows, and returns
// their bounds in display order. The renderer and the drag handler both
// derive geometry from this, so the insertion math always sees the same rows
// the user does.
func Stack(count, cardHeight, gap int) []CardBounds {
	bounds := make([]CardBounds, count)
	y := 0
	for i := range bounds {
		bounds[i] = CardBounds{Top: y, Height: cardHeight}
		y += cardHeight + gap
	}
	return bounds
}
