package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/tui/components"
	"github.com/tavlaboard/tavla/internal/tui/layout"
)

// beginDrag grabs the item under the cursor and enters drag mode. The drag
// pointer starts at the grabbed card's midpoint.
func (m Model) beginDrag() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		return m, nil
	}
	if m.mover.InFlightMove() {
		// A move is pending; starting a second gesture now would only be
		// dropped at admission, so don't enter drag mode at all.
		return m, nil
	}

	m.mode = modeDrag
	m.drag = dragState{
		active:     true,
		itemID:     item.ID,
		title:      item.Title,
		fromColumn: item.Column,
		columnIdx:  m.selCol,
	}

	bounds := m.dragCardBounds(m.selCol)
	m.drag.pointerY = layout.CardBounds{Top: m.selItem * (components.CardHeight + components.CardGap), Height: components.CardHeight}.Midpoint()
	m.drag.pointerY = clampPointer(m.drag.pointerY, bounds)
	m.placeIndicator()
	return m, nil
}

// handleDragMode steers the drag pointer and handles drop/cancel
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "k", "up":
		m.drag.pointerY--
		m.clampDragPointer()
		m.placeIndicator()
		return m, nil

	case "j", "down":
		m.drag.pointerY++
		m.clampDragPointer()
		m.placeIndicator()
		return m, nil

	case "h", "left":
		if m.drag.columnIdx > 0 {
			m.drag.columnIdx--
			m.clampDragPointer()
			m.placeIndicator()
		}
		return m, nil

	case "l", "right":
		if m.drag.columnIdx < len(m.columns)-1 {
			m.drag.columnIdx++
			m.clampDragPointer()
			m.placeIndicator()
		}
		return m, nil

	case "enter", " ", "g":
		return m.dropItem()

	case "esc":
		// Drag-leave: no mutation happened yet, just clear the gesture
		m.drag.indicator.Clear()
		m.drag = dragState{}
		m.mode = modeNormal
		return m, nil
	}

	return m, nil
}

// dropItem completes the gesture: the insertion point is computed one last
// time from the pointer and the rendered cards, and the column component
// emits the drop event the move orchestration consumes.
func (m Model) dropItem() (tea.Model, tea.Cmd) {
	targetColumn := m.columns[m.drag.columnIdx].Key
	index := layout.InsertionIndex(m.drag.pointerY, m.dragCardBounds(m.drag.columnIdx))

	intent := models.MoveIntent{
		ItemID:       m.drag.itemID,
		TargetColumn: targetColumn,
		TargetIndex:  index,
	}

	m.drag.indicator.Clear()
	m.selCol = m.drag.columnIdx
	m.selItem = index
	m.drag = dragState{}
	m.mode = modeNormal
	m.clampSelection()

	return m, func() tea.Msg {
		return itemDroppedMsg{Intent: intent}
	}
}

// dragCardBounds returns the bounds of the cards rendered in the given
// column, excluding the dragged item.
func (m Model) dragCardBounds(columnIdx int) []layout.CardBounds {
	return layout.Stack(len(m.columnItems(columnIdx)), components.CardHeight, components.CardGap)
}

// placeIndicator recomputes the insertion index for the current pointer and
// moves the drop indicator. Placement is idempotent: an unchanged slot is a
// no-op.
func (m *Model) placeIndicator() {
	column := m.columns[m.drag.columnIdx].Key
	index := layout.InsertionIndex(m.drag.pointerY, m.dragCardBounds(m.drag.columnIdx))
	m.drag.indicator.Place(column, index)
}

func (m *Model) clampDragPointer() {
	m.drag.pointerY = clampPointer(m.drag.pointerY, m.dragCardBounds(m.drag.columnIdx))
}

// clampPointer keeps the pointer within the column's card area, with one
// extra card height below the last card so "append at end" stays reachable.
func clampPointer(y int, bounds []layout.CardBounds) int {
	maxY := components.CardHeight
	if n := len(bounds); n > 0 {
		last := bounds[n-1]
		maxY = last.Top + last.Height + components.CardHeight
	}
	if y < 0 {
		return 0
	}
	if y > maxY {
		return maxY
	}
	return y
}
