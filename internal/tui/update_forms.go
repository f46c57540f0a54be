package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	itemservice "github.com/tavlaboard/tavla/internal/services/item"
	"github.com/tavlaboard/tavla/internal/tui/notifications"
	"github.com/tavlaboard/tavla/internal/types"
)

// handleInputMode handles the single-line title input (add / edit title)
func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.confirmInput()
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) confirmInput() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.input.Value())
	editing := m.mode == modeEditTitle
	m.input.Blur()
	m.mode = modeNormal

	if title == "" {
		return m, nil
	}

	if editing {
		item := m.currentItem()
		if item == nil {
			return m, nil
		}
		return m, m.updateTitleCmd(item.ID, title)
	}

	if len(m.columns) == 0 {
		return m, nil
	}
	column := m.columns[m.selCol].Key
	return m, m.createItemCmd(title, column)
}

// handleNoteMode handles the multi-line note editor
func (m Model) handleNoteMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		item := m.currentItem()
		note := m.note.Value()
		m.note.Blur()
		m.mode = modeNormal
		if item == nil {
			return m, nil
		}
		return m, m.updateNoteCmd(item.ID, note)
	case "esc":
		m.note.Blur()
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m Model) toggleFlag() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		return m, nil
	}
	id := item.ID
	flagged := !item.Flagged
	return m, func() tea.Msg {
		if err := m.items.SetFlag(m.ctx, id, flagged); err != nil {
			return refreshMsg{err: err}
		}
		items, err := m.store.GetAllItems(m.ctx)
		return refreshMsg{items: items, err: err}
	}
}

func (m Model) deleteItem() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		return m, nil
	}
	if m.mover.InFlightMove() {
		// Deleting while a move is reconciling invites a rank mismatch;
		// make the user wait out the round trip.
		m.showToast(notifications.Warning, "move in progress, try again")
		return m, toastExpiry()
	}
	id := item.ID
	return m, func() tea.Msg {
		if err := m.items.DeleteItem(m.ctx, id); err != nil {
			return refreshMsg{err: err}
		}
		items, err := m.store.GetAllItems(m.ctx)
		return refreshMsg{items: items, err: err}
	}
}

func (m Model) createItemCmd(title string, column types.ColumnID) tea.Cmd {
	return func() tea.Msg {
		_, err := m.items.CreateItem(m.ctx, itemservice.CreateItemRequest{
			Title:  title,
			Column: column,
		})
		if err != nil {
			return refreshMsg{err: err}
		}
		items, err := m.store.GetAllItems(m.ctx)
		return refreshMsg{items: items, err: err}
	}
}

func (m Model) updateTitleCmd(id types.ItemID, title string) tea.Cmd {
	return func() tea.Msg {
		if err := m.items.UpdateItem(m.ctx, itemservice.UpdateItemRequest{ItemID: id, Title: &title}); err != nil {
			return refreshMsg{err: err}
		}
		items, err := m.store.GetAllItems(m.ctx)
		return refreshMsg{items: items, err: err}
	}
}

func (m Model) updateNoteCmd(id types.ItemID, note string) tea.Cmd {
	return func() tea.Msg {
		if err := m.items.UpdateItem(m.ctx, itemservice.UpdateItemRequest{ItemID: id, Note: &note}); err != nil {
			return refreshMsg{err: err}
		}
		items, err := m.store.GetAllItems(m.ctx)
		return refreshMsg{items: items, err: err}
	}
}
