package tui

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/tui/notifications"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case itemDroppedMsg:
		// Single-flight admission: if a move is already pending the gesture
		// is dropped on the floor, mutating nothing.
		flight, ok := m.mover.Begin(msg.Intent)
		if !ok {
			return m, nil
		}
		return m, m.exchangeCmd(flight)

	case moveResultMsg:
		if err := m.mover.Finish(msg.flight, msg.result); err != nil {
			m.showToast(notifications.Error, "failed to move task, changes reverted")
			m.clampSelection()
			return m, toastExpiry()
		}
		m.clampSelection()
		return m, nil

	case refreshMsg:
		if msg.err != nil {
			m.showToast(notifications.Error, "failed to reload board")
			return m, toastExpiry()
		}
		m.state.Replace(msg.items)
		m.clampSelection()
		return m, nil

	case toastExpireMsg:
		m.toastMessage = ""
		return m, nil
	}

	return m, nil
}

// handleKey dispatches key presses by mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeDrag:
		return m.handleDragMode(msg)
	case modeAdd, modeEditTitle:
		return m.handleInputMode(msg)
	case modeEditNote:
		return m.handleNoteMode(msg)
	case modeDetail:
		return m.handleDetailMode(msg)
	case modeHelp:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode handles navigation and operation keys on the board
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "h", "left":
		if m.selCol > 0 {
			m.selCol--
			m.clampSelection()
		}
		return m, nil

	case "l", "right":
		if m.selCol < len(m.columns)-1 {
			m.selCol++
			m.clampSelection()
		}
		return m, nil

	case "k", "up":
		if m.selItem > 0 {
			m.selItem--
		}
		return m, nil

	case "j", "down":
		if m.selItem < len(m.columnItems(m.selCol))-1 {
			m.selItem++
		}
		return m, nil

	case "g", " ":
		return m.beginDrag()

	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		return m, m.input.Focus()

	case "e":
		item := m.currentItem()
		if item == nil {
			return m, nil
		}
		m.mode = modeEditTitle
		m.input.SetValue(item.Title)
		return m, m.input.Focus()

	case "n":
		item := m.currentItem()
		if item == nil {
			return m, nil
		}
		m.mode = modeEditNote
		m.note.SetValue(item.Note)
		return m, m.note.Focus()

	case "f":
		return m.toggleFlag()

	case "d":
		return m.deleteItem()

	case "enter":
		item := m.currentItem()
		if item == nil {
			return m, nil
		}
		m.detailID = item.ID
		m.detail = viewport.New()
		m.buildDetail()
		m.mode = modeDetail
		return m, nil

	case "?":
		m.mode = modeHelp
		return m, nil

	case "esc":
		m.toastMessage = ""
		return m, nil
	}

	return m, nil
}

// handleDetailMode scrolls the detail viewport
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "enter":
		m.mode = modeNormal
	}
	return m, nil
}
