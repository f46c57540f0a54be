package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tavlaboard/tavla/internal/tui/components"
	"github.com/tavlaboard/tavla/internal/tui/notifications"
	"github.com/tavlaboard/tavla/internal/types"
)

const (
	minColumnWidth = 20
	maxColumnWidth = 36
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(m.cfg.Theme.Background)

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.viewBoard()
	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	switch m.mode {
	case modeAdd, modeEditTitle:
		layers = appendLayer(layers, m.viewInputBox(), m.width, m.height)
	case modeEditNote:
		layers = appendLayer(layers, m.viewNoteBox(), m.width, m.height)
	case modeDetail:
		layers = appendLayer(layers, m.viewDetailBox(), m.width, m.height)
	case modeHelp:
		layers = appendLayer(layers, m.viewHelpBox(), m.width, m.height)
	}

	if m.toastMessage != "" {
		toast := notifications.Render(m.toastSeverity, m.toastMessage)
		x := max(m.width-lipgloss.Width(toast)-1, 0)
		layers = append(layers, lipgloss.NewLayer(toast).X(x).Y(0))
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewBoard renders the columns side by side with the footer below
func (m Model) viewBoard() string {
	if len(m.columns) == 0 {
		return "No columns configured. Please check ~/.tavla/config.yaml."
	}

	colWidth := m.width/len(m.columns) - 1
	colWidth = min(max(colWidth, minColumnWidth), maxColumnWidth)
	colHeight := max(m.height-3, 5)

	rendered := make([]string, 0, len(m.columns))
	for i, col := range m.columns {
		selectedIdx := -1
		if i == m.selCol && m.mode != modeDrag {
			selectedIdx = m.selItem
		}

		indicatorAt := -1
		if m.drag.active && m.drag.indicator.Visible() {
			if slotCol, slotIdx := m.drag.indicator.Slot(); slotCol == col.Key {
				indicatorAt = slotIdx
			}
		}

		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:        col,
			Items:         m.columnItems(i),
			Selected:      i == m.selCol || (m.drag.active && i == m.drag.columnIdx),
			SelectedIndex: selectedIdx,
			IndicatorAt:   indicatorAt,
			Width:         colWidth,
			Height:        colHeight,
			Theme:         m.cfg.Theme,
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:  m.width,
		Hint:   m.footerHint(),
		Inline: m.footerInline(),
		Theme:  m.cfg.Theme,
	})

	return lipgloss.JoinVertical(lipgloss.Left, board, footer)
}

func (m Model) footerHint() string {
	switch m.mode {
	case modeDrag:
		return fmt.Sprintf("moving %q — j/k/h/l steer · enter drop · esc cancel", m.drag.title)
	default:
		return "h/j/k/l navigate · g grab · a add · e edit · n note · f flag · d delete · enter detail · ? help · q quit"
	}
}

func (m Model) footerInline() string {
	if m.mover.InFlightMove() {
		return notifications.RenderInline(notifications.Info, "syncing move…")
	}
	return ""
}

func (m Model) viewInputBox() string {
	title := "New item"
	if m.mode == modeEditTitle {
		title = "Edit title"
	}
	return boxStyle(m.cfg.Theme.SelectedBorder).
		Width(min(50, m.width-4)).
		Render(title + "\n\n" + m.input.View())
}

func (m Model) viewNoteBox() string {
	return boxStyle(m.cfg.Theme.SelectedBorder).
		Width(min(70, m.width-4)).
		Render("Edit note — ctrl+s save · esc cancel\n\n" + m.note.View())
}

func (m Model) viewDetailBox() string {
	return boxStyle(m.cfg.Theme.ColumnBorder).
		Width(min(76, m.width-4)).
		Render(m.detail.View())
}

func (m Model) viewHelpBox() string {
	help := `tavla — keyboard shortcuts

BOARD
  h/l, ←/→   change column
  j/k, ↓/↑   change item
  enter      item detail

ITEMS
  a          add item
  e          edit title
  n          edit note
  f          toggle flag
  d          delete item

MOVING
  g, space   grab / drop item
  j/k/h/l    steer the drop position
  esc        cancel the drag

  q          quit`

	return boxStyle(m.cfg.Theme.SelectedBorder).
		Width(46).
		Render(help)
}

func boxStyle(borderColor string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(1, 2)
}

// appendLayer centers the content on screen and appends it to the stack
func appendLayer(layers []*lipgloss.Layer, content string, screenWidth, screenHeight int) []*lipgloss.Layer {
	if content == "" {
		return layers
	}
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return append(layers, lipgloss.NewLayer(content).X(x).Y(y))
}

// buildDetail fills the detail viewport for one item: title, metadata, the
// markdown-rendered note, and the transition history.
func (m *Model) buildDetail() {
	item := m.state.Find(m.detailID)
	if item == nil {
		m.detail.SetContent("Item no longer exists.")
		return
	}

	width := min(72, m.width-8)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(item.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.cfg.Theme.Muted)).
		Render(fmt.Sprintf("%s · created %s", m.columnName(item.Column), item.CreatedAt.Format("2006-01-02"))))
	b.WriteString("\n\n")
	b.WriteString(components.RenderNote(components.NoteProps{Note: item.Note, Width: width}))

	if len(item.History) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("History"))
		for _, entry := range item.History {
			b.WriteString(fmt.Sprintf("\n  %s  %s", entry.Date.Format("2006-01-02"), entry.Description))
		}
	}

	m.detail.SetWidth(width)
	m.detail.SetHeight(max(min(m.height-8, 24), 5))
	m.detail.SetContent(b.String())
	m.detail.GotoTop()
}

// columnName resolves a column key to its display name
func (m Model) columnName(key types.ColumnID) string {
	for _, col := range m.columns {
		if col.Key == key {
			return col.Name
		}
	}
	return key.String()
}
