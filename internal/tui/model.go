// Package tui is the Bubble Tea client for the board: rendering, navigation,
// and the drag-drop gesture that feeds the move orchestration.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/board"
	"github.com/tavlaboard/tavla/internal/config"
	"github.com/tavlaboard/tavla/internal/database"
	"github.com/tavlaboard/tavla/internal/events"
	"github.com/tavlaboard/tavla/internal/models"
	itemservice "github.com/tavlaboard/tavla/internal/services/item"
	moveservice "github.com/tavlaboard/tavla/internal/services/move"
	"github.com/tavlaboard/tavla/internal/tui/layout"
	"github.com/tavlaboard/tavla/internal/tui/notifications"
	"github.com/tavlaboard/tavla/internal/types"
)

type mode int

const (
	modeNormal mode = iota
	modeDrag
	modeAdd
	modeEditTitle
	modeEditNote
	modeDetail
	modeHelp
)

// dragState tracks an in-progress drag gesture. The pointer row is steered
// with the movement keys; the insertion index is always derived from it and
// the rendered card geometry, never stored directly.
type dragState struct {
	active     bool
	itemID     types.ItemID
	title      string
	fromColumn types.ColumnID
	columnIdx  int // column currently under the pointer
	pointerY   int // pointer row within that column's card area
	indicator  layout.Indicator
}

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	store   database.Store
	items   itemservice.Service
	mover   *moveservice.Service
	state   *board.State
	columns []*models.Column
	cfg     *config.Config

	mode     mode
	selCol   int
	selItem  int
	drag     dragState
	detailID types.ItemID

	input  textinput.Model
	note   textarea.Model
	detail viewport.Model

	toastSeverity notifications.Severity
	toastMessage  string

	width  int
	height int
}

// InitialModel creates and initializes the TUI model with data from the store
func InitialModel(ctx context.Context, store database.Store, cfg *config.Config, bus events.EventPublisher) Model {
	columns, err := store.GetColumns(ctx)
	if err != nil {
		slog.Error("error loading columns", "error", err)
		columns = cfg.BoardColumns()
	}

	items, err := store.GetAllItems(ctx)
	if err != nil {
		slog.Error("error loading items", "error", err)
		items = []*models.Item{}
	}

	state := board.NewState(items)

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = models.MaxTitleLength

	ta := textarea.New()
	ta.Placeholder = "Write a note (markdown supported)"
	ta.SetHeight(8)

	return Model{
		ctx:     ctx,
		store:   store,
		items:   itemservice.NewService(store, bus),
		// The render hook is nil: Bubble Tea repaints after every Update,
		// which is exactly when the mutator and rollback run.
		mover:   moveservice.NewService(store, state, bus, nil),
		state:   state,
		columns: columns,
		cfg:     cfg,
		input:   ti,
		note:    ta,
	}
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// columnItems returns the items of the i-th column in rank order, excluding
// the dragged item while a drag is active (its slot is not a valid target).
func (m Model) columnItems(i int) []*models.Item {
	if i < 0 || i >= len(m.columns) {
		return nil
	}
	items := m.state.Column(m.columns[i].Key)
	if !m.drag.active {
		return items
	}
	filtered := make([]*models.Item, 0, len(items))
	for _, item := range items {
		if item.ID != m.drag.itemID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// currentItem returns the item under the cursor, or nil
func (m Model) currentItem() *models.Item {
	items := m.columnItems(m.selCol)
	if m.selItem < 0 || m.selItem >= len(items) {
		return nil
	}
	return items[m.selItem]
}

// clampSelection keeps the cursor valid after the collection changes
func (m *Model) clampSelection() {
	if m.selCol >= len(m.columns) {
		m.selCol = max(len(m.columns)-1, 0)
	}
	n := len(m.columnItems(m.selCol))
	if m.selItem >= n {
		m.selItem = max(n-1, 0)
	}
}

func (m *Model) showToast(severity notifications.Severity, message string) {
	m.toastSeverity = severity
	m.toastMessage = message
}
