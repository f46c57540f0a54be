package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tavlaboard/tavla/internal/models"
	moveservice "github.com/tavlaboard/tavla/internal/services/move"
)

// itemDroppedMsg is emitted by the column component when a drop completes.
// It is the hand-off point between the drag gesture and the move
// orchestration.
type itemDroppedMsg struct {
	Intent models.MoveIntent
}

// moveResultMsg carries the store round trip outcome back to the event loop
type moveResultMsg struct {
	flight *moveservice.InFlight
	result *moveservice.Result
}

// refreshMsg carries a freshly loaded collection (after CRUD operations)
type refreshMsg struct {
	items []*models.Item
	err   error
}

// toastExpireMsg clears the current toast
type toastExpireMsg struct{}

const toastDuration = 4 * time.Second

func toastExpiry() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{}
	})
}

// exchangeCmd runs the store round trip off the event loop. Local state is
// untouched until the result message is handled back on the loop.
func (m Model) exchangeCmd(flight *moveservice.InFlight) tea.Cmd {
	return func() tea.Msg {
		return moveResultMsg{flight: flight, result: m.mover.Exchange(m.ctx, flight)}
	}
}
