// Package move orchestrates one drag-drop move end to end: single-flight
// admission, snapshot, optimistic local apply, the authoritative store round
// trip, and resync-or-rollback. It owns the only code paths that mutate the
// board state.
package move

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tavlaboard/tavla/internal/board"
	"github.com/tavlaboard/tavla/internal/database"
	"github.com/tavlaboard/tavla/internal/events"
	"github.com/tavlaboard/tavla/internal/models"
)

// RenderHook is invoked after every local collection change (optimistic
// apply, rollback, resync) so the rendering layer can repaint. May be nil.
type RenderHook func()

// Service coordinates move sequences against the authoritative store.
// The Begin/Exchange/Finish split matches the client's event loop: Begin and
// Finish run on the loop and are the only phases that touch local state;
// Exchange is the network round trip and may run on a background task.
type Service struct {
	store  database.Store
	state  *board.State
	bus    events.EventPublisher
	render RenderHook
	lock   Lock
}

// InFlight is the token for one admitted move sequence. It carries the
// rollback snapshot and is valid until passed to Finish exactly once.
type InFlight struct {
	Intent   models.MoveIntent
	snapshot Snapshot
}

// Result carries the outcome of the store round trip
type Result struct {
	Item  *models.Item   // moved item's final state per the store
	Items []*models.Item // full authoritative collection for resync
	Err   error
}

// NewService creates a move service. bus and render may be nil.
func NewService(store database.Store, state *board.State, bus events.EventPublisher, render RenderHook) *Service {
	return &Service{
		store:  store,
		state:  state,
		bus:    bus,
		render: render,
	}
}

// Begin admits a move sequence. It returns false — and leaves the collection
// untouched, taking no snapshot — when another move is already in flight
// (the gesture is deliberately dropped, not queued) or when the item no
// longer exists locally. On admission it captures the rollback snapshot,
// applies the optimistic mutation, and triggers a re-render.
func (s *Service) Begin(intent models.MoveIntent) (*InFlight, bool) {
	if !s.lock.TryBegin() {
		slog.Debug("move dropped, another move in flight", "item", intent.ItemID)
		return nil, false
	}

	snapshot := Capture(s.state)
	if err := s.state.ApplyMove(intent); err != nil {
		// Nothing was mutated; release and drop the gesture.
		s.lock.End()
		slog.Warn("move dropped, item missing locally", "item", intent.ItemID)
		return nil, false
	}

	s.rerender()
	return &InFlight{Intent: intent, snapshot: snapshot}, true
}

// Exchange performs the authoritative store round trip for an admitted move:
// the move call itself, then the full re-read the resync step needs. It never
// touches local state, so it is safe to run off the event loop while the
// optimistic result stays on screen.
func (s *Service) Exchange(ctx context.Context, f *InFlight) *Result {
	col := f.Intent.TargetColumn
	idx := f.Intent.TargetIndex
	item, err := s.store.MoveItem(ctx, database.MoveRequest{
		ItemID:       f.Intent.ItemID,
		TargetColumn: &col,
		TargetIndex:  &idx,
	})
	if err != nil {
		return &Result{Err: err}
	}

	items, err := s.store.GetAllItems(ctx)
	if err != nil {
		return &Result{Err: fmt.Errorf("resync read failed: %w", err)}
	}

	return &Result{Item: item, Items: items}
}

// Finish completes the sequence: on success the client discards its
// optimistic guess and adopts the store's collection wholesale; on any
// failure the pre-move snapshot is restored so no partially-applied state
// stays visible. The lock is released on every path. No retry is attempted:
// a retried move risks reordering ambiguity, so the policy is
// rollback-and-let-the-user-redo.
func (s *Service) Finish(f *InFlight, res *Result) error {
	defer s.lock.End()

	if res.Err != nil {
		f.snapshot.Restore(s.state)
		s.rerender()
		s.publish(events.EventMoveReverted, f.Intent)
		slog.Error("move failed, rolled back", "item", f.Intent.ItemID, "error", res.Err)
		return fmt.Errorf("%w: %w", ErrMoveFailed, res.Err)
	}

	s.state.Replace(res.Items)
	s.rerender()
	s.publish(events.EventItemMoved, f.Intent)
	return nil
}

// Move runs the full sequence synchronously: Begin, Exchange, Finish.
// A dropped gesture (lock contention or vanished item) returns nil, since
// nothing was mutated and no rollback is owed.
func (s *Service) Move(ctx context.Context, intent models.MoveIntent) error {
	f, ok := s.Begin(intent)
	if !ok {
		return nil
	}
	return s.Finish(f, s.Exchange(ctx, f))
}

// InFlightMove reports whether a move sequence is currently active
func (s *Service) InFlightMove() bool {
	return s.lock.Held()
}

func (s *Service) rerender() {
	if s.render != nil {
		s.render()
	}
}

func (s *Service) publish(t events.EventType, intent models.MoveIntent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.SendEvent(events.Event{Type: t, ItemID: intent.ItemID}); err != nil {
		slog.Debug("event publish failed", "type", t, "error", err)
	}
}
