// Package item provides the bookkeeping operations around board items:
// creation, editing, flagging, and deletion. Ordering changes go through the
// move service instead.
package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tavlaboard/tavla/internal/database"
	"github.com/tavlaboard/tavla/internal/events"
	"github.com/tavlaboard/tavla/internal/models"
	"github.com/tavlaboard/tavla/internal/types"
)

// Service defines all item-related business operations
type Service interface {
	ListItems(ctx context.Context) ([]*models.Item, error)
	GetItem(ctx context.Context, id types.ItemID) (*models.Item, error)
	CreateItem(ctx context.Context, req CreateItemRequest) (*models.Item, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) error
	SetFlag(ctx context.Context, id types.ItemID, flagged bool) error
	DeleteItem(ctx context.Context, id types.ItemID) error
}

// CreateItemRequest encapsulates all data needed to create an item.
// New items are appended at the end of the target column.
type CreateItemRequest struct {
	Title  string
	Note   string
	Column types.ColumnID
}

// UpdateItemRequest encapsulates an item update.
// Pointer fields are optional - nil means don't update.
type UpdateItemRequest struct {
	ItemID types.ItemID
	Title  *string
	Note   *string
}

// service implements Service
type service struct {
	store database.Store
	bus   events.EventPublisher
}

// NewService creates a new item service. bus may be nil.
func NewService(store database.Store, bus events.EventPublisher) Service {
	return &service{store: store, bus: bus}
}

func (s *service) ListItems(ctx context.Context) ([]*models.Item, error) {
	return s.store.GetAllItems(ctx)
}

func (s *service) GetItem(ctx context.Context, id types.ItemID) (*models.Item, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	return s.store.GetItem(ctx, id)
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*models.Item, error) {
	title := strings.TrimSpace(req.Title)
	if err := validateFields(title, req.Note); err != nil {
		return nil, err
	}

	created, err := s.store.CreateItem(ctx, title, req.Note, req.Column)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.publish(created.ID)
	return created, nil
}

func (s *service) UpdateItem(ctx context.Context, req UpdateItemRequest) error {
	if req.ItemID == "" {
		return ErrInvalidID
	}
	if req.Title == nil && req.Note == nil {
		return nil
	}

	// Partial updates fill in the unchanged field from the current state
	title := ""
	note := ""
	if req.Title == nil || req.Note == nil {
		current, err := s.store.GetItem(ctx, req.ItemID)
		if err != nil {
			return fmt.Errorf("failed to get item: %w", err)
		}
		title = current.Title
		note = current.Note
	}
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
	}
	if req.Note != nil {
		note = *req.Note
	}

	if err := validateFields(title, note); err != nil {
		return err
	}

	if err := s.store.UpdateItem(ctx, req.ItemID, title, note); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	s.publish(req.ItemID)
	return nil
}

func (s *service) SetFlag(ctx context.Context, id types.ItemID, flagged bool) error {
	if id == "" {
		return ErrInvalidID
	}
	if err := s.store.SetItemFlag(ctx, id, flagged); err != nil {
		return fmt.Errorf("failed to flag item: %w", err)
	}
	s.publish(id)
	return nil
}

func (s *service) DeleteItem(ctx context.Context, id types.ItemID) error {
	if id == "" {
		return ErrInvalidID
	}
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	s.publish(id)
	return nil
}

func validateFields(title, note string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > models.MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(note) > models.MaxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}

func (s *service) publish(id types.ItemID) {
	if s.bus == nil {
		return
	}
	if err := s.bus.SendEvent(events.Event{Type: events.EventCollectionChanged, ItemID: id}); err != nil {
		slog.Debug("event publish failed", "error", err)
	}
}
