package events

import (
	"errors"
	"testing"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	first := bus.Listen()
	second := bus.Listen()

	if err := bus.SendEvent(Event{Type: EventItemMoved, ItemID: "a"}); err != nil {
		t.Fatalf("Failed to send event: %v", err)
	}

	for _, ch := range []<-chan Event{first, second} {
		select {
		case ev := <-ch:
			if ev.Type != EventItemMoved || ev.ItemID != "a" {
				t.Errorf("Unexpected event: %+v", ev)
			}
		default:
			t.Error("Expected every subscriber to receive the event")
		}
	}
}

func TestBusStampsSequenceAndTimestamp(t *testing.T) {
	bus := NewBus()
	defer bus.Close()
	ch := bus.Listen()

	bus.SendEvent(Event{Type: EventCollectionChanged})
	bus.SendEvent(Event{Type: EventCollectionChanged})

	first := <-ch
	second := <-ch

	if first.SequenceID != 1 || second.SequenceID != 2 {
		t.Errorf("Expected sequence 1, 2; got %d, %d", first.SequenceID, second.SequenceID)
	}
	if first.Timestamp.IsZero() {
		t.Error("Expected timestamp to be stamped")
	}
}

func TestBusClose(t *testing.T) {
	bus := NewBus()
	ch := bus.Listen()

	if err := bus.Close(); err != nil {
		t.Fatalf("Failed to close bus: %v", err)
	}

	if _, ok := <-ch; ok {
		t.Error("Expected subscriber channel closed")
	}

	if err := bus.SendEvent(Event{Type: EventItemMoved}); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed after close, got %v", err)
	}

	// Closing twice is fine
	if err := bus.Close(); err != nil {
		t.Errorf("Expected idempotent close, got %v", err)
	}
}

func TestBusDropsEventsForSlowSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()
	ch := bus.Listen()

	// Overfill the subscriber buffer; sends must not block
	for i := 0; i < 32; i++ {
		if err := bus.SendEvent(Event{Type: EventCollectionChanged}); err != nil {
			t.Fatalf("Failed to send event %d: %v", i, err)
		}
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	if received != 16 {
		t.Errorf("Expected buffer of 16 retained events, got %d", received)
	}
}
