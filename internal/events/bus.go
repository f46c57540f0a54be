package events

import (
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned when publishing on a closed bus
var ErrClosed = errors.New("event bus is closed")

// Bus is an in-process event broadcaster. The board is single-user and
// single-process, so notifications never leave the process; the bus exists so
// services and the TUI stay decoupled from each other.
type Bus struct {
	mu     sync.Mutex
	subs   []chan Event
	seq    int64
	closed bool
}

// NewBus creates an event bus with no subscribers
func NewBus() *Bus {
	return &Bus{}
}

// SendEvent stamps the event with a timestamp and sequence number and
// delivers it to every subscriber. Slow subscribers drop events rather than
// block the sender.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.seq++
	event.SequenceID = b.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for _, sub := range b.subs {
		select {
		case sub <- event:
		default:
		}
	}
	return nil
}

// Listen registers a new subscriber
func (b *Bus) Listen() <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 16)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

// Close closes all subscriber channels
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for _, sub := range b.subs {
		close(sub)
	}
	b.subs = nil
	return nil
}
