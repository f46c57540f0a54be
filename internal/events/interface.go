package events

// EventPublisher defines the interface for sending and receiving board change
// events. Depending on behavior rather than the concrete bus keeps services
// loosely coupled and easy to test; a nil publisher disables notifications.
type EventPublisher interface {
	// SendEvent publishes an event to all current subscribers
	SendEvent(event Event) error

	// Listen returns a channel receiving every event published after the call
	Listen() <-chan Event

	// Close shuts the publisher down and closes all subscriber channels
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
