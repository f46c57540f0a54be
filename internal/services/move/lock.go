package move

// Lock is the single-flight guard for move sequences. The client is a
// single-threaded event loop, so this is a re-entrancy flag, not a mutex:
// TryBegin admits a move only when none is in flight, and a second gesture
// arriving mid-flight is dropped rather than queued.
type Lock struct {
	held bool
}

// TryBegin acquires the lock if no move is in flight
func (l *Lock) TryBegin() bool {
	if l.held {
		return false
	}
	l.held = true
	return true
}

// End releases the lock. Callers must invoke it on every exit path of a move
// (success, store error, transport error), typically via defer.
func (l *Lock) End() {
	l.held = false
}

// Held reports whether a move is currently in flight
func (l *Lock) Held() bool {
	return l.held
}
