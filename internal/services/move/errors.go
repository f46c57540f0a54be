package move

import "errors"

// ErrMoveFailed wraps every store-side or transport failure surfaced by a
// move. By the time a caller sees it, the optimistic mutation has already
// been rolled back; the message doubles as the user-facing notification.
var ErrMoveFailed = errors.New("failed to move task, changes reverted")
