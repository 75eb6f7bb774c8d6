package chat

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable is a transient transport failure. The engine
	// degrades the backend and reconnects with backoff.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrNotFound means the conversation or message is unknown to the backend.
	ErrNotFound = errors.New("not found")
	// ErrMalformedEvent is returned by normalizers for events they cannot translate.
	ErrMalformedEvent = errors.New("malformed event")
	// ErrSendFailed marks a send attempt that ended in the Failed state.
	ErrSendFailed = errors.New("send failed")
)

// SendError describes why a specific outgoing message failed.
type SendError struct {
	Conversation ConversationID
	MessageID    string
	Reason       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send %s in %s: %s", e.MessageID, e.Conversation, e.Reason)
}

func (e *SendError) Unwrap() error {
	return ErrSendFailed
}

// Malformed wraps a diagnostic as ErrMalformedEvent.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedEvent, fmt.Sprintf(format, args...))
}
