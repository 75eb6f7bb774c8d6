package chat

import (
	"fmt"
	"strings"
)

// BackendID names one configured backend instance, e.g. "wa-personal".
// It never contains a colon.
type BackendID string

// ConversationID identifies a conversation across all backends.
type ConversationID struct {
	Backend BackendID
	Native  string
}

// NewConversationID builds an id from a backend and the backend's own identifier.
func NewConversationID(backend BackendID, native string) ConversationID {
	return ConversationID{Backend: backend, Native: native}
}

// String returns the "backend:native" form.
func (id ConversationID) String() string {
	return string(id.Backend) + ":" + id.Native
}

// IsZero reports whether the id is unset.
func (id ConversationID) IsZero() bool {
	return id.Backend == "" && id.Native == ""
}

// ParseConversationID parses the "backend:native" form. Only the first colon
// separates the parts; native ids may contain colons themselves (Matrix room ids do).
func ParseConversationID(s string) (ConversationID, error) {
	backend, native, ok := strings.Cut(s, ":")
	if !ok || backend == "" || native == "" {
		return ConversationID{}, fmt.Errorf("invalid conversation id %q", s)
	}
	return ConversationID{Backend: BackendID(backend), Native: native}, nil
}

func (id ConversationID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ConversationID) UnmarshalText(text []byte) error {
	parsed, err := ParseConversationID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
