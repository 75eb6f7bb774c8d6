// Package backend defines the capability contract every chat backend
// implements, and the normalizer contract that translates its raw events.
package backend

import (
	"context"
	"iter"
	"time"

	"github.com/matheus3301/chatters/internal/chat"
)

// Transport is the backend's own view of its connection.
type Transport string

const (
	TransportDisconnected Transport = "disconnected"
	TransportConnecting   Transport = "connecting"
	TransportConnected    Transport = "connected"
)

// Cursor is an opaque position in a conversation's history. The zero Cursor
// means "newest".
type Cursor string

// ConversationSummary is a backend's description of one conversation as
// returned by ListConversations.
type ConversationSummary struct {
	Native       string
	Name         string
	Kind         chat.ConversationKind
	Participants []chat.Participant
	LastActivity time.Time
}

// HistoryPage is one page of history older than the requested cursor.
// Events are raw so that history and live traffic share a normalizer.
// Next continues further into the past; an empty Next means exhausted.
type HistoryPage struct {
	Events []RawEvent
	Next   Cursor
}

// SendHandle identifies a message whose outcome is still pending.
type SendHandle struct {
	Conversation chat.ConversationID
	MessageID    string
}

// RawEvent is a backend-specific event on its way to the normalizer.
type RawEvent struct {
	Backend    chat.BackendID
	ReceivedAt time.Time
	// History marks past messages delivered on the live stream, as protocols
	// with push-based history sync do. They are not counted as unread.
	History    bool
	Payload    any
}

// Backend is the capability contract every chat protocol integration implements.
//
// Connect opens a session. Events returns that session's live event stream;
// it is closed when Disconnect is called or the session ends. Transport
// failures are reported as errors wrapping chat.ErrBackendUnavailable.
type Backend interface {
	ID() chat.BackendID
	Kind() string
	Connect(ctx context.Context) error
	// ListConversations returns a lazy, finite sequence. Ranging over it again
	// restarts the listing.
	ListConversations(ctx context.Context) (iter.Seq2[ConversationSummary, error], error)
	// FetchHistory returns at most limit messages older than before.
	FetchHistory(ctx context.Context, native string, before Cursor, limit int) (HistoryPage, error)
	// SendMessage returns as soon as the message is handed off. The outcome
	// arrives later on Events as a SendResult.
	SendMessage(ctx context.Context, native string, body chat.Body) (SendHandle, error)
	Events() <-chan RawEvent
	ConnectionState() Transport
	Disconnect() error
}

// Normalizer translates raw events of one backend kind into mutations.
// Implementations are deterministic and perform no I/O.
type Normalizer interface {
	Normalize(evt RawEvent) ([]chat.Mutation, error)
}

// NormalizerFunc adapts a function to Normalizer.
type NormalizerFunc func(evt RawEvent) ([]chat.Mutation, error)

func (f NormalizerFunc) Normalize(evt RawEvent) ([]chat.Mutation, error) {
	return f(evt)
}

// Reactor is implemented by backends that can react to messages.
type Reactor interface {
	// React sets the account's reaction on a message; an empty emoji removes
	// it. The returned reaction names the sender the way the backend's own
	// events will report it.
	React(ctx context.Context, native, msgID, emoji string) (chat.Reaction, error)
}

// Editor is implemented by backends that can change the account's own
// messages after sending them. Both calls return once the server accepted
// the change.
type Editor interface {
	EditMessage(ctx context.Context, native, msgID string, body chat.Body) error
	DeleteMessage(ctx context.Context, native, msgID string) error
}
