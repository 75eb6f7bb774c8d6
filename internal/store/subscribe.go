package store

import (
	"context"
	"errors"
	"sync"

	"github.com/matheus3301/chatters/internal/chat"
)

// ChangeKind classifies a change notification.
type ChangeKind string

const (
	ConversationChanged ChangeKind = "conversation"
	ParticipantChanged  ChangeKind = "participant"
	MessageAdded        ChangeKind = "message_added"
	MessageEdited       ChangeKind = "message_edited"
	DeliveryChanged     ChangeKind = "delivery"
	ConversationRemoved ChangeKind = "removed"
	BackendChanged      ChangeKind = "backend"
	// Coalesced replaces a run of notifications that overflowed a
	// subscriber's per-conversation buffer. Re-read the whole conversation.
	Coalesced ChangeKind = "coalesced"
)

// Change notifies that something in the store changed. Backend state changes
// carry a zero Conversation.
type Change struct {
	Conversation chat.ConversationID `json:"conversation,omitzero"`
	Backend      chat.BackendID      `json:"backend"`
	Kind         ChangeKind          `json:"kind"`
	MessageID    string              `json:"message_id,omitempty"`
	Participant  string              `json:"participant,omitempty"`
	State        chat.ConnState      `json:"state,omitzero"`
	Reason       string              `json:"reason,omitempty"`
}

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("subscription closed")

// DefaultBuffer is the per-conversation notification buffer used when
// Subscribe is called with a non-positive size.
const DefaultBuffer = 32

// Subscription buffers change notifications for one consumer. Publishing into
// it never blocks: when a conversation's pending notifications exceed the
// buffer they collapse into a single Coalesced notification. State is never
// lost, only notification granularity.
type Subscription struct {
	store   *Store
	limit   int
	backend chat.BackendID

	mu      sync.Mutex
	pending map[chat.ConversationID][]Change
	order   []chat.ConversationID
	closed  bool

	ready chan struct{}
	done  chan struct{}
	once  sync.Once
}

// Subscribe registers a consumer. buffer bounds the pending notifications per
// conversation. A non-empty backend filters to that backend's changes.
func (s *Store) Subscribe(buffer int, backend chat.BackendID) *Subscription {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	sub := &Subscription{
		store:   s,
		limit:   buffer,
		backend: backend,
		pending: make(map[chat.ConversationID][]Change),
		ready:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.subsMu.Lock()
	s.subs[sub] = struct{}{}
	s.subsMu.Unlock()
	return sub
}

func (s *Store) publish(c Change) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for sub := range s.subs {
		sub.push(c)
	}
}

func (sub *Subscription) push(c Change) {
	if sub.backend != "" && c.Backend != sub.backend {
		return
	}
	key := c.Conversation
	if c.Kind == BackendChanged {
		key = chat.ConversationID{Backend: c.Backend}
	}

	sub.mu.Lock()
	if sub.closed {
		sub.mu.Unlock()
		return
	}
	q, seen := sub.pending[key]
	if !seen {
		sub.order = append(sub.order, key)
	}
	switch {
	case len(q) == 1 && q[0].Kind == Coalesced:
		// Already collapsed; the coalesced notice covers this change.
	case len(q) >= sub.limit:
		sub.pending[key] = []Change{{Conversation: c.Conversation, Backend: c.Backend, Kind: Coalesced}}
	default:
		sub.pending[key] = append(q, c)
	}
	sub.mu.Unlock()

	select {
	case sub.ready <- struct{}{}:
	default:
	}
}

// Ready is signalled whenever notifications are pending. Use with Drain.
func (sub *Subscription) Ready() <-chan struct{} {
	return sub.ready
}

// Drain returns and clears every pending notification, grouped per
// conversation in the order conversations first became pending.
func (sub *Subscription) Drain() []Change {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if len(sub.order) == 0 {
		return nil
	}
	var out []Change
	for _, key := range sub.order {
		out = append(out, sub.pending[key]...)
	}
	clear(sub.pending)
	sub.order = sub.order[:0]
	return out
}

// Next blocks until notifications are pending, the context ends, or the
// subscription is closed.
func (sub *Subscription) Next(ctx context.Context) ([]Change, error) {
	for {
		if batch := sub.Drain(); len(batch) > 0 {
			return batch, nil
		}
		select {
		case <-sub.ready:
		case <-sub.done:
			return nil, ErrClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Close unregisters the subscription.
func (sub *Subscription) Close() {
	sub.once.Do(func() {
		sub.store.subsMu.Lock()
		delete(sub.store.subs, sub)
		sub.store.subsMu.Unlock()
		sub.mu.Lock()
		sub.closed = true
		clear(sub.pending)
		sub.order = nil
		sub.mu.Unlock()
		close(sub.done)
	})
}
