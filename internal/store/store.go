// Package store holds the authoritative in-memory state of every conversation.
//
// Apply is the only mutation entry point. Each conversation has its own lock,
// so unrelated conversations never serialize on each other, and readers always
// observe fully applied mutations.
package store

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/chatters/internal/chat"
	"go.uber.org/zap"
)

// ErrBackward is returned when a delivery update would move a message backwards.
var ErrBackward = errors.New("delivery state would move backward")

// Journal receives every committed change, in commit order per conversation.
// Record is called with the conversation lock held and must not block.
type Journal interface {
	Record(rec Record)
}

// Record is a committed change with the data needed to persist it.
// Conversation never carries messages.
type Record struct {
	Change       Change
	Conversation chat.Conversation
	Message      *chat.Message
	RemovedID    string
}

// Store is the in-memory conversation store.
type Store struct {
	mu       sync.RWMutex
	convs    map[chat.ConversationID]*entry
	backends map[chat.BackendID]chat.ConnState

	subsMu sync.RWMutex
	subs   map[*Subscription]struct{}

	clock   *chat.Clock
	journal Journal
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithJournal attaches a persistence journal.
func WithJournal(j Journal) Option {
	return func(s *Store) { s.journal = j }
}

// WithClock shares a receipt clock with the caller.
func WithClock(c *chat.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// New creates an empty store.
func New(logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		convs:    make(map[chat.ConversationID]*entry),
		backends: make(map[chat.BackendID]chat.ConnState),
		subs:     make(map[*Subscription]struct{}),
		clock:    chat.NewClock(),
		logger:   logger.Named("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clock returns the receipt clock used for messages without a receipt time.
func (s *Store) Clock() *chat.Clock {
	return s.clock
}

// Apply commits one mutation. Mutations that change nothing return false and
// no error. Updates targeting an unknown conversation or message return an
// error wrapping chat.ErrNotFound.
func (s *Store) Apply(m chat.Mutation) (bool, error) {
	id, ok := chat.ConversationOf(m)
	if !ok {
		return false, fmt.Errorf("mutation %T does not target a conversation", m)
	}
	if id.Backend == "" || id.Native == "" {
		s.logger.DPanic("mutation with incomplete conversation id",
			zap.String("mutation", fmt.Sprintf("%T", m)), zap.Stringer("conversation", id))
		return false, fmt.Errorf("incomplete conversation id %q", id)
	}

	var e *entry
	switch m.(type) {
	case chat.UpsertConversation, chat.UpsertParticipant, chat.AppendMessage:
		e = s.entryOrCreate(id)
	default:
		e = s.entry(id)
		if e == nil {
			return false, fmt.Errorf("conversation %s: %w", id, chat.ErrNotFound)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return false, fmt.Errorf("conversation %s: %w", id, chat.ErrNotFound)
	}

	var (
		rec Record
		err error
	)
	switch m := m.(type) {
	case chat.UpsertConversation:
		rec, ok = e.upsertConversation(m)
	case chat.UpsertParticipant:
		rec, ok = e.upsertParticipant(m.Participant)
	case chat.AppendMessage:
		rec, ok = e.append(m, s.clock)
	case chat.UpdateDeliveryState:
		rec, ok, err = e.updateDelivery(m)
	case chat.EditMessage:
		rec, ok, err = e.edit(m)
	case chat.ApplyReaction:
		rec, ok, err = e.react(m)
	case chat.MarkConversationRead:
		rec, ok = e.markRead()
	}
	if err != nil || !ok {
		return false, err
	}
	rec.Change.Conversation = id
	rec.Change.Backend = id.Backend
	rec.Conversation = e.summary()
	s.commit(rec)
	return true, nil
}

// commit is called with the entry lock held so notifications for one
// conversation keep commit order.
func (s *Store) commit(rec Record) {
	if s.journal != nil {
		s.journal.Record(rec)
	}
	s.publish(rec.Change)
}

func (s *Store) entry(id chat.ConversationID) *entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.convs[id]
}

func (s *Store) entryOrCreate(id chat.ConversationID) *entry {
	if e := s.entry(id); e != nil {
		return e
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.convs[id]; ok {
		return e
	}
	e := newEntry(id)
	s.convs[id] = e
	return e
}

// Get returns a copy of a conversation including its full message history.
func (s *Store) Get(id chat.ConversationID) (chat.Conversation, bool) {
	e := s.entry(id)
	if e == nil {
		return chat.Conversation{}, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.removed {
		return chat.Conversation{}, false
	}
	c := e.summary()
	c.Messages = slices.Clone(e.conv.Messages)
	return c, true
}

// Summary returns a conversation without its messages.
func (s *Store) Summary(id chat.ConversationID) (chat.Conversation, bool) {
	e := s.entry(id)
	if e == nil {
		return chat.Conversation{}, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.removed {
		return chat.Conversation{}, false
	}
	return e.summary(), true
}

// List returns every conversation without messages, most recent activity first.
// An empty backend lists all backends.
func (s *Store) List(backend chat.BackendID) []chat.Conversation {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.convs))
	for id, e := range s.convs {
		if backend == "" || id.Backend == backend {
			entries = append(entries, e)
		}
	}
	s.mu.RUnlock()

	out := make([]chat.Conversation, 0, len(entries))
	for _, e := range entries {
		e.mu.RLock()
		if !e.removed {
			out = append(out, e.summary())
		}
		e.mu.RUnlock()
	}
	slices.SortFunc(out, func(a, b chat.Conversation) int {
		if c := b.LastActivity.Compare(a.LastActivity); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Title(), b.Title()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out
}

// Range selects a window of a conversation's ordered messages. Before and After
// are exclusive message-id anchors. Without anchors the newest Limit messages
// are returned. Limit 0 means unbounded.
type Range struct {
	Before string
	After  string
	Limit  int
}

// Messages returns messages in stored order.
func (s *Store) Messages(id chat.ConversationID, r Range) ([]chat.Message, error) {
	e := s.entry(id)
	if e == nil {
		return nil, fmt.Errorf("conversation %s: %w", id, chat.ErrNotFound)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.removed {
		return nil, fmt.Errorf("conversation %s: %w", id, chat.ErrNotFound)
	}

	msgs := e.conv.Messages
	lo, hi := 0, len(msgs)
	if r.After != "" {
		i := e.find(r.After)
		if i < 0 {
			return nil, fmt.Errorf("message %s: %w", r.After, chat.ErrNotFound)
		}
		lo = i + 1
	}
	if r.Before != "" {
		i := e.find(r.Before)
		if i < 0 {
			return nil, fmt.Errorf("message %s: %w", r.Before, chat.ErrNotFound)
		}
		hi = i
	}
	if hi < lo {
		return nil, nil
	}
	if r.Limit > 0 && hi-lo > r.Limit {
		if r.After != "" && r.Before == "" {
			hi = lo + r.Limit
		} else {
			lo = hi - r.Limit
		}
	}
	return slices.Clone(msgs[lo:hi]), nil
}

// Message returns a single message by id. A local send id that has been
// rekeyed resolves to the native message.
func (s *Store) Message(id chat.ConversationID, msgID string) (chat.Message, bool) {
	e := s.entry(id)
	if e == nil {
		return chat.Message{}, false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	i := e.find(e.canonical(msgID))
	if i < 0 || e.removed {
		return chat.Message{}, false
	}
	return e.conv.Messages[i], true
}

// Participants returns the roster in insertion order.
func (s *Store) Participants(id chat.ConversationID) ([]chat.Participant, error) {
	e := s.entry(id)
	if e == nil {
		return nil, fmt.Errorf("conversation %s: %w", id, chat.ErrNotFound)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.removed {
		return nil, fmt.Errorf("conversation %s: %w", id, chat.ErrNotFound)
	}
	return slices.Clone(e.conv.Participants), nil
}

// Len returns the number of conversations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.convs)
}

// SetBackendState records a backend's connection state and notifies subscribers.
func (s *Store) SetBackendState(backend chat.BackendID, state chat.ConnState) {
	s.mu.Lock()
	prev, ok := s.backends[backend]
	s.backends[backend] = state
	s.mu.Unlock()
	if ok && prev == state {
		return
	}
	s.publish(Change{Backend: backend, Kind: BackendChanged, State: state})
}

// BackendState returns the last recorded state of a backend.
func (s *Store) BackendState(backend chat.BackendID) (chat.ConnState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.backends[backend]
	return state, ok
}

// Backends returns the recorded state of every backend.
func (s *Store) Backends() map[chat.BackendID]chat.ConnState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[chat.BackendID]chat.ConnState, len(s.backends))
	for id, state := range s.backends {
		out[id] = state
	}
	return out
}

// RemoveBackend deletes every conversation of a backend. It is the only way
// conversations leave the store.
func (s *Store) RemoveBackend(backend chat.BackendID) int {
	s.mu.Lock()
	var removed []*entry
	for id, e := range s.convs {
		if id.Backend == backend {
			removed = append(removed, e)
			delete(s.convs, id)
		}
	}
	delete(s.backends, backend)
	s.mu.Unlock()

	for _, e := range removed {
		e.mu.Lock()
		e.removed = true
		rec := Record{
			Change:       Change{Conversation: e.conv.ID, Backend: backend, Kind: ConversationRemoved},
			Conversation: e.summary(),
		}
		s.commit(rec)
		e.mu.Unlock()
	}
	s.logger.Info("backend removed", zap.String("backend", string(backend)), zap.Int("conversations", len(removed)))
	return len(removed)
}

// Load seeds the store with previously persisted conversations. It neither
// notifies subscribers nor writes to the journal. Existing messages win.
func (s *Store) Load(convs []chat.Conversation) {
	for _, c := range convs {
		e := s.entryOrCreate(c.ID)
		e.mu.Lock()
		e.upsertConversation(chat.UpsertConversation{
			ID: c.ID, Name: c.Name, Kind: c.Kind, Description: c.Description, Participants: c.Participants,
		})
		for _, m := range c.Messages {
			e.append(chat.AppendMessage{Conversation: c.ID, Message: m}, s.clock)
		}
		e.conv.Unread = c.Unread
		e.mu.Unlock()
	}
}

func errNotFound(msgID string) error {
	return fmt.Errorf("message %s: %w", msgID, chat.ErrNotFound)
}
