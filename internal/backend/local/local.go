// Package local implements an in-process backend. It needs no network and
// serves a notes-to-self conversation and an echo conversation, which makes it
// useful for demos and for exercising the rest of the stack.
package local

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
)

const (
	Kind = "local"

	SelfConversation = "self"
	EchoConversation = "echo"

	selfID = "me"
	echoID = "echo"
)

type conversation struct {
	summary backend.ConversationSummary
	msgs    []Message
}

// Backend is an in-memory chat network with a single account.
type Backend struct {
	id      chat.BackendID
	now     func() time.Time
	echoLag time.Duration

	mu        sync.Mutex
	q         *backend.Queue
	transport backend.Transport
	convs     map[string]*conversation
	order     []string
	wg        sync.WaitGroup
	stop      chan struct{}
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

// WithEchoDelay sets how long the echo conversation waits before replying.
func WithEchoDelay(d time.Duration) Option {
	return func(b *Backend) { b.echoLag = d }
}

// WithSeed fills the self conversation with n generated messages.
func WithSeed(n int) Option {
	return func(b *Backend) { b.seed(n) }
}

// New creates a backend with its two built-in conversations.
func New(id chat.BackendID, opts ...Option) *Backend {
	b := &Backend{
		id:        id,
		now:       time.Now,
		echoLag:   200 * time.Millisecond,
		transport: backend.TransportDisconnected,
		convs:     make(map[string]*conversation),
	}
	b.addConversation(backend.ConversationSummary{
		Native: SelfConversation,
		Name:   "Self",
		Kind:   chat.Direct,
		Participants: []chat.Participant{
			{ID: selfID, Name: "Self", Presence: chat.Online},
		},
	})
	b.addConversation(backend.ConversationSummary{
		Native: EchoConversation,
		Name:   "Echo",
		Kind:   chat.Direct,
		Participants: []chat.Participant{
			{ID: selfID, Name: "Self", Presence: chat.Online},
			{ID: echoID, Name: "Echo", Presence: chat.Online},
		},
	})
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) addConversation(s backend.ConversationSummary) {
	b.convs[s.Native] = &conversation{summary: s}
	b.order = append(b.order, s.Native)
}

func (b *Backend) seed(n int) {
	c := b.convs[SelfConversation]
	start := b.now().Add(-time.Duration(n+2) * time.Second)
	c.msgs = append(c.msgs,
		Message{Conv: SelfConversation, ID: "seed-1", Sender: selfID, SenderName: "Self", FromMe: true, Text: "Message 1", At: start},
		Message{Conv: SelfConversation, ID: "seed-2", Sender: selfID, SenderName: "Self", FromMe: true, Text: "Message 2", At: start.Add(time.Second)},
	)
	for i := range n {
		c.msgs = append(c.msgs, Message{
			Conv:       SelfConversation,
			ID:         "seed-" + strconv.Itoa(i+3),
			Sender:     selfID,
			SenderName: "Self",
			FromMe:     true,
			Text:       fmt.Sprintf("msg %d", n-1-i),
			At:         start.Add(time.Duration(i+2) * time.Second),
		})
	}
	c.summary.LastActivity = c.msgs[len(c.msgs)-1].At
}

func (b *Backend) ID() chat.BackendID { return b.id }
func (b *Backend) Kind() string       { return Kind }

func (b *Backend) Connect(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.transport == backend.TransportConnected {
		return nil
	}
	b.q = backend.NewQueue()
	b.stop = make(chan struct{})
	b.transport = backend.TransportConnected
	b.q.Push(backend.RawEvent{Backend: b.id, ReceivedAt: b.now(), Payload: backend.TransportChanged{Transport: backend.TransportConnected}})
	return nil
}

func (b *Backend) ListConversations(ctx context.Context) (iter.Seq2[backend.ConversationSummary, error], error) {
	if err := b.connected(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	out := make([]backend.ConversationSummary, 0, len(b.order))
	for _, native := range b.order {
		out = append(out, b.convs[native].summary)
	}
	b.mu.Unlock()
	return func(yield func(backend.ConversationSummary, error) bool) {
		for _, s := range out {
			if ctx.Err() != nil {
				yield(backend.ConversationSummary{}, ctx.Err())
				return
			}
			if !yield(s, nil) {
				return
			}
		}
	}, nil
}

// FetchHistory pages backwards. The cursor is the index of the oldest
// message returned so far; messages are only ever appended, so it stays valid.
func (b *Backend) FetchHistory(ctx context.Context, native string, before backend.Cursor, limit int) (backend.HistoryPage, error) {
	if err := b.connected(); err != nil {
		return backend.HistoryPage{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.convs[native]
	if !ok {
		return backend.HistoryPage{}, fmt.Errorf("conversation %s: %w", native, chat.ErrNotFound)
	}
	end := len(c.msgs)
	if before != "" {
		n, err := strconv.Atoi(string(before))
		if err != nil || n < 0 || n > len(c.msgs) {
			return backend.HistoryPage{}, fmt.Errorf("bad cursor %q", before)
		}
		end = n
	}
	start := max(0, end-limit)
	page := backend.HistoryPage{Events: make([]backend.RawEvent, 0, end-start)}
	for _, m := range c.msgs[start:end] {
		page.Events = append(page.Events, backend.RawEvent{Backend: b.id, ReceivedAt: b.now(), Payload: m})
	}
	if start > 0 {
		page.Next = backend.Cursor(strconv.Itoa(start))
	}
	return page, nil
}

// SendMessage stores the message and reports it sent. Messages to self are
// then delivered and read; the echo conversation answers with the same text.
func (b *Backend) SendMessage(ctx context.Context, native string, body chat.Body) (backend.SendHandle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.transport != backend.TransportConnected {
		return backend.SendHandle{}, fmt.Errorf("%s: %w", b.id, chat.ErrBackendUnavailable)
	}
	c, ok := b.convs[native]
	if !ok {
		return backend.SendHandle{}, fmt.Errorf("conversation %s: %w", native, chat.ErrNotFound)
	}

	msg := Message{
		Conv:        native,
		ID:          uuid.NewString(),
		Sender:      selfID,
		SenderName:  "Self",
		FromMe:      true,
		Text:        body.Text,
		Attachments: slices.Clone(body.Attachments),
		At:          b.now(),
	}
	if body.Quote != nil {
		msg.QuoteID = body.Quote.MessageID
	}
	b.store(c, msg)

	conv := chat.NewConversationID(b.id, native)
	b.push(backend.SendResult{Conversation: conv, MessageID: msg.ID})
	switch native {
	case SelfConversation:
		b.push(Receipt{Conv: native, ID: msg.ID, State: chat.Delivered})
		b.push(Receipt{Conv: native, ID: msg.ID, State: chat.Read})
	case EchoConversation:
		b.push(Receipt{Conv: native, ID: msg.ID, State: chat.Delivered})
		b.echo(msg)
	}
	return backend.SendHandle{Conversation: conv, MessageID: msg.ID}, nil
}

// React replaces the account's reaction on a stored message.
func (b *Backend) React(ctx context.Context, native, msgID, emoji string) (chat.Reaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, err := b.lookup(native, msgID)
	if err != nil {
		return chat.Reaction{}, err
	}
	// Pages already handed out share the old slice.
	m.Reactions = slices.DeleteFunc(slices.Clone(m.Reactions), func(r chat.Reaction) bool { return r.Sender == selfID })
	if emoji != "" {
		m.Reactions = append(m.Reactions, chat.Reaction{Sender: selfID, Emoji: emoji})
	}
	b.push(Reaction{Conv: native, Target: msgID, Sender: selfID, Emoji: emoji, Remove: emoji == ""})
	return chat.Reaction{Sender: selfID, Emoji: emoji}, nil
}

// EditMessage replaces the text of one of the account's messages.
func (b *Backend) EditMessage(ctx context.Context, native, msgID string, body chat.Body) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, err := b.own(native, msgID)
	if err != nil {
		return err
	}
	m.Text = body.Text
	m.EditedAt = b.now()
	b.push(Edit{Conv: native, Target: msgID, Text: m.Text, At: m.EditedAt})
	return nil
}

// DeleteMessage redacts one of the account's messages.
func (b *Backend) DeleteMessage(ctx context.Context, native, msgID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, err := b.own(native, msgID)
	if err != nil {
		return err
	}
	m.Redacted = true
	m.Text, m.Attachments, m.Reactions = "", nil, nil
	b.push(Edit{Conv: native, Target: msgID, Redact: true, At: b.now()})
	return nil
}

// lookup must be called with mu held. The returned pointer is only valid
// until the history changes.
func (b *Backend) lookup(native, msgID string) (*Message, error) {
	if b.transport != backend.TransportConnected {
		return nil, fmt.Errorf("%s: %w", b.id, chat.ErrBackendUnavailable)
	}
	c, ok := b.convs[native]
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", native, chat.ErrNotFound)
	}
	i := slices.IndexFunc(c.msgs, func(m Message) bool { return m.ID == msgID })
	if i < 0 || c.msgs[i].Redacted {
		return nil, fmt.Errorf("message %s: %w", msgID, chat.ErrNotFound)
	}
	return &c.msgs[i], nil
}

func (b *Backend) own(native, msgID string) (*Message, error) {
	m, err := b.lookup(native, msgID)
	if err != nil {
		return nil, err
	}
	if !m.FromMe {
		return nil, fmt.Errorf("message %s belongs to %s", msgID, m.Sender)
	}
	return m, nil
}

// echo must be called with mu held.
func (b *Backend) echo(sent Message) {
	stop := b.stop
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.pushLocked(Typing{Conv: EchoConversation, Sender: echoID, Typing: true})
		select {
		case <-time.After(b.echoLag):
		case <-stop:
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.transport != backend.TransportConnected {
			return
		}
		b.push(Receipt{Conv: EchoConversation, ID: sent.ID, State: chat.Read})
		b.push(Typing{Conv: EchoConversation, Sender: echoID})
		reply := Message{
			Conv:       EchoConversation,
			ID:         uuid.NewString(),
			Sender:     echoID,
			SenderName: "Echo",
			Text:       sent.Text,
			QuoteID:    sent.ID,
			QuoteText:  sent.Text,
			At:         b.now(),
		}
		b.store(b.convs[EchoConversation], reply)
		b.push(reply)
	}()
}

// Inject delivers a payload as if it had arrived from the network. Messages
// are also recorded in history.
func (b *Backend) Inject(payload any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.transport != backend.TransportConnected {
		return fmt.Errorf("%s: %w", b.id, chat.ErrBackendUnavailable)
	}
	if m, ok := payload.(Message); ok {
		c, ok := b.convs[m.Conv]
		if !ok {
			c = &conversation{summary: backend.ConversationSummary{Native: m.Conv, Name: m.SenderName, Kind: chat.Direct}}
			b.convs[m.Conv] = c
			b.order = append(b.order, m.Conv)
		}
		b.store(c, m)
	}
	b.push(payload)
	return nil
}

// store must be called with mu held.
func (b *Backend) store(c *conversation, m Message) {
	i, _ := slices.BinarySearchFunc(c.msgs, m.At, func(x Message, at time.Time) int { return x.At.Compare(at) })
	for i < len(c.msgs) && c.msgs[i].At.Equal(m.At) {
		i++
	}
	c.msgs = slices.Insert(c.msgs, i, m)
	if m.At.After(c.summary.LastActivity) {
		c.summary.LastActivity = m.At
	}
}

// push must be called with mu held.
func (b *Backend) push(payload any) {
	if b.q != nil {
		b.q.Push(backend.RawEvent{Backend: b.id, ReceivedAt: b.now(), Payload: payload})
	}
}

func (b *Backend) pushLocked(payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.push(payload)
}

func (b *Backend) Events() <-chan backend.RawEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.q == nil {
		closed := make(chan backend.RawEvent)
		close(closed)
		return closed
	}
	return b.q.Events()
}

func (b *Backend) ConnectionState() backend.Transport {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transport
}

func (b *Backend) Disconnect() error {
	b.mu.Lock()
	if b.transport == backend.TransportDisconnected {
		b.mu.Unlock()
		return nil
	}
	close(b.stop)
	b.q.Close()
	b.q = nil
	b.transport = backend.TransportDisconnected
	b.mu.Unlock()
	b.wg.Wait()
	return nil
}

func (b *Backend) connected() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.transport != backend.TransportConnected {
		return fmt.Errorf("%s: %w", b.id, chat.ErrBackendUnavailable)
	}
	return nil
}
