// Package engine drives every configured backend and is the only writer of
// the conversation store.
package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/bus"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/metrics"
	"github.com/matheus3301/chatters/internal/outbox"
	"github.com/matheus3301/chatters/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/matheus3301/chatters/internal/engine"

var (
	// ErrNotRunning is returned for work submitted before Start or after Stop.
	ErrNotRunning = errors.New("engine not running")
	// ErrEmptyBody is returned by Send for a body with neither text nor attachments.
	ErrEmptyBody = errors.New("empty message body")
	// ErrUnsupported is returned for operations the owning backend does not offer.
	ErrUnsupported = errors.New("not supported by backend")
	// ErrNotOwnMessage is returned when editing or deleting someone else's message.
	ErrNotOwnMessage = errors.New("not a message sent by this account")
	// ErrNotSent is returned when changing a message the server never accepted.
	ErrNotSent   = errors.New("message was not sent")
	errReconnect = errors.New("reconnect requested")
)

// Received is published on the bus for every new live incoming message.
type Received struct {
	Backend      string
	Conversation chat.Conversation
	Message      chat.Message
}

// BackendStatus describes one registered backend.
type BackendStatus struct {
	ID           chat.BackendID
	Kind         string
	State        chat.ConnState
	Since        time.Time
	PendingSends int
}

// Engine coordinates the backends. Each backend runs in its own goroutine;
// their mutations reach the store through per-conversation dispatch lanes.
type Engine struct {
	store  *store.Store
	bus    *bus.Bus
	policy Policy
	logger *zap.Logger
	tracer trace.Tracer
	clock  *chat.Clock
	outbox *outbox.Tracker
	parked *lru.Cache

	mu      sync.RWMutex
	runners map[chat.BackendID]*runner
	kinds   sync.Map
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool

	// laneMu guards the lanes' lifecycle only. Lane workers never take it or
	// mu, so a submitter blocked on a full lane always makes progress.
	laneMu      sync.RWMutex
	lanes       *lanes
	lanesClosed bool
}

// New creates an engine writing into st.
func New(st *store.Store, b *bus.Bus, policy Policy, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if b == nil {
		b = bus.New()
	}
	policy = policy.withDefaults()
	parked, err := lru.New(policy.ParkedUpdates)
	if err != nil {
		return nil, fmt.Errorf("parked update cache: %w", err)
	}
	return &Engine{
		store:   st,
		bus:     b,
		policy:  policy,
		logger:  logger.Named("engine"),
		tracer:  otel.Tracer(tracerName),
		clock:   st.Clock(),
		outbox:  outbox.NewTracker(policy.SendTimeout, b, logger),
		parked:  parked,
		runners: make(map[chat.BackendID]*runner),
	}, nil
}

// Policy returns the effective policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Start launches the dispatch lanes and every registered backend.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil || e.stopped {
		return
	}
	e.ctx, e.cancel = context.WithCancel(ctx)
	e.laneMu.Lock()
	e.lanes = newLanes(e.policy.Lanes, e.policy.LaneBuffer, e.apply)
	e.laneMu.Unlock()
	e.outbox.Start(e.ctx, 500*time.Millisecond, e.failSends)
	for _, r := range e.runners {
		r.start(e.ctx)
	}
	e.logger.Info("engine started", zap.Int("backends", len(e.runners)), zap.Int("lanes", e.policy.Lanes))
}

// Stop disconnects every backend, fails their in-flight sends, and drains the
// lanes. Every backend ends in the terminal Disconnected state.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	runners := make([]*runner, 0, len(e.runners))
	for _, r := range e.runners {
		runners = append(runners, r)
	}
	cancel := e.cancel
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	for _, r := range runners {
		r.stop()
		r.machine.Shutdown()
	}
	e.outbox.Stop()

	e.laneMu.Lock()
	l := e.lanes
	e.lanesClosed = true
	e.laneMu.Unlock()
	if l != nil {
		l.close()
	}
	e.logger.Info("engine stopped")
}

// Add registers a backend. If the engine is running the backend starts immediately.
func (e *Engine) Add(b backend.Backend, n backend.Normalizer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrNotRunning
	}
	id := b.ID()
	if _, dup := e.runners[id]; dup {
		return fmt.Errorf("backend %s already registered", id)
	}
	r := newRunner(e, b, n)
	e.runners[id] = r
	e.kinds.Store(id, b.Kind())
	e.store.SetBackendState(id, r.machine.Current())
	if e.ctx != nil {
		r.start(e.ctx)
	}
	return nil
}

// Remove stops a backend and deletes its conversations from the store.
func (e *Engine) Remove(ctx context.Context, id chat.BackendID) error {
	e.mu.Lock()
	r, ok := e.runners[id]
	delete(e.runners, id)
	e.mu.Unlock()
	if !ok {
		return fmt.Errorf("backend %s: %w", id, chat.ErrNotFound)
	}

	r.stop()
	r.machine.Shutdown()
	// Mutations the runner already queued must land before the removal.
	if err := e.barrier(ctx); err != nil && !errors.Is(err, ErrNotRunning) {
		return err
	}
	e.store.RemoveBackend(id)
	e.kinds.Delete(id)
	metrics.ForgetBackend(id)
	return nil
}

// Reconnect asks a backend to drop its session and connect again, skipping
// any remaining backoff delay.
func (e *Engine) Reconnect(id chat.BackendID) error {
	r, err := e.runner(id)
	if err != nil {
		return err
	}
	r.requestReconnect()
	return nil
}

// State returns a backend's connection state.
func (e *Engine) State(id chat.BackendID) (chat.ConnState, error) {
	r, err := e.runner(id)
	if err != nil {
		return chat.ConnState{}, err
	}
	return r.machine.Current(), nil
}

// Backends describes every registered backend, sorted by id.
func (e *Engine) Backends() []BackendStatus {
	e.mu.RLock()
	out := make([]BackendStatus, 0, len(e.runners))
	for id, r := range e.runners {
		out = append(out, BackendStatus{
			ID:           id,
			Kind:         r.backend.Kind(),
			State:        r.machine.Current(),
			Since:        r.machine.Since(),
			PendingSends: e.outbox.Len(id),
		})
	}
	e.mu.RUnlock()
	slices.SortFunc(out, func(a, b BackendStatus) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// Linker returns the device-linking capability of a backend, if it has one.
func (e *Engine) Linker(id chat.BackendID) (backend.Linker, error) {
	r, err := e.runner(id)
	if err != nil {
		return nil, err
	}
	l, ok := r.backend.(backend.Linker)
	if !ok {
		return nil, fmt.Errorf("backend %s (%s): %w", id, r.backend.Kind(), ErrUnsupported)
	}
	return l, nil
}

// Send hands a message to the owning backend and inserts it as Sending. The
// outcome arrives later and moves it to Sent or Failed.
func (e *Engine) Send(ctx context.Context, conv chat.ConversationID, body chat.Body) (chat.Message, error) {
	r, err := e.runner(conv.Backend)
	if err != nil {
		return chat.Message{}, err
	}
	if body.IsEmpty() {
		return chat.Message{}, ErrEmptyBody
	}
	if err := r.ready(); err != nil {
		return chat.Message{}, err
	}

	ctx, span := e.tracer.Start(ctx, "engine.send", trace.WithAttributes(
		attribute.String("backend", string(conv.Backend)),
		attribute.String("conversation", conv.Native),
	))
	defer span.End()

	h, err := r.backend.SendMessage(ctx, conv.Native, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.SendsTotal.WithLabelValues(string(conv.Backend), "rejected").Inc()
		return chat.Message{}, fmt.Errorf("send to %s: %w", conv, err)
	}
	span.SetAttributes(attribute.String("message_id", h.MessageID))

	msg := chat.Message{
		ID:         h.MessageID,
		FromMe:     true,
		Body:       body,
		Timestamp:  time.Now(),
		ReceivedAt: e.clock.Now(),
		State:      chat.Sending,
	}
	done := make(chan error, 1)
	t := task{mut: chat.AppendMessage{Conversation: conv, Message: msg}, track: true, done: done}
	if err := e.submit(ctx, conv, t); err != nil {
		return chat.Message{}, err
	}
	select {
	case err := <-done:
		if err != nil {
			return chat.Message{}, err
		}
	case <-ctx.Done():
		return chat.Message{}, ctx.Err()
	}
	if stored, ok := e.store.Message(conv, msg.ID); ok {
		return stored, nil
	}
	return msg, nil
}

// MarkRead clears a conversation's unread counter.
func (e *Engine) MarkRead(ctx context.Context, conv chat.ConversationID) error {
	return e.commit(ctx, conv, chat.MarkConversationRead{Conversation: conv})
}

// commit applies one mutation through the conversation's lane and waits for it.
func (e *Engine) commit(ctx context.Context, conv chat.ConversationID, mut chat.Mutation) error {
	done := make(chan error, 1)
	if err := e.submit(ctx, conv, task{mut: mut, done: done}); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) runner(id chat.BackendID) (*runner, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	r, ok := e.runners[id]
	if !ok {
		return nil, fmt.Errorf("backend %s: %w", id, chat.ErrNotFound)
	}
	return r, nil
}

func (e *Engine) submit(ctx context.Context, conv chat.ConversationID, t task) error {
	e.laneMu.RLock()
	defer e.laneMu.RUnlock()
	if e.lanes == nil || e.lanesClosed {
		return ErrNotRunning
	}
	return e.lanes.submit(ctx, conv, t)
}

func (e *Engine) barrier(ctx context.Context) error {
	e.laneMu.RLock()
	defer e.laneMu.RUnlock()
	if e.lanes == nil || e.lanesClosed {
		return ErrNotRunning
	}
	return e.lanes.barrier(ctx)
}

// failSends marks reconciled sends as Failed.
func (e *Engine) failSends(failures []*chat.SendError) {
	for _, f := range failures {
		t := task{mut: chat.UpdateDeliveryState{
			Conversation: f.Conversation,
			MessageID:    f.MessageID,
			State:        chat.Failed,
			Reason:       f.Reason,
		}}
		if err := e.submit(context.Background(), f.Conversation, t); err != nil {
			e.logger.Warn("could not mark send failed", zap.Error(err), zap.String("message_id", f.MessageID))
		}
	}
}
