// Package outbox tracks outgoing messages until their outcome is known.
package outbox

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/matheus3301/chatters/internal/bus"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/metrics"
	"go.uber.org/zap"
)

// Pending is a send still waiting for its outcome event.
type Pending struct {
	Conversation chat.ConversationID
	MessageID    string
	Since        time.Time
}

// Tracker remembers in-flight sends per backend so they can be reconciled to
// Failed when the backend goes away or the outcome never arrives.
type Tracker struct {
	mu      sync.Mutex
	pending map[chat.BackendID]map[string]Pending
	timeout time.Duration
	bus     *bus.Bus
	logger  *zap.Logger
	now     func() time.Time
	cancel  context.CancelFunc
}

// NewTracker creates a tracker. A zero timeout disables expiry.
func NewTracker(timeout time.Duration, b *bus.Bus, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		pending: make(map[chat.BackendID]map[string]Pending),
		timeout: timeout,
		bus:     b,
		logger:  logger.Named("outbox"),
		now:     time.Now,
	}
}

func key(conv chat.ConversationID, msgID string) string {
	return conv.Native + "\x00" + msgID
}

// Track registers a send that has been handed to the backend.
func (t *Tracker) Track(conv chat.ConversationID, msgID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := t.pending[conv.Backend]
	if m == nil {
		m = make(map[string]Pending)
		t.pending[conv.Backend] = m
	}
	m[key(conv, msgID)] = Pending{Conversation: conv, MessageID: msgID, Since: t.now()}
	metrics.PendingSends.WithLabelValues(string(conv.Backend)).Set(float64(len(m)))
}

// Resolve records the outcome of a tracked send. It reports whether the send
// was pending. A failed outcome is announced on the bus.
func (t *Tracker) Resolve(conv chat.ConversationID, msgID string, state chat.DeliveryState, reason string) bool {
	t.mu.Lock()
	m := t.pending[conv.Backend]
	k := key(conv, msgID)
	_, ok := m[k]
	delete(m, k)
	metrics.PendingSends.WithLabelValues(string(conv.Backend)).Set(float64(len(m)))
	t.mu.Unlock()
	if !ok {
		return false
	}

	if state == chat.Failed {
		t.announceFailure(&chat.SendError{Conversation: conv, MessageID: msgID, Reason: reason})
		return true
	}
	metrics.SendsTotal.WithLabelValues(string(conv.Backend), "sent").Inc()
	if t.bus != nil {
		t.bus.Publish(bus.Event{
			Kind:      bus.KindSendAck,
			Timestamp: t.now(),
			Payload:   Ack{Conversation: conv, MessageID: msgID},
		})
	}
	return true
}

// Forget drops a tracked send without announcing an outcome.
func (t *Tracker) Forget(conv chat.ConversationID, msgID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := t.pending[conv.Backend]
	delete(m, key(conv, msgID))
	metrics.PendingSends.WithLabelValues(string(conv.Backend)).Set(float64(len(m)))
}

// Ack is the payload of send acknowledgements.
type Ack struct {
	Conversation chat.ConversationID
	MessageID    string
}

// FailBackend removes every pending send of a backend and returns them as
// failures. Callers mark the messages Failed in the store.
func (t *Tracker) FailBackend(backend chat.BackendID, reason string) []*chat.SendError {
	t.mu.Lock()
	m := t.pending[backend]
	delete(t.pending, backend)
	t.mu.Unlock()
	metrics.PendingSends.WithLabelValues(string(backend)).Set(0)

	failures := make([]*chat.SendError, 0, len(m))
	for _, p := range m {
		failures = append(failures, &chat.SendError{Conversation: p.Conversation, MessageID: p.MessageID, Reason: reason})
	}
	sortFailures(failures)
	for _, f := range failures {
		t.announceFailure(f)
	}
	return failures
}

// Expired removes and returns sends pending longer than the timeout.
func (t *Tracker) Expired() []*chat.SendError {
	if t.timeout <= 0 {
		return nil
	}
	cutoff := t.now().Add(-t.timeout)
	var failures []*chat.SendError
	t.mu.Lock()
	for backend, m := range t.pending {
		for k, p := range m {
			if p.Since.Before(cutoff) {
				delete(m, k)
				failures = append(failures, &chat.SendError{Conversation: p.Conversation, MessageID: p.MessageID, Reason: "no outcome within " + t.timeout.String()})
			}
		}
		metrics.PendingSends.WithLabelValues(string(backend)).Set(float64(len(m)))
	}
	t.mu.Unlock()
	sortFailures(failures)
	for _, f := range failures {
		t.announceFailure(f)
	}
	return failures
}

// Len returns the number of pending sends for a backend.
func (t *Tracker) Len(backend chat.BackendID) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending[backend])
}

// Start checks for expired sends periodically and hands them to onExpire.
func (t *Tracker) Start(ctx context.Context, interval time.Duration, onExpire func([]*chat.SendError)) {
	if t.timeout <= 0 {
		return
	}
	ctx, t.cancel = context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if failures := t.Expired(); len(failures) > 0 {
					onExpire(failures)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the expiry loop.
func (t *Tracker) Stop() {
	if t.cancel != nil {
		t.cancel()
	}
}

func (t *Tracker) announceFailure(f *chat.SendError) {
	t.logger.Warn("message send failed",
		zap.Stringer("conversation", f.Conversation),
		zap.String("message_id", f.MessageID),
		zap.String("reason", f.Reason))
	metrics.SendsTotal.WithLabelValues(string(f.Conversation.Backend), "failed").Inc()
	if t.bus != nil {
		t.bus.Publish(bus.Event{
			Kind:      bus.KindSendFailed,
			Timestamp: t.now(),
			Payload:   f,
		})
	}
}

func sortFailures(fs []*chat.SendError) {
	slices.SortFunc(fs, func(a, b *chat.SendError) int {
		if a.Conversation != b.Conversation {
			if a.Conversation.String() < b.Conversation.String() {
				return -1
			}
			return 1
		}
		switch {
		case a.MessageID < b.MessageID:
			return -1
		case a.MessageID > b.MessageID:
			return 1
		}
		return 0
	})
}
