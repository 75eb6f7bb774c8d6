package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/metrics"
	"github.com/matheus3301/chatters/internal/status"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// runner owns one backend: its connection, its normalizer and its state machine.
type runner struct {
	e       *Engine
	id      chat.BackendID
	backend backend.Backend
	norm    backend.Normalizer
	machine *status.Machine
	logger  *zap.Logger

	reconnect chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	// Owned by the run goroutine.
	backfillDone   chan error
	backfillCancel context.CancelFunc
	backfillWG     sync.WaitGroup
}

func newRunner(e *Engine, b backend.Backend, n backend.Normalizer) *runner {
	id := b.ID()
	r := &runner{
		e:         e,
		id:        id,
		backend:   b,
		norm:      n,
		logger:    e.logger.With(zap.String("backend", string(id)), zap.String("kind", b.Kind())),
		reconnect: make(chan struct{}, 1),
	}
	r.machine = status.NewMachine(id, e.bus, func(c status.Change) {
		e.store.SetBackendState(c.Backend, c.To)
		metrics.RecordPhase(c.Backend, c.To.Phase)
		r.logger.Info("backend state changed", zap.Stringer("from", c.From), zap.Stringer("to", c.To))
	})
	metrics.RecordPhase(id, chat.Disconnected)
	return r
}

func (r *runner) start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		r.run(ctx)
	}()
}

func (r *runner) stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (r *runner) requestReconnect() {
	select {
	case r.reconnect <- struct{}{}:
	default:
	}
}

func (r *runner) run(ctx context.Context) {
	bo := r.e.policy.Backoff.newBackOff()
	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return
		}
		if err := r.enterConnecting(); err != nil {
			return
		}
		if attempt > 0 {
			metrics.ReconnectsTotal.WithLabelValues(string(r.id)).Inc()
		}

		live, err := r.session(ctx)
		reason := reasonOf(ctx, err)
		r.teardown(reason)
		if ctx.Err() != nil {
			return
		}
		if live {
			bo.Reset()
		}
		if errors.Is(err, errReconnect) {
			bo.Reset()
			continue
		}

		_ = r.machine.Degrade(reason)
		wait := bo.NextBackOff()
		if wait == backoff.Stop {
			r.logger.Error("giving up reconnecting", zap.Error(err))
			_ = r.machine.Degrade("gave up reconnecting: " + reason)
			select {
			case <-r.reconnect:
				bo.Reset()
				continue
			case <-ctx.Done():
				return
			}
		}
		r.logger.Warn("backend unavailable, retrying", zap.Error(err), zap.Duration("backoff", wait))

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-r.reconnect:
			timer.Stop()
			bo.Reset()
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

// enterConnecting moves to Connecting. A session interrupted before reaching
// Live is first marked Degraded, since Connecting is not reachable from there.
func (r *runner) enterConnecting() error {
	switch r.machine.Current().Phase {
	case chat.Connecting, chat.SyncingHistory:
		_ = r.machine.Degrade("session interrupted")
	}
	return r.machine.Transition(chat.Connecting)
}

// session connects and drains events until the session fails, a reconnect is
// requested, or ctx ends. live reports whether the session reached Live.
func (r *runner) session(ctx context.Context) (live bool, err error) {
	sctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := r.backend.Connect(sctx); err != nil {
		return false, fmt.Errorf("connect: %w", err)
	}
	r.backfillDone = make(chan error, 1)
	events := r.backend.Events()
	if r.backend.ConnectionState() == backend.TransportConnected {
		r.established(sctx)
	}

	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return live, fmt.Errorf("event stream closed: %w", chat.ErrBackendUnavailable)
			}
			if err := r.handle(sctx, evt); err != nil {
				return live, err
			}
		case err := <-r.backfillDone:
			if err != nil {
				return live, fmt.Errorf("backfill: %w", err)
			}
			if err := r.machine.Transition(chat.Live); err != nil {
				r.logger.Warn("could not enter live", zap.Error(err))
				continue
			}
			live = true
		case <-r.reconnect:
			return live, errReconnect
		case <-ctx.Done():
			return live, ctx.Err()
		}
	}
}

// established starts backfill once the backend's live subscription is up.
// Repeated signals are ignored.
func (r *runner) established(ctx context.Context) {
	if r.machine.Current().Phase != chat.Connecting {
		return
	}
	if err := r.machine.Transition(chat.SyncingHistory); err != nil {
		r.logger.Warn("could not enter history sync", zap.Error(err))
		return
	}
	bctx, cancel := context.WithCancel(ctx)
	r.backfillCancel = cancel
	done := r.backfillDone
	r.backfillWG.Add(1)
	go func() {
		defer r.backfillWG.Done()
		done <- r.backfill(bctx)
	}()
}

// teardown cancels backfill, closes the session and reconciles sends that
// will never get an outcome.
func (r *runner) teardown(reason string) {
	if r.backfillCancel != nil {
		r.backfillCancel()
		r.backfillCancel = nil
	}
	r.backfillWG.Wait()
	if err := r.backend.Disconnect(); err != nil {
		r.logger.Warn("disconnect failed", zap.Error(err))
	}
	if failures := r.e.outbox.FailBackend(r.id, reason); len(failures) > 0 {
		r.e.failSends(failures)
	}
}

func (r *runner) handle(ctx context.Context, evt backend.RawEvent) error {
	source := "live"
	if evt.History {
		source = "history"
	}
	metrics.EventsTotal.WithLabelValues(string(r.id), source).Inc()
	muts, err := r.normalize(evt)
	if err != nil {
		return nil
	}
	for _, mut := range muts {
		switch m := mut.(type) {
		case chat.UpdateConnectionState:
			switch m.State.Phase {
			case chat.Live:
				r.established(ctx)
			case chat.Degraded:
				return fmt.Errorf("%s: %w", m.State.Reason, chat.ErrBackendUnavailable)
			}
			continue
		case chat.AppendMessage:
			m.Live = !evt.History
			mut = m
		}
		if err := r.dispatch(ctx, mut); err != nil {
			return err
		}
	}
	return nil
}

// normalize translates a raw event and stamps local receipt times.
func (r *runner) normalize(evt backend.RawEvent) ([]chat.Mutation, error) {
	evt.Backend = r.id
	if evt.ReceivedAt.IsZero() {
		evt.ReceivedAt = time.Now()
	}
	muts, err := r.norm.Normalize(evt)
	if err != nil {
		metrics.MalformedTotal.WithLabelValues(string(r.id)).Inc()
		r.logger.Warn("dropping malformed event", zap.Error(err), zap.String("payload", fmt.Sprintf("%T", evt.Payload)))
		return nil, err
	}
	for i, mut := range muts {
		if m, ok := mut.(chat.AppendMessage); ok {
			m.Message.ReceivedAt = r.e.clock.Now()
			muts[i] = m
		}
	}
	return muts, nil
}

func (r *runner) dispatch(ctx context.Context, mut chat.Mutation) error {
	conv, ok := chat.ConversationOf(mut)
	if !ok {
		return nil
	}
	if conv.Backend != r.id {
		r.logger.DPanic("normalizer emitted a mutation for another backend",
			zap.Stringer("conversation", conv), zap.String("mutation", kindOf(mut)))
		return nil
	}
	return r.e.submit(ctx, conv, task{mut: mut})
}

func (r *runner) backfill(ctx context.Context) error {
	start := time.Now()
	ctx, span := r.e.tracer.Start(ctx, "engine.backfill", trace.WithAttributes(
		attribute.String("backend", string(r.id)),
		attribute.Int("depth", r.e.policy.BackfillDepth),
		attribute.Int("page_size", r.e.policy.PageSize),
	))
	defer span.End()

	n, err := r.backfillAll(ctx)
	result := "ok"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	metrics.BackfillDuration.WithLabelValues(string(r.id), result).Observe(time.Since(start).Seconds())
	if err == nil {
		r.logger.Info("backfill complete", zap.Int("conversations", n), zap.Duration("took", time.Since(start)))
	}
	return err
}

func (r *runner) backfillAll(ctx context.Context) (int, error) {
	seq, err := r.backend.ListConversations(ctx)
	if err != nil {
		return 0, fmt.Errorf("list conversations: %w", err)
	}
	var natives []string
	for sum, err := range seq {
		if err != nil {
			return 0, fmt.Errorf("list conversations: %w", err)
		}
		conv := chat.NewConversationID(r.id, sum.Native)
		if err := r.dispatch(ctx, chat.UpsertConversation{
			ID:           conv,
			Name:         sum.Name,
			Kind:         sum.Kind,
			Participants: sum.Participants,
		}); err != nil {
			return 0, err
		}
		natives = append(natives, sum.Native)
	}

	for _, native := range natives {
		err := r.backfillConversation(ctx, native)
		if errors.Is(err, chat.ErrNotFound) {
			r.logger.Info("conversation vanished during backfill", zap.String("conversation", native))
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("history of %s: %w", native, err)
		}
	}
	return len(natives), nil
}

// backfillConversation pages from the newest messages towards older ones
// until a short page, no further cursor, or the configured depth.
func (r *runner) backfillConversation(ctx context.Context, native string) error {
	ctx, span := r.e.tracer.Start(ctx, "engine.backfill_conversation", trace.WithAttributes(
		attribute.String("backend", string(r.id)),
		attribute.String("conversation", native),
	))
	defer span.End()

	limit := r.e.policy.PageSize
	var cursor backend.Cursor
	for page := 0; page < r.e.policy.BackfillDepth; page++ {
		p, err := r.backend.FetchHistory(ctx, native, cursor, limit)
		if err != nil {
			span.RecordError(err)
			return err
		}
		metrics.BackfillPages.WithLabelValues(string(r.id)).Inc()
		for _, evt := range p.Events {
			metrics.EventsTotal.WithLabelValues(string(r.id), "history").Inc()
			muts, err := r.normalize(evt)
			if err != nil {
				continue
			}
			for _, mut := range muts {
				if _, ok := mut.(chat.UpdateConnectionState); ok {
					continue
				}
				if err := r.dispatch(ctx, mut); err != nil {
					return err
				}
			}
		}
		span.SetAttributes(attribute.Int("pages", page+1))
		if len(p.Events) < limit || p.Next == "" || p.Next == cursor {
			return nil
		}
		cursor = p.Next
	}
	return nil
}

func reasonOf(ctx context.Context, err error) string {
	switch {
	case ctx.Err() != nil:
		return "shutdown"
	case errors.Is(err, errReconnect):
		return "reconnect requested"
	case err == nil:
		return "session ended"
	}
	return err.Error()
}
