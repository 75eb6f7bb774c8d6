package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ready reports whether the backend can take outgoing traffic.
func (r *runner) ready() error {
	if state := r.machine.Current(); state.Phase != chat.Live && state.Phase != chat.SyncingHistory {
		return fmt.Errorf("%s is %s: %w", r.id, state, chat.ErrBackendUnavailable)
	}
	return nil
}

// target resolves a stored message for an outgoing change. A local send id
// resolves to the native message it became.
func (e *Engine) target(conv chat.ConversationID, msgID string) (*runner, chat.Message, error) {
	r, err := e.runner(conv.Backend)
	if err != nil {
		return nil, chat.Message{}, err
	}
	if err := r.ready(); err != nil {
		return nil, chat.Message{}, err
	}
	msg, ok := e.store.Message(conv, msgID)
	if !ok {
		return nil, chat.Message{}, fmt.Errorf("message %s in %s: %w", msgID, conv, chat.ErrNotFound)
	}
	if msg.Redacted {
		return nil, chat.Message{}, fmt.Errorf("message %s was deleted: %w", msg.ID, chat.ErrNotFound)
	}
	return r, msg, nil
}

func (e *Engine) span(ctx context.Context, name string, conv chat.ConversationID, msgID string) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("backend", string(conv.Backend)),
		attribute.String("conversation", conv.Native),
		attribute.String("message_id", msgID),
	))
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// React sets this account's reaction on a message. An empty emoji removes it.
func (e *Engine) React(ctx context.Context, conv chat.ConversationID, msgID, emoji string) (chat.Message, error) {
	r, msg, err := e.target(conv, msgID)
	if err != nil {
		return chat.Message{}, err
	}
	rc, ok := r.backend.(backend.Reactor)
	if !ok {
		return chat.Message{}, fmt.Errorf("reactions on %s (%s): %w", r.id, r.backend.Kind(), ErrUnsupported)
	}
	ctx, span := e.span(ctx, "engine.react", conv, msg.ID)
	defer span.End()

	reaction, err := rc.React(ctx, conv.Native, msg.ID, emoji)
	if err != nil {
		failSpan(span, err)
		return chat.Message{}, fmt.Errorf("react in %s: %w", conv, err)
	}
	mut := chat.ApplyReaction{Conversation: conv, MessageID: msg.ID, Reaction: reaction, Remove: emoji == ""}
	if err := e.commit(ctx, conv, mut); err != nil {
		return chat.Message{}, err
	}
	return e.reread(conv, msg), nil
}

// Edit replaces the text of a message this account sent. Attachments and
// the quote are kept.
func (e *Engine) Edit(ctx context.Context, conv chat.ConversationID, msgID, text string) (chat.Message, error) {
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, ErrEmptyBody
	}
	r, msg, err := e.target(conv, msgID)
	if err != nil {
		return chat.Message{}, err
	}
	ed, err := editor(r, msg)
	if err != nil {
		return chat.Message{}, err
	}
	ctx, span := e.span(ctx, "engine.edit", conv, msg.ID)
	defer span.End()

	body := msg.Body
	body.Text = text
	if err := ed.EditMessage(ctx, conv.Native, msg.ID, body); err != nil {
		failSpan(span, err)
		return chat.Message{}, fmt.Errorf("edit in %s: %w", conv, err)
	}
	mut := chat.EditMessage{Conversation: conv, MessageID: msg.ID, Body: body, At: time.Now()}
	if err := e.commit(ctx, conv, mut); err != nil {
		return chat.Message{}, err
	}
	return e.reread(conv, msg), nil
}

// Delete retracts a message this account sent. It stays in the
// conversation as redacted.
func (e *Engine) Delete(ctx context.Context, conv chat.ConversationID, msgID string) error {
	r, msg, err := e.target(conv, msgID)
	if err != nil {
		return err
	}
	ed, err := editor(r, msg)
	if err != nil {
		return err
	}
	ctx, span := e.span(ctx, "engine.delete", conv, msg.ID)
	defer span.End()

	if err := ed.DeleteMessage(ctx, conv.Native, msg.ID); err != nil {
		failSpan(span, err)
		return fmt.Errorf("delete in %s: %w", conv, err)
	}
	return e.commit(ctx, conv, chat.EditMessage{Conversation: conv, MessageID: msg.ID, Redact: true, At: time.Now()})
}

func editor(r *runner, msg chat.Message) (backend.Editor, error) {
	ed, ok := r.backend.(backend.Editor)
	if !ok {
		return nil, fmt.Errorf("edits on %s (%s): %w", r.id, r.backend.Kind(), ErrUnsupported)
	}
	if !msg.FromMe {
		return nil, fmt.Errorf("message %s: %w", msg.ID, ErrNotOwnMessage)
	}
	if msg.State == chat.Sending || msg.State == chat.Failed {
		return nil, fmt.Errorf("message %s is %s: %w", msg.ID, msg.State, ErrNotSent)
	}
	return ed, nil
}

// Forward sends a copy of a stored message to another conversation, which
// may belong to a different backend. Attachments whose content only the
// source backend can fetch are forwarded as their description.
func (e *Engine) Forward(ctx context.Context, from chat.ConversationID, msgID string, to chat.ConversationID) (chat.Message, error) {
	msg, ok := e.store.Message(from, msgID)
	if !ok {
		return chat.Message{}, fmt.Errorf("message %s in %s: %w", msgID, from, chat.ErrNotFound)
	}
	if msg.Redacted {
		return chat.Message{}, fmt.Errorf("message %s was deleted: %w", msg.ID, chat.ErrNotFound)
	}
	return e.Send(ctx, to, forwardBody(msg.Body))
}

func forwardBody(src chat.Body) chat.Body {
	body := chat.Body{Text: src.Text}
	var lines []string
	for _, a := range src.Attachments {
		if len(a.Inline) > 0 {
			body.Attachments = append(body.Attachments, a)
			continue
		}
		lines = append(lines, a.Line())
	}
	if len(lines) > 0 {
		body.Text = strings.TrimSpace(strings.Join(append([]string{body.Text}, lines...), "\n"))
	}
	return body
}

// Logout unlinks a device-linked backend and stops its session. Its
// conversations stay in the store until the backend is removed.
func (e *Engine) Logout(ctx context.Context, id chat.BackendID) error {
	r, err := e.runner(id)
	if err != nil {
		return err
	}
	u, ok := r.backend.(backend.Unlinker)
	if !ok {
		return fmt.Errorf("logout of %s (%s): %w", id, r.backend.Kind(), ErrUnsupported)
	}
	if err := u.Logout(ctx); err != nil {
		return fmt.Errorf("logout of %s: %w", id, err)
	}
	r.logger.Info("device unlinked")
	r.requestReconnect()
	return nil
}

func (e *Engine) reread(conv chat.ConversationID, fallback chat.Message) chat.Message {
	if m, ok := e.store.Message(conv, fallback.ID); ok {
		return m
	}
	return fallback
}
