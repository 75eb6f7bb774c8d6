package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/matheus3301/chatters/internal/bus"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/metrics"
	"github.com/matheus3301/chatters/internal/store"
	"go.uber.org/zap"
)

// apply runs on a lane worker. All tasks for one conversation pass through
// the same worker, so parked updates need no extra locking.
func (e *Engine) apply(t task) {
	if t.mut == nil {
		if t.done != nil {
			t.done <- nil
		}
		return
	}
	m, tracked := t.mut.(chat.AppendMessage)
	tracked = tracked && t.track
	if tracked {
		e.outbox.Track(m.Conversation, m.Message.ID)
	}

	err := e.applyOne(t.mut)
	if tracked {
		e.settle(m.Conversation, m.Message.ID)
	}
	if t.done != nil {
		t.done <- err
	}
}

// settle releases a tracked send whose outcome was committed before its
// local insert, as when the backend echo overtakes Send.
func (e *Engine) settle(conv chat.ConversationID, msgID string) {
	msg, ok := e.store.Message(conv, msgID)
	switch {
	case !ok:
		e.outbox.Forget(conv, msgID)
	case msg.ID != msgID || msg.State != chat.Sending:
		e.outbox.Resolve(conv, msgID, msg.State, "")
	}
}

func (e *Engine) applyOne(mut chat.Mutation) error {
	conv, _ := chat.ConversationOf(mut)
	changed, err := e.store.Apply(mut)

	result := "noop"
	switch {
	case err == nil && changed:
		result = "applied"
	case err == nil:
	case errors.Is(err, chat.ErrNotFound) && parkable(mut):
		e.park(conv, mut)
		result = "parked"
		err = nil
	case errors.Is(err, store.ErrBackward):
		e.logger.Debug("ignoring backward delivery update",
			zap.Stringer("conversation", conv), zap.Error(err))
		result = "rejected"
	default:
		e.logger.Warn("mutation not applied",
			zap.Stringer("conversation", conv),
			zap.String("mutation", kindOf(mut)),
			zap.Error(err))
		result = "error"
	}
	metrics.RecordMutation(conv.Backend, kindOf(mut), result)

	switch m := mut.(type) {
	case chat.UpdateDeliveryState:
		if result != "parked" && result != "error" {
			e.outbox.Resolve(m.Conversation, m.MessageID, m.State, m.Reason)
		}
		if changed && m.NativeID != "" {
			e.replay(conv, m.NativeID)
		}
	case chat.AppendMessage:
		if changed {
			e.replay(conv, m.Message.ID)
			if m.Live && !m.Message.FromMe {
				e.announce(conv, m.Message.ID)
			}
		}
	}
	if result == "rejected" {
		return nil
	}
	return err
}

func parkable(mut chat.Mutation) bool {
	switch mut.(type) {
	case chat.UpdateDeliveryState, chat.EditMessage, chat.ApplyReaction:
		return true
	}
	return false
}

func parkKey(conv chat.ConversationID, msgID string) string {
	return conv.String() + "\x00" + msgID
}

func messageOf(mut chat.Mutation) string {
	switch m := mut.(type) {
	case chat.UpdateDeliveryState:
		return m.MessageID
	case chat.EditMessage:
		return m.MessageID
	case chat.ApplyReaction:
		return m.MessageID
	}
	return ""
}

// park holds an update whose message has not arrived yet. Receipts commonly
// overtake the message they refer to after a reconnect.
func (e *Engine) park(conv chat.ConversationID, mut chat.Mutation) {
	key := parkKey(conv, messageOf(mut))
	var queued []chat.Mutation
	if v, ok := e.parked.Get(key); ok {
		queued = v.([]chat.Mutation)
	}
	e.parked.Add(key, append(queued, mut))
	metrics.ParkedUpdates.WithLabelValues(string(conv.Backend)).Inc()
}

func (e *Engine) replay(conv chat.ConversationID, msgID string) {
	key := parkKey(conv, msgID)
	v, ok := e.parked.Get(key)
	if !ok {
		return
	}
	e.parked.Remove(key)
	for _, mut := range v.([]chat.Mutation) {
		_ = e.applyOne(mut)
	}
}

func (e *Engine) announce(conv chat.ConversationID, msgID string) {
	summary, ok := e.store.Summary(conv)
	if !ok {
		return
	}
	msg, ok := e.store.Message(conv, msgID)
	if !ok {
		return
	}
	kind := string(conv.Backend)
	if v, ok := e.kinds.Load(conv.Backend); ok {
		kind = v.(string)
	}
	e.bus.Publish(bus.Event{
		Kind:      bus.KindMessageReceived,
		Timestamp: time.Now(),
		Payload:   Received{Backend: kind, Conversation: summary, Message: msg},
	})
}

func kindOf(mut chat.Mutation) string {
	switch mut.(type) {
	case chat.UpsertConversation:
		return "upsert_conversation"
	case chat.UpsertParticipant:
		return "upsert_participant"
	case chat.AppendMessage:
		return "append_message"
	case chat.UpdateDeliveryState:
		return "update_delivery_state"
	case chat.EditMessage:
		return "edit_message"
	case chat.ApplyReaction:
		return "apply_reaction"
	case chat.MarkConversationRead:
		return "mark_read"
	}
	return fmt.Sprintf("%T", mut)
}
