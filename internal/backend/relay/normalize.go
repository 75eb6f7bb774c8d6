package relay

import (
	"encoding/json"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
)

// Event is a realtime envelope together with the account that received it.
type Event struct {
	Envelope Envelope
	Self     string
}

// Stored is a message returned by the history endpoint.
type Stored struct {
	Conversation string
	Message      Message
	Self         string
}

// Normalizer translates relay events.
type Normalizer struct{}

func (Normalizer) Normalize(evt backend.RawEvent) ([]chat.Mutation, error) {
	if muts, ok := backend.NormalizeCommon(evt); ok {
		return muts, nil
	}
	switch p := evt.Payload.(type) {
	case Stored:
		if p.Message.ConversationID == "" {
			p.Message.ConversationID = p.Conversation
		}
		return appendMessage(evt.Backend, p.Message, p.Self)
	case Event:
		return normalizeEnvelope(evt.Backend, p)
	}
	return nil, chat.Malformed("unexpected relay payload %T", evt.Payload)
}

func normalizeEnvelope(backendID chat.BackendID, p Event) ([]chat.Mutation, error) {
	env := p.Envelope
	switch env.Type {
	case "message.new":
		var m Message
		if err := decodePayload(env, &m); err != nil {
			return nil, err
		}
		return appendMessage(backendID, m, p.Self)

	case "message.edited":
		var e messageEdited
		if err := decodePayload(env, &e); err != nil {
			return nil, err
		}
		if e.ConversationID == "" || e.ID == "" {
			return nil, chat.Malformed("%s without conversation or id", env.Type)
		}
		return []chat.Mutation{chat.EditMessage{
			Conversation: chat.NewConversationID(backendID, e.ConversationID),
			MessageID:    e.ID,
			Body:         chat.Body{Text: e.Content},
			At:           parseTime(e.UpdatedAt),
		}}, nil

	case "message.deleted":
		var d messageDeleted
		if err := decodePayload(env, &d); err != nil {
			return nil, err
		}
		if d.ConversationID == "" || d.ID == "" {
			return nil, chat.Malformed("%s without conversation or id", env.Type)
		}
		return []chat.Mutation{chat.EditMessage{
			Conversation: chat.NewConversationID(backendID, d.ConversationID),
			MessageID:    d.ID,
			Redact:       true,
			At:           parseTime(d.DeletedAt),
		}}, nil

	case "message.read":
		var r messageRead
		if err := decodePayload(env, &r); err != nil {
			return nil, err
		}
		if r.ConversationID == "" || r.MessageID == "" {
			return nil, chat.Malformed("%s without conversation or message", env.Type)
		}
		if r.UserID == p.Self {
			return nil, nil
		}
		return []chat.Mutation{chat.UpdateDeliveryState{
			Conversation: chat.NewConversationID(backendID, r.ConversationID),
			MessageID:    r.MessageID,
			State:        chat.Read,
		}}, nil

	case "typing.indicator":
		var t typingIndicator
		if err := decodePayload(env, &t); err != nil {
			return nil, err
		}
		if t.ConversationID == "" || t.UserID == "" {
			return nil, chat.Malformed("%s without conversation or user", env.Type)
		}
		if t.UserID == p.Self {
			return nil, nil
		}
		return []chat.Mutation{chat.UpsertParticipant{
			Conversation: chat.NewConversationID(backendID, t.ConversationID),
			Participant:  chat.Participant{ID: t.UserID, Typing: t.IsTyping},
		}}, nil

	case "conversation.updated":
		var c conversation
		if err := decodePayload(env, &c); err != nil {
			return nil, err
		}
		if c.ID == "" {
			return nil, chat.Malformed("%s without id", env.Type)
		}
		s := summary(c, p.Self)
		return []chat.Mutation{chat.UpsertConversation{
			ID:           chat.NewConversationID(backendID, s.Native),
			Name:         s.Name,
			Kind:         s.Kind,
			Participants: s.Participants,
		}}, nil

	case "presence.changed":
		// Presence is not scoped to a conversation.
		return nil, nil
	}
	return nil, chat.Malformed("unsupported event type %q", env.Type)
}

func appendMessage(backendID chat.BackendID, m Message, self string) ([]chat.Mutation, error) {
	if m.ID == "" || m.ConversationID == "" || m.SenderID == "" {
		return nil, chat.Malformed("message without id, conversation or sender")
	}
	ts := parseTime(m.CreatedAt)
	if ts.IsZero() {
		return nil, chat.Malformed("message %s has invalid timestamp %q", m.ID, m.CreatedAt)
	}
	conv := chat.NewConversationID(backendID, m.ConversationID)
	msg := chat.Message{
		ID:         m.ID,
		Sender:     m.SenderID,
		SenderName: m.SenderName,
		FromMe:     m.SenderID == self,
		Body:       body(m),
		Timestamp:  ts,
	}
	var muts []chat.Mutation
	if m.SenderName != "" && !msg.FromMe {
		muts = append(muts, chat.UpsertParticipant{
			Conversation: conv,
			Participant:  chat.Participant{ID: m.SenderID, Name: m.SenderName},
		})
	}
	return append(muts, chat.AppendMessage{Conversation: conv, Message: msg}), nil
}

func body(m Message) chat.Body {
	b := chat.Body{Text: m.Content}
	switch m.Type {
	case "", "text", "markdown", "code":
	case "image", "file", "audio", "video":
		b.Text = ""
		b.Attachments = []chat.Attachment{{Name: m.Type, Handle: m.Content}}
	default:
		b.Text = "[" + m.Type + "] " + m.Content
	}
	if m.ParentID != "" {
		b.Quote = &chat.Quote{MessageID: m.ParentID}
	}
	return b
}

func decodePayload(env Envelope, v any) error {
	if len(env.Payload) == 0 {
		return chat.Malformed("%s without payload", env.Type)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return chat.Malformed("%s: %v", env.Type, err)
	}
	return nil
}
