package local

import (
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
)

// Message is a text message on the local network.
type Message struct {
	Conv        string
	ID          string
	Sender      string
	SenderName  string
	FromMe      bool
	Text        string
	Attachments []chat.Attachment
	QuoteID     string
	QuoteText   string
	At          time.Time
	EditedAt    time.Time
	Redacted    bool
	Reactions   []chat.Reaction
}

// Reaction adds or removes an emoji on a message.
type Reaction struct {
	Conv   string
	Target string
	Sender string
	Emoji  string
	Remove bool
}

// Receipt reports the delivery progress of a message sent by the account.
type Receipt struct {
	Conv  string
	ID    string
	State chat.DeliveryState
}

// Typing reports a participant starting or stopping to type.
type Typing struct {
	Conv   string
	Sender string
	Typing bool
}

// Edit replaces the text of a message, or redacts it when Redact is set.
type Edit struct {
	Conv   string
	Target string
	Text   string
	Redact bool
	At     time.Time
}

// Normalizer translates local payloads.
type Normalizer struct{}

func (Normalizer) Normalize(evt backend.RawEvent) ([]chat.Mutation, error) {
	if muts, ok := backend.NormalizeCommon(evt); ok {
		return muts, nil
	}
	switch p := evt.Payload.(type) {
	case Message:
		if p.Conv == "" || p.ID == "" {
			return nil, chat.Malformed("local message without conversation or id")
		}
		if p.At.IsZero() {
			return nil, chat.Malformed("local message %s without timestamp", p.ID)
		}
		msg := chat.Message{
			ID:         p.ID,
			Sender:     p.Sender,
			SenderName: p.SenderName,
			FromMe:     p.FromMe,
			Body:       chat.Body{Text: p.Text, Attachments: p.Attachments},
			Timestamp:  p.At,
			Edited:     !p.EditedAt.IsZero(),
			EditedAt:   p.EditedAt,
			Redacted:   p.Redacted,
			Reactions:  p.Reactions,
		}
		if p.QuoteID != "" && !p.Redacted {
			msg.Body.Quote = &chat.Quote{MessageID: p.QuoteID, Text: p.QuoteText}
		}
		return []chat.Mutation{chat.AppendMessage{Conversation: chat.NewConversationID(evt.Backend, p.Conv), Message: msg}}, nil

	case Reaction:
		if p.Conv == "" || p.Target == "" || p.Sender == "" {
			return nil, chat.Malformed("local reaction missing conversation, target or sender")
		}
		return []chat.Mutation{chat.ApplyReaction{
			Conversation: chat.NewConversationID(evt.Backend, p.Conv),
			MessageID:    p.Target,
			Reaction:     chat.Reaction{Sender: p.Sender, Emoji: p.Emoji},
			Remove:       p.Remove,
		}}, nil

	case Receipt:
		if p.Conv == "" || p.ID == "" {
			return nil, chat.Malformed("local receipt without conversation or id")
		}
		return []chat.Mutation{chat.UpdateDeliveryState{
			Conversation: chat.NewConversationID(evt.Backend, p.Conv),
			MessageID:    p.ID,
			State:        p.State,
		}}, nil

	case Typing:
		if p.Conv == "" || p.Sender == "" {
			return nil, chat.Malformed("local typing event without conversation or sender")
		}
		return []chat.Mutation{chat.UpsertParticipant{
			Conversation: chat.NewConversationID(evt.Backend, p.Conv),
			Participant:  chat.Participant{ID: p.Sender, Typing: p.Typing},
		}}, nil

	case Edit:
		if p.Conv == "" || p.Target == "" {
			return nil, chat.Malformed("local edit without conversation or target")
		}
		return []chat.Mutation{chat.EditMessage{
			Conversation: chat.NewConversationID(evt.Backend, p.Conv),
			MessageID:    p.Target,
			Body:         chat.Body{Text: p.Text},
			Redact:       p.Redact,
			At:           p.At,
		}}, nil
	}
	return nil, chat.Malformed("unexpected local payload %T", evt.Payload)
}
