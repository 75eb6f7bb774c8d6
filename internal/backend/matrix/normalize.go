package matrix

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"
)

// Event is a room event together with the account it was received by.
type Event struct {
	Event *event.Event
	Self  id.UserID
}

// Typing lists who started and stopped typing in a room.
type Typing struct {
	Room    id.RoomID
	Started []id.UserID
	Stopped []id.UserID
}

// Normalizer translates Matrix events.
type Normalizer struct{}

func (Normalizer) Normalize(evt backend.RawEvent) ([]chat.Mutation, error) {
	if muts, ok := backend.NormalizeCommon(evt); ok {
		return muts, nil
	}
	switch p := evt.Payload.(type) {
	case Event:
		return normalizeEvent(evt.Backend, p)
	case Typing:
		if p.Room == "" {
			return nil, chat.Malformed("typing without room")
		}
		conv := chat.NewConversationID(evt.Backend, p.Room.String())
		muts := make([]chat.Mutation, 0, len(p.Started)+len(p.Stopped))
		for _, u := range p.Started {
			muts = append(muts, chat.UpsertParticipant{Conversation: conv, Participant: chat.Participant{ID: u.String(), Typing: true}})
		}
		for _, u := range p.Stopped {
			muts = append(muts, chat.UpsertParticipant{Conversation: conv, Participant: chat.Participant{ID: u.String()}})
		}
		return muts, nil
	}
	return nil, chat.Malformed("unexpected matrix payload %T", evt.Payload)
}

func normalizeEvent(backendID chat.BackendID, p Event) ([]chat.Mutation, error) {
	evt := p.Event
	if evt == nil || evt.RoomID == "" {
		return nil, chat.Malformed("event without room")
	}
	if evt.Content.Parsed == nil {
		if err := evt.Content.ParseRaw(evt.Type); err != nil && !errors.Is(err, event.ErrContentAlreadyParsed) {
			return nil, chat.Malformed("event %s: %v", evt.ID, err)
		}
	}
	conv := chat.NewConversationID(backendID, evt.RoomID.String())
	at := time.UnixMilli(evt.Timestamp)

	switch evt.Type {
	case event.EphemeralEventReceipt:
		return receipts(conv, p.Self, evt.Content.AsReceipt()), nil
	case event.StateRoomName:
		return []chat.Mutation{chat.UpsertConversation{ID: conv, Name: evt.Content.AsRoomName().Name}}, nil
	}

	if evt.ID == "" || evt.Timestamp == 0 {
		return nil, chat.Malformed("%s event without id or timestamp", evt.Type.Type)
	}

	switch evt.Type {
	case event.EventRedaction:
		target := evt.Redacts
		if target == "" {
			target = evt.Content.AsRedaction().Redacts
		}
		if target == "" {
			return nil, chat.Malformed("redaction %s without target", evt.ID)
		}
		return []chat.Mutation{chat.EditMessage{Conversation: conv, MessageID: target.String(), Redact: true, At: at}}, nil

	case event.EventReaction:
		rel := evt.Content.AsReaction().RelatesTo
		if rel.EventID == "" || rel.Key == "" {
			return nil, chat.Malformed("reaction %s without target or key", evt.ID)
		}
		return []chat.Mutation{chat.ApplyReaction{
			Conversation: conv,
			MessageID:    rel.EventID.String(),
			Reaction:     chat.Reaction{Sender: evt.Sender.String(), Emoji: rel.Key},
		}}, nil

	case event.EventEncrypted:
		return []chat.Mutation{chat.AppendMessage{Conversation: conv, Message: message(evt, p.Self, chat.Body{Text: "unable to decrypt: end-to-end encryption is not supported"})}}, nil

	case event.EventMessage:
		content := evt.Content.AsMessage()
		if target := content.RelatesTo.GetReplaceID(); target != "" {
			repl := content.NewContent
			if repl == nil {
				repl = content
			}
			return []chat.Mutation{chat.EditMessage{
				Conversation: conv,
				MessageID:    target.String(),
				Body:         body(repl, ""),
				At:           at,
			}}, nil
		}
		return []chat.Mutation{chat.AppendMessage{
			Conversation: conv,
			Message:      message(evt, p.Self, body(content, content.RelatesTo.GetReplyTo())),
		}}, nil
	}
	return nil, chat.Malformed("unsupported event type %s", evt.Type.Type)
}

func message(evt *event.Event, self id.UserID, b chat.Body) chat.Message {
	return chat.Message{
		ID:        evt.ID.String(),
		Sender:    evt.Sender.String(),
		FromMe:    evt.Sender == self,
		Body:      b,
		Timestamp: time.UnixMilli(evt.Timestamp),
	}
}

func body(c *event.MessageEventContent, replyTo id.EventID) chat.Body {
	var b chat.Body
	text := c.Body
	if replyTo != "" {
		b.Quote = &chat.Quote{MessageID: replyTo.String()}
		text = stripReplyFallback(text)
	}
	switch c.MsgType {
	case event.MsgImage, event.MsgVideo, event.MsgAudio, event.MsgFile:
		a := chat.Attachment{Name: c.FileName, Handle: string(c.URL)}
		if a.Name == "" {
			a.Name, text = text, ""
		}
		if c.Info != nil {
			a.MIMEType = c.Info.MimeType
			a.Size = int64(c.Info.Size)
		}
		b.Attachments = []chat.Attachment{a}
	case event.MsgEmote:
		text = "* " + text
	}
	b.Text = text
	return b
}

// stripReplyFallback removes the quoted "> " lines clients prepend to replies.
func stripReplyFallback(text string) string {
	if !strings.HasPrefix(text, "> ") {
		return text
	}
	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) && strings.HasPrefix(lines[i], ">") {
		i++
	}
	if i < len(lines) && lines[i] == "" {
		i++
	}
	return strings.Join(lines[i:], "\n")
}

// receipts marks events read by other users, in event id order. Matrix only
// reports reads.
func receipts(conv chat.ConversationID, self id.UserID, content *event.ReceiptEventContent) []chat.Mutation {
	var muts []chat.Mutation
	for _, eventID := range slices.Sorted(maps.Keys(*content)) {
		for typ, users := range (*content)[eventID] {
			if typ != event.ReceiptTypeRead {
				continue
			}
			for u := range users {
				if u == self {
					continue
				}
				muts = append(muts, chat.UpdateDeliveryState{Conversation: conv, MessageID: eventID.String(), State: chat.Read})
				break
			}
		}
	}
	return muts
}
