package relay

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
)

var c1 = chat.NewConversationID("rl", "c1")

func envelope(t *testing.T, typ string, payload any) Event {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return Event{Envelope: Envelope{Type: typ, Payload: raw}, Self: "me"}
}

func normalize(t *testing.T, payload any) []chat.Mutation {
	t.Helper()
	muts, err := Normalizer{}.Normalize(backend.RawEvent{Backend: "rl", Payload: payload})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return muts
}

func TestNormalizeNewMessage(t *testing.T) {
	muts := normalize(t, envelope(t, "message.new", Message{
		ID: "m1", ConversationID: "c1", Content: "hi", Type: "text",
		SenderID: "bob", SenderName: "Bob", ParentID: "m0", CreatedAt: "2024-05-01T12:00:00.5Z",
	}))
	if len(muts) != 2 {
		t.Fatalf("mutations = %+v", muts)
	}
	if p := muts[0].(chat.UpsertParticipant); p.Conversation != c1 || p.Participant.Name != "Bob" {
		t.Errorf("participant = %+v", p)
	}
	m := muts[1].(chat.AppendMessage).Message
	want := time.Date(2024, 5, 1, 12, 0, 0, 500_000_000, time.UTC)
	if m.ID != "m1" || m.FromMe || m.Body.Text != "hi" || !m.Timestamp.Equal(want) {
		t.Errorf("message = %+v", m)
	}
	if m.Body.Quote == nil || m.Body.Quote.MessageID != "m0" {
		t.Errorf("quote = %+v", m.Body.Quote)
	}
}

func TestNormalizeOwnStoredMessage(t *testing.T) {
	muts := normalize(t, Stored{Conversation: "c1", Self: "me", Message: Message{
		ID: "m2", Content: "https://files.example/cat.png", Type: "image", SenderID: "me", SenderName: "Me", CreatedAt: "2024-05-01T12:00:00Z",
	}})
	if len(muts) != 1 {
		t.Fatalf("mutations = %+v", muts)
	}
	app := muts[0].(chat.AppendMessage)
	if app.Conversation != c1 || !app.Message.FromMe {
		t.Errorf("append = %+v", app)
	}
	if b := app.Message.Body; b.Text != "" || len(b.Attachments) != 1 || b.Attachments[0].Handle != "https://files.example/cat.png" {
		t.Errorf("body = %+v", b)
	}
}

func TestNormalizeEditDeleteRead(t *testing.T) {
	edit := normalize(t, envelope(t, "message.edited", messageEdited{ConversationID: "c1", ID: "m1", Content: "fixed"}))[0].(chat.EditMessage)
	if edit.MessageID != "m1" || edit.Body.Text != "fixed" || edit.Redact {
		t.Errorf("edit = %+v", edit)
	}
	del := normalize(t, envelope(t, "message.deleted", messageDeleted{ConversationID: "c1", ID: "m1"}))[0].(chat.EditMessage)
	if !del.Redact {
		t.Errorf("delete = %+v", del)
	}
	read := normalize(t, envelope(t, "message.read", messageRead{ConversationID: "c1", UserID: "bob", MessageID: "m1"}))[0].(chat.UpdateDeliveryState)
	if read.State != chat.Read || read.MessageID != "m1" {
		t.Errorf("read = %+v", read)
	}
	if muts := normalize(t, envelope(t, "message.read", messageRead{ConversationID: "c1", UserID: "me", MessageID: "m1"})); len(muts) != 0 {
		t.Errorf("own read receipt = %+v", muts)
	}
}

func TestNormalizeTyping(t *testing.T) {
	p := normalize(t, envelope(t, "typing.indicator", typingIndicator{ConversationID: "c1", UserID: "bob", IsTyping: true}))[0].(chat.UpsertParticipant)
	if p.Participant.ID != "bob" || !p.Participant.Typing {
		t.Errorf("typing = %+v", p)
	}
	if muts := normalize(t, envelope(t, "presence.changed", map[string]string{"userId": "bob", "status": "online"})); muts != nil {
		t.Errorf("presence = %+v", muts)
	}
}

func TestNormalizeConversationUpdated(t *testing.T) {
	up := normalize(t, envelope(t, "conversation.updated", conversation{ID: "c2", Type: "group", Title: "Renamed"}))[0].(chat.UpsertConversation)
	if up.ID != chat.NewConversationID("rl", "c2") || up.Name != "Renamed" || up.Kind != chat.Group {
		t.Errorf("upsert = %+v", up)
	}
}

func TestNormalizeRejectsMalformed(t *testing.T) {
	cases := map[string]any{
		"bad json":     Event{Envelope: Envelope{Type: "message.new", Payload: json.RawMessage(`{`)}},
		"no payload":   Event{Envelope: Envelope{Type: "message.new"}},
		"no sender":    envelope(t, "message.new", Message{ID: "m1", ConversationID: "c1", CreatedAt: "2024-05-01T12:00:00Z"}),
		"bad time":     envelope(t, "message.new", Message{ID: "m1", ConversationID: "c1", SenderID: "bob", CreatedAt: "yesterday"}),
		"unknown type": envelope(t, "agent.heartbeat", map[string]string{}),
		"foreign":      42,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Normalizer{}.Normalize(backend.RawEvent{Backend: "rl", Payload: payload})
			if !errors.Is(err, chat.ErrMalformedEvent) {
				t.Errorf("err = %v", err)
			}
		})
	}
}
