package local

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
)

func connected(t *testing.T, opts ...Option) *Backend {
	t.Helper()
	b := New("local", opts...)
	if err := b.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = b.Disconnect() })
	return b
}

func next(t *testing.T, b *Backend) backend.RawEvent {
	t.Helper()
	select {
	case evt, ok := <-b.Events():
		if !ok {
			t.Fatal("event stream closed")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("no event")
	}
	return backend.RawEvent{}
}

func TestListConversations(t *testing.T) {
	b := connected(t)
	seq, err := b.ListConversations(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for s, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		names = append(names, s.Name)
	}
	if len(names) != 2 || names[0] != "Self" || names[1] != "Echo" {
		t.Errorf("conversations = %v", names)
	}
}

func TestRequiresConnection(t *testing.T) {
	b := New("local")
	if _, err := b.ListConversations(context.Background()); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("list err = %v", err)
	}
	if _, err := b.SendMessage(context.Background(), SelfConversation, chat.Body{Text: "x"}); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("send err = %v", err)
	}
	if _, ok := <-b.Events(); ok {
		t.Error("events open before connect")
	}
}

func TestFetchHistoryPagesBackwards(t *testing.T) {
	b := connected(t, WithSeed(5))
	ctx := context.Background()

	var got []string
	var cursor backend.Cursor
	pages := 0
	for {
		page, err := b.FetchHistory(ctx, SelfConversation, cursor, 3)
		if err != nil {
			t.Fatal(err)
		}
		pages++
		for i := len(page.Events) - 1; i >= 0; i-- {
			got = append(got, page.Events[i].Payload.(Message).Text)
		}
		if page.Next == "" {
			break
		}
		cursor = page.Next
	}
	if pages != 3 {
		t.Errorf("pages = %d, want 3", pages)
	}
	if len(got) != 7 || got[0] != "msg 0" || got[6] != "Message 1" {
		t.Errorf("history newest first = %v", got)
	}

	if _, err := b.FetchHistory(ctx, "nope", "", 3); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("unknown conversation err = %v", err)
	}
}

func TestSendToSelfLoopsBack(t *testing.T) {
	b := connected(t)
	if evt := next(t, b); evt.Payload != (backend.TransportChanged{Transport: backend.TransportConnected}) {
		t.Fatalf("first event = %#v", evt.Payload)
	}

	h, err := b.SendMessage(context.Background(), SelfConversation, chat.Body{Text: "note"})
	if err != nil {
		t.Fatal(err)
	}
	if h.Conversation != chat.NewConversationID("local", SelfConversation) || h.MessageID == "" {
		t.Errorf("handle = %+v", h)
	}

	res, ok := next(t, b).Payload.(backend.SendResult)
	if !ok || res.MessageID != h.MessageID || res.Err != nil {
		t.Fatalf("send result = %+v", res)
	}
	for _, want := range []chat.DeliveryState{chat.Delivered, chat.Read} {
		r, ok := next(t, b).Payload.(Receipt)
		if !ok || r.ID != h.MessageID || r.State != want {
			t.Errorf("receipt = %+v, want %s", r, want)
		}
	}

	page, err := b.FetchHistory(context.Background(), SelfConversation, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(page.Events); n != 1 || page.Events[0].Payload.(Message).ID != h.MessageID {
		t.Errorf("history after send = %+v", page.Events)
	}
}

func TestEchoReplies(t *testing.T) {
	b := connected(t, WithEchoDelay(time.Millisecond))
	next(t, b)

	h, err := b.SendMessage(context.Background(), EchoConversation, chat.Body{Text: "ping"})
	if err != nil {
		t.Fatal(err)
	}
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-b.Events():
			m, ok := evt.Payload.(Message)
			if !ok {
				continue
			}
			if m.Text != "ping" || m.QuoteID != h.MessageID || m.FromMe {
				t.Errorf("echo = %+v", m)
			}
			return
		case <-deadline:
			t.Fatal("no echo")
		}
	}
}

func TestDisconnectClosesEvents(t *testing.T) {
	b := connected(t)
	events := b.Events()
	if err := b.Disconnect(); err != nil {
		t.Fatal(err)
	}
	for range events {
	}
	if b.ConnectionState() != backend.TransportDisconnected {
		t.Errorf("state = %s", b.ConnectionState())
	}
	if err := b.Connect(context.Background()); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	conv := chat.NewConversationID("local", "self")
	evt := func(p any) backend.RawEvent { return backend.RawEvent{Backend: "local", Payload: p} }
	n := Normalizer{}

	muts, err := n.Normalize(evt(Message{Conv: "self", ID: "m1", Sender: "me", Text: "hi", QuoteID: "m0", At: at}))
	if err != nil {
		t.Fatal(err)
	}
	app := muts[0].(chat.AppendMessage)
	if app.Conversation != conv || app.Message.ID != "m1" || app.Message.Body.Quote.MessageID != "m0" || !app.Message.Timestamp.Equal(at) {
		t.Errorf("append = %+v", app)
	}

	muts, err = n.Normalize(evt(Reaction{Conv: "self", Target: "m1", Sender: "me", Emoji: "🚀"}))
	if err != nil {
		t.Fatal(err)
	}
	if r := muts[0].(chat.ApplyReaction); r.Reaction.Emoji != "🚀" || r.MessageID != "m1" {
		t.Errorf("reaction = %+v", r)
	}

	muts, err = n.Normalize(evt(Typing{Conv: "self", Sender: "me", Typing: true}))
	if err != nil {
		t.Fatal(err)
	}
	if p := muts[0].(chat.UpsertParticipant); !p.Participant.Typing {
		t.Errorf("typing = %+v", p)
	}

	muts, err = n.Normalize(evt(Edit{Conv: "self", Target: "m1", Redact: true, At: at}))
	if err != nil {
		t.Fatal(err)
	}
	if e := muts[0].(chat.EditMessage); !e.Redact {
		t.Errorf("edit = %+v", e)
	}

	for _, bad := range []any{
		Message{Conv: "self", At: at},
		Message{Conv: "self", ID: "m2"},
		Reaction{Conv: "self", Target: "m1"},
		Receipt{ID: "m1"},
		42,
	} {
		if _, err := n.Normalize(evt(bad)); !errors.Is(err, chat.ErrMalformedEvent) {
			t.Errorf("Normalize(%#v) err = %v, want malformed", bad, err)
		}
	}
}

func TestInjectRecordsHistory(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	b := connected(t, WithClock(func() time.Time { return at }))
	next(t, b)

	in := Message{Conv: "dm-bob", ID: "b1", Sender: "bob", SenderName: "Bob", Text: "hey", At: at.Add(-time.Minute)}
	if err := b.Inject(in); err != nil {
		t.Fatal(err)
	}
	evt := next(t, b)
	if evt.Payload.(Message).ID != "b1" || !evt.ReceivedAt.Equal(at) {
		t.Errorf("injected event = %+v", evt)
	}

	seq, err := b.ListConversations(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for s := range seq {
		if s.Native == "dm-bob" {
			found = s.Name == "Bob" && s.LastActivity.Equal(in.At)
		}
	}
	if !found {
		t.Error("injected conversation not listed")
	}
	page, err := b.FetchHistory(context.Background(), "dm-bob", "", 10)
	if err != nil || len(page.Events) != 1 {
		t.Fatalf("history = %+v, %v", page, err)
	}

	_ = b.Disconnect()
	if err := b.Inject(in); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("inject while disconnected err = %v", err)
	}
}

func TestReactEditDelete(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	b := connected(t, WithClock(func() time.Time { return at }))
	next(t, b)
	ctx := context.Background()

	h, err := b.SendMessage(ctx, SelfConversation, chat.Body{Text: "draft"})
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		next(t, b)
	}
	if err := b.Inject(Message{Conv: SelfConversation, ID: "other", Sender: "bob", Text: "x", At: at}); err != nil {
		t.Fatal(err)
	}
	next(t, b)

	r, err := b.React(ctx, SelfConversation, h.MessageID, "👍")
	if err != nil || r != (chat.Reaction{Sender: "me", Emoji: "👍"}) {
		t.Fatalf("react = %+v, %v", r, err)
	}
	if p := next(t, b).Payload.(Reaction); p.Target != h.MessageID || p.Emoji != "👍" || p.Remove {
		t.Errorf("reaction event = %+v", p)
	}
	if _, err := b.React(ctx, SelfConversation, "missing", "👍"); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("react on missing err = %v", err)
	}

	if err := b.EditMessage(ctx, SelfConversation, h.MessageID, chat.Body{Text: "final"}); err != nil {
		t.Fatal(err)
	}
	if e := next(t, b).Payload.(Edit); e.Text != "final" || e.Redact || !e.At.Equal(at) {
		t.Errorf("edit event = %+v", e)
	}
	if err := b.EditMessage(ctx, SelfConversation, "other", chat.Body{Text: "hijack"}); err == nil {
		t.Error("edited someone else's message")
	}

	page, _ := b.FetchHistory(ctx, SelfConversation, "", 10)
	var stored Message
	for _, evt := range page.Events {
		if m := evt.Payload.(Message); m.ID == h.MessageID {
			stored = m
		}
	}
	if stored.Text != "final" || len(stored.Reactions) != 1 || !stored.EditedAt.Equal(at) {
		t.Errorf("stored after edit = %+v", stored)
	}
	muts, err := Normalizer{}.Normalize(backend.RawEvent{Backend: "local", Payload: stored})
	if err != nil {
		t.Fatal(err)
	}
	if m := muts[0].(chat.AppendMessage).Message; !m.Edited || len(m.Reactions) != 1 {
		t.Errorf("backfilled message = %+v", m)
	}

	if err := b.DeleteMessage(ctx, SelfConversation, h.MessageID); err != nil {
		t.Fatal(err)
	}
	if e := next(t, b).Payload.(Edit); !e.Redact {
		t.Errorf("delete event = %+v", e)
	}
	if err := b.DeleteMessage(ctx, SelfConversation, h.MessageID); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}
