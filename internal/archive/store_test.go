package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/store"
	"go.uber.org/zap"
)

var (
	c1 = chat.NewConversationID("wa", "alice@s.whatsapp.net")
	c2 = chat.NewConversationID("mx", "!room:example.org")
	t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.UpgradeSchema(zap.NewNop()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// archived runs mutations through a store journaling into db and waits until
// the journal has written them.
func archived(t *testing.T, db *DB, muts ...chat.Mutation) *store.Store {
	t.Helper()
	j := NewJournal(db, zap.NewNop())
	s := store.New(zap.NewNop(), store.WithJournal(j))
	for _, m := range muts {
		if _, err := s.Apply(m); err != nil {
			t.Fatalf("apply %T: %v", m, err)
		}
	}
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}
	return s
}

func msg(id, text string, at time.Duration) chat.Message {
	return chat.Message{ID: id, Sender: "alice", SenderName: "Alice", Body: chat.Body{Text: text}, Timestamp: t0.Add(at)}
}

func TestUpgradeSchemaIsIdempotent(t *testing.T) {
	db := testDB(t)

	// testDB already upgraded a fresh file.
	schema, err := db.UpgradeSchema(nil)
	if err != nil {
		t.Fatal(err)
	}
	if schema.Upgraded() || schema.From != 2 || schema.To != 2 {
		t.Errorf("second upgrade = %+v, want 2 -> 2 (init + fts)", schema)
	}
}

func TestUpgradeSchemaFromEmpty(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "archive.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	schema, err := db.UpgradeSchema(zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if !schema.Upgraded() || schema.From != 0 || schema.To != 2 {
		t.Errorf("schema = %+v", schema)
	}
}

func TestUpgradeSchemaRefusesDirty(t *testing.T) {
	db := testDB(t)
	if _, err := db.Exec("UPDATE schema_migrations SET dirty = 1"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.UpgradeSchema(nil); !errors.Is(err, ErrDirtySchema) {
		t.Errorf("err = %v, want dirty schema", err)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("empty path accepted")
	}
}

// TestSchemaHasJournalColumns verifies the migrations create every column
// the journal writes.
func TestSchemaHasJournalColumns(t *testing.T) {
	db := testDB(t)

	requiredOps := []struct {
		desc  string
		query string
		args  []any
	}{
		{"insert conversation", "INSERT INTO conversations (id, backend, native, name, kind, description, participants, unread, last_activity, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", []any{"b:c", "b", "c", "C", "group", "", "[]", 0, 1000, 1000}},
		{"insert message", "INSERT INTO messages (conversation, msg_id, sender, sender_name, from_me, body, payload, state, timestamp, received_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", []any{"b:c", "m1", "s", "Sender", false, "hello", "{}", "delivered", 1000, 1}},
	}
	for _, op := range requiredOps {
		t.Run(op.desc, func(t *testing.T) {
			if _, err := db.Exec(op.query, op.args...); err != nil {
				t.Fatalf("%s failed: %v", op.desc, err)
			}
		})
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM messages_fts WHERE messages_fts MATCH 'hello'").Scan(&count); err != nil {
		t.Fatalf("FTS query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("FTS count = %d, want 1", count)
	}

	// Deleting the conversation cascades to its messages and their index.
	if _, err := db.Exec("DELETE FROM conversations WHERE id = 'b:c'"); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM messages_fts WHERE messages_fts MATCH 'hello'").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("FTS count after delete = %d, want 0", count)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	db := testDB(t)
	archived(t, db,
		chat.UpsertConversation{ID: c1, Name: "Alice", Kind: chat.Direct, Participants: []chat.Participant{{ID: "alice", Name: "Alice"}}},
		chat.AppendMessage{Conversation: c1, Message: msg("m2", "second", time.Minute), Live: true},
		chat.AppendMessage{Conversation: c1, Message: msg("m1", "first", 0)},
		chat.ApplyReaction{Conversation: c1, MessageID: "m1", Reaction: chat.Reaction{Sender: "bob", Emoji: "👍"}},
		chat.EditMessage{Conversation: c1, MessageID: "m2", Body: chat.Body{Text: "second, fixed"}, At: t0.Add(2 * time.Minute)},
		chat.UpsertConversation{ID: c2, Name: "Room", Kind: chat.Group},
	)

	convs, err := db.Restore(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 2 {
		t.Fatalf("got %d conversations, want 2", len(convs))
	}
	got := convs[0]
	if got.ID != c1 || got.Name != "Alice" || got.Unread != 1 || !got.LastActivity.Equal(t0.Add(time.Minute)) {
		t.Errorf("conversation = %+v", got)
	}
	if len(got.Participants) != 1 || got.Participants[0].Name != "Alice" {
		t.Errorf("participants = %+v", got.Participants)
	}
	if len(got.Messages) != 2 || got.Messages[0].ID != "m1" || got.Messages[1].ID != "m2" {
		t.Fatalf("messages = %+v", got.Messages)
	}
	if r := got.Messages[0].Reactions; len(r) != 1 || r[0].Emoji != "👍" {
		t.Errorf("reactions = %+v", r)
	}
	if m := got.Messages[1]; !m.Edited || m.Body.Text != "second, fixed" || m.State != chat.Delivered {
		t.Errorf("edited message = %+v", m)
	}

	// Restored conversations load back into a fresh store unchanged.
	s := store.New(zap.NewNop())
	s.Load(convs)
	if c, ok := s.Get(c1); !ok || len(c.Messages) != 2 || c.Unread != 1 {
		t.Errorf("loaded = %+v", c)
	}
}

func TestRestoreLimitsMessages(t *testing.T) {
	db := testDB(t)
	var muts []chat.Mutation
	for i := range 5 {
		muts = append(muts, chat.AppendMessage{Conversation: c1, Message: msg(string(rune('a'+i)), "x", time.Duration(i)*time.Second)})
	}
	archived(t, db, muts...)

	convs, err := db.Restore(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if msgs := convs[0].Messages; len(msgs) != 2 || msgs[0].ID != "d" || msgs[1].ID != "e" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestRekeyReplacesLocalMessage(t *testing.T) {
	db := testDB(t)
	local := chat.Message{ID: "local-1", FromMe: true, State: chat.Sending, Body: chat.Body{Text: "hi"}, Timestamp: t0}
	archived(t, db,
		chat.AppendMessage{Conversation: c1, Message: local},
		chat.UpdateDeliveryState{Conversation: c1, MessageID: "local-1", NativeID: "srv-1", State: chat.Sent},
	)

	convs, err := db.Restore(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	msgs := convs[0].Messages
	if len(msgs) != 1 || msgs[0].ID != "srv-1" || msgs[0].State != chat.Sent {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestRemoveBackendDeletes(t *testing.T) {
	db := testDB(t)
	j := NewJournal(db, zap.NewNop())
	s := store.New(zap.NewNop(), store.WithJournal(j))
	if _, err := s.Apply(chat.AppendMessage{Conversation: c1, Message: msg("m1", "hello", 0)}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply(chat.UpsertConversation{ID: c2, Name: "Room"}); err != nil {
		t.Fatal(err)
	}
	s.RemoveBackend("wa")
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}

	convs, err := db.Restore(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 1 || convs[0].ID != c2 {
		t.Errorf("conversations = %+v", convs)
	}
	hits, err := db.Search(context.Background(), "hello", chat.ConversationID{}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("hits after removal = %+v", hits)
	}
}

func TestSearch(t *testing.T) {
	db := testDB(t)
	archived(t, db,
		chat.AppendMessage{Conversation: c1, Message: msg("m1", "hello world", 0)},
		chat.AppendMessage{Conversation: c1, Message: msg("m2", "goodbye world", time.Second)},
		chat.AppendMessage{Conversation: c2, Message: msg("m3", "hello from matrix", 2*time.Second)},
		chat.AppendMessage{Conversation: c2, Message: chat.Message{ID: "m4", Sender: "bob", Timestamp: t0,
			Body: chat.Body{Attachments: []chat.Attachment{{Name: "holiday.jpg", Size: 2_000_000}}}}},
	)

	hits, err := db.Search(context.Background(), "hello", chat.ConversationID{}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	// Newest first.
	if hits[0].Message.ID != "m3" || hits[0].Conversation != c2 || hits[1].Message.ID != "m1" {
		t.Errorf("hits = %+v", hits)
	}
	if hits[1].Snippet != "<<hello>> world" {
		t.Errorf("snippet = %q", hits[1].Snippet)
	}

	hits, err = db.Search(context.Background(), "world", c1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Message.ID != "m2" {
		t.Errorf("scoped hits = %+v", hits)
	}

	hits, err = db.Search(context.Background(), "holiday*", chat.ConversationID{}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].Message.ID != "m4" {
		t.Errorf("attachment hits = %+v", hits)
	}
}

func TestJournalIgnoresRecordsAfterClose(t *testing.T) {
	db := testDB(t)
	j := NewJournal(db, nil)
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}
	j.Record(store.Record{Change: store.Change{Kind: store.ConversationChanged, Conversation: c1}})
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}
	convs, err := db.Restore(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 0 {
		t.Errorf("conversations = %+v", convs)
	}
}

func TestLastReceivedFloorsReceiptClock(t *testing.T) {
	db := testDB(t)
	last, err := db.LastReceived(context.Background())
	if err != nil || !last.IsZero() {
		t.Fatalf("empty archive = %v, %v", last, err)
	}

	first := archived(t, db, chat.AppendMessage{Conversation: c1, Message: msg("m1", "first", 0)})
	stamped, _ := first.Message(c1, "m1")
	if last, err = db.LastReceived(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !last.Equal(stamped.ReceivedAt) {
		t.Errorf("last receipt = %v, want %v", last, stamped.ReceivedAt)
	}

	s := store.New(zap.NewNop(), store.WithClock(chat.ClockAfter(last)))
	if _, err := s.Apply(chat.AppendMessage{Conversation: c1, Message: msg("m2", "second", time.Minute)}); err != nil {
		t.Fatal(err)
	}
	if m, _ := s.Message(c1, "m2"); !m.ReceivedAt.After(last) {
		t.Errorf("receipt %v not after archived %v", m.ReceivedAt, last)
	}
}
