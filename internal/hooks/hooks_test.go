package hooks

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matheus3301/chatters/internal/bus"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/engine"
)

func received() engine.Received {
	return engine.Received{
		Backend: "whatsapp",
		Conversation: chat.Conversation{
			ID:           chat.NewConversationID("wa", "team@g.us"),
			Name:         "Team",
			Participants: []chat.Participant{{ID: "bob", Name: "Bob"}},
		},
		Message: chat.Message{ID: "m1", Sender: "bob", Body: chat.Body{Text: "lunch?"}},
	}
}

func TestEnv(t *testing.T) {
	env := Env("chattersd", received())
	want := []string{
		"CHATTERS_APP_NAME=chattersd",
		"CHATTERS_BACKEND=whatsapp",
		"CHATTERS_CONTACT_NAME=Team",
		"CHATTERS_SENDER_NAME=Bob",
		"CHATTERS_MESSAGE_BODY=lunch?",
	}
	if !slices.Equal(env, want) {
		t.Errorf("env = %q", env)
	}

	rec := received()
	rec.Conversation.Name = ""
	rec.Message.Sender = "carol"
	rec.Message.Body = chat.Body{Attachments: []chat.Attachment{{Name: "a.png", Size: 2_000}}}
	env = Env("x", rec)
	if env[2] != "CHATTERS_CONTACT_NAME=team@g.us" || env[3] != "CHATTERS_SENDER_NAME=carol" || env[4] != "CHATTERS_MESSAGE_BODY=+ a.png 2KB (remote)" {
		t.Errorf("fallback env = %q", env)
	}
}

func TestRunsHookOnReceivedMessage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	b := bus.New()
	r := New(Config{OnNewMessage: `printf '%s|%s' "$CHATTERS_SENDER_NAME" "$CHATTERS_MESSAGE_BODY" > ` + out}, b, nil)
	r.Start(context.Background())
	defer r.Stop()

	b.Publish(bus.Event{Kind: bus.KindMessageReceived, Timestamp: time.Now(), Payload: received()})

	deadline := time.Now().Add(3 * time.Second)
	for {
		data, err := os.ReadFile(out)
		if err == nil && string(data) == "Bob|lunch?" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("hook output = %q, err = %v", data, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestFailingHookIsNotFatal(t *testing.T) {
	r := New(Config{OnNewMessage: "exit 3"}, bus.New(), nil)
	r.OnNewMessage(received())
	r.wg.Wait()
}

func TestNoScriptNoSubscription(t *testing.T) {
	b := bus.New()
	r := New(Config{}, b, nil)
	r.Start(context.Background())
	defer r.Stop()
	if b.Subscribers() != 0 {
		t.Errorf("subscribers = %d", b.Subscribers())
	}
}
