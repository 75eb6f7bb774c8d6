package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matheus3301/chatters/internal/chat"
)

func TestSubscribeReceivesChanges(t *testing.T) {
	s := testStore(t)
	sub := s.Subscribe(8, "")
	defer sub.Close()

	mustApply(t, s, chat.AppendMessage{Conversation: c1, Message: msg("m1", 1)})

	select {
	case <-sub.Ready():
	case <-time.After(time.Second):
		t.Fatal("no ready signal")
	}
	batch := sub.Drain()
	if len(batch) != 1 || batch[0].Kind != MessageAdded || batch[0].MessageID != "m1" || batch[0].Conversation != c1 {
		t.Errorf("batch = %+v", batch)
	}
	if again := sub.Drain(); len(again) != 0 {
		t.Errorf("second drain = %+v", again)
	}
}

func TestOverflowCoalesces(t *testing.T) {
	s := testStore(t)
	sub := s.Subscribe(3, "")
	defer sub.Close()
	other := chat.NewConversationID("sig", "c2")

	for i := range 10 {
		mustApply(t, s, chat.AppendMessage{Conversation: c1, Message: msg(string(rune('a'+i)), int64(i))})
	}
	mustApply(t, s, chat.AppendMessage{Conversation: other, Message: msg("x", 1)})

	batch := sub.Drain()
	if len(batch) != 2 {
		t.Fatalf("batch = %+v, want one coalesced change plus one message", batch)
	}
	if batch[0].Conversation != c1 || batch[0].Kind != Coalesced {
		t.Errorf("first = %+v, want coalesced c1", batch[0])
	}
	if batch[1].Conversation != other || batch[1].Kind != MessageAdded {
		t.Errorf("second = %+v", batch[1])
	}

	// State is intact even though notifications were coalesced.
	conv, _ := s.Get(c1)
	if len(conv.Messages) != 10 {
		t.Errorf("messages = %d, want 10", len(conv.Messages))
	}
}

func TestSlowSubscriberNeverBlocksApply(t *testing.T) {
	s := testStore(t)
	sub := s.Subscribe(1, "")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 5000 {
			_, _ = s.Apply(chat.AppendMessage{Conversation: c1, Message: msg(string(rune(i+1000)), int64(i))})
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Apply blocked on an undrained subscriber")
	}
}

func TestBackendFilterAndStateChanges(t *testing.T) {
	s := testStore(t)
	sub := s.Subscribe(4, "mx")
	defer sub.Close()

	mustApply(t, s, chat.AppendMessage{Conversation: c1, Message: msg("m", 1)})
	s.SetBackendState("mx", chat.ConnState{Phase: chat.Degraded, Reason: "timeout"})
	s.SetBackendState("mx", chat.ConnState{Phase: chat.Degraded, Reason: "timeout"})

	batch := sub.Drain()
	if len(batch) != 1 {
		t.Fatalf("batch = %+v", batch)
	}
	if batch[0].Kind != BackendChanged || batch[0].State.Reason != "timeout" {
		t.Errorf("change = %+v", batch[0])
	}
}

func TestNextAndClose(t *testing.T) {
	s := testStore(t)
	sub := s.Subscribe(4, "")

	go func() {
		time.Sleep(20 * time.Millisecond)
		_, _ = s.Apply(chat.UpsertConversation{ID: c1, Name: "x"})
	}()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	batch, err := sub.Next(ctx)
	if err != nil || len(batch) != 1 || batch[0].Kind != ConversationChanged {
		t.Fatalf("Next = %+v, %v", batch, err)
	}

	sub.Close()
	if _, err := sub.Next(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Next after Close error = %v, want ErrClosed", err)
	}
}
