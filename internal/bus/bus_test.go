package bus

import (
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
	return Event{}
}

func expectNone(t *testing.T, ch <-chan Event) {
	t.Helper()
	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishStampsTime(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("backend.", 10)
	defer unsub()

	before := time.Now()
	b.Publish(Event{Kind: KindBackendState, Payload: "wa"})
	evt := receive(t, ch)
	if evt.Kind != KindBackendState || evt.Payload != "wa" {
		t.Errorf("event = %+v", evt)
	}
	if evt.Timestamp.Before(before) {
		t.Errorf("timestamp = %v, want >= %v", evt.Timestamp, before)
	}

	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	b.Publish(Event{Kind: KindBackendState, Timestamp: at})
	if evt := receive(t, ch); !evt.Timestamp.Equal(at) {
		t.Errorf("explicit timestamp replaced: %v", evt.Timestamp)
	}
}

func TestPrefixFiltering(t *testing.T) {
	b := New()
	messages, unsubMessages := b.Subscribe("message.", 10)
	defer unsubMessages()
	all, unsubAll := b.Subscribe("", 10)
	defer unsubAll()

	b.Publish(Event{Kind: KindBackendState})
	b.Publish(Event{Kind: KindSendFailed})

	if evt := receive(t, messages); evt.Kind != KindSendFailed {
		t.Errorf("message subscriber got %q", evt.Kind)
	}
	expectNone(t, messages)

	for _, want := range []string{KindBackendState, KindSendFailed} {
		if evt := receive(t, all); evt.Kind != want {
			t.Errorf("catch-all got %q, want %q", evt.Kind, want)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("backend.", 10)
	_, keep := b.Subscribe("backend.", 10)
	defer keep()
	unsub()
	unsub()

	b.Publish(Event{Kind: KindBackendState})
	expectNone(t, ch)
	if n := b.Subscribers(); n != 1 {
		t.Errorf("Subscribers() = %d, want 1", n)
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("test.", 1)
	defer unsub()

	b.Publish(Event{Kind: "test.one"})
	b.Publish(Event{Kind: "test.two"})

	if evt := receive(t, ch); evt.Kind != "test.one" {
		t.Errorf("got %q, want test.one", evt.Kind)
	}
	if b.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", b.Dropped())
	}
}
