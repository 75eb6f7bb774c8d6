package engine

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/backend/local"
	"github.com/matheus3301/chatters/internal/bus"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/store"
)

type fakeMsg struct {
	Conv   string
	ID     string
	Sender string
	FromMe bool
	Text   string
	At     time.Time
}

type fakeReceipt struct {
	Conv  string
	ID    string
	State chat.DeliveryState
}

func fakeNormalize(evt backend.RawEvent) ([]chat.Mutation, error) {
	if muts, ok := backend.NormalizeCommon(evt); ok {
		return muts, nil
	}
	switch p := evt.Payload.(type) {
	case fakeMsg:
		return []chat.Mutation{chat.AppendMessage{
			Conversation: chat.NewConversationID(evt.Backend, p.Conv),
			Message: chat.Message{
				ID:        p.ID,
				Sender:    p.Sender,
				FromMe:    p.FromMe,
				Body:      chat.Body{Text: p.Text},
				Timestamp: p.At,
			},
		}}, nil
	case fakeReceipt:
		return []chat.Mutation{chat.UpdateDeliveryState{
			Conversation: chat.NewConversationID(evt.Backend, p.Conv),
			MessageID:    p.ID,
			State:        p.State,
		}}, nil
	}
	return nil, chat.Malformed("unexpected payload %T", evt.Payload)
}

// fakeBackend serves conversations from memory. Each Connect opens a new
// event queue, like a real session would.
type fakeBackend struct {
	id chat.BackendID

	mu         sync.Mutex
	q          *backend.Queue
	transport  backend.Transport
	connectErr error
	connects   int
	convs      []backend.ConversationSummary
	history    map[string][]fakeMsg
	fetches    map[string]int
	autoAck    bool
	echoNative bool
	afterSend  func()
	sent       int
}

func newFake(id string) *fakeBackend {
	return &fakeBackend{
		id:        chat.BackendID(id),
		transport: backend.TransportDisconnected,
		history:   make(map[string][]fakeMsg),
		fetches:   make(map[string]int),
		autoAck:   true,
	}
}

func (f *fakeBackend) addConversation(native string, msgs ...fakeMsg) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.convs = append(f.convs, backend.ConversationSummary{Native: native, Name: strings.ToUpper(native)})
	f.history[native] = msgs
}

func (f *fakeBackend) setConnectErr(err error) {
	f.mu.Lock()
	f.connectErr = err
	f.mu.Unlock()
}

func (f *fakeBackend) push(payload any) {
	f.mu.Lock()
	q := f.q
	f.mu.Unlock()
	if q != nil {
		q.Push(backend.RawEvent{Backend: f.id, Payload: payload})
	}
}

func (f *fakeBackend) connectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connects
}

func (f *fakeBackend) fetchCount(native string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches[native]
}

func (f *fakeBackend) ID() chat.BackendID { return f.id }
func (f *fakeBackend) Kind() string       { return "fake" }

func (f *fakeBackend) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	if f.connectErr != nil {
		return fmt.Errorf("%w: %v", chat.ErrBackendUnavailable, f.connectErr)
	}
	f.q = backend.NewQueue()
	f.transport = backend.TransportConnected
	return nil
}

func (f *fakeBackend) ListConversations(ctx context.Context) (iter.Seq2[backend.ConversationSummary, error], error) {
	f.mu.Lock()
	convs := append([]backend.ConversationSummary(nil), f.convs...)
	f.mu.Unlock()
	return func(yield func(backend.ConversationSummary, error) bool) {
		for _, c := range convs {
			if !yield(c, nil) {
				return
			}
		}
	}, nil
}

// FetchHistory pages backwards; the cursor is the index of the oldest
// message already returned.
func (f *fakeBackend) FetchHistory(ctx context.Context, native string, before backend.Cursor, limit int) (backend.HistoryPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msgs, ok := f.history[native]
	if !ok {
		return backend.HistoryPage{}, chat.ErrNotFound
	}
	f.fetches[native]++
	end := len(msgs)
	if before != "" {
		end, _ = strconv.Atoi(string(before))
	}
	start := max(0, end-limit)
	var page backend.HistoryPage
	for _, m := range msgs[start:end] {
		page.Events = append(page.Events, backend.RawEvent{Backend: f.id, Payload: m})
	}
	if start > 0 {
		page.Next = backend.Cursor(strconv.Itoa(start))
	}
	return page, nil
}

// SendMessage acknowledges immediately when autoAck is set. With echoNative
// the server echo and the outcome naming its native id are queued before
// SendMessage returns, and afterSend runs last.
func (f *fakeBackend) SendMessage(ctx context.Context, native string, body chat.Body) (backend.SendHandle, error) {
	f.mu.Lock()
	if f.transport != backend.TransportConnected {
		f.mu.Unlock()
		return backend.SendHandle{}, chat.ErrBackendUnavailable
	}
	f.sent++
	h := backend.SendHandle{
		Conversation: chat.NewConversationID(f.id, native),
		MessageID:    "out-" + strconv.Itoa(f.sent),
	}
	switch {
	case f.echoNative:
		nativeID := "srv-" + strconv.Itoa(f.sent)
		f.q.Push(backend.RawEvent{Backend: f.id, Payload: fakeMsg{
			Conv: native, ID: nativeID, Sender: "me", FromMe: true, Text: body.Text, At: time.Now(),
		}})
		f.q.Push(backend.RawEvent{Backend: f.id, Payload: backend.SendResult{
			Conversation: h.Conversation,
			MessageID:    h.MessageID,
			NativeID:     nativeID,
		}})
	case f.autoAck:
		f.q.Push(backend.RawEvent{Backend: f.id, Payload: backend.SendResult{
			Conversation: h.Conversation,
			MessageID:    h.MessageID,
		}})
	}
	hook := f.afterSend
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return h, nil
}

func (f *fakeBackend) Events() <-chan backend.RawEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.q.Events()
}

func (f *fakeBackend) ConnectionState() backend.Transport {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transport
}

func (f *fakeBackend) Disconnect() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.q != nil {
		f.q.Close()
		f.q = nil
	}
	f.transport = backend.TransportDisconnected
	return nil
}

func testPolicy() Policy {
	p := DefaultPolicy()
	p.Lanes = 4
	p.Backoff = BackoffPolicy{Initial: 5 * time.Millisecond, Max: 20 * time.Millisecond, Multiplier: 2}
	return p
}

func testEngine(t *testing.T, policy Policy, fakes ...*fakeBackend) (*Engine, *store.Store, *bus.Bus) {
	t.Helper()
	st := store.New(nil)
	b := bus.New()
	e, err := New(st, b, policy, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range fakes {
		if err := e.Add(f, backend.NormalizerFunc(fakeNormalize)); err != nil {
			t.Fatal(err)
		}
	}
	e.Start(context.Background())
	t.Cleanup(e.Stop)
	return e, st, b
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func waitPhase(t *testing.T, e *Engine, id chat.BackendID, phase chat.Phase) {
	t.Helper()
	waitFor(t, fmt.Sprintf("%s to be %s", id, phase), func() bool {
		s, err := e.State(id)
		return err == nil && s.Phase == phase
	})
}

func messages(t *testing.T, st *store.Store, conv chat.ConversationID) []chat.Message {
	t.Helper()
	msgs, err := st.Messages(conv, store.Range{})
	if err != nil {
		t.Fatal(err)
	}
	return msgs
}

func ids(msgs []chat.Message) string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return strings.Join(out, ",")
}

func history(conv string, n int) []fakeMsg {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	msgs := make([]fakeMsg, n)
	for i := range n {
		msgs[i] = fakeMsg{
			Conv:   conv,
			ID:     fmt.Sprintf("h%d", i),
			Sender: "bob",
			Text:   "old",
			At:     base.Add(time.Duration(i) * time.Minute),
		}
	}
	return msgs
}

func TestEngineBackfillReachesLive(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a", history("a", 5)...)
	f.addConversation("b", history("b", 1)...)
	p := testPolicy()
	p.PageSize = 2
	p.BackfillDepth = 10
	e, st, _ := testEngine(t, p, f)

	waitPhase(t, e, "fake", chat.Live)

	a := chat.NewConversationID("fake", "a")
	if got := ids(messages(t, st, a)); got != "h0,h1,h2,h3,h4" {
		t.Errorf("messages = %s", got)
	}
	if n := f.fetchCount("a"); n != 3 {
		t.Errorf("fetches of a = %d, want 3", n)
	}
	conv, ok := st.Summary(a)
	if !ok || conv.Name != "A" {
		t.Errorf("summary = %+v, %v", conv, ok)
	}
	if conv.Unread != 0 {
		t.Errorf("unread = %d, history must not count as unread", conv.Unread)
	}
	if len(st.List("fake")) != 2 {
		t.Errorf("list = %d conversations, want 2", len(st.List("fake")))
	}
}

func TestEngineBackfillDepthBound(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a", history("a", 10)...)
	p := testPolicy()
	p.PageSize = 2
	p.BackfillDepth = 2
	e, st, _ := testEngine(t, p, f)

	waitPhase(t, e, "fake", chat.Live)
	if got := ids(messages(t, st, chat.NewConversationID("fake", "a"))); got != "h6,h7,h8,h9" {
		t.Errorf("messages = %s, want the newest two pages", got)
	}
}

func TestEngineLiveMessagesAreIdempotent(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a", history("a", 2)...)
	e, st, _ := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Live)

	m := fakeMsg{Conv: "a", ID: "live-1", Sender: "bob", Text: "hi", At: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}
	f.push(m)
	f.push(m)
	f.push(history("a", 2)[1])

	conv := chat.NewConversationID("fake", "a")
	waitFor(t, "live message", func() bool { _, ok := st.Message(conv, "live-1"); return ok })
	if err := e.barrier(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := ids(messages(t, st, conv)); got != "h0,h1,live-1" {
		t.Errorf("messages = %s", got)
	}
	if s, _ := st.Summary(conv); s.Unread != 1 {
		t.Errorf("unread = %d, want 1", s.Unread)
	}
}

func TestEngineOrdersByTimestampThenReceipt(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	e, st, _ := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Live)

	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f.push(fakeMsg{Conv: "a", ID: "late", Sender: "bob", At: t0.Add(time.Minute)})
	f.push(fakeMsg{Conv: "a", ID: "z-first", Sender: "bob", At: t0})
	f.push(fakeMsg{Conv: "a", ID: "a-second", Sender: "bob", At: t0})

	conv := chat.NewConversationID("fake", "a")
	waitFor(t, "three messages", func() bool {
		msgs, _ := st.Messages(conv, store.Range{})
		return len(msgs) == 3
	})
	if got := ids(messages(t, st, conv)); got != "z-first,a-second,late" {
		t.Errorf("messages = %s", got)
	}
}

func TestEngineReceiptBeforeMessage(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	e, st, _ := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Live)

	f.push(fakeReceipt{Conv: "a", ID: "m1", State: chat.Read})
	f.push(fakeMsg{Conv: "a", ID: "m1", Sender: "bob", Text: "x", At: time.Now()})

	conv := chat.NewConversationID("fake", "a")
	waitFor(t, "message read", func() bool {
		m, ok := st.Message(conv, "m1")
		return ok && m.State == chat.Read
	})
}

func TestEngineSendOutcomes(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	e, st, _ := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Live)
	conv := chat.NewConversationID("fake", "a")

	msg, err := e.Send(context.Background(), conv, chat.Body{Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if !msg.FromMe || msg.Body.Text != "hello" {
		t.Errorf("sent message = %+v", msg)
	}
	waitFor(t, "sent state", func() bool {
		m, _ := st.Message(conv, msg.ID)
		return m.State == chat.Sent
	})

	f.mu.Lock()
	f.autoAck = false
	f.mu.Unlock()
	pending, err := e.Send(context.Background(), conv, chat.Body{Text: "lost"})
	if err != nil {
		t.Fatal(err)
	}
	if pending.State != chat.Sending {
		t.Errorf("state = %s, want sending", pending.State)
	}
	if n := e.Backends()[0].PendingSends; n != 1 {
		t.Errorf("pending sends = %d, want 1", n)
	}

	f.push(backend.TransportChanged{Transport: backend.TransportDisconnected, Err: errors.New("socket closed")})
	waitFor(t, "failed state", func() bool {
		m, _ := st.Message(conv, pending.ID)
		return m.State == chat.Failed
	})
	waitPhase(t, e, "fake", chat.Live)
	if f.connectCount() < 2 {
		t.Errorf("connects = %d, want a reconnect", f.connectCount())
	}
}

func TestEngineSendOvertakenByEcho(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	e, st, b := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Live)
	conv := chat.NewConversationID("fake", "a")
	failed, unsub := b.Subscribe(bus.KindSendFailed, 4)
	defer unsub()

	f.mu.Lock()
	f.echoNative = true
	f.afterSend = func() {
		// Hold Send until the echo and its outcome are both committed.
		waitFor(t, "outcome applied", func() bool {
			m, ok := st.Message(conv, "out-1")
			return ok && m.ID == "srv-1"
		})
	}
	f.mu.Unlock()

	msg, err := e.Send(context.Background(), conv, chat.Body{Text: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if msg.ID != "srv-1" || msg.State != chat.Sent {
		t.Errorf("returned message = %s %s, want srv-1 sent", msg.ID, msg.State)
	}
	if err := e.barrier(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := ids(messages(t, st, conv)); got != "srv-1" {
		t.Errorf("messages = %s, want a single message", got)
	}
	if n := e.Backends()[0].PendingSends; n != 0 {
		t.Errorf("pending sends = %d, want 0", n)
	}
	select {
	case evt := <-failed:
		t.Errorf("unexpected send failure %+v", evt.Payload)
	default:
	}
}

func TestEngineSendRequiresConnection(t *testing.T) {
	f := newFake("fake")
	f.setConnectErr(errors.New("offline"))
	e, _, _ := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Degraded)

	_, err := e.Send(context.Background(), chat.NewConversationID("fake", "a"), chat.Body{Text: "x"})
	if !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("err = %v, want ErrBackendUnavailable", err)
	}
	_, err = e.Send(context.Background(), chat.NewConversationID("nope", "a"), chat.Body{Text: "x"})
	if !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEngineIsolatesBackends(t *testing.T) {
	good, bad := newFake("good"), newFake("bad")
	good.addConversation("a")
	bad.setConnectErr(errors.New("auth rejected"))
	e, st, _ := testEngine(t, testPolicy(), good, bad)

	waitPhase(t, e, "good", chat.Live)
	waitPhase(t, e, "bad", chat.Degraded)

	good.push(fakeMsg{Conv: "a", ID: "m1", Sender: "bob", At: time.Now()})
	waitFor(t, "message on healthy backend", func() bool {
		_, ok := st.Message(chat.NewConversationID("good", "a"), "m1")
		return ok
	})
	s, _ := e.State("bad")
	if !strings.Contains(s.Reason, "auth rejected") {
		t.Errorf("reason = %q", s.Reason)
	}
	if state, _ := st.BackendState("bad"); state.Phase != chat.Degraded {
		t.Errorf("store mirrors %s, want degraded", state)
	}
}

func TestEngineReconnectsWithBackoff(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	f.setConnectErr(errors.New("offline"))
	e, _, _ := testEngine(t, testPolicy(), f)

	waitFor(t, "retries", func() bool { return f.connectCount() >= 3 })
	f.setConnectErr(nil)
	waitPhase(t, e, "fake", chat.Live)
}

func TestEngineGivesUpAfterMaxRetries(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	f.setConnectErr(errors.New("offline"))
	p := testPolicy()
	p.Backoff.MaxRetries = 2
	e, _, _ := testEngine(t, p, f)

	waitFor(t, "give up", func() bool {
		s, _ := e.State("fake")
		return strings.HasPrefix(s.Reason, "gave up")
	})
	if n := f.connectCount(); n != 3 {
		t.Errorf("connects = %d, want 3", n)
	}

	f.setConnectErr(nil)
	if err := e.Reconnect("fake"); err != nil {
		t.Fatal(err)
	}
	waitPhase(t, e, "fake", chat.Live)
}

func TestEngineDropsMalformedEvents(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	e, st, _ := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Live)

	f.push("garbage")
	f.push(fakeMsg{Conv: "a", ID: "ok", Sender: "bob", At: time.Now()})
	waitFor(t, "valid message", func() bool {
		_, ok := st.Message(chat.NewConversationID("fake", "a"), "ok")
		return ok
	})
	if s, _ := e.State("fake"); s.Phase != chat.Live {
		t.Errorf("state = %s, want live", s)
	}
}

func TestEngineAnnouncesLiveMessages(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a", history("a", 3)...)
	e, _, b := testEngine(t, testPolicy(), f)
	ch, unsub := b.Subscribe(bus.KindMessageReceived, 8)
	defer unsub()
	waitPhase(t, e, "fake", chat.Live)

	f.push(fakeMsg{Conv: "a", ID: "new", Sender: "bob", Text: "ping", At: time.Now()})
	select {
	case evt := <-ch:
		r, ok := evt.Payload.(Received)
		if !ok {
			t.Fatalf("payload = %T", evt.Payload)
		}
		if r.Message.ID != "new" || r.Backend != "fake" || r.Conversation.Name != "A" {
			t.Errorf("received = %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no announcement")
	}
}

func TestEngineMarkRead(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	e, st, _ := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Live)
	conv := chat.NewConversationID("fake", "a")

	f.push(fakeMsg{Conv: "a", ID: "m1", Sender: "bob", At: time.Now()})
	waitFor(t, "unread", func() bool { s, _ := st.Summary(conv); return s.Unread == 1 })
	if err := e.MarkRead(context.Background(), conv); err != nil {
		t.Fatal(err)
	}
	if s, _ := st.Summary(conv); s.Unread != 0 {
		t.Errorf("unread = %d after mark read", s.Unread)
	}
}

func TestEngineRemove(t *testing.T) {
	keep, drop := newFake("keep"), newFake("drop")
	keep.addConversation("a")
	drop.addConversation("b", history("b", 2)...)
	e, st, _ := testEngine(t, testPolicy(), keep, drop)
	waitPhase(t, e, "drop", chat.Live)

	if err := e.Remove(context.Background(), "drop"); err != nil {
		t.Fatal(err)
	}
	if n := len(st.List("drop")); n != 0 {
		t.Errorf("conversations left = %d", n)
	}
	if _, err := e.State("drop"); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("state err = %v", err)
	}
	if err := e.Remove(context.Background(), "drop"); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("second remove err = %v", err)
	}
	if len(e.Backends()) != 1 {
		t.Errorf("backends = %v", e.Backends())
	}
}

func TestEngineStopDisconnects(t *testing.T) {
	f := newFake("fake")
	f.addConversation("a")
	e, _, _ := testEngine(t, testPolicy(), f)
	waitPhase(t, e, "fake", chat.Live)

	e.Stop()
	if s, _ := e.State("fake"); s.Phase != chat.Disconnected {
		t.Errorf("state = %s, want disconnected", s)
	}
	if f.ConnectionState() != backend.TransportDisconnected {
		t.Error("backend still connected")
	}
	if err := e.Add(newFake("late"), backend.NormalizerFunc(fakeNormalize)); !errors.Is(err, ErrNotRunning) {
		t.Errorf("add after stop err = %v", err)
	}
	if err := e.MarkRead(context.Background(), chat.NewConversationID("fake", "a")); !errors.Is(err, ErrNotRunning) {
		t.Errorf("mark read after stop err = %v", err)
	}
}

func TestEngineRejectsDuplicateBackend(t *testing.T) {
	e, _, _ := testEngine(t, testPolicy(), newFake("x"))
	if err := e.Add(newFake("x"), backend.NormalizerFunc(fakeNormalize)); err == nil {
		t.Error("duplicate backend accepted")
	}
}

func TestEngineMessageActions(t *testing.T) {
	st := store.New(nil)
	e, err := New(st, nil, testPolicy(), nil)
	if err != nil {
		t.Fatal(err)
	}
	lb := local.New("loc", local.WithEchoDelay(time.Hour))
	if err := e.Add(lb, local.Normalizer{}); err != nil {
		t.Fatal(err)
	}
	f := newFake("fake")
	f.addConversation("a")
	if err := e.Add(f, backend.NormalizerFunc(fakeNormalize)); err != nil {
		t.Fatal(err)
	}
	e.Start(context.Background())
	t.Cleanup(e.Stop)
	waitPhase(t, e, "loc", chat.Live)
	waitPhase(t, e, "fake", chat.Live)

	ctx := context.Background()
	self := chat.NewConversationID("loc", local.SelfConversation)
	sent, err := e.Send(ctx, self, chat.Body{Text: "draft"})
	if err != nil {
		t.Fatal(err)
	}
	waitFor(t, "send outcome", func() bool {
		m, _ := st.Message(self, sent.ID)
		return m.State != chat.Sending
	})
	if err := lb.Inject(local.Message{Conv: local.SelfConversation, ID: "in-1", Sender: "bob", Text: "hi", At: time.Now()}); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "injected message", func() bool { _, ok := st.Message(self, "in-1"); return ok })

	m, err := e.React(ctx, self, "in-1", "👍")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Reactions) != 1 || m.Reactions[0] != (chat.Reaction{Sender: "me", Emoji: "👍"}) {
		t.Errorf("reactions = %+v", m.Reactions)
	}
	// The backend reports the same reaction back; it must not double up.
	if err := e.barrier(ctx); err != nil {
		t.Fatal(err)
	}
	if m, _ := st.Message(self, "in-1"); len(m.Reactions) != 1 {
		t.Errorf("reactions after echo = %+v", m.Reactions)
	}
	if m, err := e.React(ctx, self, "in-1", ""); err != nil || len(m.Reactions) != 0 {
		t.Errorf("unreact = %+v, %v", m.Reactions, err)
	}

	m, err = e.Edit(ctx, self, sent.ID, "final")
	if err != nil {
		t.Fatal(err)
	}
	if m.Body.Text != "final" || !m.Edited {
		t.Errorf("edited = %+v", m)
	}
	if _, err := e.Edit(ctx, self, "in-1", "hijack"); !errors.Is(err, ErrNotOwnMessage) {
		t.Errorf("edit of incoming message err = %v", err)
	}
	if _, err := e.Edit(ctx, self, sent.ID, "  "); !errors.Is(err, ErrEmptyBody) {
		t.Errorf("blank edit err = %v", err)
	}

	if err := e.Delete(ctx, self, sent.ID); err != nil {
		t.Fatal(err)
	}
	if m, _ := st.Message(self, sent.ID); !m.Redacted || m.Body.Text != "" {
		t.Errorf("deleted = %+v", m)
	}
	if _, err := e.React(ctx, self, sent.ID, "👍"); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("react on deleted err = %v", err)
	}

	a := chat.NewConversationID("fake", "a")
	fwd, err := e.Forward(ctx, self, "in-1", a)
	if err != nil {
		t.Fatal(err)
	}
	if !fwd.FromMe || fwd.Body.Text != "hi" {
		t.Errorf("forwarded = %+v", fwd)
	}
	if _, err := e.React(ctx, a, fwd.ID, "👍"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("react on fake backend err = %v", err)
	}
	if err := e.Logout(ctx, "loc"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("logout of local backend err = %v", err)
	}
}

// linkedFake is a fake backend paired as a device.
type linkedFake struct {
	*fakeBackend
	logouts int
}

func (l *linkedFake) Logout(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logouts++
	return nil
}

func TestEngineLogoutReconnects(t *testing.T) {
	f := &linkedFake{fakeBackend: newFake("wa")}
	st := store.New(nil)
	e, err := New(st, nil, testPolicy(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Add(f, backend.NormalizerFunc(fakeNormalize)); err != nil {
		t.Fatal(err)
	}
	e.Start(context.Background())
	t.Cleanup(e.Stop)
	waitPhase(t, e, "wa", chat.Live)

	if err := e.Logout(context.Background(), "wa"); err != nil {
		t.Fatal(err)
	}
	f.mu.Lock()
	logouts := f.logouts
	f.mu.Unlock()
	if logouts != 1 {
		t.Errorf("logouts = %d", logouts)
	}
	waitFor(t, "session restart after logout", func() bool { return f.connectCount() >= 2 })
	plain := newFake("plain")
	if err := e.Add(plain, backend.NormalizerFunc(fakeNormalize)); err != nil {
		t.Fatal(err)
	}
	if err := e.Logout(context.Background(), "plain"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("plain backend err = %v", err)
	}
	if err := e.Logout(context.Background(), "nope"); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("unknown backend err = %v", err)
	}
}

func TestForwardBody(t *testing.T) {
	src := chat.Body{
		Text:  "look",
		Quote: &chat.Quote{MessageID: "q"},
		Attachments: []chat.Attachment{
			{Name: "a.txt", Size: 3, Inline: []byte("abc")},
			{Name: "remote.jpg", Size: 2048, Handle: "h1"},
		},
	}
	got := forwardBody(src)
	if got.Quote != nil {
		t.Error("quote forwarded")
	}
	if len(got.Attachments) != 1 || got.Attachments[0].Name != "a.txt" {
		t.Errorf("attachments = %+v", got.Attachments)
	}
	if want := "look\n+ remote.jpg 2KB (remote)"; got.Text != want {
		t.Errorf("text = %q, want %q", got.Text, want)
	}
	if only := forwardBody(chat.Body{Attachments: src.Attachments[1:]}); only.Text != "+ remote.jpg 2KB (remote)" {
		t.Errorf("text = %q", only.Text)
	}
}
