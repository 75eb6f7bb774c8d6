package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"nhooyr.io/websocket"
)

// fakeServer is a relay with one direct conversation holding five messages.
type fakeServer struct {
	*httptest.Server
	greeting string
	token    string
	history  []Message
	conns    chan *websocket.Conn

	mu    sync.Mutex
	calls []string
}

func (s *fakeServer) record(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, r.Method+" "+r.PathValue("conv")+" "+r.PathValue("msg"))
}

func (s *fakeServer) recorded() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	s := &fakeServer{greeting: "authenticated", token: "tok", conns: make(chan *websocket.Conn, 1)}
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := range 5 {
		s.history = append(s.history, Message{
			ID:             fmt.Sprintf("m%d", i),
			ConversationID: "c1",
			Content:        fmt.Sprintf("hello %d", i),
			Type:           "text",
			SenderID:       "bob",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339Nano),
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.ws)
	mux.HandleFunc("GET /api/im/conversations", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			reply(w, http.StatusUnauthorized, result{Error: &apiError{Code: "UNAUTHORIZED", Message: "bad token"}})
			return
		}
		ok(w, []conversation{
			{ID: "c1", Type: "direct", Members: []member{{UserID: "me", Username: "me"}, {UserID: "bob", Username: "bob", DisplayName: "Bob"}}},
			{ID: "c2", Type: "group", Title: "Team"},
		})
	})
	mux.HandleFunc("GET /api/im/messages/{conv}", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		if r.PathValue("conv") != "c1" {
			reply(w, http.StatusNotFound, result{Error: &apiError{Code: "NOT_FOUND", Message: "no such conversation"}})
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		var page []Message
		for i := len(s.history) - 1 - offset; i >= 0 && len(page) < limit; i-- {
			page = append(page, s.history[i])
		}
		ok(w, page)
	})
	mux.HandleFunc("POST /api/im/messages/{conv}", func(w http.ResponseWriter, r *http.Request) {
		var req sendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			reply(w, http.StatusBadRequest, result{Error: &apiError{Code: "INVALID", Message: "content required"}})
			return
		}
		ok(w, sendResponse{ConversationID: r.PathValue("conv"), Message: Message{ID: "srv-1", Content: req.Content, ParentID: req.ParentID}})
	})
	mux.HandleFunc("PATCH /api/im/messages/{conv}/{msg}", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		var req editRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == "" {
			reply(w, http.StatusBadRequest, result{Error: &apiError{Code: "INVALID", Message: "content required"}})
			return
		}
		ok(w, nil)
	})
	mux.HandleFunc("DELETE /api/im/messages/{conv}/{msg}", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		if r.PathValue("msg") == "gone" {
			reply(w, http.StatusNotFound, result{Error: &apiError{Code: "NOT_FOUND", Message: "no such message"}})
			return
		}
		ok(w, nil)
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *fakeServer) ws(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	payload := json.RawMessage(`{"userId":"me","username":"me"}`)
	if r.URL.Query().Get("token") != s.token {
		payload = json.RawMessage(`{}`)
	}
	data, _ := json.Marshal(Envelope{Type: s.greeting, Payload: payload})
	if err := conn.Write(r.Context(), websocket.MessageText, data); err != nil {
		return
	}
	s.conns <- conn
	// Drain pings until the client goes away.
	for {
		if _, _, err := conn.Read(r.Context()); err != nil {
			return
		}
	}
}

// send pushes one realtime event to the connected client.
func (s *fakeServer) send(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	raw, _ := json.Marshal(payload)
	data, _ := json.Marshal(Envelope{Type: typ, Payload: raw})
	if err := conn.Write(context.Background(), websocket.MessageText, data); err != nil {
		t.Fatal(err)
	}
}

func reply(w http.ResponseWriter, status int, res result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

func ok(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	reply(w, http.StatusOK, result{OK: true, Data: raw})
}

func connected(t *testing.T, s *fakeServer) (*Backend, *websocket.Conn) {
	t.Helper()
	b, err := New("rl", Config{BaseURL: s.URL, Token: s.token, HeartbeatInterval: 20 * time.Millisecond}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = b.Disconnect() })
	var conn *websocket.Conn
	select {
	case conn = <-s.conns:
	case <-time.After(2 * time.Second):
		t.Fatal("server saw no connection")
	}
	if evt := next(t, b); evt.Payload != (backend.TransportChanged{Transport: backend.TransportConnected}) {
		t.Fatalf("first event = %+v", evt.Payload)
	}
	return b, conn
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

func TestConnectAndList(t *testing.T) {
	s := newFakeServer(t)
	b, _ := connected(t, s)
	if b.ConnectionState() != backend.TransportConnected {
		t.Errorf("state = %s", b.ConnectionState())
	}

	seq, err := b.ListConversations(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var got []backend.ConversationSummary
	for s, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, s)
	}
	if len(got) != 2 {
		t.Fatalf("conversations = %+v", got)
	}
	if got[0].Name != "Bob" || got[0].Kind != chat.Direct || len(got[0].Participants) != 2 {
		t.Errorf("direct = %+v", got[0])
	}
	if got[1].Name != "Team" || got[1].Kind != chat.Group {
		t.Errorf("group = %+v", got[1])
	}
}

func TestConnectRequiresGreeting(t *testing.T) {
	s := newFakeServer(t)
	s.greeting = "hello"
	b, err := New("rl", Config{BaseURL: s.URL, Token: "tok"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Connect(context.Background()); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("err = %v", err)
	}
	if b.ConnectionState() != backend.TransportDisconnected {
		t.Errorf("state = %s", b.ConnectionState())
	}
}

func TestConnectRejectsBadToken(t *testing.T) {
	s := newFakeServer(t)
	b, err := New("rl", Config{BaseURL: s.URL, Token: "nope"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Connect(context.Background()); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("err = %v", err)
	}
}

func TestFetchHistoryPagesBackwards(t *testing.T) {
	s := newFakeServer(t)
	b, _ := connected(t, s)

	var ids []string
	var cursor backend.Cursor
	pages := 0
	for {
		page, err := b.FetchHistory(context.Background(), "c1", cursor, 2)
		if err != nil {
			t.Fatal(err)
		}
		pages++
		var chunk []string
		for _, evt := range page.Events {
			chunk = append(chunk, evt.Payload.(Stored).Message.ID)
		}
		ids = append(chunk, ids...)
		if page.Next == "" {
			break
		}
		cursor = page.Next
	}
	want := []string{"m0", "m1", "m2", "m3", "m4"}
	if fmt.Sprint(ids) != fmt.Sprint(want) || pages != 3 {
		t.Errorf("ids = %v in %d pages", ids, pages)
	}

	if _, err := b.FetchHistory(context.Background(), "missing", "", 2); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("missing err = %v", err)
	}
	if _, err := b.FetchHistory(context.Background(), "c1", "bogus", 2); err == nil {
		t.Error("bogus cursor accepted")
	}
}

func TestSendReportsServerID(t *testing.T) {
	s := newFakeServer(t)
	b, _ := connected(t, s)

	h, err := b.SendMessage(context.Background(), "c1", chat.Body{Text: "hi", Quote: &chat.Quote{MessageID: "m4"}})
	if err != nil {
		t.Fatal(err)
	}
	res, isResult := next(t, b).Payload.(backend.SendResult)
	if !isResult {
		t.Fatal("expected a send result")
	}
	if res.Err != nil || res.MessageID != h.MessageID || res.NativeID != "srv-1" {
		t.Errorf("result = %+v", res)
	}

	if _, err := b.SendMessage(context.Background(), "c1", chat.Body{}); err != nil {
		t.Fatal(err)
	}
	res = next(t, b).Payload.(backend.SendResult)
	if res.Err == nil {
		t.Error("empty message was accepted")
	}
}

func TestLiveEventsAndLostConnection(t *testing.T) {
	s := newFakeServer(t)
	b, conn := connected(t, s)

	s.send(t, conn, "pong", map[string]string{})
	s.send(t, conn, "message.new", Message{ID: "m9", ConversationID: "c1", Content: "live", SenderID: "bob", CreatedAt: "2024-05-01T13:00:00Z"})
	evt := next(t, b)
	p, isEvent := evt.Payload.(Event)
	if !isEvent || p.Envelope.Type != "message.new" || p.Self != "me" {
		t.Fatalf("payload = %+v", evt.Payload)
	}

	conn.Close(websocket.StatusGoingAway, "restart")
	tc, isTransport := next(t, b).Payload.(backend.TransportChanged)
	if !isTransport || tc.Transport != backend.TransportDisconnected || tc.Err == nil {
		t.Errorf("payload = %+v", tc)
	}
	if _, err := b.SendMessage(context.Background(), "c1", chat.Body{Text: "x"}); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("send after loss err = %v", err)
	}
}

func TestDisconnectClosesEvents(t *testing.T) {
	s := newFakeServer(t)
	b, _ := connected(t, s)
	events := b.Events()
	if err := b.Disconnect(); err != nil {
		t.Fatal(err)
	}
	select {
	case _, open := <-events:
		if open {
			t.Error("unexpected event after disconnect")
		}
	case <-time.After(2 * time.Second):
		t.Error("events not closed")
	}
}

func TestRequiresConnection(t *testing.T) {
	s := newFakeServer(t)
	b, err := New("rl", Config{BaseURL: s.URL, Token: s.token}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if _, err := b.ListConversations(ctx); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("ListConversations err = %v", err)
	}
	if _, err := b.FetchHistory(ctx, "c1", "", 2); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("FetchHistory err = %v", err)
	}
	if err := b.EditMessage(ctx, "c1", "m1", chat.Body{Text: "x"}); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("EditMessage err = %v", err)
	}
	if err := b.DeleteMessage(ctx, "c1", "m1"); !errors.Is(err, chat.ErrBackendUnavailable) {
		t.Errorf("DeleteMessage err = %v", err)
	}
	if len(s.recorded()) != 0 {
		t.Errorf("server was called: %v", s.recorded())
	}
}

func TestSocketURL(t *testing.T) {
	tests := []struct {
		base, token, want string
	}{
		{"http://relay.local", "tok", "ws://relay.local/ws?token=tok"},
		{"https://relay.local/chat", "a&b=c d", "wss://relay.local/chat/ws?token=a%26b%3Dc+d"},
	}
	for _, tt := range tests {
		got, err := socketURL(tt.base, tt.token)
		if err != nil || got != tt.want {
			t.Errorf("socketURL(%q, %q) = %q, %v; want %q", tt.base, tt.token, got, err, tt.want)
		}
	}
	if _, err := socketURL("ftp://relay.local", "tok"); err == nil {
		t.Error("ftp scheme accepted")
	}
}

func TestTokenAndIDsAreEscaped(t *testing.T) {
	s := newFakeServer(t)
	s.token = "t&k=1/x y"
	b, _ := connected(t, s)

	_, err := b.FetchHistory(context.Background(), "team/a b?c", "", 2)
	if !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("err = %v", err)
	}
	if err := b.DeleteMessage(context.Background(), "team/a b", "m#1"); err != nil {
		t.Fatal(err)
	}
	want := "GET team/a b?c ,DELETE team/a b m#1"
	if got := strings.Join(s.recorded(), ","); got != want {
		t.Errorf("calls = %q, want %q", got, want)
	}
}

func TestEditAndDelete(t *testing.T) {
	s := newFakeServer(t)
	b, _ := connected(t, s)
	ctx := context.Background()

	if err := b.EditMessage(ctx, "c1", "m4", chat.Body{Text: "fixed"}); err != nil {
		t.Fatal(err)
	}
	if err := b.EditMessage(ctx, "c1", "m4", chat.Body{}); err == nil {
		t.Error("empty edit accepted")
	}
	if err := b.DeleteMessage(ctx, "c1", "m4"); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteMessage(ctx, "c1", "gone"); !errors.Is(err, chat.ErrNotFound) {
		t.Errorf("missing err = %v", err)
	}
	want := "PATCH c1 m4,PATCH c1 m4,DELETE c1 m4,DELETE c1 gone"
	if got := strings.Join(s.recorded(), ","); got != want {
		t.Errorf("calls = %q", got)
	}
}
