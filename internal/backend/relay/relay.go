// Package relay connects to a self-hosted IM relay: conversations and history
// over its REST API, live events over its websocket.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

const Kind = "relay"

const listPageSize = 50

// Config holds the server address and the account token.
type Config struct {
	BaseURL           string
	Token             string
	Timeout           time.Duration
	HeartbeatInterval time.Duration
	SendTimeout       time.Duration
}

// Backend is one relay account.
type Backend struct {
	id     chat.BackendID
	cfg    Config
	http   *resty.Client
	logger *zap.Logger

	mu        sync.Mutex
	q         *backend.Queue
	transport backend.Transport
	self      string
	conn      *websocket.Conn
	session   context.Context
	end       context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a client. It does not contact the server.
func New(backendID chat.BackendID, cfg Config, logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("relay: base_url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 25 * time.Second
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = time.Minute
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}
	return &Backend{
		id:        backendID,
		cfg:       cfg,
		http:      client,
		logger:    logger.Named("relay").With(zap.String("backend", string(backendID))),
		transport: backend.TransportDisconnected,
	}, nil
}

func (b *Backend) ID() chat.BackendID { return b.id }
func (b *Backend) Kind() string       { return Kind }

// Connect opens the websocket. The server must greet with an authenticated
// event naming the account before anything else.
func (b *Backend) Connect(ctx context.Context) error {
	b.mu.Lock()
	if b.conn != nil {
		b.mu.Unlock()
		return nil
	}
	b.transport = backend.TransportConnecting
	b.mu.Unlock()

	conn, self, err := b.dial(ctx)
	if err != nil {
		b.mu.Lock()
		b.transport = backend.TransportDisconnected
		b.mu.Unlock()
		return fmt.Errorf("%w: %w", chat.ErrBackendUnavailable, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.conn = conn
	b.self = self
	b.q = backend.NewQueue()
	b.session, b.end = context.WithCancel(context.Background())
	b.transport = backend.TransportConnected
	b.pushLocked(backend.TransportChanged{Transport: backend.TransportConnected})
	b.wg.Add(2)
	go b.readLoop(b.session, conn)
	go b.heartbeat(b.session, conn)
	return nil
}

// socketURL maps the REST base URL onto the websocket endpoint.
func socketURL(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("base url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("base url: unsupported scheme %q", u.Scheme)
	}
	u = u.JoinPath("ws")
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (b *Backend) dial(ctx context.Context) (*websocket.Conn, string, error) {
	addr, err := socketURL(b.cfg.BaseURL, b.cfg.Token)
	if err != nil {
		return nil, "", err
	}
	conn, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("websocket dial: %w", err)
	}
	_, data, err := conn.Read(ctx)
	if err != nil {
		conn.Close(websocket.StatusNormalClosure, "")
		return nil, "", fmt.Errorf("read greeting: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Type != "authenticated" {
		conn.Close(websocket.StatusNormalClosure, "")
		return nil, "", fmt.Errorf("expected authenticated, got %q", env.Type)
	}
	var auth authenticated
	if err := json.Unmarshal(env.Payload, &auth); err != nil || auth.UserID == "" {
		conn.Close(websocket.StatusNormalClosure, "")
		return nil, "", errors.New("authenticated event without user id")
	}
	return conn, auth.UserID, nil
}

func (b *Backend) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer b.wg.Done()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				b.lost(err)
			}
			return
		}
		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			b.logger.Warn("undecodable frame", zap.Error(err))
			continue
		}
		switch env.Type {
		case "pong", "authenticated":
		case "error":
			var e apiError
			_ = json.Unmarshal(env.Payload, &e)
			b.logger.Warn("server error", zap.String("code", e.Code), zap.String("message", e.Message))
		default:
			b.push(Event{Envelope: env, Self: b.selfID()})
		}
	}
}

// heartbeat pings the server; a failed write closes the connection, which
// ends readLoop.
func (b *Backend) heartbeat(ctx context.Context, conn *websocket.Conn) {
	defer b.wg.Done()
	ticker := time.NewTicker(b.cfg.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			data, _ := json.Marshal(command{Type: "ping", Payload: struct{}{}, RequestID: uuid.NewString()})
			wctx, cancel := context.WithTimeout(ctx, b.cfg.HeartbeatInterval)
			err := conn.Write(wctx, websocket.MessageText, data)
			cancel()
			if err != nil && ctx.Err() == nil {
				conn.Close(websocket.StatusGoingAway, "heartbeat failed")
				return
			}
		}
	}
}

func (b *Backend) lost(err error) {
	b.logger.Warn("connection lost", zap.Error(err))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transport = backend.TransportDisconnected
	b.pushLocked(backend.TransportChanged{Transport: backend.TransportDisconnected, Err: err})
}

func (b *Backend) Disconnect() error {
	b.mu.Lock()
	conn, end := b.conn, b.end
	b.conn, b.end = nil, nil
	b.mu.Unlock()
	if end != nil {
		end()
	}
	if conn != nil {
		if err := conn.Close(websocket.StatusNormalClosure, "client disconnect"); err != nil {
			b.logger.Debug("close", zap.Error(err))
		}
	}
	b.wg.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.q != nil {
		b.q.Close()
		b.q = nil
	}
	b.transport = backend.TransportDisconnected
	return nil
}

func (b *Backend) Events() <-chan backend.RawEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.q == nil {
		closed := make(chan backend.RawEvent)
		close(closed)
		return closed
	}
	return b.q.Events()
}

func (b *Backend) ConnectionState() backend.Transport {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transport
}

func (b *Backend) connected() error {
	if b.ConnectionState() != backend.TransportConnected {
		return fmt.Errorf("%s: %w", b.id, chat.ErrBackendUnavailable)
	}
	return nil
}

func (b *Backend) selfID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.self
}

// ListConversations pages through the conversation list as the sequence is
// consumed.
func (b *Backend) ListConversations(ctx context.Context) (iter.Seq2[backend.ConversationSummary, error], error) {
	if err := b.connected(); err != nil {
		return nil, err
	}
	first, err := b.conversations(ctx, 0)
	if err != nil {
		return nil, err
	}
	self := b.selfID()
	return func(yield func(backend.ConversationSummary, error) bool) {
		page, offset := first, 0
		for {
			for _, c := range page {
				if !yield(summary(c, self), nil) {
					return
				}
			}
			if len(page) < listPageSize {
				return
			}
			offset += len(page)
			var err error
			if page, err = b.conversations(ctx, offset); err != nil {
				yield(backend.ConversationSummary{}, err)
				return
			}
		}
	}, nil
}

func (b *Backend) conversations(ctx context.Context, offset int) ([]conversation, error) {
	var out []conversation
	err := b.get(ctx, "/api/im/conversations", nil, map[string]string{
		"limit":  strconv.Itoa(listPageSize),
		"offset": strconv.Itoa(offset),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return out, nil
}

func summary(c conversation, self string) backend.ConversationSummary {
	s := backend.ConversationSummary{Native: c.ID, Name: c.Title, Kind: chat.Group}
	if c.Type == "direct" {
		s.Kind = chat.Direct
	}
	for _, m := range c.Members {
		name := m.DisplayName
		if name == "" {
			name = m.Username
		}
		s.Participants = append(s.Participants, chat.Participant{ID: m.UserID, Name: name})
		if s.Name == "" && s.Kind == chat.Direct && m.UserID != self {
			s.Name = name
		}
	}
	if c.LastMessage != nil {
		s.LastActivity = parseTime(c.LastMessage.CreatedAt)
	}
	if s.LastActivity.IsZero() {
		s.LastActivity = parseTime(c.UpdatedAt)
	}
	return s
}

// FetchHistory pages backwards with an offset counted from the newest
// message. The server returns pages newest first.
func (b *Backend) FetchHistory(ctx context.Context, native string, before backend.Cursor, limit int) (backend.HistoryPage, error) {
	if err := b.connected(); err != nil {
		return backend.HistoryPage{}, err
	}
	offset := 0
	if before != "" {
		n, err := strconv.Atoi(string(before))
		if err != nil || n < 0 {
			return backend.HistoryPage{}, fmt.Errorf("invalid cursor %q", before)
		}
		offset = n
	}
	var msgs []Message
	err := b.get(ctx, conversationPath, pathOf(native, ""), map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	}, &msgs)
	if err != nil {
		return backend.HistoryPage{}, fmt.Errorf("messages of %s: %w", native, err)
	}

	self := b.selfID()
	now := time.Now()
	page := backend.HistoryPage{Events: make([]backend.RawEvent, 0, len(msgs))}
	for _, m := range slices.Backward(msgs) {
		page.Events = append(page.Events, backend.RawEvent{
			Backend:    b.id,
			ReceivedAt: now,
			Payload:    Stored{Conversation: native, Message: m, Self: self},
		})
	}
	if len(msgs) == limit {
		page.Next = backend.Cursor(strconv.Itoa(offset + len(msgs)))
	}
	return page, nil
}

// SendMessage posts asynchronously under a client id; the server id replaces
// it once the post succeeds.
func (b *Backend) SendMessage(ctx context.Context, native string, body chat.Body) (backend.SendHandle, error) {
	if len(body.Attachments) > 0 {
		return backend.SendHandle{}, errors.New("relay messages carry text only")
	}
	b.mu.Lock()
	if b.transport != backend.TransportConnected {
		b.mu.Unlock()
		return backend.SendHandle{}, fmt.Errorf("%s: %w", b.id, chat.ErrBackendUnavailable)
	}
	session := b.session
	b.mu.Unlock()

	h := backend.SendHandle{
		Conversation: chat.NewConversationID(b.id, native),
		MessageID:    uuid.NewString(),
	}
	req := sendRequest{Content: body.Text, Type: "text", ClientID: h.MessageID}
	if body.Quote != nil {
		req.ParentID = body.Quote.MessageID
	}
	go func() {
		sctx, cancel := context.WithTimeout(session, b.cfg.SendTimeout)
		defer cancel()
		var resp sendResponse
		res := backend.SendResult{Conversation: h.Conversation, MessageID: h.MessageID}
		if err := b.do(sctx, http.MethodPost, conversationPath, pathOf(native, ""), nil, req, &resp); err != nil {
			res.Err = err
		} else if resp.Message.ID != h.MessageID {
			res.NativeID = resp.Message.ID
		}
		b.push(res)
	}()
	return h, nil
}

// EditMessage replaces the content of one of the account's messages.
func (b *Backend) EditMessage(ctx context.Context, native, msgID string, body chat.Body) error {
	if err := b.connected(); err != nil {
		return err
	}
	if err := b.do(ctx, http.MethodPatch, messagePath, pathOf(native, msgID), nil, editRequest{Content: body.Text}, nil); err != nil {
		return fmt.Errorf("edit %s: %w", msgID, err)
	}
	return nil
}

// DeleteMessage deletes one of the account's messages.
func (b *Backend) DeleteMessage(ctx context.Context, native, msgID string) error {
	if err := b.connected(); err != nil {
		return err
	}
	if err := b.do(ctx, http.MethodDelete, messagePath, pathOf(native, msgID), nil, nil, nil); err != nil {
		return fmt.Errorf("delete %s: %w", msgID, err)
	}
	return nil
}

const (
	conversationPath = "/api/im/messages/{conv}"
	messagePath      = "/api/im/messages/{conv}/{msg}"
)

// pathOf fills the path parameters. resty escapes their values.
func pathOf(conv, msg string) map[string]string {
	p := map[string]string{"conv": conv}
	if msg != "" {
		p["msg"] = msg
	}
	return p
}

func (b *Backend) get(ctx context.Context, path string, params, query map[string]string, out any) error {
	return b.do(ctx, http.MethodGet, path, params, query, nil, out)
}

func (b *Backend) do(ctx context.Context, method, path string, params, query map[string]string, body, out any) error {
	var res result
	req := b.http.R().
		SetContext(ctx).
		SetPathParams(params).
		SetQueryParams(query).
		SetResult(&res).
		SetError(&res)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	return decode(resp, err, &res, out)
}

func decode(resp *resty.Response, err error, res *result, out any) error {
	if err != nil {
		return fmt.Errorf("%w: %w", chat.ErrBackendUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return chat.ErrNotFound
	}
	if resp.IsError() || !res.OK {
		msg := resp.Status()
		if res.Error != nil && res.Error.Message != "" {
			msg = res.Error.Message
		}
		return fmt.Errorf("relay: %s", msg)
	}
	if out == nil || len(res.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (b *Backend) push(payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pushLocked(payload)
}

func (b *Backend) pushLocked(payload any) {
	if b.q != nil {
		b.q.Push(backend.RawEvent{Backend: b.id, ReceivedAt: time.Now(), Payload: payload})
	}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
