// Package matrix connects a Matrix account through mautrix, using the
// client-server sync API.
package matrix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"go.uber.org/zap"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"
)

const Kind = "matrix"

// Config holds the account. Either AccessToken or Password is required; a
// password login stores the resulting token in SessionPath.
type Config struct {
	Homeserver  string
	UserID      string
	AccessToken string
	Password    string
	DeviceName  string
	SessionPath string
	SendTimeout time.Duration
}

// session is the persisted result of a password login.
type session struct {
	Homeserver  string `json:"homeserver"`
	UserID      string `json:"user_id"`
	DeviceID    string `json:"device_id"`
	AccessToken string `json:"access_token"`
}

// Backend is a Matrix account.
type Backend struct {
	id     chat.BackendID
	cfg    Config
	client *mautrix.Client
	logger *zap.Logger

	mu        sync.Mutex
	q         *backend.Queue
	transport backend.Transport
	session   context.Context
	end       context.CancelFunc
	syncDone  chan struct{}
	typing    map[id.RoomID][]id.UserID
	// reactions holds the event id of the reaction sent from here, by room
	// and target event.
	reactions map[string]id.EventID

	upload func(ctx context.Context, data []byte, contentType, name string) (id.ContentURIString, error)
}

// New creates a client. It does not contact the homeserver.
func New(backendID chat.BackendID, cfg Config, logger *zap.Logger) (*Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Homeserver == "" || cfg.UserID == "" {
		return nil, errors.New("matrix: homeserver and user_id are required")
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = time.Minute
	}
	if cfg.AccessToken == "" && cfg.SessionPath != "" {
		if s, err := loadSession(cfg.SessionPath); err == nil && s.UserID == cfg.UserID {
			cfg.AccessToken = s.AccessToken
		}
	}
	if cfg.AccessToken == "" && cfg.Password == "" {
		return nil, errors.New("matrix: access_token or password is required")
	}
	client, err := mautrix.NewClient(cfg.Homeserver, id.UserID(cfg.UserID), cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("matrix client: %w", err)
	}
	b := &Backend{
		id:        backendID,
		cfg:       cfg,
		client:    client,
		logger:    logger.Named("matrix").With(zap.String("backend", string(backendID))),
		transport: backend.TransportDisconnected,
		typing:    make(map[id.RoomID][]id.UserID),
		reactions: make(map[string]id.EventID),
	}
	b.upload = func(ctx context.Context, data []byte, contentType, name string) (id.ContentURIString, error) {
		resp, err := client.UploadBytesWithName(ctx, data, contentType, name)
		if err != nil {
			return "", err
		}
		return resp.ContentURI.CUString(), nil
	}

	syncer := client.Syncer.(*mautrix.DefaultSyncer)
	syncer.OnSync(b.onSync)
	// Backfill covers what the initial sync would replay.
	syncer.OnSync(client.DontProcessOldEvents)
	for _, t := range []event.Type{
		event.EventMessage, event.EventReaction, event.EventRedaction,
		event.EventEncrypted, event.StateRoomName,
	} {
		syncer.OnEventType(t, b.onEvent)
	}
	syncer.OnEventType(event.EphemeralEventTyping, b.onTyping)
	syncer.OnEventType(event.EphemeralEventReceipt, b.onEvent)
	return b, nil
}

func (b *Backend) ID() chat.BackendID { return b.id }
func (b *Backend) Kind() string       { return Kind }

// Connect verifies the credentials, logging in with the password when there
// is no token, and starts the sync loop.
func (b *Backend) Connect(ctx context.Context) error {
	if b.client.AccessToken == "" {
		if err := b.login(ctx); err != nil {
			return fmt.Errorf("%w: login: %w", chat.ErrBackendUnavailable, err)
		}
	}
	if _, err := b.client.Whoami(ctx); err != nil {
		return fmt.Errorf("%w: whoami: %w", chat.ErrBackendUnavailable, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.q = backend.NewQueue()
	b.session, b.end = context.WithCancel(context.Background())
	b.transport = backend.TransportConnecting
	b.syncDone = make(chan struct{})
	go b.sync(b.session, b.syncDone)
	return nil
}

func (b *Backend) login(ctx context.Context) error {
	if b.cfg.Password == "" {
		return errors.New("no credentials")
	}
	resp, err := b.client.Login(ctx, &mautrix.ReqLogin{
		Type:                     mautrix.AuthTypePassword,
		Identifier:               mautrix.UserIdentifier{Type: mautrix.IdentifierTypeUser, User: b.cfg.UserID},
		Password:                 b.cfg.Password,
		InitialDeviceDisplayName: b.cfg.DeviceName,
		StoreCredentials:         true,
	})
	if err != nil {
		return err
	}
	b.logger.Info("logged in", zap.String("device", resp.DeviceID.String()))
	if b.cfg.SessionPath == "" {
		return nil
	}
	return saveSession(b.cfg.SessionPath, session{
		Homeserver:  b.cfg.Homeserver,
		UserID:      resp.UserID.String(),
		DeviceID:    resp.DeviceID.String(),
		AccessToken: resp.AccessToken,
	})
}

func (b *Backend) sync(ctx context.Context, done chan struct{}) {
	defer close(done)
	err := b.client.SyncWithContext(ctx)
	if ctx.Err() != nil {
		return
	}
	if err == nil {
		err = errors.New("sync stopped")
	}
	b.logger.Warn("sync failed", zap.Error(err))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transport = backend.TransportDisconnected
	b.pushLocked(backend.TransportChanged{Transport: backend.TransportDisconnected, Err: err})
}

// onSync reports the first completed sync of a session as connected.
func (b *Backend) onSync(ctx context.Context, resp *mautrix.RespSync, since string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.transport == backend.TransportConnecting {
		b.transport = backend.TransportConnected
		b.pushLocked(backend.TransportChanged{Transport: backend.TransportConnected})
	}
	return true
}

func (b *Backend) onEvent(ctx context.Context, evt *event.Event) {
	b.push(Event{Event: evt, Self: b.client.UserID})
}

// onTyping turns the room's full typing list into start and stop changes.
func (b *Backend) onTyping(ctx context.Context, evt *event.Event) {
	content := evt.Content.AsTyping()
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.typing[evt.RoomID]
	t := Typing{Room: evt.RoomID}
	for _, u := range content.UserIDs {
		if u != b.client.UserID && !slices.Contains(prev, u) {
			t.Started = append(t.Started, u)
		}
	}
	for _, u := range prev {
		if !slices.Contains(content.UserIDs, u) {
			t.Stopped = append(t.Stopped, u)
		}
	}
	b.typing[evt.RoomID] = slices.DeleteFunc(slices.Clone(content.UserIDs), func(u id.UserID) bool { return u == b.client.UserID })
	if len(t.Started) > 0 || len(t.Stopped) > 0 {
		b.pushLocked(t)
	}
}

func (b *Backend) Disconnect() error {
	b.mu.Lock()
	end, done := b.end, b.syncDone
	b.end, b.syncDone = nil, nil
	b.mu.Unlock()
	if end != nil {
		end()
		b.client.StopSync()
		<-done
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.q != nil {
		b.q.Close()
		b.q = nil
	}
	clear(b.typing)
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

// ListConversations lists joined rooms. Room details are fetched as the
// sequence is consumed. Rooms of at most two members are direct chats.
func (b *Backend) ListConversations(ctx context.Context) (iter.Seq2[backend.ConversationSummary, error], error) {
	if err := b.connected(); err != nil {
		return nil, err
	}
	resp, err := b.client.JoinedRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("joined rooms: %w", err)
	}
	rooms := resp.JoinedRooms
	return func(yield func(backend.ConversationSummary, error) bool) {
		for _, room := range rooms {
			s, err := b.summary(ctx, room)
			if !yield(s, err) || err != nil {
				return
			}
		}
	}, nil
}

func (b *Backend) summary(ctx context.Context, room id.RoomID) (backend.ConversationSummary, error) {
	s := backend.ConversationSummary{Native: room.String(), Kind: chat.Group}
	members, err := b.client.JoinedMembers(ctx, room)
	if err != nil {
		return s, fmt.Errorf("members of %s: %w", room, err)
	}
	for uid, m := range members.Joined {
		s.Participants = append(s.Participants, chat.Participant{ID: uid.String(), Name: m.DisplayName})
	}
	slices.SortFunc(s.Participants, func(a, b chat.Participant) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	if len(members.Joined) <= 2 {
		s.Kind = chat.Direct
	}

	var name event.RoomNameEventContent
	if err := b.client.StateEvent(ctx, room, event.StateRoomName, "", &name); err == nil && name.Name != "" {
		s.Name = name.Name
	} else if s.Kind == chat.Direct {
		for _, p := range s.Participants {
			if p.ID != b.client.UserID.String() {
				s.Name = p.DisplayName()
			}
		}
	}
	return s, nil
}

// FetchHistory pages backwards through /messages. The cursor is the
// pagination token of the previous page.
func (b *Backend) FetchHistory(ctx context.Context, native string, before backend.Cursor, limit int) (backend.HistoryPage, error) {
	if err := b.connected(); err != nil {
		return backend.HistoryPage{}, err
	}
	resp, err := b.client.Messages(ctx, id.RoomID(native), string(before), "", mautrix.DirectionBackward, nil, limit)
	if errors.Is(err, mautrix.MNotFound) || errors.Is(err, mautrix.MForbidden) {
		return backend.HistoryPage{}, fmt.Errorf("room %s: %w", native, chat.ErrNotFound)
	}
	if err != nil {
		return backend.HistoryPage{}, fmt.Errorf("messages of %s: %w", native, err)
	}
	page := backend.HistoryPage{Events: make([]backend.RawEvent, 0, len(resp.Chunk))}
	now := time.Now()
	// Chunks of backward pagination are newest first.
	for _, evt := range slices.Backward(resp.Chunk) {
		evt.RoomID = id.RoomID(native)
		page.Events = append(page.Events, backend.RawEvent{Backend: b.id, ReceivedAt: now, Payload: Event{Event: evt, Self: b.client.UserID}})
	}
	if len(resp.Chunk) > 0 && resp.End != "" {
		page.Next = backend.Cursor(resp.End)
	}
	return page, nil
}

// SendMessage sends asynchronously. The transaction id serves as the message
// id until the server assigns the event id. Attachments are uploaded and
// sent as media events after the text; the outcome reports the first event.
func (b *Backend) SendMessage(ctx context.Context, native string, body chat.Body) (backend.SendHandle, error) {
	if err := checkAttachments(body.Attachments); err != nil {
		return backend.SendHandle{}, err
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
		MessageID:    b.client.TxnID(),
	}
	go func() {
		sctx, cancel := context.WithTimeout(session, b.cfg.SendTimeout)
		defer cancel()
		res := backend.SendResult{Conversation: h.Conversation, MessageID: h.MessageID}
		res.NativeID, res.Err = b.sendAll(sctx, id.RoomID(native), h.MessageID, body)
		b.push(res)
	}()
	return h, nil
}

func (b *Backend) sendAll(ctx context.Context, room id.RoomID, txnID string, body chat.Body) (string, error) {
	contents, err := b.compose(ctx, body)
	if err != nil {
		return "", err
	}
	var first string
	for i, content := range contents {
		txn := txnID
		if i > 0 {
			txn = b.client.TxnID()
		}
		resp, err := b.client.SendMessageEvent(ctx, room, event.EventMessage, content, mautrix.ReqSendEvent{TransactionID: txn})
		if err != nil {
			if i > 0 {
				b.logger.Warn("attachment not sent", zap.String("room", room.String()), zap.Error(err))
				break
			}
			return "", fmt.Errorf("send event: %w", err)
		}
		if i == 0 {
			first = resp.EventID.String()
		}
	}
	return first, nil
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

func loadSession(path string) (session, error) {
	var s session
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	return s, json.Unmarshal(data, &s)
}

func saveSession(path string, s session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
