// Package whatsapp connects a WhatsApp account through whatsmeow, linked as a
// companion device.
package whatsapp

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waWeb"
	wastore "go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"

	_ "github.com/mattn/go-sqlite3"
)

const Kind = "whatsapp"

// historyLimit bounds the messages kept per chat for history requests.
const historyLimit = 1000

var errNotLinked = errors.New("device not linked")

// Config locates the device store.
type Config struct {
	// DevicePath is the sqlite file holding the device keys.
	DevicePath string
	// DeviceName is shown in the phone's list of linked devices.
	DeviceName  string
	SendTimeout time.Duration
}

type chatInfo struct {
	summary backend.ConversationSummary
	history []*events.Message
}

// Backend is a WhatsApp account.
type Backend struct {
	id          chat.BackendID
	client      *whatsmeow.Client
	container   *sqlstore.Container
	logger      *zap.Logger
	sendTimeout time.Duration

	// Seams over the client so event translation can be tested offline.
	parseWeb func(types.JID, *waWeb.WebMessageInfo) (*events.Message, error)
	resolve  func(context.Context, types.JID) types.JID
	upload   func(context.Context, []byte, whatsmeow.MediaType) (whatsmeow.UploadResponse, error)

	mu        sync.Mutex
	q         *backend.Queue
	transport backend.Transport
	session   context.Context
	end       context.CancelFunc
	chats     map[string]*chatInfo
	order     []string
	linking   bool
}

// New opens the device store and prepares a client. It does not connect.
func New(ctx context.Context, id chat.BackendID, cfg Config, logger *zap.Logger) (*Backend, error) {
	if cfg.DeviceName == "" {
		cfg.DeviceName = "Chatters"
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = time.Minute
	}
	wastore.SetOSInfo(cfg.DeviceName, [3]uint32{0, 1, 0})

	container, err := sqlstore.New(ctx, "sqlite3",
		fmt.Sprintf("file:%s?_foreign_keys=on", cfg.DevicePath),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create device store: %w", err)
	}
	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("get device store: %w", err)
	}

	client := whatsmeow.NewClient(device, nil)
	// The engine owns reconnects.
	client.EnableAutoReconnect = false

	b := newBackend(id, logger)
	b.client = client
	b.container = container
	b.sendTimeout = cfg.SendTimeout
	b.parseWeb = client.ParseWebMessage
	b.resolve = b.resolveLID
	b.upload = client.Upload
	client.AddEventHandler(b.handle)
	return b, nil
}

func newBackend(id chat.BackendID, logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{
		id:        id,
		logger:    logger.Named("whatsapp").With(zap.String("backend", string(id))),
		transport: backend.TransportDisconnected,
		chats:     make(map[string]*chatInfo),
		resolve:   func(_ context.Context, jid types.JID) types.JID { return jid },
	}
}

func (b *Backend) ID() chat.BackendID { return b.id }
func (b *Backend) Kind() string       { return Kind }

// Linked reports whether the device holds credentials.
func (b *Backend) Linked() bool {
	return b.client.Store.ID != nil
}

// PhoneNumber returns the linked account's number, or "".
func (b *Backend) PhoneNumber() string {
	if b.client.Store.ID == nil {
		return ""
	}
	return b.client.Store.ID.User
}

func (b *Backend) Connect(ctx context.Context) error {
	if !b.Linked() {
		return fmt.Errorf("%w: %w", chat.ErrBackendUnavailable, errNotLinked)
	}
	b.mu.Lock()
	b.q = backend.NewQueue()
	b.session, b.end = context.WithCancel(context.Background())
	if b.client.IsConnected() {
		// Left connected by a completed link.
		b.transport = backend.TransportConnected
		b.mu.Unlock()
		return nil
	}
	b.transport = backend.TransportConnecting
	b.mu.Unlock()

	b.logger.Info("connecting to WhatsApp")
	if err := b.client.Connect(); err != nil {
		return fmt.Errorf("%w: %w", chat.ErrBackendUnavailable, err)
	}
	return nil
}

func (b *Backend) Disconnect() error {
	b.logger.Info("disconnecting from WhatsApp")
	b.client.Disconnect()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.end != nil {
		b.end()
	}
	if b.q != nil {
		b.q.Close()
		b.q = nil
	}
	b.transport = backend.TransportDisconnected
	return nil
}

// Logout unlinks the device from the phone and deletes its keys. Linking
// is needed before the next Connect.
func (b *Backend) Logout(ctx context.Context) error {
	if !b.Linked() {
		return errNotLinked
	}
	if err := b.client.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	b.logger.Info("device unlinked")
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

// ListConversations lists the chats learned from history sync and live
// traffic. Direct chats without a name take the contact's name.
func (b *Backend) ListConversations(ctx context.Context) (iter.Seq2[backend.ConversationSummary, error], error) {
	if err := b.connected(); err != nil {
		return nil, err
	}
	names := b.contactNames(ctx)
	b.mu.Lock()
	out := make([]backend.ConversationSummary, 0, len(b.order))
	for _, native := range b.order {
		s := b.chats[native].summary
		if s.Name == "" {
			s.Name = names[native]
		}
		out = append(out, s)
	}
	b.mu.Unlock()
	return func(yield func(backend.ConversationSummary, error) bool) {
		for _, s := range out {
			if !yield(s, nil) {
				return
			}
		}
	}, nil
}

func (b *Backend) contactNames(ctx context.Context) map[string]string {
	names := make(map[string]string)
	if b.client == nil {
		return names
	}
	contacts, err := b.client.Store.Contacts.GetAllContacts(ctx)
	if err != nil {
		b.logger.Warn("failed to get contacts from device store", zap.Error(err))
		return names
	}
	for jid, info := range contacts {
		name := info.FullName
		if name == "" {
			name = info.PushName
		}
		names[jid.ToNonAD().String()] = name
	}
	return names
}

// FetchHistory pages through the messages the phone shared during history
// sync. WhatsApp offers no on-demand history for companion devices.
//
// The cursor names the oldest message already returned, so live messages
// cached between pages never shift it.
func (b *Backend) FetchHistory(ctx context.Context, native string, before backend.Cursor, limit int) (backend.HistoryPage, error) {
	if err := b.connected(); err != nil {
		return backend.HistoryPage{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.chats[native]
	if !ok {
		return backend.HistoryPage{}, fmt.Errorf("chat %s: %w", native, chat.ErrNotFound)
	}
	end := len(c.history)
	if before != "" {
		k, err := parseCursor(before)
		if err != nil {
			return backend.HistoryPage{}, err
		}
		end, _ = slices.BinarySearchFunc(c.history, k, func(m *events.Message, k historyKey) int {
			return keyOf(m).compare(k)
		})
	}
	start := max(0, end-limit)
	page := backend.HistoryPage{Events: make([]backend.RawEvent, 0, end-start)}
	for _, m := range c.history[start:end] {
		page.Events = append(page.Events, backend.RawEvent{Backend: b.id, ReceivedAt: time.Now(), Payload: m})
	}
	if start > 0 {
		page.Next = keyOf(c.history[start]).cursor()
	}
	return page, nil
}

// historyKey orders a chat's cached messages.
type historyKey struct {
	ts time.Time
	id string
}

func keyOf(m *events.Message) historyKey {
	return historyKey{ts: m.Info.Timestamp, id: m.Info.ID}
}

func (k historyKey) compare(o historyKey) int {
	if c := k.ts.Compare(o.ts); c != 0 {
		return c
	}
	return strings.Compare(k.id, o.id)
}

func (k historyKey) cursor() backend.Cursor {
	return backend.Cursor(strconv.FormatInt(k.ts.UnixNano(), 10) + ":" + k.id)
}

func parseCursor(c backend.Cursor) (historyKey, error) {
	ns, id, ok := strings.Cut(string(c), ":")
	if !ok || id == "" {
		return historyKey{}, fmt.Errorf("bad cursor %q", c)
	}
	n, err := strconv.ParseInt(ns, 10, 64)
	if err != nil {
		return historyKey{}, fmt.Errorf("bad cursor %q: %w", c, err)
	}
	return historyKey{ts: time.Unix(0, n), id: id}, nil
}

// SendMessage hands the message to a goroutine, which uploads any
// attachment first; the server acknowledgement arrives later as a SendResult.
func (b *Backend) SendMessage(ctx context.Context, native string, body chat.Body) (backend.SendHandle, error) {
	to, err := types.ParseJID(native)
	if err != nil {
		return backend.SendHandle{}, fmt.Errorf("parse JID: %w", err)
	}
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
		MessageID:    b.client.GenerateMessageID(),
	}
	go func() {
		sctx, cancel := context.WithTimeout(session, b.sendTimeout)
		defer cancel()
		res := backend.SendResult{Conversation: h.Conversation, MessageID: h.MessageID}
		msg, err := b.compose(sctx, body)
		if err != nil {
			res.Err = err
			b.push(res, false)
			return
		}
		resp, err := b.client.SendMessage(sctx, to, msg, whatsmeow.SendRequestExtra{ID: h.MessageID})
		if err != nil {
			res.Err = fmt.Errorf("send message: %w", err)
		} else {
			if resp.ID != "" && resp.ID != h.MessageID {
				res.NativeID = resp.ID
			}
			b.rememberSent(to, cmp.Or(res.NativeID, h.MessageID), resp, msg)
		}
		b.push(res, false)
	}()
	return h, nil
}

// resolveLID maps a LID JID to its phone number JID using the device store.
// The original JID is returned when it is not a LID or resolution fails.
func (b *Backend) resolveLID(ctx context.Context, jid types.JID) types.JID {
	if jid.Server != types.HiddenUserServer && jid.Server != types.HostedLIDServer {
		return jid
	}
	if b.client == nil || b.client.Store == nil || b.client.Store.LIDs == nil {
		return jid
	}
	pn, err := b.client.Store.LIDs.GetPNForLID(ctx, jid)
	if err != nil || pn.IsEmpty() {
		return jid
	}
	return pn
}

func (b *Backend) push(payload any, history bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pushLocked(payload, history)
}

func (b *Backend) pushLocked(payload any, history bool) {
	if b.q != nil {
		b.q.Push(backend.RawEvent{Backend: b.id, ReceivedAt: time.Now(), History: history, Payload: payload})
	}
}

// remember records a chat and, if given, one of its messages. mu must be held.
func (b *Backend) remember(native, name string, group bool, m *events.Message) *chatInfo {
	c, ok := b.chats[native]
	if !ok {
		kind := chat.Direct
		if group {
			kind = chat.Group
		}
		c = &chatInfo{summary: backend.ConversationSummary{Native: native, Kind: kind}}
		b.chats[native] = c
		b.order = append(b.order, native)
	}
	if name != "" {
		c.summary.Name = name
	}
	if m == nil {
		return c
	}
	i, found := slices.BinarySearchFunc(c.history, m, func(x, y *events.Message) int {
		return keyOf(x).compare(keyOf(y))
	})
	if !found {
		c.history = slices.Insert(c.history, i, m)
		if len(c.history) > historyLimit {
			c.history = slices.Delete(c.history, 0, len(c.history)-historyLimit)
		}
	}
	if m.Info.Timestamp.After(c.summary.LastActivity) {
		c.summary.LastActivity = m.Info.Timestamp
	}
	return c
}
