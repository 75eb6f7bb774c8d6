package whatsapp

import (
	"context"
	"errors"

	"github.com/matheus3301/chatters/internal/backend"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"go.uber.org/zap"
)

// ChatInfo describes a chat learned from history sync.
type ChatInfo struct {
	JID   types.JID
	Name  string
	Group bool
}

// handle is the whatsmeow event handler. It only translates connection
// changes and queues protocol events; the normalizer does the rest.
func (b *Backend) handle(rawEvt any) {
	switch evt := rawEvt.(type) {
	case *events.Connected:
		b.logger.Info("WhatsApp connected")
		b.mu.Lock()
		b.transport = backend.TransportConnected
		b.pushLocked(backend.TransportChanged{Transport: backend.TransportConnected}, false)
		b.mu.Unlock()
	case *events.Disconnected:
		b.logger.Warn("WhatsApp disconnected")
		b.lost(errors.New("connection lost"))
	case *events.LoggedOut:
		b.logger.Warn("WhatsApp logged out", zap.String("reason", evt.Reason.String()))
		b.lost(errors.New("logged out: " + evt.Reason.String()))
	case *events.StreamReplaced:
		b.lost(errors.New("session replaced by another client"))
	case *events.Message:
		b.handleMessage(evt)
	case *events.HistorySync:
		b.handleHistorySync(evt)
	case *events.Receipt:
		evt.Chat = b.resolve(context.Background(), evt.Chat)
		b.push(evt, false)
	case *events.ChatPresence:
		evt.Chat = b.resolve(context.Background(), evt.Chat)
		evt.Sender = b.resolve(context.Background(), evt.Sender)
		b.push(evt, false)
	}
}

func (b *Backend) lost(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.transport == backend.TransportDisconnected {
		return
	}
	b.transport = backend.TransportDisconnected
	b.pushLocked(backend.TransportChanged{Transport: backend.TransportDisconnected, Err: err}, false)
}

func (b *Backend) handleMessage(evt *events.Message) {
	ctx := context.Background()
	evt.Info.Chat = b.resolve(ctx, evt.Info.Chat)
	evt.Info.Sender = b.resolve(ctx, evt.Info.Sender)

	b.mu.Lock()
	defer b.mu.Unlock()
	native := evt.Info.Chat.ToNonAD().String()
	if _, known := b.chats[native]; !known {
		b.pushLocked(ChatInfo{JID: evt.Info.Chat, Group: evt.Info.IsGroup}, false)
	}
	if isContent(evt.Message) {
		b.remember(native, "", evt.Info.IsGroup, evt)
	}
	b.pushLocked(evt, false)
}

// handleHistorySync caches the shared history and replays it on the live
// stream, since it usually arrives after backfill has finished.
func (b *Backend) handleHistorySync(evt *events.HistorySync) {
	data := evt.Data
	if data == nil {
		return
	}
	ctx := context.Background()
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, conv := range data.GetConversations() {
		jid, err := types.ParseJID(conv.GetID())
		if err != nil {
			b.logger.Debug("skipping history conversation", zap.String("id", conv.GetID()), zap.Error(err))
			continue
		}
		jid = b.resolve(ctx, jid)
		native := jid.ToNonAD().String()
		group := jid.Server == types.GroupServer
		name := conv.GetName()
		if name == "" {
			name = conv.GetDisplayName()
		}
		b.remember(native, name, group, nil)
		b.pushLocked(ChatInfo{JID: jid, Name: name, Group: group}, true)

		for _, hm := range conv.GetMessages() {
			wmi := hm.GetMessage()
			if wmi == nil || wmi.GetMessage() == nil {
				continue
			}
			msg, err := b.parseWeb(jid, wmi)
			if err != nil {
				b.logger.Debug("skipping history message", zap.String("chat", native), zap.Error(err))
				continue
			}
			msg.Info.Sender = b.resolve(ctx, msg.Info.Sender)
			if isContent(msg.Message) {
				b.remember(native, "", group, msg)
			}
			b.pushLocked(msg, true)
		}
	}
}
