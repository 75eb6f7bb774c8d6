package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matheus3301/chatters/internal/chat"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"
)

var errUnknownTarget = errors.New("message not in the local cache")

// WhatsApp carries one media item per message.
func checkAttachments(atts []chat.Attachment) error {
	switch {
	case len(atts) > 1:
		return errors.New("whatsapp sends one attachment per message")
	case len(atts) == 1 && len(atts[0].Inline) == 0:
		return fmt.Errorf("attachment %s has no content to upload", atts[0].Name)
	}
	return nil
}

// compose builds the outgoing message, uploading the attachment if there is one.
func (b *Backend) compose(ctx context.Context, body chat.Body) (*waE2E.Message, error) {
	if len(body.Attachments) == 0 {
		return outgoing(body), nil
	}
	a := body.Attachments[0]
	image := strings.HasPrefix(a.MIMEType, "image/")
	kind := whatsmeow.MediaDocument
	if image {
		kind = whatsmeow.MediaImage
	}
	up, err := b.upload(ctx, a.Inline, kind)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", a.Name, err)
	}
	mime := a.MIMEType
	if mime == "" {
		mime = "application/octet-stream"
	}
	ci := quoteContext(body.Quote)
	if image {
		return &waE2E.Message{ImageMessage: &waE2E.ImageMessage{
			URL:           proto.String(up.URL),
			DirectPath:    proto.String(up.DirectPath),
			MediaKey:      up.MediaKey,
			FileEncSHA256: up.FileEncSHA256,
			FileSHA256:    up.FileSHA256,
			FileLength:    proto.Uint64(up.FileLength),
			Mimetype:      proto.String(mime),
			Caption:       optional(body.Text),
			ContextInfo:   ci,
		}}, nil
	}
	return &waE2E.Message{DocumentMessage: &waE2E.DocumentMessage{
		URL:           proto.String(up.URL),
		DirectPath:    proto.String(up.DirectPath),
		MediaKey:      up.MediaKey,
		FileEncSHA256: up.FileEncSHA256,
		FileSHA256:    up.FileSHA256,
		FileLength:    proto.Uint64(up.FileLength),
		Mimetype:      proto.String(mime),
		FileName:      proto.String(a.Name),
		Title:         proto.String(a.Name),
		Caption:       optional(body.Text),
		ContextInfo:   ci,
	}}, nil
}

func outgoing(body chat.Body) *waE2E.Message {
	if body.Quote == nil {
		return &waE2E.Message{Conversation: proto.String(body.Text)}
	}
	return &waE2E.Message{ExtendedTextMessage: &waE2E.ExtendedTextMessage{
		Text:        proto.String(body.Text),
		ContextInfo: quoteContext(body.Quote),
	}}
}

func quoteContext(q *chat.Quote) *waE2E.ContextInfo {
	if q == nil {
		return nil
	}
	ci := &waE2E.ContextInfo{StanzaID: proto.String(q.MessageID)}
	if q.Sender != "" {
		ci.Participant = proto.String(q.Sender)
	}
	if q.Text != "" {
		ci.QuotedMessage = &waE2E.Message{Conversation: proto.String(q.Text)}
	}
	return ci
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return proto.String(s)
}

// React sends a reaction. The message key needs the target's sender, which
// comes from the cache for group chats.
func (b *Backend) React(ctx context.Context, native, msgID, emoji string) (chat.Reaction, error) {
	to, err := b.sendable(native)
	if err != nil {
		return chat.Reaction{}, err
	}
	sender, err := b.targetSender(native, to, msgID)
	if err != nil {
		return chat.Reaction{}, err
	}
	if err := b.sendNow(ctx, to, b.client.BuildReaction(to, sender, msgID, emoji)); err != nil {
		return chat.Reaction{}, fmt.Errorf("react: %w", err)
	}
	return chat.Reaction{Sender: b.client.Store.ID.ToNonAD().String(), Emoji: emoji}, nil
}

// EditMessage replaces the text of one of the account's messages. WhatsApp
// only accepts edits within whatsmeow.EditWindow of sending.
func (b *Backend) EditMessage(ctx context.Context, native, msgID string, body chat.Body) error {
	to, err := b.sendable(native)
	if err != nil {
		return err
	}
	edit := b.client.BuildEdit(to, msgID, &waE2E.Message{Conversation: proto.String(body.Text)})
	if err := b.sendNow(ctx, to, edit); err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	return nil
}

// DeleteMessage revokes one of the account's messages for everyone.
func (b *Backend) DeleteMessage(ctx context.Context, native, msgID string) error {
	to, err := b.sendable(native)
	if err != nil {
		return err
	}
	if err := b.sendNow(ctx, to, b.client.BuildRevoke(to, types.EmptyJID, msgID)); err != nil {
		return fmt.Errorf("revoke: %w", err)
	}
	return nil
}

func (b *Backend) sendable(native string) (types.JID, error) {
	to, err := types.ParseJID(native)
	if err != nil {
		return types.JID{}, fmt.Errorf("parse JID: %w", err)
	}
	if err := b.connected(); err != nil {
		return types.JID{}, err
	}
	return to, nil
}

func (b *Backend) sendNow(ctx context.Context, to types.JID, msg *waE2E.Message) error {
	ctx, cancel := context.WithTimeout(ctx, b.sendTimeout)
	defer cancel()
	_, err := b.client.SendMessage(ctx, to, msg)
	return err
}

// targetSender finds who sent msgID. Sent messages are cached too, so an
// uncached message in a direct chat is taken to be the peer's.
func (b *Backend) targetSender(native string, to types.JID, msgID string) (types.JID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.chats[native]; ok {
		for _, m := range c.history {
			if m.Info.ID == msgID {
				return senderOf(m), nil
			}
		}
	}
	if to.Server == types.GroupServer {
		return types.JID{}, fmt.Errorf("message %s: %w", msgID, errUnknownTarget)
	}
	return to, nil
}

// rememberSent caches a message this device sent, since whatsmeow does not
// report it back as an event.
func (b *Backend) rememberSent(to types.JID, id types.MessageID, resp whatsmeow.SendResponse, msg *waE2E.Message) {
	evt := &events.Message{
		Info: types.MessageInfo{
			ID:        id,
			Timestamp: resp.Timestamp,
			MessageSource: types.MessageSource{
				Chat:     to,
				IsFromMe: true,
				IsGroup:  to.Server == types.GroupServer,
			},
		},
		Message: msg,
	}
	if b.client != nil && b.client.Store.ID != nil {
		evt.Info.Sender = *b.client.Store.ID
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.remember(to.ToNonAD().String(), "", evt.Info.IsGroup, evt)
}

func senderOf(m *events.Message) types.JID {
	if m.Info.IsFromMe {
		return types.EmptyJID
	}
	return m.Info.Sender
}
