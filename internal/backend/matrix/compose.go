package matrix

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/matheus3301/chatters/internal/chat"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"
)

var errNoReaction = errors.New("no reaction to remove")

// checkAttachments rejects what cannot be uploaded. Each attachment is sent
// as its own event.
func checkAttachments(atts []chat.Attachment) error {
	for _, a := range atts {
		if len(a.Inline) == 0 {
			return fmt.Errorf("attachment %s has no content to upload", a.Name)
		}
	}
	return nil
}

// compose builds the events of one outgoing message: the text first, then
// one media event per attachment. The quote goes on the first event.
func (b *Backend) compose(ctx context.Context, body chat.Body) ([]*event.MessageEventContent, error) {
	var contents []*event.MessageEventContent
	if body.Text != "" || len(body.Attachments) == 0 {
		contents = append(contents, outgoing(chat.Body{Text: body.Text}))
	}
	for _, a := range body.Attachments {
		uri, err := b.upload(ctx, a.Inline, mimeOf(a), a.Name)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", a.Name, err)
		}
		contents = append(contents, media(a, uri))
	}
	if body.Quote != nil {
		quoteTo(contents[0], body.Quote.MessageID)
	}
	return contents, nil
}

func media(a chat.Attachment, uri id.ContentURIString) *event.MessageEventContent {
	typ := event.MsgFile
	if strings.HasPrefix(a.MIMEType, "image/") {
		typ = event.MsgImage
	}
	return &event.MessageEventContent{
		MsgType:  typ,
		Body:     a.Name,
		FileName: a.Name,
		URL:      uri,
		Info:     &event.FileInfo{MimeType: mimeOf(a), Size: len(a.Inline)},
	}
}

func mimeOf(a chat.Attachment) string {
	if a.MIMEType == "" {
		return "application/octet-stream"
	}
	return a.MIMEType
}

func outgoing(body chat.Body) *event.MessageEventContent {
	content := &event.MessageEventContent{MsgType: event.MsgText, Body: body.Text}
	if body.Quote != nil {
		quoteTo(content, body.Quote.MessageID)
	}
	return content
}

func quoteTo(content *event.MessageEventContent, eventID string) {
	content.RelatesTo = &event.RelatesTo{InReplyTo: &event.InReplyTo{EventID: id.EventID(eventID)}}
}

// editContent replaces the text of original, keeping the fallback body
// clients without edit support show.
func editContent(original, text string) *event.MessageEventContent {
	content := &event.MessageEventContent{MsgType: event.MsgText, Body: text}
	content.SetEdit(id.EventID(original))
	return content
}

func reactionKey(room, target string) string { return room + "\x00" + target }

// React annotates an event. Matrix allows several reactions per user, so the
// previous one sent from here is redacted first.
func (b *Backend) React(ctx context.Context, native, msgID, emoji string) (chat.Reaction, error) {
	if err := b.connected(); err != nil {
		return chat.Reaction{}, err
	}
	key := reactionKey(native, msgID)
	b.mu.Lock()
	prev, had := b.reactions[key]
	b.mu.Unlock()
	if emoji == "" && !had {
		return chat.Reaction{}, fmt.Errorf("%s: %w", msgID, errNoReaction)
	}
	if had {
		if _, err := b.client.RedactEvent(ctx, id.RoomID(native), prev); err != nil {
			return chat.Reaction{}, fmt.Errorf("redact reaction: %w", err)
		}
		b.mu.Lock()
		delete(b.reactions, key)
		b.mu.Unlock()
	}
	self := chat.Reaction{Sender: b.client.UserID.String(), Emoji: emoji}
	if emoji == "" {
		return self, nil
	}
	resp, err := b.client.SendReaction(ctx, id.RoomID(native), id.EventID(msgID), emoji)
	if err != nil {
		return chat.Reaction{}, fmt.Errorf("send reaction: %w", err)
	}
	b.mu.Lock()
	b.reactions[key] = resp.EventID
	b.mu.Unlock()
	return self, nil
}

// EditMessage sends an m.replace of one of the account's events.
func (b *Backend) EditMessage(ctx context.Context, native, msgID string, body chat.Body) error {
	if err := b.connected(); err != nil {
		return err
	}
	if _, err := b.client.SendMessageEvent(ctx, id.RoomID(native), event.EventMessage, editContent(msgID, body.Text)); err != nil {
		return fmt.Errorf("send edit: %w", err)
	}
	return nil
}

// DeleteMessage redacts one of the account's events.
func (b *Backend) DeleteMessage(ctx context.Context, native, msgID string) error {
	if err := b.connected(); err != nil {
		return err
	}
	if _, err := b.client.RedactEvent(ctx, id.RoomID(native), id.EventID(msgID)); err != nil {
		return fmt.Errorf("redact: %w", err)
	}
	return nil
}
