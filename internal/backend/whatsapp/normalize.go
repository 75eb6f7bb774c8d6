package whatsapp

import (
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

// Normalizer translates whatsmeow events.
type Normalizer struct{}

func (Normalizer) Normalize(evt backend.RawEvent) ([]chat.Mutation, error) {
	if muts, ok := backend.NormalizeCommon(evt); ok {
		return muts, nil
	}
	switch p := evt.Payload.(type) {
	case ChatInfo:
		if p.JID.IsEmpty() {
			return nil, chat.Malformed("chat without JID")
		}
		kind := chat.Direct
		if p.Group {
			kind = chat.Group
		}
		return []chat.Mutation{chat.UpsertConversation{
			ID:   conversation(evt.Backend, p.JID),
			Name: p.Name,
			Kind: kind,
		}}, nil
	case *events.Message:
		return normalizeMessage(evt.Backend, p)
	case *events.Receipt:
		return normalizeReceipt(evt.Backend, p)
	case *events.ChatPresence:
		if p.Chat.IsEmpty() || p.Sender.IsEmpty() {
			return nil, chat.Malformed("chat presence without chat or sender")
		}
		return []chat.Mutation{chat.UpsertParticipant{
			Conversation: conversation(evt.Backend, p.Chat),
			Participant: chat.Participant{
				ID:     p.Sender.ToNonAD().String(),
				Typing: p.State == types.ChatPresenceComposing,
			},
		}}, nil
	}
	return nil, chat.Malformed("unexpected whatsapp payload %T", evt.Payload)
}

func conversation(id chat.BackendID, jid types.JID) chat.ConversationID {
	return chat.NewConversationID(id, jid.ToNonAD().String())
}

func normalizeMessage(id chat.BackendID, evt *events.Message) ([]chat.Mutation, error) {
	info := evt.Info
	if info.Chat.IsEmpty() || info.ID == "" {
		return nil, chat.Malformed("message without chat or id")
	}
	if info.Timestamp.IsZero() {
		return nil, chat.Malformed("message %s without timestamp", info.ID)
	}
	if evt.Message == nil {
		return nil, chat.Malformed("message %s without content", info.ID)
	}
	conv := conversation(id, info.Chat)
	sender := info.Sender.ToNonAD().String()
	msg := evt.Message

	if r := msg.GetReactionMessage(); r != nil {
		target := r.GetKey().GetID()
		if target == "" {
			return nil, chat.Malformed("reaction %s without target", info.ID)
		}
		return []chat.Mutation{chat.ApplyReaction{
			Conversation: conv,
			MessageID:    target,
			Reaction:     chat.Reaction{Sender: sender, Emoji: r.GetText()},
			Remove:       r.GetText() == "",
		}}, nil
	}

	if pm := msg.GetProtocolMessage(); pm != nil {
		target := pm.GetKey().GetID()
		switch pm.GetType() {
		case waE2E.ProtocolMessage_REVOKE:
			if target == "" {
				return nil, chat.Malformed("revoke %s without target", info.ID)
			}
			return []chat.Mutation{chat.EditMessage{Conversation: conv, MessageID: target, Redact: true, At: info.Timestamp}}, nil
		case waE2E.ProtocolMessage_MESSAGE_EDIT:
			if target == "" {
				return nil, chat.Malformed("edit %s without target", info.ID)
			}
			return []chat.Mutation{chat.EditMessage{
				Conversation: conv,
				MessageID:    target,
				Body:         body(pm.GetEditedMessage()),
				At:           info.Timestamp,
			}}, nil
		}
		// Key distribution and similar housekeeping.
		return nil, nil
	}

	if !isContent(msg) {
		return nil, nil
	}
	muts := make([]chat.Mutation, 0, 2)
	if info.PushName != "" && !info.IsFromMe {
		muts = append(muts, chat.UpsertParticipant{
			Conversation: conv,
			Participant:  chat.Participant{ID: sender, Name: info.PushName},
		})
	}
	muts = append(muts, chat.AppendMessage{
		Conversation: conv,
		Message: chat.Message{
			ID:         info.ID,
			Sender:     sender,
			SenderName: info.PushName,
			FromMe:     info.IsFromMe,
			Body:       body(msg),
			Timestamp:  info.Timestamp,
		},
	})
	return muts, nil
}

func normalizeReceipt(id chat.BackendID, r *events.Receipt) ([]chat.Mutation, error) {
	if r.Chat.IsEmpty() || len(r.MessageIDs) == 0 {
		return nil, chat.Malformed("receipt without chat or message ids")
	}
	// Receipts sent by the account's other devices concern incoming messages.
	if r.IsFromMe {
		return nil, nil
	}
	var state chat.DeliveryState
	switch r.Type {
	case types.ReceiptTypeDelivered:
		state = chat.Delivered
	case types.ReceiptTypeRead, types.ReceiptTypePlayed:
		state = chat.Read
	default:
		return nil, nil
	}
	conv := conversation(id, r.Chat)
	muts := make([]chat.Mutation, 0, len(r.MessageIDs))
	for _, msgID := range r.MessageIDs {
		muts = append(muts, chat.UpdateDeliveryState{Conversation: conv, MessageID: msgID, State: state})
	}
	return muts, nil
}

// isContent reports whether a message is user-visible content rather than a
// reaction, edit or protocol housekeeping.
func isContent(msg *waE2E.Message) bool {
	if msg == nil || msg.GetReactionMessage() != nil || msg.GetProtocolMessage() != nil {
		return false
	}
	b := body(msg)
	return !b.IsEmpty() || messageType(msg) != "unknown"
}

func body(msg *waE2E.Message) chat.Body {
	var b chat.Body
	if msg == nil {
		return b
	}
	b.Text = textBody(msg)
	if a, ok := attachment(msg); ok {
		b.Attachments = []chat.Attachment{a}
	}
	if ci := contextInfo(msg); ci.GetStanzaID() != "" {
		b.Quote = &chat.Quote{
			MessageID: ci.GetStanzaID(),
			Sender:    ci.GetParticipant(),
			Text:      textBody(ci.GetQuotedMessage()),
		}
	}
	return b
}

func textBody(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	if c := msg.GetConversation(); c != "" {
		return c
	}
	if ext := msg.GetExtendedTextMessage(); ext != nil {
		return ext.GetText()
	}
	switch {
	case msg.GetImageMessage() != nil:
		return msg.GetImageMessage().GetCaption()
	case msg.GetVideoMessage() != nil:
		return msg.GetVideoMessage().GetCaption()
	case msg.GetDocumentMessage() != nil:
		return msg.GetDocumentMessage().GetCaption()
	case msg.GetContactMessage() != nil:
		return "contact: " + msg.GetContactMessage().GetDisplayName()
	case msg.GetLocationMessage() != nil:
		return "location: " + msg.GetLocationMessage().GetName()
	}
	return ""
}

func contextInfo(msg *waE2E.Message) *waE2E.ContextInfo {
	switch {
	case msg.GetExtendedTextMessage() != nil:
		return msg.GetExtendedTextMessage().GetContextInfo()
	case msg.GetImageMessage() != nil:
		return msg.GetImageMessage().GetContextInfo()
	case msg.GetVideoMessage() != nil:
		return msg.GetVideoMessage().GetContextInfo()
	case msg.GetDocumentMessage() != nil:
		return msg.GetDocumentMessage().GetContextInfo()
	}
	return nil
}

// attachment describes the media of a message. Media stays on WhatsApp's
// servers; Handle is its direct path.
func attachment(msg *waE2E.Message) (chat.Attachment, bool) {
	switch {
	case msg.GetImageMessage() != nil:
		m := msg.GetImageMessage()
		return chat.Attachment{Name: "image", MIMEType: m.GetMimetype(), Size: int64(m.GetFileLength()), Handle: m.GetDirectPath()}, true
	case msg.GetVideoMessage() != nil:
		m := msg.GetVideoMessage()
		return chat.Attachment{Name: "video", MIMEType: m.GetMimetype(), Size: int64(m.GetFileLength()), Handle: m.GetDirectPath()}, true
	case msg.GetAudioMessage() != nil:
		m := msg.GetAudioMessage()
		return chat.Attachment{Name: "audio", MIMEType: m.GetMimetype(), Size: int64(m.GetFileLength()), Handle: m.GetDirectPath()}, true
	case msg.GetDocumentMessage() != nil:
		m := msg.GetDocumentMessage()
		name := m.GetFileName()
		if name == "" {
			name = "document"
		}
		return chat.Attachment{Name: name, MIMEType: m.GetMimetype(), Size: int64(m.GetFileLength()), Handle: m.GetDirectPath()}, true
	case msg.GetStickerMessage() != nil:
		m := msg.GetStickerMessage()
		return chat.Attachment{Name: "sticker", MIMEType: m.GetMimetype(), Size: int64(m.GetFileLength()), Handle: m.GetDirectPath()}, true
	}
	return chat.Attachment{}, false
}

func messageType(msg *waE2E.Message) string {
	if msg == nil {
		return "unknown"
	}
	switch {
	case msg.GetConversation() != "" || msg.GetExtendedTextMessage() != nil:
		return "text"
	case msg.GetImageMessage() != nil:
		return "image"
	case msg.GetVideoMessage() != nil:
		return "video"
	case msg.GetAudioMessage() != nil:
		return "audio"
	case msg.GetDocumentMessage() != nil:
		return "document"
	case msg.GetStickerMessage() != nil:
		return "sticker"
	case msg.GetContactMessage() != nil:
		return "contact"
	case msg.GetLocationMessage() != nil:
		return "location"
	default:
		return "unknown"
	}
}
