package api

import (
	"time"

	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/store"
)

var deliveryStates = map[chat.DeliveryState]chattersv1.DeliveryState{
	chat.Sending:   chattersv1.DeliveryState_DELIVERY_STATE_SENDING,
	chat.Sent:      chattersv1.DeliveryState_DELIVERY_STATE_SENT,
	chat.Delivered: chattersv1.DeliveryState_DELIVERY_STATE_DELIVERED,
	chat.Read:      chattersv1.DeliveryState_DELIVERY_STATE_READ,
	chat.Failed:    chattersv1.DeliveryState_DELIVERY_STATE_FAILED,
}

var phases = map[chat.Phase]chattersv1.ConnectionPhase{
	chat.Disconnected:   chattersv1.ConnectionPhase_CONNECTION_PHASE_DISCONNECTED,
	chat.Connecting:     chattersv1.ConnectionPhase_CONNECTION_PHASE_CONNECTING,
	chat.SyncingHistory: chattersv1.ConnectionPhase_CONNECTION_PHASE_SYNCING_HISTORY,
	chat.Live:           chattersv1.ConnectionPhase_CONNECTION_PHASE_LIVE,
	chat.Degraded:       chattersv1.ConnectionPhase_CONNECTION_PHASE_DEGRADED,
}

var changeKinds = map[store.ChangeKind]chattersv1.ChangeKind{
	store.ConversationChanged: chattersv1.ChangeKind_CHANGE_KIND_CONVERSATION,
	store.ParticipantChanged:  chattersv1.ChangeKind_CHANGE_KIND_PARTICIPANT,
	store.MessageAdded:        chattersv1.ChangeKind_CHANGE_KIND_MESSAGE_ADDED,
	store.MessageEdited:       chattersv1.ChangeKind_CHANGE_KIND_MESSAGE_EDITED,
	store.DeliveryChanged:     chattersv1.ChangeKind_CHANGE_KIND_DELIVERY,
	store.ConversationRemoved: chattersv1.ChangeKind_CHANGE_KIND_REMOVED,
	store.BackendChanged:      chattersv1.ChangeKind_CHANGE_KIND_BACKEND,
	store.Coalesced:           chattersv1.ChangeKind_CHANGE_KIND_COALESCED,
}

var linkTypes = map[backend.LinkEventType]chattersv1.LinkEventType{
	backend.LinkCode:          chattersv1.LinkEventType_LINK_EVENT_TYPE_CODE,
	backend.LinkAuthenticated: chattersv1.LinkEventType_LINK_EVENT_TYPE_AUTHENTICATED,
	backend.LinkFailed:        chattersv1.LinkEventType_LINK_EVENT_TYPE_FAILED,
	backend.LinkTimeout:       chattersv1.LinkEventType_LINK_EVENT_TYPE_TIMEOUT,
}

func invert[K, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

var (
	deliveryStatesBack = invert(deliveryStates)
	phasesBack         = invert(phases)
	changeKindsBack    = invert(changeKinds)
	linkTypesBack      = invert(linkTypes)
)

func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// MessageToProto converts a stored message of conv.
func MessageToProto(conv chat.ConversationID, m chat.Message) *chattersv1.Message {
	pb := &chattersv1.Message{
		Id:              m.ID,
		ConversationId:  conv.String(),
		Sender:          m.Sender,
		SenderName:      m.SenderName,
		FromMe:          m.FromMe,
		Text:            m.Body.Text,
		Attachments:     AttachmentsToProto(m.Body.Attachments),
		TimestampUnixMs: unixMilli(m.Timestamp),
		State:           deliveryStates[m.State],
		Edited:          m.Edited,
		EditedAtUnixMs:  unixMilli(m.EditedAt),
		Redacted:        m.Redacted,
	}
	if !m.ReceivedAt.IsZero() {
		pb.ReceivedAtUnixNs = m.ReceivedAt.UnixNano()
	}
	if q := m.Body.Quote; q != nil {
		pb.Quote = &chattersv1.Quote{MessageId: q.MessageID, Sender: q.Sender, Text: q.Text}
	}
	for _, r := range m.Reactions {
		pb.Reactions = append(pb.Reactions, &chattersv1.Reaction{Sender: r.Sender, Emoji: r.Emoji})
	}
	return pb
}

// MessageFromProto is the inverse of MessageToProto. The conversation id is
// returned separately since chat.Message does not carry it.
func MessageFromProto(pb *chattersv1.Message) (chat.ConversationID, chat.Message) {
	conv, _ := chat.ParseConversationID(pb.GetConversationId())
	m := chat.Message{
		ID:         pb.GetId(),
		Sender:     pb.GetSender(),
		SenderName: pb.GetSenderName(),
		FromMe:     pb.GetFromMe(),
		Body: chat.Body{
			Text:        pb.GetText(),
			Attachments: AttachmentsFromProto(pb.GetAttachments()),
		},
		Timestamp: fromUnixMilli(pb.GetTimestampUnixMs()),
		State:     deliveryStatesBack[pb.GetState()],
		Edited:    pb.GetEdited(),
		EditedAt:  fromUnixMilli(pb.GetEditedAtUnixMs()),
		Redacted:  pb.GetRedacted(),
	}
	if ns := pb.GetReceivedAtUnixNs(); ns != 0 {
		m.ReceivedAt = time.Unix(0, ns)
	}
	if q := pb.GetQuote(); q != nil {
		m.Body.Quote = &chat.Quote{MessageID: q.GetMessageId(), Sender: q.GetSender(), Text: q.GetText()}
	}
	for _, r := range pb.GetReactions() {
		m.Reactions = append(m.Reactions, chat.Reaction{Sender: r.GetSender(), Emoji: r.GetEmoji()})
	}
	return conv, m
}

func AttachmentsToProto(atts []chat.Attachment) []*chattersv1.Attachment {
	var out []*chattersv1.Attachment
	for _, a := range atts {
		out = append(out, &chattersv1.Attachment{
			Name:     a.Name,
			MimeType: a.MIMEType,
			Size:     a.Size,
			Inline:   a.Inline,
			Handle:   a.Handle,
		})
	}
	return out
}

func AttachmentsFromProto(atts []*chattersv1.Attachment) []chat.Attachment {
	var out []chat.Attachment
	for _, a := range atts {
		out = append(out, chat.Attachment{
			Name:     a.GetName(),
			MIMEType: a.GetMimeType(),
			Size:     a.GetSize(),
			Inline:   a.GetInline(),
			Handle:   a.GetHandle(),
		})
	}
	return out
}

// ConversationToProto converts a conversation with whatever messages it carries.
func ConversationToProto(c chat.Conversation) *chattersv1.Conversation {
	pb := &chattersv1.Conversation{
		Id:                 c.ID.String(),
		Name:               c.Name,
		Description:        c.Description,
		Unread:             int32(c.Unread),
		LastActivityUnixMs: unixMilli(c.LastActivity),
	}
	switch c.Kind {
	case chat.Direct:
		pb.Kind = chattersv1.ConversationKind_CONVERSATION_KIND_DIRECT
	case chat.Group:
		pb.Kind = chattersv1.ConversationKind_CONVERSATION_KIND_GROUP
	}
	for _, p := range c.Participants {
		pb.Participants = append(pb.Participants, participantToProto(p))
	}
	for _, m := range c.Messages {
		pb.Messages = append(pb.Messages, MessageToProto(c.ID, m))
	}
	return pb
}

func ConversationFromProto(pb *chattersv1.Conversation) chat.Conversation {
	id, _ := chat.ParseConversationID(pb.GetId())
	c := chat.Conversation{
		ID:           id,
		Name:         pb.GetName(),
		Description:  pb.GetDescription(),
		Unread:       int(pb.GetUnread()),
		LastActivity: fromUnixMilli(pb.GetLastActivityUnixMs()),
	}
	switch pb.GetKind() {
	case chattersv1.ConversationKind_CONVERSATION_KIND_DIRECT:
		c.Kind = chat.Direct
	case chattersv1.ConversationKind_CONVERSATION_KIND_GROUP:
		c.Kind = chat.Group
	}
	for _, p := range pb.GetParticipants() {
		c.Participants = append(c.Participants, participantFromProto(p))
	}
	for _, m := range pb.GetMessages() {
		_, msg := MessageFromProto(m)
		c.Messages = append(c.Messages, msg)
	}
	return c
}

func participantToProto(p chat.Participant) *chattersv1.Participant {
	pb := &chattersv1.Participant{
		Id:             p.ID,
		Name:           p.Name,
		Typing:         p.Typing,
		LastSeenUnixMs: unixMilli(p.LastSeen),
	}
	switch p.Presence {
	case chat.Online:
		pb.Presence = chattersv1.Presence_PRESENCE_ONLINE
	case chat.Offline:
		pb.Presence = chattersv1.Presence_PRESENCE_OFFLINE
	}
	return pb
}

func participantFromProto(pb *chattersv1.Participant) chat.Participant {
	p := chat.Participant{
		ID:       pb.GetId(),
		Name:     pb.GetName(),
		Typing:   pb.GetTyping(),
		LastSeen: fromUnixMilli(pb.GetLastSeenUnixMs()),
	}
	switch pb.GetPresence() {
	case chattersv1.Presence_PRESENCE_ONLINE:
		p.Presence = chat.Online
	case chattersv1.Presence_PRESENCE_OFFLINE:
		p.Presence = chat.Offline
	}
	return p
}

func StateToProto(s chat.ConnState) *chattersv1.ConnectionState {
	return &chattersv1.ConnectionState{Phase: phases[s.Phase], Reason: s.Reason}
}

func StateFromProto(pb *chattersv1.ConnectionState) chat.ConnState {
	if pb == nil {
		return chat.ConnState{}
	}
	return chat.ConnState{Phase: phasesBack[pb.GetPhase()], Reason: pb.GetReason()}
}

func changeToProto(c store.Change) *chattersv1.ChangeEvent {
	evt := &chattersv1.ChangeEvent{
		Kind:        changeKinds[c.Kind],
		Backend:     string(c.Backend),
		MessageId:   c.MessageID,
		Participant: c.Participant,
		Reason:      c.Reason,
	}
	if !c.Conversation.IsZero() {
		evt.ConversationId = c.Conversation.String()
	}
	if c.State.Phase != "" {
		evt.State = StateToProto(c.State)
	}
	return evt
}

// ChangeFromProto recovers the store change an event carries.
func ChangeFromProto(evt *chattersv1.ChangeEvent) store.Change {
	c := store.Change{
		Backend:     chat.BackendID(evt.GetBackend()),
		Kind:        changeKindsBack[evt.GetKind()],
		MessageID:   evt.GetMessageId(),
		Participant: evt.GetParticipant(),
		State:       StateFromProto(evt.GetState()),
		Reason:      evt.GetReason(),
	}
	if id := evt.GetConversationId(); id != "" {
		c.Conversation, _ = chat.ParseConversationID(id)
	}
	return c
}

func linkEventToProto(evt backend.LinkEvent) *chattersv1.LinkEvent {
	return &chattersv1.LinkEvent{Type: linkTypes[evt.Type], Code: evt.Code, Message: evt.Message}
}

// LinkEventFromProto maps a streamed link step back to the backend's event.
func LinkEventFromProto(pb *chattersv1.LinkEvent) backend.LinkEvent {
	return backend.LinkEvent{Type: linkTypesBack[pb.GetType()], Code: pb.GetCode(), Message: pb.GetMessage()}
}
