package chat

import (
	"fmt"
	"strings"
	"time"
)

// ConversationKind distinguishes one-to-one chats from groups.
type ConversationKind string

const (
	Direct ConversationKind = "direct"
	Group  ConversationKind = "group"
)

// Presence is the last known availability of a participant.
type Presence string

const (
	PresenceUnknown Presence = ""
	Online          Presence = "online"
	Offline         Presence = "offline"
)

// Participant is a member of a conversation. ID is scoped to the backend.
type Participant struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Presence Presence  `json:"presence,omitempty"`
	Typing   bool      `json:"typing,omitempty"`
	LastSeen time.Time `json:"last_seen,omitzero"`
}

// Merge folds upd into p. Empty fields in upd never erase known values;
// Typing is always taken from upd since it is a live indicator.
func (p Participant) Merge(upd Participant) Participant {
	if upd.Name != "" {
		p.Name = upd.Name
	}
	if upd.Presence != PresenceUnknown {
		p.Presence = upd.Presence
	}
	if upd.LastSeen.After(p.LastSeen) {
		p.LastSeen = upd.LastSeen
	}
	p.Typing = upd.Typing
	return p
}

// DisplayName falls back to the id when no name is known.
func (p Participant) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Quote references the message being replied to.
type Quote struct {
	MessageID string `json:"message_id"`
	Sender    string `json:"sender,omitempty"`
	Text      string `json:"text,omitempty"`
}

// Body is the content of a message.
type Body struct {
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Quote       *Quote       `json:"quote,omitempty"`
}

// IsEmpty reports whether the body carries neither text nor attachments.
func (b Body) IsEmpty() bool {
	return strings.TrimSpace(b.Text) == "" && len(b.Attachments) == 0
}

// Preview is a single-line summary suitable for lists and notifications.
func (b Body) Preview() string {
	if b.Text != "" {
		line, _, _ := strings.Cut(b.Text, "\n")
		return line
	}
	if len(b.Attachments) > 0 {
		return b.Attachments[0].Line()
	}
	return ""
}

// Reaction is one participant's emoji on a message.
type Reaction struct {
	Sender string `json:"sender"`
	Emoji  string `json:"emoji"`
}

// Message is a single entry in a conversation.
type Message struct {
	ID         string        `json:"id"`
	Sender     string        `json:"sender"`
	SenderName string        `json:"sender_name,omitempty"`
	FromMe     bool          `json:"from_me,omitempty"`
	Body       Body          `json:"body"`
	Timestamp  time.Time     `json:"timestamp"`
	ReceivedAt time.Time     `json:"received_at"`
	State      DeliveryState `json:"state"`
	Edited     bool          `json:"edited,omitempty"`
	EditedAt   time.Time     `json:"edited_at,omitzero"`
	Redacted   bool          `json:"redacted,omitempty"`
	Reactions  []Reaction    `json:"reactions,omitempty"`
}

// Before orders messages by backend timestamp, then by local receipt time.
// The id breaks any remaining tie so the order is total.
func (m Message) Before(o Message) bool {
	if !m.Timestamp.Equal(o.Timestamp) {
		return m.Timestamp.Before(o.Timestamp)
	}
	if !m.ReceivedAt.Equal(o.ReceivedAt) {
		return m.ReceivedAt.Before(o.ReceivedAt)
	}
	return m.ID < o.ID
}

// Conversation is the unified view of one chat on one backend.
type Conversation struct {
	ID           ConversationID   `json:"id"`
	Name         string           `json:"name"`
	Kind         ConversationKind `json:"kind,omitempty"`
	Description  string           `json:"description,omitempty"`
	Participants []Participant    `json:"participants,omitempty"`
	Messages     []Message        `json:"messages,omitempty"`
	Unread       int              `json:"unread"`
	LastActivity time.Time        `json:"last_activity,omitzero"`
}

// Title is the name to show, falling back to the native id.
func (c Conversation) Title() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID.Native
}

// Phase is a backend connection phase.
type Phase string

const (
	Disconnected   Phase = "disconnected"
	Connecting     Phase = "connecting"
	SyncingHistory Phase = "syncing_history"
	Live           Phase = "live"
	Degraded       Phase = "degraded"
)

// ConnState is a backend's connection state. Reason is set only when Degraded.
type ConnState struct {
	Phase  Phase  `json:"phase"`
	Reason string `json:"reason,omitempty"`
}

func (s ConnState) String() string {
	if s.Reason != "" {
		return fmt.Sprintf("%s(%s)", s.Phase, s.Reason)
	}
	return string(s.Phase)
}
