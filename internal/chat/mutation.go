package chat

import "time"

// Mutation is a unified change command produced by a normalizer. The engine is
// the only component that applies mutations to the store.
type Mutation interface {
	mutation()
}

// UpsertConversation creates a conversation or merges metadata into it.
type UpsertConversation struct {
	ID           ConversationID
	Name         string
	Kind         ConversationKind
	Description  string
	Participants []Participant
}

// UpsertParticipant adds or merges a participant into a conversation roster.
type UpsertParticipant struct {
	Conversation ConversationID
	Participant  Participant
}

// AppendMessage inserts a message unless one with the same id is already
// stored. Live marks messages that arrived on the event stream rather than
// through backfill; only those count towards the unread counter.
type AppendMessage struct {
	Conversation ConversationID
	Message      Message
	Live         bool
}

// UpdateDeliveryState moves a message forward in its delivery lifecycle.
// A non-empty NativeID re-keys a locally generated id to the one the server
// assigned.
type UpdateDeliveryState struct {
	Conversation ConversationID
	MessageID    string
	NativeID     string
	State        DeliveryState
	Reason       string
}

// EditMessage replaces a message body, or redacts the message when Redact is set.
type EditMessage struct {
	Conversation ConversationID
	MessageID    string
	Body         Body
	Redact       bool
	At           time.Time
}

// ApplyReaction adds or removes a reaction. A sender holds at most one reaction per message.
type ApplyReaction struct {
	Conversation ConversationID
	MessageID    string
	Reaction     Reaction
	Remove       bool
}

// MarkConversationRead clears the unread counter.
type MarkConversationRead struct {
	Conversation ConversationID
}

// UpdateConnectionState reports a transport-level change. It never reaches the
// store; the engine feeds it to the backend's state machine.
type UpdateConnectionState struct {
	Backend BackendID
	State   ConnState
}

func (UpsertConversation) mutation()    {}
func (UpsertParticipant) mutation()     {}
func (AppendMessage) mutation()         {}
func (UpdateDeliveryState) mutation()   {}
func (EditMessage) mutation()           {}
func (ApplyReaction) mutation()         {}
func (MarkConversationRead) mutation()  {}
func (UpdateConnectionState) mutation() {}

// ConversationOf returns the conversation a mutation targets.
func ConversationOf(m Mutation) (ConversationID, bool) {
	switch m := m.(type) {
	case UpsertConversation:
		return m.ID, true
	case UpsertParticipant:
		return m.Conversation, true
	case AppendMessage:
		return m.Conversation, true
	case UpdateDeliveryState:
		return m.Conversation, true
	case EditMessage:
		return m.Conversation, true
	case ApplyReaction:
		return m.Conversation, true
	case MarkConversationRead:
		return m.Conversation, true
	default:
		return ConversationID{}, false
	}
}
