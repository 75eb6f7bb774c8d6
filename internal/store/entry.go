package store

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/matheus3301/chatters/internal/chat"
)

type msgKey struct {
	ts   time.Time
	recv time.Time
}

type entry struct {
	mu        sync.RWMutex
	conv      chat.Conversation
	keys      map[string]msgKey
	aliases   map[string]string
	announced bool
	removed   bool
}

func newEntry(id chat.ConversationID) *entry {
	return &entry{
		conv:    chat.Conversation{ID: id, Kind: chat.Direct},
		keys:    make(map[string]msgKey),
		aliases: make(map[string]string),
	}
}

// summary copies everything but the messages.
func (e *entry) summary() chat.Conversation {
	c := e.conv
	c.Participants = slices.Clone(e.conv.Participants)
	c.Messages = nil
	return c
}

// canonical follows a local send id to the native id it was rekeyed to.
func (e *entry) canonical(id string) string {
	if native, ok := e.aliases[id]; ok {
		return native
	}
	return id
}

// find returns the index of a message or -1.
func (e *entry) find(id string) int {
	k, ok := e.keys[id]
	if !ok {
		return -1
	}
	probe := chat.Message{ID: id, Timestamp: k.ts, ReceivedAt: k.recv}
	msgs := e.conv.Messages
	i := sort.Search(len(msgs), func(i int) bool { return !msgs[i].Before(probe) })
	if i < len(msgs) && msgs[i].ID == id {
		return i
	}
	return -1
}

func (e *entry) insert(m chat.Message) {
	msgs := e.conv.Messages
	i := sort.Search(len(msgs), func(i int) bool { return m.Before(msgs[i]) })
	e.conv.Messages = slices.Insert(msgs, i, m)
	e.keys[m.ID] = msgKey{ts: m.Timestamp, recv: m.ReceivedAt}
	if m.Timestamp.After(e.conv.LastActivity) {
		e.conv.LastActivity = m.Timestamp
	}
}

func (e *entry) remove(i int) chat.Message {
	m := e.conv.Messages[i]
	e.conv.Messages = slices.Delete(e.conv.Messages, i, i+1)
	delete(e.keys, m.ID)
	return m
}

func (e *entry) upsertConversation(m chat.UpsertConversation) (Record, bool) {
	changed := false
	if m.Name != "" && m.Name != e.conv.Name {
		e.conv.Name = m.Name
		changed = true
	}
	if m.Kind != "" && m.Kind != e.conv.Kind {
		e.conv.Kind = m.Kind
		changed = true
	}
	if m.Description != "" && m.Description != e.conv.Description {
		e.conv.Description = m.Description
		changed = true
	}
	for _, p := range m.Participants {
		if _, ok := e.upsertParticipant(p); ok {
			changed = true
		}
	}
	// First reference always counts as a change so subscribers learn about it.
	if !e.announced {
		e.announced = true
		changed = true
	}
	return Record{Change: Change{Kind: ConversationChanged}}, changed
}

func (e *entry) upsertParticipant(p chat.Participant) (Record, bool) {
	if p.ID == "" {
		return Record{}, false
	}
	rec := Record{Change: Change{Kind: ParticipantChanged, Participant: p.ID}}
	for i, cur := range e.conv.Participants {
		if cur.ID == p.ID {
			merged := cur.Merge(p)
			if merged == cur {
				return rec, false
			}
			e.conv.Participants[i] = merged
			return rec, true
		}
	}
	e.conv.Participants = append(e.conv.Participants, chat.Participant{ID: p.ID}.Merge(p))
	return rec, true
}

func (e *entry) append(m chat.AppendMessage, clock *chat.Clock) (Record, bool) {
	msg := m.Message
	if msg.ID == "" {
		return Record{}, false
	}
	if _, dup := e.keys[msg.ID]; dup {
		return Record{}, false
	}
	// The send outcome already moved this id to its native message.
	if _, rekeyed := e.aliases[msg.ID]; rekeyed {
		return Record{}, false
	}
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = clock.Now()
	}
	if msg.State == chat.StateUnknown {
		msg.State = chat.Delivered
		if msg.FromMe {
			msg.State = chat.Sent
		}
	}
	if msg.Sender != "" && !msg.FromMe {
		e.upsertParticipant(chat.Participant{ID: msg.Sender, Name: msg.SenderName})
	}
	e.insert(msg)
	e.announced = true
	if m.Live && !msg.FromMe {
		e.conv.Unread++
	}
	return Record{
		Change:  Change{Kind: MessageAdded, MessageID: msg.ID},
		Message: &msg,
	}, true
}

func (e *entry) updateDelivery(m chat.UpdateDeliveryState) (Record, bool, error) {
	var rec Record
	id := e.canonical(m.MessageID)
	if m.NativeID != "" && m.NativeID != id {
		rec.RemovedID = id
		local, native := e.find(id), e.find(m.NativeID)
		switch {
		case local >= 0 && native < 0:
			msg := e.remove(local)
			msg.ID = m.NativeID
			e.insert(msg)
		case local >= 0 && native >= 0:
			e.remove(local)
		default:
			rec.RemovedID = ""
		}
		id = m.NativeID
	}

	i := e.find(id)
	if i < 0 {
		return Record{}, false, errNotFound(id)
	}
	if m.NativeID != "" && m.NativeID != m.MessageID {
		e.aliases[m.MessageID] = m.NativeID
	}
	rekeyed := rec.RemovedID != ""
	msg := e.conv.Messages[i]
	switch {
	case msg.State == m.State:
		if !rekeyed {
			return Record{}, false, nil
		}
	case !msg.State.CanAdvanceTo(m.State):
		if !rekeyed {
			return Record{}, false, ErrBackward
		}
	default:
		msg.State = m.State
		e.conv.Messages[i] = msg
	}
	rec.Change = Change{Kind: DeliveryChanged, MessageID: id, Reason: m.Reason}
	rec.Message = &msg
	return rec, true, nil
}

func (e *entry) edit(m chat.EditMessage) (Record, bool, error) {
	i := e.find(m.MessageID)
	if i < 0 {
		return Record{}, false, errNotFound(m.MessageID)
	}
	msg := e.conv.Messages[i]
	if msg.Redacted {
		return Record{}, false, nil
	}
	if m.Redact {
		msg.Redacted = true
		msg.Body = chat.Body{}
		msg.Reactions = nil
	} else {
		msg.Body = m.Body
		msg.Edited = true
		msg.EditedAt = m.At
	}
	e.conv.Messages[i] = msg
	return Record{Change: Change{Kind: MessageEdited, MessageID: msg.ID}, Message: &msg}, true, nil
}

func (e *entry) react(m chat.ApplyReaction) (Record, bool, error) {
	i := e.find(m.MessageID)
	if i < 0 {
		return Record{}, false, errNotFound(m.MessageID)
	}
	msg := e.conv.Messages[i]
	if msg.Redacted {
		return Record{}, false, nil
	}
	// Reactions is shared with readers' copies; never modify it in place.
	reactions := slices.DeleteFunc(slices.Clone(msg.Reactions), func(r chat.Reaction) bool {
		return r.Sender == m.Reaction.Sender
	})
	if !m.Remove && m.Reaction.Emoji != "" {
		reactions = append(reactions, m.Reaction)
	}
	if slices.Equal(reactions, msg.Reactions) {
		return Record{}, false, nil
	}
	msg.Reactions = reactions
	e.conv.Messages[i] = msg
	return Record{Change: Change{Kind: MessageEdited, MessageID: msg.ID}, Message: &msg}, true, nil
}

func (e *entry) markRead() (Record, bool) {
	if e.conv.Unread == 0 {
		return Record{}, false
	}
	e.conv.Unread = 0
	return Record{Change: Change{Kind: ConversationChanged}}, true
}
