package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/matheus3301/chatters/internal/chat"
)

// upsertConversation writes a conversation's metadata. Messages are stored
// separately.
func upsertConversation(ctx context.Context, tx *sql.Tx, c chat.Conversation) error {
	participants, err := json.Marshal(c.Participants)
	if err != nil {
		return fmt.Errorf("encode participants: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO conversations (id, backend, native, name, kind, description, participants, unread, last_activity, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind,
			description = excluded.description,
			participants = excluded.participants,
			unread = excluded.unread,
			last_activity = excluded.last_activity,
			updated_at = excluded.updated_at`,
		c.ID.String(), string(c.ID.Backend), c.ID.Native, c.Name, string(c.Kind), c.Description,
		string(participants), c.Unread, unixMilli(c.LastActivity), time.Now().UnixMilli())
	return err
}

func deleteConversation(ctx context.Context, tx *sql.Tx, id chat.ConversationID) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id.String())
	return err
}

// upsertMessage inserts or replaces a message (idempotent on conversation + msg_id).
func upsertMessage(ctx context.Context, tx *sql.Tx, conv chat.ConversationID, m chat.Message) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO messages (conversation, msg_id, sender, sender_name, from_me, body, payload, state, timestamp, received_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(conversation, msg_id) DO UPDATE SET
			sender_name = excluded.sender_name,
			body = excluded.body,
			payload = excluded.payload,
			state = excluded.state`,
		conv.String(), m.ID, m.Sender, m.SenderName, m.FromMe, searchable(m.Body), string(payload),
		m.State.String(), unixMilli(m.Timestamp), m.ReceivedAt.UnixNano())
	return err
}

func deleteMessage(ctx context.Context, tx *sql.Tx, conv chat.ConversationID, msgID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE conversation = ? AND msg_id = ?`, conv.String(), msgID)
	return err
}

// searchable is the text indexed for full-text search.
func searchable(b chat.Body) string {
	parts := make([]string, 0, 1+len(b.Attachments))
	if b.Text != "" {
		parts = append(parts, b.Text)
	}
	for _, a := range b.Attachments {
		if a.Name != "" {
			parts = append(parts, a.Name)
		}
	}
	return strings.Join(parts, "\n")
}

func unixMilli(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// Restore loads every archived conversation with at most perConversation of
// its newest messages, oldest first. perConversation <= 0 loads everything.
func (db *DB) Restore(ctx context.Context, perConversation int) ([]chat.Conversation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT backend, native, name, kind, description, participants, unread, last_activity
		FROM conversations
		ORDER BY last_activity DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	var convs []chat.Conversation
	for rows.Next() {
		var (
			c            chat.Conversation
			backend      string
			kind         string
			participants string
			last         int64
		)
		if err := rows.Scan(&backend, &c.ID.Native, &c.Name, &kind, &c.Description, &participants, &c.Unread, &last); err != nil {
			_ = rows.Close()
			return nil, err
		}
		c.ID.Backend = chat.BackendID(backend)
		c.Kind = chat.ConversationKind(kind)
		if last > 0 {
			c.LastActivity = time.UnixMilli(last)
		}
		if err := json.Unmarshal([]byte(participants), &c.Participants); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("participants of %s: %w", c.ID, err)
		}
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	for i := range convs {
		msgs, err := db.messages(ctx, convs[i].ID, perConversation)
		if err != nil {
			return nil, fmt.Errorf("messages of %s: %w", convs[i].ID, err)
		}
		convs[i].Messages = msgs
	}
	return convs, nil
}

func (db *DB) messages(ctx context.Context, conv chat.ConversationID, limit int) ([]chat.Message, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.QueryContext(ctx, `
		SELECT payload FROM (
			SELECT payload, timestamp, received_at, msg_id
			FROM messages
			WHERE conversation = ?
			ORDER BY timestamp DESC, received_at DESC, msg_id DESC
			LIMIT ?
		) ORDER BY timestamp, received_at, msg_id`, conv.String(), limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []chat.Message
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var m chat.Message
		if err := json.Unmarshal([]byte(payload), &m); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// LastReceived returns the newest receipt time in the archive, or the zero
// time when it holds no messages.
func (db *DB) LastReceived(ctx context.Context) (time.Time, error) {
	var n int64
	if err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(received_at), 0) FROM messages").Scan(&n); err != nil {
		return time.Time{}, fmt.Errorf("last receipt: %w", err)
	}
	if n == 0 {
		return time.Time{}, nil
	}
	return time.Unix(0, n), nil
}
