package archive

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matheus3301/chatters/internal/chat"
)

// Hit is a message matching a search, with the matching fragment highlighted.
type Hit struct {
	Conversation chat.ConversationID `json:"conversation"`
	Message      chat.Message        `json:"message"`
	Snippet      string              `json:"snippet"`
}

// Search performs a full-text search on message bodies, newest first. A zero
// conv searches every conversation.
func (db *DB) Search(ctx context.Context, query string, conv chat.ConversationID, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 50
	}

	q := `
		SELECT c.backend, c.native, m.payload,
		       snippet(messages_fts, '<<', '>>', '...', -1, 16)
		FROM messages_fts f
		JOIN messages m ON m.id = f.docid
		JOIN conversations c ON c.id = m.conversation
		WHERE messages_fts MATCH ?`

	args := []any{query}
	if !conv.IsZero() {
		q += " AND m.conversation = ?"
		args = append(args, conv.String())
	}
	q += " ORDER BY m.timestamp DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hits []Hit
	for rows.Next() {
		var (
			h       Hit
			backend string
			payload string
		)
		if err := rows.Scan(&backend, &h.Conversation.Native, &payload, &h.Snippet); err != nil {
			return nil, err
		}
		h.Conversation.Backend = chat.BackendID(backend)
		if err := json.Unmarshal([]byte(payload), &h.Message); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
