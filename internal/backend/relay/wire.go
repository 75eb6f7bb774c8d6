package relay

import "encoding/json"

// Envelope is the wire format of every realtime event.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// command is a client-to-server realtime command.
type command struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	RequestID string `json:"requestId,omitempty"`
}

type authenticated struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Message is a stored message as returned by the REST API and carried by
// message.new events.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId,omitempty"`
	Content        string `json:"content"`
	Type           string `json:"type"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName,omitempty"`
	ParentID       string `json:"parentId,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

type messageEdited struct {
	ConversationID string `json:"conversationId"`
	ID             string `json:"id"`
	Content        string `json:"content"`
	UpdatedAt      string `json:"updatedAt"`
}

type messageDeleted struct {
	ConversationID string `json:"conversationId"`
	ID             string `json:"id"`
	DeletedAt      string `json:"deletedAt"`
}

type messageRead struct {
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId"`
	MessageID      string `json:"messageId"`
}

type typingIndicator struct {
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId"`
	IsTyping       bool   `json:"isTyping"`
}

type member struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
}

type conversation struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	LastMessage *Message `json:"lastMessage,omitempty"`
	Members     []member `json:"members,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// result is the generic REST response.
type result struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *apiError       `json:"error,omitempty"`
}

type sendRequest struct {
	Content  string `json:"content"`
	Type     string `json:"type"`
	ParentID string `json:"parentId,omitempty"`
	ClientID string `json:"clientId,omitempty"`
}

type editRequest struct {
	Content string `json:"content"`
}

type sendResponse struct {
	ConversationID string  `json:"conversationId"`
	Message        Message `json:"message"`
}
