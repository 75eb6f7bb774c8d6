package client

import (
	"context"
	"fmt"

	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/api"
	"github.com/matheus3301/chatters/internal/chat"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps the gRPC connection to the daemon.
type Client struct {
	conn         *grpc.ClientConn
	Backend      chattersv1.BackendServiceClient
	Conversation chattersv1.ConversationServiceClient
	Message      chattersv1.MessageServiceClient
}

// New dials the daemon's Unix domain socket and returns typed service clients.
func New(socketPath string, opts ...grpc.DialOption) (*Client, error) {
	return Dial("unix://"+socketPath, opts...)
}

// Dial connects to target, which may use any registered resolver scheme.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}
	return &Client{
		conn:         conn,
		Backend:      chattersv1.NewBackendServiceClient(conn),
		Conversation: chattersv1.NewConversationServiceClient(conn),
		Message:      chattersv1.NewMessageServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Page is one slice of the conversation list.
type Page struct {
	Conversations []chat.Conversation `json:"conversations"`
	HasMore       bool                `json:"has_more"`
}

func (c *Client) ListConversations(ctx context.Context, backend chat.BackendID, limit, offset int) (Page, error) {
	resp, err := c.Conversation.ListConversations(ctx, &chattersv1.ListConversationsRequest{
		Backend:    string(backend),
		Pagination: &chattersv1.Pagination{Limit: int32(limit), Offset: int32(offset)},
	})
	if err != nil {
		return Page{}, err
	}
	page := Page{HasMore: resp.GetPageInfo().GetHasMore()}
	for _, pb := range resp.Conversations {
		page.Conversations = append(page.Conversations, api.ConversationFromProto(pb))
	}
	return page, nil
}

func (c *Client) GetConversation(ctx context.Context, id chat.ConversationID) (chat.Conversation, error) {
	resp, err := c.Conversation.GetConversation(ctx, &chattersv1.GetConversationRequest{ConversationId: id.String()})
	if err != nil {
		return chat.Conversation{}, err
	}
	return api.ConversationFromProto(resp.GetConversation()), nil
}

// Window selects messages around an anchor. Before and After are exclusive
// message ids.
type Window struct {
	Before string
	After  string
	Limit  int
}

func (c *Client) ListMessages(ctx context.Context, id chat.ConversationID, w Window) ([]chat.Message, error) {
	resp, err := c.Message.ListMessages(ctx, &chattersv1.ListMessagesRequest{
		ConversationId: id.String(),
		Before:         w.Before,
		After:          w.After,
		Limit:          int32(w.Limit),
	})
	if err != nil {
		return nil, err
	}
	return messages(resp.Messages), nil
}

// Hit is one search result.
type Hit struct {
	Conversation chat.ConversationID `json:"conversation"`
	Message      chat.Message        `json:"message"`
	Snippet      string              `json:"snippet"`
}

// SearchMessages searches the archive. A zero in searches every conversation.
func (c *Client) SearchMessages(ctx context.Context, query string, in chat.ConversationID, limit int) ([]Hit, error) {
	req := &chattersv1.SearchMessagesRequest{Query: query, Pagination: &chattersv1.Pagination{Limit: int32(limit)}}
	if !in.IsZero() {
		req.ConversationId = in.String()
	}
	resp, err := c.Message.SearchMessages(ctx, req)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(resp.Results))
	for _, r := range resp.Results {
		conv, msg := api.MessageFromProto(r.GetMessage())
		hits = append(hits, Hit{Conversation: conv, Message: msg, Snippet: r.GetSnippet()})
	}
	return hits, nil
}

// SendMessage sends text and inline attachments, optionally as a reply.
func (c *Client) SendMessage(ctx context.Context, conv chat.ConversationID, body chat.Body) (chat.Message, error) {
	req := &chattersv1.SendMessageRequest{
		ConversationId: conv.String(),
		Text:           body.Text,
		Attachments:    api.AttachmentsToProto(body.Attachments),
	}
	if body.Quote != nil {
		req.ReplyTo = body.Quote.MessageID
	}
	resp, err := c.Message.SendMessage(ctx, req)
	if err != nil {
		return chat.Message{}, err
	}
	return message(resp.GetMessage()), nil
}

// React sets this account's reaction. An empty emoji removes it.
func (c *Client) React(ctx context.Context, conv chat.ConversationID, msgID, emoji string) (chat.Message, error) {
	resp, err := c.Message.React(ctx, &chattersv1.ReactRequest{ConversationId: conv.String(), MessageId: msgID, Emoji: emoji})
	if err != nil {
		return chat.Message{}, err
	}
	return message(resp.GetMessage()), nil
}

func (c *Client) EditMessage(ctx context.Context, conv chat.ConversationID, msgID, text string) (chat.Message, error) {
	resp, err := c.Message.EditMessage(ctx, &chattersv1.EditMessageRequest{ConversationId: conv.String(), MessageId: msgID, Text: text})
	if err != nil {
		return chat.Message{}, err
	}
	return message(resp.GetMessage()), nil
}

func (c *Client) DeleteMessage(ctx context.Context, conv chat.ConversationID, msgID string) error {
	_, err := c.Message.DeleteMessage(ctx, &chattersv1.DeleteMessageRequest{ConversationId: conv.String(), MessageId: msgID})
	return err
}

func (c *Client) ForwardMessage(ctx context.Context, from chat.ConversationID, msgID string, to chat.ConversationID) (chat.Message, error) {
	resp, err := c.Message.ForwardMessage(ctx, &chattersv1.ForwardMessageRequest{
		ConversationId:   from.String(),
		MessageId:        msgID,
		ToConversationId: to.String(),
	})
	if err != nil {
		return chat.Message{}, err
	}
	return message(resp.GetMessage()), nil
}

func (c *Client) MarkRead(ctx context.Context, conv chat.ConversationID) error {
	_, err := c.Conversation.MarkRead(ctx, &chattersv1.MarkReadRequest{ConversationId: conv.String()})
	return err
}

func (c *Client) Reconnect(ctx context.Context, id chat.BackendID) error {
	_, err := c.Backend.Reconnect(ctx, &chattersv1.ReconnectRequest{Backend: string(id)})
	return err
}

func (c *Client) Logout(ctx context.Context, id chat.BackendID) error {
	_, err := c.Backend.Logout(ctx, &chattersv1.LogoutRequest{Backend: string(id)})
	return err
}

func (c *Client) Status(ctx context.Context) (*chattersv1.GetStatusResponse, error) {
	return c.Backend.GetStatus(ctx, &chattersv1.GetStatusRequest{})
}

// WatchChanges opens a change stream. Cancel ctx to end it.
func (c *Client) WatchChanges(ctx context.Context, backend chat.BackendID, buffer int) (grpc.ServerStreamingClient[chattersv1.ChangeEvent], error) {
	return c.Conversation.WatchChanges(ctx, &chattersv1.WatchChangesRequest{Backend: string(backend), Buffer: int32(buffer)})
}

// Link starts device linking on a backend.
func (c *Client) Link(ctx context.Context, id chat.BackendID) (grpc.ServerStreamingClient[chattersv1.LinkEvent], error) {
	return c.Backend.Link(ctx, &chattersv1.LinkRequest{Backend: string(id)})
}

func message(pb *chattersv1.Message) chat.Message {
	_, m := api.MessageFromProto(pb)
	return m
}

func messages(pbs []*chattersv1.Message) []chat.Message {
	out := make([]chat.Message, 0, len(pbs))
	for _, pb := range pbs {
		out = append(out, message(pb))
	}
	return out
}
