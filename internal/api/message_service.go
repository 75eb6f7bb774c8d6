package api

import (
	"context"
	"errors"

	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/store"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// MessageService implements the MessageService gRPC service.
type MessageService struct {
	chattersv1.UnimplementedMessageServiceServer

	engine Engine
	store  *store.Store
	search Searcher
	logger *zap.Logger
}

// NewMessageService creates the message service. search may be nil.
func NewMessageService(eng Engine, st *store.Store, search Searcher, logger *zap.Logger) *MessageService {
	return &MessageService{engine: eng, store: st, search: search, logger: logger}
}

func (s *MessageService) ListMessages(_ context.Context, req *chattersv1.ListMessagesRequest) (*chattersv1.ListMessagesResponse, error) {
	id, err := conversationID(req.ConversationId)
	if err != nil {
		return nil, err
	}
	limit := defaultPageSize
	if req.Limit > 0 {
		limit = int(req.Limit)
	}
	msgs, err := s.store.Messages(id, store.Range{Before: req.Before, After: req.After, Limit: limit})
	if err != nil {
		return nil, statusError("list messages", err)
	}
	resp := &chattersv1.ListMessagesResponse{}
	for _, m := range msgs {
		resp.Messages = append(resp.Messages, MessageToProto(id, m))
	}
	return resp, nil
}

func (s *MessageService) SearchMessages(ctx context.Context, req *chattersv1.SearchMessagesRequest) (*chattersv1.SearchMessagesResponse, error) {
	if s.search == nil {
		return nil, grpcstatus.Errorf(codes.Unimplemented, "search requires the archive")
	}
	if req.Query == "" {
		return nil, invalid("query required")
	}
	var conv chat.ConversationID
	if req.ConversationId != "" {
		id, err := conversationID(req.ConversationId)
		if err != nil {
			return nil, err
		}
		conv = id
	}
	limit, _ := pageOf(req.Pagination)
	if limit <= 0 {
		limit = defaultPageSize
	}
	hits, err := s.search.Search(ctx, req.Query, conv, limit)
	if err != nil {
		return nil, statusError("search messages", err)
	}
	resp := &chattersv1.SearchMessagesResponse{
		PageInfo: &chattersv1.PageInfo{HasMore: len(hits) == limit},
	}
	for _, h := range hits {
		resp.Results = append(resp.Results, &chattersv1.SearchResult{
			Message: MessageToProto(h.Conversation, h.Message),
			Snippet: h.Snippet,
		})
	}
	return resp, nil
}

// SendMessage returns as soon as the backend accepted the message. Its
// delivery state moves on through change notifications.
func (s *MessageService) SendMessage(ctx context.Context, req *chattersv1.SendMessageRequest) (*chattersv1.SendMessageResponse, error) {
	id, err := conversationID(req.ConversationId)
	if err != nil {
		return nil, err
	}
	body := chat.Body{Text: req.Text, Attachments: AttachmentsFromProto(req.Attachments)}
	if req.ReplyTo != "" {
		body.Quote = s.quote(id, req.ReplyTo)
	}
	msg, err := s.engine.Send(ctx, id, body)
	if err != nil {
		var sendErr *chat.SendError
		if errors.As(err, &sendErr) {
			s.logger.Warn("send rejected", zap.Stringer("conversation", id), zap.String("reason", sendErr.Reason))
		}
		return nil, statusError("send message", err)
	}
	return &chattersv1.SendMessageResponse{Message: MessageToProto(id, msg)}, nil
}

// quote fills a reply's quote from the stored message when there is one.
func (s *MessageService) quote(conv chat.ConversationID, msgID string) *chat.Quote {
	q := &chat.Quote{MessageID: msgID}
	if m, ok := s.store.Message(conv, msgID); ok {
		q.MessageID = m.ID
		q.Sender = m.Sender
		q.Text = m.Body.Preview()
	}
	return q
}

func (s *MessageService) React(ctx context.Context, req *chattersv1.ReactRequest) (*chattersv1.ReactResponse, error) {
	id, err := conversationID(req.ConversationId)
	if err != nil {
		return nil, err
	}
	if req.MessageId == "" {
		return nil, invalid("message id required")
	}
	msg, err := s.engine.React(ctx, id, req.MessageId, req.Emoji)
	if err != nil {
		return nil, statusError("react", err)
	}
	return &chattersv1.ReactResponse{Message: MessageToProto(id, msg)}, nil
}

func (s *MessageService) EditMessage(ctx context.Context, req *chattersv1.EditMessageRequest) (*chattersv1.EditMessageResponse, error) {
	id, err := conversationID(req.ConversationId)
	if err != nil {
		return nil, err
	}
	if req.MessageId == "" {
		return nil, invalid("message id required")
	}
	msg, err := s.engine.Edit(ctx, id, req.MessageId, req.Text)
	if err != nil {
		return nil, statusError("edit message", err)
	}
	return &chattersv1.EditMessageResponse{Message: MessageToProto(id, msg)}, nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, req *chattersv1.DeleteMessageRequest) (*chattersv1.DeleteMessageResponse, error) {
	id, err := conversationID(req.ConversationId)
	if err != nil {
		return nil, err
	}
	if req.MessageId == "" {
		return nil, invalid("message id required")
	}
	if err := s.engine.Delete(ctx, id, req.MessageId); err != nil {
		return nil, statusError("delete message", err)
	}
	return &chattersv1.DeleteMessageResponse{}, nil
}

// ForwardMessage copies a message into another conversation, possibly on
// another backend.
func (s *MessageService) ForwardMessage(ctx context.Context, req *chattersv1.ForwardMessageRequest) (*chattersv1.ForwardMessageResponse, error) {
	from, err := conversationID(req.ConversationId)
	if err != nil {
		return nil, err
	}
	to, err := conversationID(req.ToConversationId)
	if err != nil {
		return nil, err
	}
	if req.MessageId == "" {
		return nil, invalid("message id required")
	}
	msg, err := s.engine.Forward(ctx, from, req.MessageId, to)
	if err != nil {
		return nil, statusError("forward message", err)
	}
	return &chattersv1.ForwardMessageResponse{Message: MessageToProto(to, msg)}, nil
}
