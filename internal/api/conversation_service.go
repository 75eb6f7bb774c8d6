package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ConversationService implements the ConversationService gRPC service.
type ConversationService struct {
	chattersv1.UnimplementedConversationServiceServer

	profile string
	engine  Engine
	store   *store.Store
}

// NewConversationService creates the conversation service backed by the store.
func NewConversationService(profile string, eng Engine, st *store.Store) *ConversationService {
	return &ConversationService{profile: profile, engine: eng, store: st}
}

func (s *ConversationService) ListConversations(_ context.Context, req *chattersv1.ListConversationsRequest) (*chattersv1.ListConversationsResponse, error) {
	limit, offset := pageOf(req.Pagination)
	if limit < 0 || offset < 0 {
		return nil, invalid("negative limit or offset")
	}
	all := s.store.List(chat.BackendID(req.Backend))
	lo := min(offset, len(all))
	hi := len(all)
	if limit > 0 {
		hi = min(lo+limit, len(all))
	}
	resp := &chattersv1.ListConversationsResponse{
		PageInfo: &chattersv1.PageInfo{HasMore: hi < len(all)},
	}
	for _, c := range all[lo:hi] {
		resp.Conversations = append(resp.Conversations, ConversationToProto(c))
	}
	return resp, nil
}

func (s *ConversationService) GetConversation(_ context.Context, req *chattersv1.GetConversationRequest) (*chattersv1.GetConversationResponse, error) {
	id, err := conversationID(req.ConversationId)
	if err != nil {
		return nil, err
	}
	conv, ok := s.store.Summary(id)
	if !ok {
		return nil, grpcstatus.Errorf(codes.NotFound, "conversation %s not found", id)
	}
	return &chattersv1.GetConversationResponse{Conversation: ConversationToProto(conv)}, nil
}

func (s *ConversationService) MarkRead(ctx context.Context, req *chattersv1.MarkReadRequest) (*chattersv1.MarkReadResponse, error) {
	id, err := conversationID(req.ConversationId)
	if err != nil {
		return nil, err
	}
	if err := s.engine.MarkRead(ctx, id); err != nil {
		return nil, statusError("mark read", err)
	}
	return &chattersv1.MarkReadResponse{}, nil
}

// WatchChanges streams store change notifications until the client goes away.
// Slow clients see bursts collapsed into coalesced notifications.
func (s *ConversationService) WatchChanges(req *chattersv1.WatchChangesRequest, stream grpc.ServerStreamingServer[chattersv1.ChangeEvent]) error {
	sub := s.store.Subscribe(int(req.Buffer), chat.BackendID(req.Backend))
	defer sub.Close()

	ctx := stream.Context()
	for {
		batch, err := sub.Next(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, store.ErrClosed) {
				return nil
			}
			return statusError("watch", err)
		}
		now := s.store.Clock().Now()
		for _, c := range batch {
			evt := changeToProto(c)
			evt.EventId = uuid.New().String()
			evt.Profile = s.profile
			evt.OccurredAtUnixMs = now.UnixMilli()
			if err := stream.Send(evt); err != nil {
				return err
			}
		}
	}
}
