package api

import (
	"context"
	"time"

	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/archive"
	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/engine"
	"github.com/matheus3301/chatters/internal/store"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// Engine is the part of the sync engine the services drive.
type Engine interface {
	Send(ctx context.Context, conv chat.ConversationID, body chat.Body) (chat.Message, error)
	React(ctx context.Context, conv chat.ConversationID, msgID, emoji string) (chat.Message, error)
	Edit(ctx context.Context, conv chat.ConversationID, msgID, text string) (chat.Message, error)
	Delete(ctx context.Context, conv chat.ConversationID, msgID string) error
	Forward(ctx context.Context, from chat.ConversationID, msgID string, to chat.ConversationID) (chat.Message, error)
	MarkRead(ctx context.Context, conv chat.ConversationID) error
	Reconnect(id chat.BackendID) error
	Logout(ctx context.Context, id chat.BackendID) error
	Backends() []engine.BackendStatus
	Linker(id chat.BackendID) (backend.Linker, error)
}

// Searcher runs full-text queries over archived messages.
type Searcher interface {
	Search(ctx context.Context, query string, conv chat.ConversationID, limit int) ([]archive.Hit, error)
}

// Service bundles the daemon's gRPC services.
type Service struct {
	Backend      *BackendService
	Conversation *ConversationService
	Message      *MessageService
}

// NewService creates the services. search may be nil when no archive is configured.
func NewService(profile string, eng Engine, st *store.Store, search Searcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("api")
	return &Service{
		Backend:      NewBackendService(profile, eng, logger),
		Conversation: NewConversationService(profile, eng, st),
		Message:      NewMessageService(eng, st, search, logger),
	}
}

// Register adds every service to r.
func (s *Service) Register(r grpc.ServiceRegistrar) {
	chattersv1.RegisterBackendServiceServer(r, s.Backend)
	chattersv1.RegisterConversationServiceServer(r, s.Conversation)
	chattersv1.RegisterMessageServiceServer(r, s.Message)
}

const defaultPageSize = 50

// conversationID parses a request's "backend:native" id.
func conversationID(s string) (chat.ConversationID, error) {
	if s == "" {
		return chat.ConversationID{}, invalid("conversation id required")
	}
	id, err := chat.ParseConversationID(s)
	if err != nil {
		return chat.ConversationID{}, invalid(err.Error())
	}
	return id, nil
}

func pageOf(p *chattersv1.Pagination) (limit, offset int) {
	return int(p.GetLimit()), int(p.GetOffset())
}

func sinceStart(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}
