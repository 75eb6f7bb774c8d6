package api

import (
	"context"
	"time"

	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/chat"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// BackendService implements the BackendService gRPC service.
type BackendService struct {
	chattersv1.UnimplementedBackendServiceServer

	profile   string
	startedAt time.Time
	engine    Engine
	logger    *zap.Logger
}

// NewBackendService creates the backend status and control service.
func NewBackendService(profile string, eng Engine, logger *zap.Logger) *BackendService {
	return &BackendService{profile: profile, startedAt: time.Now(), engine: eng, logger: logger}
}

func (s *BackendService) GetStatus(_ context.Context, _ *chattersv1.GetStatusRequest) (*chattersv1.GetStatusResponse, error) {
	resp := &chattersv1.GetStatusResponse{
		Profile:  s.profile,
		UptimeMs: sinceStart(s.startedAt),
	}
	for _, b := range s.engine.Backends() {
		resp.Backends = append(resp.Backends, &chattersv1.BackendInfo{
			Id:           string(b.ID),
			Kind:         b.Kind,
			State:        StateToProto(b.State),
			SinceUnixMs:  unixMilli(b.Since),
			PendingSends: int32(b.PendingSends),
		})
	}
	return resp, nil
}

func (s *BackendService) Reconnect(_ context.Context, req *chattersv1.ReconnectRequest) (*chattersv1.ReconnectResponse, error) {
	if req.Backend == "" {
		return nil, invalid("backend required")
	}
	if err := s.engine.Reconnect(chat.BackendID(req.Backend)); err != nil {
		return nil, statusError("reconnect", err)
	}
	return &chattersv1.ReconnectResponse{}, nil
}

func (s *BackendService) Logout(ctx context.Context, req *chattersv1.LogoutRequest) (*chattersv1.LogoutResponse, error) {
	if req.Backend == "" {
		return nil, invalid("backend required")
	}
	if err := s.engine.Logout(ctx, chat.BackendID(req.Backend)); err != nil {
		return nil, statusError("logout", err)
	}
	s.logger.Info("backend logged out", zap.String("backend", req.Backend))
	return &chattersv1.LogoutResponse{}, nil
}

// Link pairs a backend as a device, streaming codes until a terminal event.
func (s *BackendService) Link(req *chattersv1.LinkRequest, stream grpc.ServerStreamingServer[chattersv1.LinkEvent]) error {
	l, err := s.engine.Linker(chat.BackendID(req.Backend))
	if err != nil {
		return statusError("link", err)
	}
	if l.Linked() {
		return stream.Send(&chattersv1.LinkEvent{
			Type:    chattersv1.LinkEventType_LINK_EVENT_TYPE_AUTHENTICATED,
			Message: "already linked",
		})
	}

	events, err := l.Link(stream.Context())
	if err != nil {
		return statusError("link", err)
	}
	for evt := range events {
		if err := stream.Send(linkEventToProto(evt)); err != nil {
			return err
		}
	}
	return nil
}
