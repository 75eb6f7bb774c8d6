package daemon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"time"

	chattersv1 "github.com/matheus3301/chatters/gen/chatters/v1"
	"github.com/matheus3301/chatters/internal/api"
	"github.com/matheus3301/chatters/internal/profile"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpcstatus "google.golang.org/grpc/status"
)

// Server serves the Chatters API on the profile's unix socket.
type Server struct {
	grpc   *grpc.Server
	ln     net.Listener
	socket string
	logger *zap.Logger
}

// NewServer binds the API to the profile socket. The socket is only
// reachable by the owning user.
func NewServer(p Params, logger *zap.Logger, svc *api.Service) (*Server, error) {
	socket := p.SocketPath
	if socket == "" {
		socket = profile.SocketPath(p.Profile)
	}
	ln, err := listenSocket(socket)
	if err != nil {
		return nil, err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logUnary(logger)),
		grpc.ChainStreamInterceptor(logStream(logger)),
	)
	chattersv1.RegisterBackendServiceServer(srv, svc.Backend)
	chattersv1.RegisterConversationServiceServer(srv, svc.Conversation)
	chattersv1.RegisterMessageServiceServer(srv, svc.Message)
	return &Server{grpc: srv, ln: ln, socket: socket, logger: logger}, nil
}

// listenSocket replaces whatever is at path with a fresh 0600 socket. The
// caller holds the profile lock, so an existing file is left over from a
// daemon that died.
func listenSocket(path string) (net.Listener, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove stale socket: %w", err)
	}
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listen unix socket: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("chmod socket: %w", err)
	}
	return ln, nil
}

// Start serves requests until Stop.
func (s *Server) Start() error {
	s.logger.Info("api listening", zap.String("socket", s.socket))
	return s.grpc.Serve(s.ln)
}

// Stop performs a graceful shutdown and removes the socket file. Open streams
// are cut off when ctx ends.
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("api stopping")
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.grpc.Stop()
		<-done
	}
	_ = os.Remove(s.socket)
}

func logUnary(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			logger.Info("rpc failed", append(fields, zap.Stringer("code", grpcstatus.Code(err)), zap.Error(err))...)
		} else {
			logger.Debug("rpc", fields...)
		}
		return resp, err
	}
}

func logStream(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		logger.Debug("stream opened", zap.String("method", info.FullMethod))
		start := time.Now()
		err := handler(srv, ss)
		logger.Debug("stream closed",
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
			zap.Stringer("code", grpcstatus.Code(err)),
		)
		return err
	}
}
