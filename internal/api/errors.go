package api

import (
	"context"
	"errors"

	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/engine"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// statusError converts a domain error into a gRPC status.
func statusError(op string, err error) error {
	return grpcstatus.Errorf(codeOf(err), "%s: %v", op, err)
}

func invalid(msg string) error {
	return grpcstatus.Error(codes.InvalidArgument, msg)
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, chat.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, chat.ErrBackendUnavailable), errors.Is(err, engine.ErrNotRunning):
		return codes.Unavailable
	case errors.Is(err, engine.ErrEmptyBody):
		return codes.InvalidArgument
	case errors.Is(err, engine.ErrUnsupported):
		return codes.Unimplemented
	case errors.Is(err, engine.ErrNotOwnMessage):
		return codes.PermissionDenied
	case errors.Is(err, engine.ErrNotSent):
		return codes.FailedPrecondition
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}
	return codes.Internal
}
