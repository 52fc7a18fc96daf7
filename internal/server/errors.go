package server

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
	"github.com/SPXcz/meesign-server/internal/task"
)

// --- Error mapping ---

// toGRPCError translates domain sentinels to gRPC status codes at the
// transport boundary. Handlers return plain wrapped errors and never touch
// status codes themselves.
func toGRPCError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, task.ErrNotAParticipant):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, group.ErrGroupNotFound),
		errors.Is(err, identity.ErrUnknownDevice):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, identity.ErrInvalidName),
		errors.Is(err, group.ErrInvalidGroupSpec),
		errors.Is(err, task.ErrInvalidSubmission):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, identity.ErrIdentityConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, task.ErrAlreadyDecided),
		errors.Is(err, task.ErrDuplicateSubmission),
		errors.Is(err, task.ErrStaleSubmission),
		errors.Is(err, task.ErrTerminalState):
		return status.Error(codes.FailedPrecondition, err.Error())
	}

	return status.Error(codes.Internal, err.Error())
}
