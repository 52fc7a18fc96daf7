package server

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SPXcz/meesign-server/internal/group"
	"github.com/SPXcz/meesign-server/internal/identity"
	"github.com/SPXcz/meesign-server/internal/task"
)

func TestToGRPCError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantNil  bool
		wantCode codes.Code
	}{
		{
			name:    "nil error",
			err:     nil,
			wantNil: true,
		},
		{
			name:     "unauthorized",
			err:      identity.ErrUnauthorized,
			wantCode: codes.Unauthenticated,
		},
		{
			name:     "not a participant",
			err:      task.ErrNotAParticipant,
			wantCode: codes.PermissionDenied,
		},
		{
			name:     "task not found",
			err:      task.ErrTaskNotFound,
			wantCode: codes.NotFound,
		},
		{
			name:     "group not found",
			err:      group.ErrGroupNotFound,
			wantCode: codes.NotFound,
		},
		{
			name:     "unknown device",
			err:      identity.ErrUnknownDevice,
			wantCode: codes.NotFound,
		},
		{
			name:     "invalid name",
			err:      identity.ErrInvalidName,
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "invalid group spec",
			err:      group.ErrInvalidGroupSpec,
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "invalid submission",
			err:      task.ErrInvalidSubmission,
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "identity conflict",
			err:      identity.ErrIdentityConflict,
			wantCode: codes.AlreadyExists,
		},
		{
			name:     "already decided",
			err:      task.ErrAlreadyDecided,
			wantCode: codes.FailedPrecondition,
		},
		{
			name:     "duplicate submission",
			err:      task.ErrDuplicateSubmission,
			wantCode: codes.FailedPrecondition,
		},
		{
			name:     "stale submission",
			err:      task.ErrStaleSubmission,
			wantCode: codes.FailedPrecondition,
		},
		{
			name:     "terminal state",
			err:      task.ErrTerminalState,
			wantCode: codes.FailedPrecondition,
		},
		{
			name:     "wrapped sentinel keeps its code",
			err:      fmt.Errorf("task %x: %w", []byte{0xab}, task.ErrTaskNotFound),
			wantCode: codes.NotFound,
		},
		{
			name:     "deeply wrapped sentinel",
			err:      fmt.Errorf("decide: %w", fmt.Errorf("device %x: %w", []byte{0x01}, task.ErrAlreadyDecided)),
			wantCode: codes.FailedPrecondition,
		},
		{
			name:     "unknown error",
			err:      errors.New("disk on fire"),
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toGRPCError(tt.err)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("toGRPCError() = %v, want nil", got)
				}
				return
			}
			st, ok := status.FromError(got)
			if !ok {
				t.Fatalf("toGRPCError() = %v, not a status error", got)
			}
			if st.Code() != tt.wantCode {
				t.Errorf("code = %v, want %v", st.Code(), tt.wantCode)
			}
		})
	}
}
