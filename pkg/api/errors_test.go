package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// TestStatusFromError tests mapping of domain errors onto grpc status codes
func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode codes.Code
	}{
		{
			name:         "nil error",
			err:          nil,
			expectedCode: codes.OK,
		},
		{
			name:         "conflict",
			err:          types.NewConflictError("host %s already exists", "h1"),
			expectedCode: codes.AlreadyExists,
		},
		{
			name:         "validation",
			err:          types.NewValidationError("host id is required"),
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "not found",
			err:          fmt.Errorf("deleting host h1: %w", types.ErrNotFound),
			expectedCode: codes.NotFound,
		},
		{
			name:         "wrapped validation",
			err:          fmt.Errorf("upserting host: %w", types.NewValidationError("host id is required")),
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "status passthrough",
			err:          status.Error(codes.PermissionDenied, "not a member of team acme:platform"),
			expectedCode: codes.PermissionDenied,
		},
		{
			name:         "unknown error",
			err:          errors.New("disk on fire"),
			expectedCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := statusFromError(tt.err)

			assert.Equal(t, tt.expectedCode, status.Code(err))
		})
	}
}
