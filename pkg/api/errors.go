package api

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/fabriq-cloud/fabriq/pkg/types"
)

// statusFromError translates service errors into gRPC statuses: conflicts to
// AlreadyExists, validation failures to InvalidArgument, missing ids to
// NotFound, anything unexpected to Internal. Errors that already carry a
// status pass through unchanged.
func statusFromError(err error) error {
	if err == nil {
		return nil
	}

	if s, ok := status.FromError(err); ok {
		return s.Err()
	}

	var conflictErr *types.ConflictError
	var validationErr *types.ValidationError
	switch {
	case errors.As(err, &conflictErr):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.As(err, &validationErr):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, types.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
