package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TestAuthInterceptor tests bearer token extraction from request metadata
func TestAuthInterceptor(t *testing.T) {
	tests := []struct {
		name         string
		md           metadata.MD
		expectedCode codes.Code
	}{
		{
			name:         "no metadata",
			md:           nil,
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "no authorization header",
			md:           metadata.Pairs("x-request-id", "abc"),
			expectedCode: codes.Unauthenticated,
		},
		{
			name:         "missing bearer prefix",
			md:           metadata.Pairs("authorization", "ghp_sometoken"),
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "empty token",
			md:           metadata.Pairs("authorization", "Bearer "),
			expectedCode: codes.InvalidArgument,
		},
		{
			name:         "valid bearer token",
			md:           metadata.Pairs("authorization", "Bearer ghp_sometoken"),
			expectedCode: codes.OK,
		},
	}

	interceptor := authInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/fabriq.Host/List"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.NewIncomingContext(ctx, tt.md)
			}

			var handlerCtx context.Context
			handler := func(ctx context.Context, req any) (any, error) {
				handlerCtx = ctx
				return "ok", nil
			}

			_, err := interceptor(ctx, nil, info, handler)

			assert.Equal(t, tt.expectedCode, status.Code(err))

			if tt.expectedCode == codes.OK {
				token, ok := tokenFromContext(handlerCtx)
				require.True(t, ok)
				assert.Equal(t, "ghp_sometoken", token)
			}
		})
	}
}

// TestTokenFromContextMissing tests the zero value for contexts without a token
func TestTokenFromContextMissing(t *testing.T) {
	token, ok := tokenFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, token)
}
