package api

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const bearerPrefix = "Bearer "

type tokenContextKey struct{}

// authInterceptor requires a bearer token in the authorization metadata on
// every call and stores it on the context. Token presence is all most
// entities need; config mutations additionally authorize against the
// owning team (see configServer.authorize).
func authInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok || len(md.Get("authorization")) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		header := md.Get("authorization")[0]
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || token == "" {
			return nil, status.Error(codes.InvalidArgument, "authorization header malformed")
		}

		return handler(context.WithValue(ctx, tokenContextKey{}, token), req)
	}
}

// tokenFromContext returns the bearer token the auth interceptor extracted.
func tokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok
}
