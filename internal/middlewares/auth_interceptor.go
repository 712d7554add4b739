package middlewares

import (
	"context"
	"strings"

	"github.com/dastudio/da-assistant/internal/domain"
	"github.com/dastudio/da-assistant/internal/guards"
	"github.com/dastudio/da-assistant/pkg/assistantpb"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type userContextKey struct{}

// UserFromContext returns the authenticated user injected by the auth
// interceptor.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(domain.User)
	return user, ok
}

// ContextWithUser is exposed for tests that call controllers directly.
func ContextWithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// TokenValidator is the slice of the auth service the interceptor needs.
type TokenValidator interface {
	ValidateToken(token string) (domain.User, error)
}

// AuthUnaryInterceptor authenticates the methods that execute real actions.
// Chat streams stay open to anonymous users (recognition has no side
// effects) and the Auth service must obviously be reachable without a token.
func AuthUnaryInterceptor(validator TokenValidator, audit *guards.AuditLogger) grpc.UnaryServerInterceptor {
	protected := map[string]bool{
		assistantpb.Assistant_ProcessRequest_FullMethodName: true,
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !protected[info.FullMethod] {
			return handler(ctx, req)
		}

		token, ok := bearerToken(ctx)
		if !ok {
			audit.Record("anonymous", info.FullMethod, guards.OutcomeDenied)
			return nil, status.Error(codes.Unauthenticated, "missing bearer token")
		}

		user, err := validator.ValidateToken(token)
		if err != nil {
			audit.Record("anonymous", info.FullMethod, guards.OutcomeDenied)
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		return handler(ContextWithUser(ctx, user), req)
	}
}

func bearerToken(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return "", false
	}

	token, found := strings.CutPrefix(values[0], "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}
