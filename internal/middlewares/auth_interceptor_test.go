package middlewares

import (
	"context"
	"testing"

	"github.com/dastudio/da-assistant/internal/domain"
	"github.com/dastudio/da-assistant/internal/guards"
	"github.com/dastudio/da-assistant/pkg/assistantpb"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakeValidator struct {
	user domain.User
	err  error
}

func (f *fakeValidator) ValidateToken(string) (domain.User, error) {
	return f.user, f.err
}

func newInterceptor(v TokenValidator) grpc.UnaryServerInterceptor {
	return AuthUnaryInterceptor(v, guards.NewAuditLogger(zerolog.Nop()))
}

func invoke(t *testing.T, interceptor grpc.UnaryServerInterceptor, ctx context.Context, method string) (domain.User, bool, error) {
	t.Helper()

	var user domain.User
	var authed bool

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method},
		func(ctx context.Context, _ any) (any, error) {
			user, authed = UserFromContext(ctx)
			return nil, nil
		})

	return user, authed, err
}

func TestAuthInterceptor_RejectsMissingToken(t *testing.T) {
	interceptor := newInterceptor(&fakeValidator{user: domain.User{ID: "u1"}})

	_, _, err := invoke(t, interceptor, context.Background(), assistantpb.Assistant_ProcessRequest_FullMethodName)

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_RejectsInvalidToken(t *testing.T) {
	interceptor := newInterceptor(&fakeValidator{err: domain.ErrAuthentication})

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer bad-token"))

	_, _, err := invoke(t, interceptor, ctx, assistantpb.Assistant_ProcessRequest_FullMethodName)

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAuthInterceptor_InjectsUser(t *testing.T) {
	interceptor := newInterceptor(&fakeValidator{
		user: domain.User{ID: "u1", Roles: []string{domain.RoleAdmin}},
	})

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer good-token"))

	user, authed, err := invoke(t, interceptor, ctx, assistantpb.Assistant_ProcessRequest_FullMethodName)

	require.NoError(t, err)
	assert.True(t, authed)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthInterceptor_SkipsUnprotectedMethods(t *testing.T) {
	interceptor := newInterceptor(&fakeValidator{err: domain.ErrAuthentication})

	_, authed, err := invoke(t, interceptor, context.Background(), assistantpb.Auth_Authenticate_FullMethodName)

	require.NoError(t, err)
	assert.False(t, authed, "unprotected methods run without an injected user")
}

func TestBearerToken_RejectsMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Basic abc", "token-without-scheme"} {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", header))

		if _, ok := bearerToken(ctx); ok {
			t.Errorf("bearerToken accepted malformed header %q", header)
		}
	}
}
