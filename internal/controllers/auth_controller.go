package controllers

import (
	"context"

	"github.com/dastudio/da-assistant/internal/auth"
	"github.com/dastudio/da-assistant/pkg/assistantpb"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type AuthControllerDependencies struct {
	Tokens *auth.TokenService
}

// AuthController implements the Auth gRPC service.
type AuthController struct {
	tokens *auth.TokenService
}

func NewAuthController(deps AuthControllerDependencies) *AuthController {
	return &AuthController{tokens: deps.Tokens}
}

func (c *AuthController) Authenticate(_ context.Context, req *assistantpb.AuthenticateRequest) (*assistantpb.TokenResponse, error) {
	pair, err := c.tokens.Authenticate(req.Username, req.Password)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid username or password")
	}

	return tokenResponse(pair), nil
}

// ValidateToken reports validity in-band: an invalid token is a normal
// answer here, not an RPC failure.
func (c *AuthController) ValidateToken(_ context.Context, req *assistantpb.ValidateTokenRequest) (*assistantpb.ValidateTokenResponse, error) {
	user, err := c.tokens.ValidateToken(req.Token)
	if err != nil {
		return &assistantpb.ValidateTokenResponse{Valid: false}, nil
	}

	return &assistantpb.ValidateTokenResponse{
		Valid:  true,
		UserID: user.ID,
		Roles:  user.Roles,
	}, nil
}

func (c *AuthController) RefreshToken(_ context.Context, req *assistantpb.RefreshTokenRequest) (*assistantpb.TokenResponse, error) {
	pair, err := c.tokens.Refresh(req.RefreshToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
	}

	return tokenResponse(pair), nil
}

func tokenResponse(pair auth.TokenPair) *assistantpb.TokenResponse {
	return &assistantpb.TokenResponse{
		Token:        pair.Token,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt.Unix(),
		UserID:       pair.UserID,
		Roles:        pair.Roles,
	}
}
