package server

import (
	"github.com/dastudio/da-assistant/internal/controllers"
	"github.com/dastudio/da-assistant/internal/guards"
	"github.com/dastudio/da-assistant/internal/middlewares"
	"github.com/dastudio/da-assistant/pkg/assistantpb"

	"google.golang.org/grpc"
)

type GRPCServerDependencies struct {
	AssistantController *controllers.AssistantController
	AuthController      *controllers.AuthController
	TokenValidator      middlewares.TokenValidator
	Audit               *guards.AuditLogger
}

// NewGRPCServer assembles the gRPC server with its interceptor chain and
// registers both services. Listening is left to the caller.
func NewGRPCServer(deps GRPCServerDependencies) *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middlewares.LoggingUnaryInterceptor(),
			middlewares.AuthUnaryInterceptor(deps.TokenValidator, deps.Audit),
		),
		grpc.ChainStreamInterceptor(
			middlewares.LoggingStreamInterceptor(),
		),
	)

	assistantpb.RegisterAssistantServer(srv, deps.AssistantController)
	assistantpb.RegisterAuthServer(srv, deps.AuthController)

	return srv
}
