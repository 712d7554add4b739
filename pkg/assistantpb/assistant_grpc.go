package assistantpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	Assistant_Chat_FullMethodName           = "/assistant.v1.Assistant/Chat"
	Assistant_ProcessRequest_FullMethodName = "/assistant.v1.Assistant/ProcessRequest"
	Assistant_StreamEvents_FullMethodName   = "/assistant.v1.Assistant/StreamEvents"

	Auth_Authenticate_FullMethodName  = "/assistant.v1.Auth/Authenticate"
	Auth_ValidateToken_FullMethodName = "/assistant.v1.Auth/ValidateToken"
	Auth_RefreshToken_FullMethodName  = "/assistant.v1.Auth/RefreshToken"
)

// AssistantServer is the server API for the Assistant service.
type AssistantServer interface {
	Chat(Assistant_ChatServer) error
	ProcessRequest(context.Context, *ProcessRequestRequest) (*ProcessRequestResponse, error)
	StreamEvents(*StreamEventsRequest, Assistant_StreamEventsServer) error
}

// AuthServer is the server API for the Auth service.
type AuthServer interface {
	Authenticate(context.Context, *AuthenticateRequest) (*TokenResponse, error)
	ValidateToken(context.Context, *ValidateTokenRequest) (*ValidateTokenResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error)
}

func RegisterAssistantServer(s grpc.ServiceRegistrar, srv AssistantServer) {
	s.RegisterService(&Assistant_ServiceDesc, srv)
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&Auth_ServiceDesc, srv)
}

type Assistant_ChatServer interface {
	Send(*ChatResponse) error
	Recv() (*ChatRequest, error)
	grpc.ServerStream
}

type assistantChatServer struct {
	grpc.ServerStream
}

func (x *assistantChatServer) Send(m *ChatResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *assistantChatServer) Recv() (*ChatRequest, error) {
	m := new(ChatRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Assistant_StreamEventsServer interface {
	Send(*Event) error
	grpc.ServerStream
}

type assistantStreamEventsServer struct {
	grpc.ServerStream
}

func (x *assistantStreamEventsServer) Send(m *Event) error {
	return x.ServerStream.SendMsg(m)
}

func _Assistant_Chat_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(AssistantServer).Chat(&assistantChatServer{ServerStream: stream})
}

func _Assistant_ProcessRequest_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ProcessRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssistantServer).ProcessRequest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Assistant_ProcessRequest_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AssistantServer).ProcessRequest(ctx, req.(*ProcessRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Assistant_StreamEvents_Handler(srv any, stream grpc.ServerStream) error {
	m := new(StreamEventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AssistantServer).StreamEvents(m, &assistantStreamEventsServer{ServerStream: stream})
}

var Assistant_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "assistant.v1.Assistant",
	HandlerType: (*AssistantServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessRequest",
			Handler:    _Assistant_ProcessRequest_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Chat",
			Handler:       _Assistant_Chat_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
		{
			StreamName:    "StreamEvents",
			Handler:       _Assistant_StreamEvents_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "assistant.proto",
}

func _Auth_Authenticate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AuthenticateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).Authenticate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_Authenticate_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).Authenticate(ctx, req.(*AuthenticateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_ValidateToken_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ValidateTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).ValidateToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_ValidateToken_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).ValidateToken(ctx, req.(*ValidateTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_RefreshToken_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RefreshTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).RefreshToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_RefreshToken_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).RefreshToken(ctx, req.(*RefreshTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Auth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "assistant.v1.Auth",
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Authenticate",
			Handler:    _Auth_Authenticate_Handler,
		},
		{
			MethodName: "ValidateToken",
			Handler:    _Auth_ValidateToken_Handler,
		},
		{
			MethodName: "RefreshToken",
			Handler:    _Auth_RefreshToken_Handler,
		},
	},
	Metadata: "assistant.proto",
}
