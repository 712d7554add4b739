package assistantpb

import (
	"context"

	"google.golang.org/grpc"
)

// AssistantClient is the client API for the Assistant service.
type AssistantClient interface {
	Chat(ctx context.Context, opts ...grpc.CallOption) (Assistant_ChatClient, error)
	ProcessRequest(ctx context.Context, in *ProcessRequestRequest, opts ...grpc.CallOption) (*ProcessRequestResponse, error)
	StreamEvents(ctx context.Context, in *StreamEventsRequest, opts ...grpc.CallOption) (Assistant_StreamEventsClient, error)
}

// AuthClient is the client API for the Auth service.
type AuthClient interface {
	Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	ValidateToken(ctx context.Context, in *ValidateTokenRequest, opts ...grpc.CallOption) (*ValidateTokenResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error)
}

type assistantClient struct {
	cc grpc.ClientConnInterface
}

// NewAssistantClient wraps the connection with the JSON codec preselected.
func NewAssistantClient(cc grpc.ClientConnInterface) AssistantClient {
	return &assistantClient{cc: cc}
}

func (c *assistantClient) Chat(ctx context.Context, opts ...grpc.CallOption) (Assistant_ChatClient, error) {
	stream, err := c.cc.NewStream(ctx, &Assistant_ServiceDesc.Streams[0], Assistant_Chat_FullMethodName, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	return &assistantChatClient{ClientStream: stream}, nil
}

func (c *assistantClient) ProcessRequest(ctx context.Context, in *ProcessRequestRequest, opts ...grpc.CallOption) (*ProcessRequestResponse, error) {
	out := new(ProcessRequestResponse)
	if err := c.cc.Invoke(ctx, Assistant_ProcessRequest_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assistantClient) StreamEvents(ctx context.Context, in *StreamEventsRequest, opts ...grpc.CallOption) (Assistant_StreamEventsClient, error) {
	stream, err := c.cc.NewStream(ctx, &Assistant_ServiceDesc.Streams[1], Assistant_StreamEvents_FullMethodName, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &assistantStreamEventsClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Assistant_ChatClient interface {
	Send(*ChatRequest) error
	Recv() (*ChatResponse, error)
	grpc.ClientStream
}

type assistantChatClient struct {
	grpc.ClientStream
}

func (x *assistantChatClient) Send(m *ChatRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *assistantChatClient) Recv() (*ChatResponse, error) {
	m := new(ChatResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type Assistant_StreamEventsClient interface {
	Recv() (*Event, error)
	grpc.ClientStream
}

type assistantStreamEventsClient struct {
	grpc.ClientStream
}

func (x *assistantStreamEventsClient) Recv() (*Event, error) {
	m := new(Event)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

type authClient struct {
	cc grpc.ClientConnInterface
}

// NewAuthClient wraps the connection with the JSON codec preselected.
func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc: cc}
}

func (c *authClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	out := new(TokenResponse)
	if err := c.cc.Invoke(ctx, Auth_Authenticate_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) ValidateToken(ctx context.Context, in *ValidateTokenRequest, opts ...grpc.CallOption) (*ValidateTokenResponse, error) {
	out := new(ValidateTokenResponse)
	if err := c.cc.Invoke(ctx, Auth_ValidateToken_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	out := new(TokenResponse)
	if err := c.cc.Invoke(ctx, Auth_RefreshToken_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{CallOption()}, opts...)
}
