package controllers

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/dastudio/da-assistant/internal/domain"
	"github.com/dastudio/da-assistant/internal/guards"
	"github.com/dastudio/da-assistant/internal/middlewares"
	"github.com/dastudio/da-assistant/pkg/assistantpb"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeRecognizer struct {
	recognized   []string
	seenContexts []map[string]string
	executions   int

	recognizeFn func(text string, convCtx map[string]string) domain.Intent
	executeFn   func(name string, params map[string]any, user domain.User) domain.IntentResult
}

func (f *fakeRecognizer) RecognizeIntent(text string, convCtx map[string]string) domain.Intent {
	f.recognized = append(f.recognized, text)

	snapshot := map[string]string{}
	for k, v := range convCtx {
		snapshot[k] = v
	}
	f.seenContexts = append(f.seenContexts, snapshot)

	if f.recognizeFn != nil {
		return f.recognizeFn(text, convCtx)
	}

	return domain.Intent{
		Name:           domain.IntentSystemGreeting,
		Response:       "hi",
		Actions:        []domain.Action{},
		UpdatedContext: map[string]string{"intent": domain.IntentSystemGreeting},
	}
}

func (f *fakeRecognizer) ExecuteIntent(_ context.Context, name string, params map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	f.executions++
	if f.executeFn != nil {
		return f.executeFn(name, params, user)
	}
	return domain.IntentResult{Message: "done", Success: true}
}

func newTestController(rec *fakeRecognizer) *AssistantController {
	audit := guards.NewAuditLogger(zerolog.Nop())

	return NewAssistantController(AssistantControllerDependencies{
		Recognizer:  rec,
		RateLimiter: guards.NewRateLimiter(audit),
		Audit:       audit,
		Heartbeat:   5 * time.Millisecond,
	})
}

// fakeChatStream scripts the inbound side of a bidirectional chat call.
type fakeChatStream struct {
	grpc.ServerStream
	requests  []*assistantpb.ChatRequest
	responses []*assistantpb.ChatResponse
}

func (s *fakeChatStream) Recv() (*assistantpb.ChatRequest, error) {
	if len(s.requests) == 0 {
		return nil, io.EOF
	}
	req := s.requests[0]
	s.requests = s.requests[1:]
	return req, nil
}

func (s *fakeChatStream) Send(resp *assistantpb.ChatResponse) error {
	s.responses = append(s.responses, resp)
	return nil
}

func TestChat_RespondsPerTurnInOrder(t *testing.T) {
	rec := &fakeRecognizer{}
	c := newTestController(rec)

	stream := &fakeChatStream{requests: []*assistantpb.ChatRequest{
		{Message: "hello"},
		{Message: "show me all campaigns"},
	}}

	require.NoError(t, c.Chat(stream))
	require.Len(t, stream.responses, 2)
	assert.Equal(t, []string{"hello", "show me all campaigns"}, rec.recognized)
}

func TestChat_ContextCarriesAcrossTurns(t *testing.T) {
	rec := &fakeRecognizer{
		recognizeFn: func(text string, _ map[string]string) domain.Intent {
			return domain.Intent{
				Name:           domain.IntentCampaignCreate,
				Response:       "ok",
				Actions:        []domain.Action{},
				UpdatedContext: map[string]string{"intent": domain.IntentCampaignCreate, "name": "Summer Sale"},
			}
		},
	}
	c := newTestController(rec)

	stream := &fakeChatStream{requests: []*assistantpb.ChatRequest{
		{Message: "create a campaign called \"Summer Sale\""},
		{Message: "yes, create it"},
	}}

	require.NoError(t, c.Chat(stream))
	require.Len(t, rec.seenContexts, 2)

	assert.Empty(t, rec.seenContexts[0]["name"])
	assert.Equal(t, "Summer Sale", rec.seenContexts[1]["name"], "turn N+1 must see turn N's updated context")
	assert.Equal(t, "Summer Sale", stream.responses[1].Context["name"])
}

func TestChat_ClientContextIsMerged(t *testing.T) {
	rec := &fakeRecognizer{}
	c := newTestController(rec)

	stream := &fakeChatStream{requests: []*assistantpb.ChatRequest{
		{Message: "hello", Context: map[string]string{"locale": "en"}, UserID: "u1"},
	}}

	require.NoError(t, c.Chat(stream))
	require.Len(t, rec.seenContexts, 1)
	assert.Equal(t, "en", rec.seenContexts[0]["locale"])
}

func TestChat_PanickingTurnAnswersWithApology(t *testing.T) {
	rec := &fakeRecognizer{
		recognizeFn: func(text string, _ map[string]string) domain.Intent {
			if text == "boom" {
				panic("recognition blew up")
			}
			return domain.Intent{Name: domain.IntentSystemGreeting, Response: "hi", Actions: []domain.Action{}}
		},
	}
	c := newTestController(rec)

	stream := &fakeChatStream{requests: []*assistantpb.ChatRequest{
		{Message: "boom"},
		{Message: "hello"},
	}}

	require.NoError(t, c.Chat(stream), "a failing turn must not close the stream")
	require.Len(t, stream.responses, 2)
	assert.Equal(t, apologyResponse, stream.responses[0].Message)
	assert.Equal(t, "hi", stream.responses[1].Message)
}

func TestProcessRequest_RequiresAuthentication(t *testing.T) {
	rec := &fakeRecognizer{}
	c := newTestController(rec)

	_, err := c.ProcessRequest(context.Background(), &assistantpb.ProcessRequestRequest{
		Intent: domain.IntentCampaignList,
	})

	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Zero(t, rec.executions, "no handler may run for an unauthenticated call")
}

func TestProcessRequest_ExecutesForAuthenticatedUser(t *testing.T) {
	rec := &fakeRecognizer{
		executeFn: func(name string, params map[string]any, user domain.User) domain.IntentResult {
			assert.Equal(t, domain.IntentCampaignCreate, name)
			assert.Equal(t, "Summer Sale", params["name"])
			assert.Equal(t, "u1", user.ID)
			return domain.IntentResult{Message: "created", Success: true, Data: map[string]any{"id": "c1"}}
		},
	}
	c := newTestController(rec)

	ctx := middlewares.ContextWithUser(context.Background(), domain.User{ID: "u1", Roles: []string{domain.RoleManager}})

	resp, err := c.ProcessRequest(ctx, &assistantpb.ProcessRequestRequest{
		Intent:     domain.IntentCampaignCreate,
		Parameters: []byte(`{"name": "Summer Sale"}`),
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "created", resp.Message)
	assert.JSONEq(t, `{"id": "c1"}`, string(resp.Payload))
}

func TestProcessRequest_RejectsMalformedParameters(t *testing.T) {
	rec := &fakeRecognizer{}
	c := newTestController(rec)

	ctx := middlewares.ContextWithUser(context.Background(), domain.User{ID: "u1"})

	_, err := c.ProcessRequest(ctx, &assistantpb.ProcessRequestRequest{
		Intent:     domain.IntentCampaignList,
		Parameters: []byte(`not json`),
	})

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Zero(t, rec.executions)
}

func TestProcessRequest_RateLimited(t *testing.T) {
	rec := &fakeRecognizer{}
	c := newTestController(rec)

	ctx := middlewares.ContextWithUser(context.Background(), domain.User{ID: "u1"})
	req := &assistantpb.ProcessRequestRequest{Intent: domain.IntentCampaignList}

	var lastErr error
	for i := 0; i < guards.RateLimitMaxRequests+1; i++ {
		_, lastErr = c.ProcessRequest(ctx, req)
	}

	assert.Equal(t, codes.ResourceExhausted, status.Code(lastErr))
	assert.Equal(t, guards.RateLimitMaxRequests, rec.executions)
}

// fakeEventStream satisfies the server-streaming side of StreamEvents.
type fakeEventStream struct {
	grpc.ServerStream
	ctx    context.Context
	cancel context.CancelFunc
	events []*assistantpb.Event
	limit  int
}

func (s *fakeEventStream) Context() context.Context {
	return s.ctx
}

func (s *fakeEventStream) Send(e *assistantpb.Event) error {
	s.events = append(s.events, e)
	if len(s.events) >= s.limit {
		s.cancel()
	}
	return nil
}

func TestStreamEvents_EmitsUntilCancelled(t *testing.T) {
	c := newTestController(&fakeRecognizer{})

	ctx, cancel := context.WithCancel(context.Background())
	stream := &fakeEventStream{ctx: ctx, cancel: cancel, limit: 3}

	err := c.StreamEvents(&assistantpb.StreamEventsRequest{UserID: "u1"}, stream)
	require.NoError(t, err, "cancellation is a clean shutdown")

	require.GreaterOrEqual(t, len(stream.events), 3)
	for _, e := range stream.events {
		assert.Equal(t, "heartbeat", e.EventType)
		assert.NotZero(t, e.Timestamp)
		assert.NotEmpty(t, e.Payload)
	}
}

func TestStreamEvents_FiltersUnrequestedTypes(t *testing.T) {
	c := newTestController(&fakeRecognizer{})

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	stream := &fakeEventStream{ctx: ctx, cancel: func() {}, limit: 1 << 30}

	err := c.StreamEvents(&assistantpb.StreamEventsRequest{
		EventTypes: []string{"campaign.updates"},
		UserID:     "u1",
	}, stream)

	require.NoError(t, err)
	assert.Empty(t, stream.events, "only requested event types may be emitted")
}
