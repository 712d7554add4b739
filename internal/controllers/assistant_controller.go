package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/dastudio/da-assistant/internal/domain"
	"github.com/dastudio/da-assistant/internal/guards"
	"github.com/dastudio/da-assistant/internal/middlewares"
	"github.com/dastudio/da-assistant/internal/version"
	"github.com/dastudio/da-assistant/pkg/assistantpb"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const heartbeatInterval = 5 * time.Second

const apologyResponse = "I'm sorry, something went wrong on my side. Could you try that again?"

// IntentService is the recognition/execution core the controller dispatches
// to.
type IntentService interface {
	RecognizeIntent(text string, convCtx map[string]string) domain.Intent
	ExecuteIntent(ctx context.Context, name string, params map[string]any, user domain.User, convCtx map[string]string) domain.IntentResult
}

type AssistantControllerDependencies struct {
	Recognizer  IntentService
	RateLimiter *guards.RateLimiter
	Audit       *guards.AuditLogger

	// Heartbeat overrides the event stream interval; zero means the default.
	Heartbeat time.Duration
}

// AssistantController implements the Assistant gRPC service. Each Chat
// stream owns one session: a generated id, an accumulated context map and
// the last seen user id, all released when the stream ends.
type AssistantController struct {
	recognizer  IntentService
	rateLimiter *guards.RateLimiter
	audit       *guards.AuditLogger
	heartbeat   time.Duration
}

func NewAssistantController(deps AssistantControllerDependencies) *AssistantController {
	heartbeat := deps.Heartbeat
	if heartbeat <= 0 {
		heartbeat = heartbeatInterval
	}

	return &AssistantController{
		recognizer:  deps.Recognizer,
		rateLimiter: deps.RateLimiter,
		audit:       deps.Audit,
		heartbeat:   heartbeat,
	}
}

// Chat handles one bidirectional conversation. Messages are processed
// strictly in receipt order and a failing turn answers with an apology
// instead of tearing the stream down.
func (c *AssistantController) Chat(stream assistantpb.Assistant_ChatServer) error {
	sessionID := xid.New().String()
	sessionCtx := map[string]string{}
	userID := "unknown"

	log.Info().Str("session_id", sessionID).Msg("Chat session opened")

	defer func() {
		log.Info().Str("session_id", sessionID).Str("user_id", userID).Msg("Chat session closed")
	}()

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return nil
			}
			return err
		}

		if req.UserID != "" {
			userID = req.UserID
		}
		for k, v := range req.Context {
			sessionCtx[k] = v
		}

		resp := c.handleTurn(req.Message, sessionCtx)

		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

// handleTurn runs one recognition pass and folds the updated context back
// into the session.
func (c *AssistantController) handleTurn(message string, sessionCtx map[string]string) (resp *assistantpb.ChatResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Any("panic", rec).Msg("Chat turn failed")
			resp = &assistantpb.ChatResponse{
				Message: apologyResponse,
				Actions: []*assistantpb.Action{},
				Context: sessionCtx,
			}
		}
	}()

	intent := c.recognizer.RecognizeIntent(message, sessionCtx)

	for k, v := range intent.UpdatedContext {
		sessionCtx[k] = v
	}

	actions := make([]*assistantpb.Action, 0, len(intent.Actions))
	for _, a := range intent.Actions {
		actions = append(actions, &assistantpb.Action{
			Type:       a.Type,
			ResourceID: a.ResourceID,
			Parameters: a.Parameters,
		})
	}

	return &assistantpb.ChatResponse{
		Message:          intent.Response,
		Actions:          actions,
		Context:          sessionCtx,
		RequiresFollowup: intent.RequiresFollowup,
	}
}

// ProcessRequest executes one intent for an authenticated user. Handler
// failures come back in-band as success=false; only transport-level
// problems become gRPC statuses.
func (c *AssistantController) ProcessRequest(ctx context.Context, req *assistantpb.ProcessRequestRequest) (*assistantpb.ProcessRequestResponse, error) {
	user, ok := middlewares.UserFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing bearer token")
	}

	if !c.rateLimiter.Allow(user.ID) {
		return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}

	params := map[string]any{}
	if len(req.Parameters) > 0 {
		if err := json.Unmarshal(req.Parameters, &params); err != nil {
			return nil, status.Error(codes.InvalidArgument, "parameters must be a JSON object")
		}
	}

	result := c.recognizer.ExecuteIntent(ctx, req.Intent, params, user, nil)

	var payload []byte
	if result.Data != nil {
		data, err := json.Marshal(result.Data)
		if err != nil {
			log.Error().Err(err).Str("intent", req.Intent).Msg("Failed to encode handler payload")
			return nil, status.Error(codes.Internal, "failed to encode payload")
		}
		payload = data
	}

	return &assistantpb.ProcessRequestResponse{
		Message: result.Message,
		Success: result.Success,
		Payload: payload,
	}, nil
}

// StreamEvents pushes periodic events until the client cancels. The ticker
// is released on the way out; cancellation is the only cleanup trigger.
func (c *AssistantController) StreamEvents(req *assistantpb.StreamEventsRequest, stream assistantpb.Assistant_StreamEventsServer) error {
	wantsHeartbeat := len(req.EventTypes) == 0
	for _, t := range req.EventTypes {
		if t == "heartbeat" {
			wantsHeartbeat = true
		}
	}

	ticker := time.NewTicker(c.heartbeat)
	defer ticker.Stop()

	seq := 0

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case t := <-ticker.C:
			if !wantsHeartbeat {
				continue
			}

			seq++
			payload, err := json.Marshal(map[string]any{
				"seq":     seq,
				"user_id": req.UserID,
				"version": version.GetVersion(),
			})
			if err != nil {
				return status.Error(codes.Internal, "failed to encode event")
			}

			event := &assistantpb.Event{
				EventType: "heartbeat",
				Payload:   payload,
				Timestamp: t.Unix(),
			}

			if err := stream.Send(event); err != nil {
				return err
			}
		}
	}
}
