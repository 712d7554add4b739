// Package assistantpb holds the wire types for the assistant gRPC surface.
// The authoritative contract is assistant.proto; these structs mirror it
// field for field and travel with the JSON codec registered in codec.go.
package assistantpb

type ChatRequest struct {
	Message string            `json:"message,omitempty"`
	Context map[string]string `json:"context,omitempty"`
	UserID  string            `json:"user_id,omitempty"`
}

type Action struct {
	Type       string            `json:"type,omitempty"`
	ResourceID string            `json:"resource_id,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

type ChatResponse struct {
	Message          string            `json:"message,omitempty"`
	Actions          []*Action         `json:"actions,omitempty"`
	Context          map[string]string `json:"context,omitempty"`
	RequiresFollowup bool              `json:"requires_followup,omitempty"`
}

type ProcessRequestRequest struct {
	Intent     string `json:"intent,omitempty"`
	Parameters []byte `json:"parameters,omitempty"`
}

type ProcessRequestResponse struct {
	Message string `json:"message,omitempty"`
	Success bool   `json:"success,omitempty"`
	Payload []byte `json:"payload,omitempty"`
}

type StreamEventsRequest struct {
	EventTypes []string `json:"event_types,omitempty"`
	UserID     string   `json:"user_id,omitempty"`
}

type Event struct {
	EventType string `json:"event_type,omitempty"`
	Payload   []byte `json:"payload,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

type AuthenticateRequest struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

type TokenResponse struct {
	Token        string   `json:"token,omitempty"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	ExpiresAt    int64    `json:"expires_at,omitempty"`
	UserID       string   `json:"user_id,omitempty"`
	Roles        []string `json:"roles,omitempty"`
}

type ValidateTokenRequest struct {
	Token string `json:"token,omitempty"`
}

type ValidateTokenResponse struct {
	Valid  bool     `json:"valid,omitempty"`
	UserID string   `json:"user_id,omitempty"`
	Roles  []string `json:"roles,omitempty"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}
