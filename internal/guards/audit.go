package guards

import "github.com/rs/zerolog"

// Audit outcomes recorded for security-relevant operations.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeDenied  = "denied"
)

// AuditLogger records security-relevant events (auth attempts, authorization
// denials, rate-limit hits, handler outcomes) as structured log events.
type AuditLogger struct {
	logger zerolog.Logger
}

func NewAuditLogger(logger zerolog.Logger) *AuditLogger {
	return &AuditLogger{
		logger: logger.With().Str("component", "audit").Logger(),
	}
}

// Record emits one audit event.
func (a *AuditLogger) Record(userID, operation, outcome string) {
	a.logger.Info().
		Str("user_id", userID).
		Str("operation", operation).
		Str("outcome", outcome).
		Msg("audit event")
}
