package domain

// Intent label constants. This is a closed set: the registry, the training
// corpus and the extractors all key off these values.
const (
	IntentCampaignCreate = "campaign.create"
	IntentCampaignList   = "campaign.list"
	IntentCampaignStatus = "campaign.status"
	IntentCustomerAdd    = "customer.add"
	IntentCustomerList   = "customer.list"
	IntentVoucherCreate  = "voucher.create"
	IntentVoucherList    = "voucher.list"
	IntentTelegramSend   = "telegram.send"
	IntentTelegramStatus = "telegram.status"
	IntentEmailTemplate  = "email.template"
	IntentStatsOverview  = "stats.overview"
	IntentSystemHelp     = "system.help"
	IntentSystemGreeting = "system.greeting"
	IntentSystemGoodbye  = "system.goodbye"
	IntentSystemFallback = "system.fallback"
)

// Action is a structured follow-up directive returned to the client alongside
// a conversational reply, e.g. "render a confirmation form for this campaign".
type Action struct {
	Type       string            `json:"type"`
	ResourceID string            `json:"resource_id,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// Intent is the result of one recognition pass over a single user message.
// It is ephemeral: built per input, never stored.
type Intent struct {
	Name             string            `json:"name"`
	Response         string            `json:"response"`
	Actions          []Action          `json:"actions"`
	UpdatedContext   map[string]string `json:"updated_context"`
	RequiresFollowup bool              `json:"requires_followup"`
}

// IntentResult is returned by handler execution. When Success is false the
// Data field is not authoritative and callers must not act on it.
type IntentResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
}

// RankedLabel is one classifier vote, sorted descending by confidence.
type RankedLabel struct {
	Label      string
	Confidence float64
}

// TrainingExample maps one example phrase to its intent label.
type TrainingExample struct {
	Text  string `yaml:"text"`
	Label string `yaml:"label"`
}
