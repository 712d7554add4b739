package intent

import (
	"context"
	"errors"
	"fmt"

	"github.com/dastudio/da-assistant/internal/domain"
	"github.com/dastudio/da-assistant/internal/guards"
)

// Stable error codes surfaced to clients in IntentResult data.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeAuthorizationError = "AUTHORIZATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeNotConfigured      = "NOT_CONFIGURED"
	CodeInternalError      = "INTERNAL_ERROR"
)

var handlerSchemas = map[string]string{
	domain.IntentCampaignCreate: `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"start_date": {"type": "string"}
		}
	}`,
	domain.IntentCampaignStatus: `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1}
		}
	}`,
	domain.IntentCustomerAdd: `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"email": {"type": "string", "format": "email"}
		}
	}`,
	domain.IntentVoucherCreate: `{
		"type": "object",
		"required": ["code"],
		"properties": {
			"code": {"type": "string", "minLength": 1},
			"discount": {"type": "string", "pattern": "^[0-9]+$"}
		}
	}`,
	domain.IntentTelegramSend: `{
		"type": "object",
		"required": ["chat_id", "message"],
		"properties": {
			"chat_id": {"type": "string", "minLength": 1},
			"message": {"type": "string", "minLength": 1},
			"markdown": {"type": ["boolean", "string"]}
		}
	}`,
}

type HandlersDependencies struct {
	Campaigns domain.CampaignService
	Customers domain.CustomerService
	Vouchers  domain.VoucherService
	Telegram  domain.TelegramSender
	Responder domain.FallbackResponder
	Audit     *guards.AuditLogger
}

// Handlers hosts the executable side of the intent registry. Each handler
// validates its own parameters, checks the caller's roles and reports all
// failures through the result.
type Handlers struct {
	deps      HandlersDependencies
	validator *guards.Validator
}

func NewHandlers(deps HandlersDependencies) (*Handlers, error) {
	validator, err := guards.NewValidator(handlerSchemas)
	if err != nil {
		return nil, fmt.Errorf("building handler validator: %w", err)
	}

	return &Handlers{deps: deps, validator: validator}, nil
}

func (h *Handlers) CreateCampaign(ctx context.Context, params map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	if res, ok := h.guard(domain.IntentCampaignCreate, params, user, domain.RoleAdmin, domain.RoleManager); !ok {
		return res
	}

	campaign, err := h.deps.Campaigns.Create(ctx, domain.CreateCampaignParams{
		Name:      stringParam(params, "name"),
		StartDate: stringParam(params, "start_date"),
	})
	if err != nil {
		return h.serviceFailure(user, domain.IntentCampaignCreate, err)
	}

	h.deps.Audit.Record(user.ID, domain.IntentCampaignCreate, guards.OutcomeSuccess)

	return domain.IntentResult{
		Message: fmt.Sprintf("Campaign %q created successfully.", campaign.Name),
		Success: true,
		Data:    campaign,
	}
}

func (h *Handlers) ListCampaigns(ctx context.Context, _ map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	campaigns, err := h.deps.Campaigns.List(ctx)
	if err != nil {
		return h.serviceFailure(user, domain.IntentCampaignList, err)
	}

	return domain.IntentResult{
		Message: fmt.Sprintf("You have %d campaigns.", len(campaigns)),
		Success: true,
		Data:    campaigns,
	}
}

func (h *Handlers) CampaignStatus(ctx context.Context, params map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	if res, ok := h.guard(domain.IntentCampaignStatus, params, user); !ok {
		return res
	}

	name := stringParam(params, "name")

	campaign, err := h.deps.Campaigns.GetByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.IntentResult{
			Message: fmt.Sprintf("I couldn't find a campaign named %q.", name),
			Success: false,
			Data:    map[string]any{"code": CodeNotFound},
		}
	}
	if err != nil {
		return h.serviceFailure(user, domain.IntentCampaignStatus, err)
	}

	return domain.IntentResult{
		Message: fmt.Sprintf("Campaign %q is %s.", campaign.Name, campaign.Status),
		Success: true,
		Data:    campaign,
	}
}

func (h *Handlers) AddCustomer(ctx context.Context, params map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	if res, ok := h.guard(domain.IntentCustomerAdd, params, user, domain.RoleAdmin, domain.RoleManager); !ok {
		return res
	}

	customer, err := h.deps.Customers.Add(ctx, domain.AddCustomerParams{
		Name:  stringParam(params, "name"),
		Email: stringParam(params, "email"),
	})
	if err != nil {
		return h.serviceFailure(user, domain.IntentCustomerAdd, err)
	}

	h.deps.Audit.Record(user.ID, domain.IntentCustomerAdd, guards.OutcomeSuccess)

	return domain.IntentResult{
		Message: fmt.Sprintf("Customer %q added.", customer.Name),
		Success: true,
		Data:    customer,
	}
}

func (h *Handlers) ListCustomers(ctx context.Context, _ map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	customers, err := h.deps.Customers.List(ctx)
	if err != nil {
		return h.serviceFailure(user, domain.IntentCustomerList, err)
	}

	return domain.IntentResult{
		Message: fmt.Sprintf("You have %d customers.", len(customers)),
		Success: true,
		Data:    customers,
	}
}

func (h *Handlers) CreateVoucher(ctx context.Context, params map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	if res, ok := h.guard(domain.IntentVoucherCreate, params, user, domain.RoleAdmin, domain.RoleManager); !ok {
		return res
	}

	voucher, err := h.deps.Vouchers.Create(ctx, domain.CreateVoucherParams{
		Code:     stringParam(params, "code"),
		Discount: stringParam(params, "discount"),
	})
	if err != nil {
		return h.serviceFailure(user, domain.IntentVoucherCreate, err)
	}

	h.deps.Audit.Record(user.ID, domain.IntentVoucherCreate, guards.OutcomeSuccess)

	return domain.IntentResult{
		Message: fmt.Sprintf("Voucher %q created.", voucher.Code),
		Success: true,
		Data:    voucher,
	}
}

func (h *Handlers) ListVouchers(ctx context.Context, _ map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	vouchers, err := h.deps.Vouchers.List(ctx)
	if err != nil {
		return h.serviceFailure(user, domain.IntentVoucherList, err)
	}

	return domain.IntentResult{
		Message: fmt.Sprintf("You have %d vouchers.", len(vouchers)),
		Success: true,
		Data:    vouchers,
	}
}

func (h *Handlers) SendTelegram(ctx context.Context, params map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	if res, ok := h.guard(domain.IntentTelegramSend, params, user, domain.RoleAdmin, domain.RoleMarketing); !ok {
		return res
	}

	if h.deps.Telegram == nil {
		return domain.IntentResult{
			Message: "The Telegram bot is not configured.",
			Success: false,
			Data:    map[string]any{"code": CodeNotConfigured},
		}
	}

	err := h.deps.Telegram.SendMessage(ctx, domain.SendTelegramParams{
		ChatID:   stringParam(params, "chat_id"),
		Message:  stringParam(params, "message"),
		Markdown: boolParam(params, "markdown"),
	})
	if err != nil {
		return h.serviceFailure(user, domain.IntentTelegramSend, err)
	}

	h.deps.Audit.Record(user.ID, domain.IntentTelegramSend, guards.OutcomeSuccess)

	return domain.IntentResult{
		Message: fmt.Sprintf("Message sent to @%s.", stringParam(params, "chat_id")),
		Success: true,
	}
}

func (h *Handlers) TelegramStatus(ctx context.Context, _ map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	if h.deps.Telegram == nil {
		return domain.IntentResult{
			Message: "The Telegram bot is not configured.",
			Success: false,
			Data:    map[string]any{"code": CodeNotConfigured},
		}
	}

	status, err := h.deps.Telegram.Status(ctx)
	if err != nil {
		return h.serviceFailure(user, domain.IntentTelegramStatus, err)
	}

	return domain.IntentResult{
		Message: status,
		Success: true,
	}
}

func (h *Handlers) StatsOverview(ctx context.Context, _ map[string]any, user domain.User, _ map[string]string) domain.IntentResult {
	campaigns, err := h.deps.Campaigns.List(ctx)
	if err != nil {
		return h.serviceFailure(user, domain.IntentStatsOverview, err)
	}

	customers, err := h.deps.Customers.List(ctx)
	if err != nil {
		return h.serviceFailure(user, domain.IntentStatsOverview, err)
	}

	vouchers, err := h.deps.Vouchers.List(ctx)
	if err != nil {
		return h.serviceFailure(user, domain.IntentStatsOverview, err)
	}

	return domain.IntentResult{
		Message: fmt.Sprintf("You have %d campaigns, %d customers and %d vouchers.",
			len(campaigns), len(customers), len(vouchers)),
		Success: true,
		Data: map[string]any{
			"campaigns": len(campaigns),
			"customers": len(customers),
			"vouchers":  len(vouchers),
		},
	}
}

func (h *Handlers) Help(_ context.Context, _ map[string]any, _ domain.User, _ map[string]string) domain.IntentResult {
	return domain.IntentResult{
		Message: "I can manage campaigns, customers, vouchers and Telegram messages for you. Ask me in plain words and I'll take it from there.",
		Success: true,
	}
}

// Fallback is the handler of last resort. It always reports failure so
// callers never mistake an unrecognized request for completed work, but it
// phrases the reply through the configured responder when one is available.
func (h *Handlers) Fallback(ctx context.Context, params map[string]any, _ domain.User, _ map[string]string) domain.IntentResult {
	message := "I'm not sure how to do that. Ask me for \"help\" to see what I can do."

	if h.deps.Responder != nil {
		if text := stringParam(params, "message"); text != "" {
			if reply, err := h.deps.Responder.Respond(ctx, text); err == nil && reply != "" {
				message = reply
			}
		}
	}

	return domain.IntentResult{
		Message: message,
		Success: false,
	}
}

// guard runs parameter validation and the role check shared by the
// privileged handlers. The boolean is false when the returned result should
// be sent back as-is.
func (h *Handlers) guard(label string, params map[string]any, user domain.User, roles ...string) (domain.IntentResult, bool) {
	if err := h.validator.Validate(label, params); err != nil {
		return domain.IntentResult{
			Message: fmt.Sprintf("Validation failed: %v", err),
			Success: false,
			Data:    map[string]any{"code": CodeValidationError},
		}, false
	}

	if len(roles) > 0 && !user.HasAnyRole(roles...) {
		h.deps.Audit.Record(user.ID, label, guards.OutcomeDenied)
		return domain.IntentResult{
			Message: "You don't have permission to do that.",
			Success: false,
			Data:    map[string]any{"code": CodeAuthorizationError},
		}, false
	}

	return domain.IntentResult{}, true
}

func (h *Handlers) serviceFailure(user domain.User, label string, err error) domain.IntentResult {
	h.deps.Audit.Record(user.ID, label, guards.OutcomeFailure)

	return domain.IntentResult{
		Message: fmt.Sprintf("An error occurred: %v", err),
		Success: false,
		Data:    map[string]any{"code": CodeInternalError},
	}
}

func stringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func boolParam(params map[string]any, key string) bool {
	switch v := params[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}
