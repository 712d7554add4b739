package intent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dastudio/da-assistant/internal/domain"
)

// HandlerFunc executes the side-effecting action behind an intent once its
// parameters are fully known. Handlers validate their own parameters and
// report failure through the result, not through panics.
type HandlerFunc func(ctx context.Context, params map[string]any, user domain.User, convCtx map[string]string) domain.IntentResult

// Rule describes everything the recognizer needs to know about one intent:
// how to extract its entities, which of them are mandatory, how to phrase the
// reply, which client actions to emit once the slots are filled, and which
// handler executes it.
type Rule struct {
	Label    string
	Required []string
	Extract  ExtractorFunc
	Respond  func(e map[string]string) string
	Prompt   func(missing []string) string
	Actions  func(e map[string]string) []domain.Action
	Handler  HandlerFunc
}

// Registry is the source of truth for which intents exist. It is built once
// at startup and read-only afterwards.
type Registry struct {
	order []string
	rules map[string]*Rule
}

// Get returns the rule for a label.
func (r *Registry) Get(label string) (*Rule, bool) {
	rule, ok := r.rules[label]
	return rule, ok
}

// Labels returns all registered labels in registration order.
func (r *Registry) Labels() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// NewRegistry builds the static intent rule table wired to the given
// handlers. Handlers may be nil for conversational-only intents.
func NewRegistry(h *Handlers) *Registry {
	r := &Registry{rules: make(map[string]*Rule)}

	r.add(&Rule{
		Label:    domain.IntentCampaignCreate,
		Required: []string{"name"},
		Extract:  extractCampaignCreate,
		Respond: func(e map[string]string) string {
			if date := e["start_date"]; date != "" {
				return fmt.Sprintf("I'll set up the campaign %q starting %s. Please confirm.", e["name"], date)
			}
			return fmt.Sprintf("I'll set up the campaign %q. Please confirm.", e["name"])
		},
		Prompt: func([]string) string {
			return "Sure, let's create a campaign. What should it be called?"
		},
		Actions: func(e map[string]string) []domain.Action {
			return []domain.Action{{Type: "create_campaign", Parameters: pick(e, "name", "start_date")}}
		},
		Handler: h.CreateCampaign,
	})

	r.add(&Rule{
		Label:   domain.IntentCampaignList,
		Respond: func(map[string]string) string { return "Here are your campaigns." },
		Actions: func(map[string]string) []domain.Action {
			return []domain.Action{{Type: "list_campaigns"}}
		},
		Handler: h.ListCampaigns,
	})

	r.add(&Rule{
		Label:    domain.IntentCampaignStatus,
		Required: []string{"name"},
		Extract:  extractCampaignName,
		Respond: func(e map[string]string) string {
			return fmt.Sprintf("Let me check the status of %q.", e["name"])
		},
		Prompt: func([]string) string {
			return "Which campaign would you like to check?"
		},
		Actions: func(e map[string]string) []domain.Action {
			return []domain.Action{{Type: "show_campaign", Parameters: pick(e, "name")}}
		},
		Handler: h.CampaignStatus,
	})

	r.add(&Rule{
		Label:    domain.IntentCustomerAdd,
		Required: []string{"name"},
		Extract:  extractCustomerAdd,
		Respond: func(e map[string]string) string {
			return fmt.Sprintf("Adding customer %q.", e["name"])
		},
		Prompt: func([]string) string {
			return "What is the customer's name?"
		},
		Actions: func(e map[string]string) []domain.Action {
			return []domain.Action{{Type: "add_customer", Parameters: pick(e, "name", "email")}}
		},
		Handler: h.AddCustomer,
	})

	r.add(&Rule{
		Label:   domain.IntentCustomerList,
		Respond: func(map[string]string) string { return "Here are your customers." },
		Actions: func(map[string]string) []domain.Action {
			return []domain.Action{{Type: "list_customers"}}
		},
		Handler: h.ListCustomers,
	})

	r.add(&Rule{
		Label:    domain.IntentVoucherCreate,
		Required: []string{"code"},
		Extract:  extractVoucherCreate,
		Respond: func(e map[string]string) string {
			if d := e["discount"]; d != "" {
				return fmt.Sprintf("Creating voucher %q with a %s%% discount.", e["code"], d)
			}
			return fmt.Sprintf("Creating voucher %q.", e["code"])
		},
		Prompt: func([]string) string {
			return "What code should the voucher use?"
		},
		Actions: func(e map[string]string) []domain.Action {
			return []domain.Action{{Type: "create_voucher", Parameters: pick(e, "code", "discount")}}
		},
		Handler: h.CreateVoucher,
	})

	r.add(&Rule{
		Label:   domain.IntentVoucherList,
		Respond: func(map[string]string) string { return "Here are your vouchers." },
		Actions: func(map[string]string) []domain.Action {
			return []domain.Action{{Type: "list_vouchers"}}
		},
		Handler: h.ListVouchers,
	})

	r.add(&Rule{
		Label:    domain.IntentTelegramSend,
		Required: []string{"chat_id", "message"},
		Extract:  extractTelegramSend,
		Respond: func(e map[string]string) string {
			return fmt.Sprintf("Sending your message to @%s.", e["chat_id"])
		},
		Prompt: func(missing []string) string {
			for _, f := range missing {
				if f == "message" {
					return "What message should I send?"
				}
			}
			return "Which chat should I send it to?"
		},
		Actions: func(e map[string]string) []domain.Action {
			return []domain.Action{{Type: "send_telegram", Parameters: pick(e, "chat_id", "message", "markdown")}}
		},
		Handler: h.SendTelegram,
	})

	r.add(&Rule{
		Label:   domain.IntentTelegramStatus,
		Respond: func(map[string]string) string { return "Checking the Telegram bot connection." },
		Actions: func(map[string]string) []domain.Action {
			return []domain.Action{{Type: "telegram_status"}}
		},
		Handler: h.TelegramStatus,
	})

	r.add(&Rule{
		Label:    domain.IntentEmailTemplate,
		Required: []string{"name"},
		Extract:  extractEmailTemplate,
		Respond: func(e map[string]string) string {
			return fmt.Sprintf("Opening the %q email template.", e["name"])
		},
		Prompt: func([]string) string {
			return "Which email template would you like to work on?"
		},
		Actions: func(e map[string]string) []domain.Action {
			return []domain.Action{{Type: "open_template", Parameters: pick(e, "name")}}
		},
	})

	r.add(&Rule{
		Label:   domain.IntentStatsOverview,
		Extract: extractStatsOverview,
		Respond: func(e map[string]string) string {
			period := e["period"]
			if period == "" {
				period = "this month"
			}
			return fmt.Sprintf("Here is your overview for %s.", period)
		},
		Actions: func(e map[string]string) []domain.Action {
			return []domain.Action{{Type: "show_stats", Parameters: pick(e, "period")}}
		},
		Handler: h.StatsOverview,
	})

	r.add(&Rule{
		Label:   domain.IntentSystemGreeting,
		Respond: func(map[string]string) string {
			return "Hello! I'm Da, your marketing assistant. How can I help you today?"
		},
	})

	r.add(&Rule{
		Label:   domain.IntentSystemGoodbye,
		Respond: func(map[string]string) string {
			return "Goodbye! Ping me whenever you need your campaigns."
		},
	})

	r.add(&Rule{
		Label:   domain.IntentSystemHelp,
		Respond: helpResponder(r),
		Handler: h.Help,
	})

	r.add(&Rule{
		Label: domain.IntentSystemFallback,
		Respond: func(map[string]string) string {
			return "I'm sorry, I didn't quite get that. Ask me for \"help\" to see what I can do."
		},
		Handler: h.Fallback,
	})

	return r
}

func (r *Registry) add(rule *Rule) {
	r.rules[rule.Label] = rule
	r.order = append(r.order, rule.Label)
}

// helpResponder enumerates the registered intents so the help text never
// drifts from the registry.
func helpResponder(r *Registry) func(map[string]string) string {
	return func(map[string]string) string {
		topics := map[string][]string{}
		for _, label := range r.order {
			area, _, found := strings.Cut(label, ".")
			if !found || area == "system" {
				continue
			}
			topics[area] = append(topics[area], label)
		}

		areas := make([]string, 0, len(topics))
		for area := range topics {
			areas = append(areas, area)
		}
		sort.Strings(areas)

		return fmt.Sprintf(
			"I can help you with %s. Try something like 'create a campaign called \"Summer Sale\"' or 'show me all campaigns'.",
			strings.Join(areas, ", "),
		)
	}
}

func pick(e map[string]string, keys ...string) map[string]string {
	out := map[string]string{}
	for _, k := range keys {
		if v, ok := e[k]; ok && v != "" {
			out[k] = v
		}
	}
	return out
}
