package intent

import (
	"reflect"
	"testing"
)

func TestExtractCampaignCreate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]string
	}{
		{
			name:     "quoted name",
			text:     `create a campaign called "Summer Sale"`,
			expected: map[string]string{"name": "Summer Sale"},
		},
		{
			name:     "single quoted name",
			text:     "create a campaign called 'Spring Promo'",
			expected: map[string]string{"name": "Spring Promo"},
		},
		{
			name:     "named without quotes",
			text:     "start a campaign named Black Friday",
			expected: map[string]string{"name": "Black Friday"},
		},
		{
			name:     "name and iso date",
			text:     `create a campaign called "Launch" starting 2026-10-01`,
			expected: map[string]string{"name": "Launch", "start_date": "2026-10-01"},
		},
		{
			name:     "month date",
			text:     `create a campaign called "Launch" on October 1st`,
			expected: map[string]string{"name": "Launch", "start_date": "October 1st"},
		},
		{
			name:     "no entities",
			text:     "create a new campaign",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractCampaignCreate(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("extractCampaignCreate(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractTelegramSend(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]string
	}{
		{
			name: "quoted message with chat handle",
			text: `send message "Hello everyone!" to chat @marketing`,
			expected: map[string]string{
				"chat_id": "marketing",
				"message": "Hello everyone!",
			},
		},
		{
			name: "to chat without handle prefix",
			text: `send "Launch today" to chat announcements`,
			expected: map[string]string{
				"chat_id": "announcements",
				"message": "Launch today",
			},
		},
		{
			name: "markdown flag",
			text: `send markdown message "**Sale!**" to @deals`,
			expected: map[string]string{
				"chat_id":  "deals",
				"message":  "**Sale!**",
				"markdown": "true",
			},
		},
		{
			name:     "message only",
			text:     `send "pending message"`,
			expected: map[string]string{"message": "pending message"},
		},
		{
			name:     "nothing extractable",
			text:     "send a telegram message",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTelegramSend(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("extractTelegramSend(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractCustomerAdd(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]string
	}{
		{
			name:     "name and email",
			text:     `add a customer named Jane Doe, email jane@example.com`,
			expected: map[string]string{"name": "Jane Doe", "email": "jane@example.com"},
		},
		{
			name:     "quoted name only",
			text:     `add customer "Bob"`,
			expected: map[string]string{"name": "Bob"},
		},
		{
			name:     "email only",
			text:     "register bob@example.com",
			expected: map[string]string{"email": "bob@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractCustomerAdd(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("extractCustomerAdd(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractVoucherCreate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]string
	}{
		{
			name:     "quoted code with percent",
			text:     `create a voucher "WELCOME10" for 10%`,
			expected: map[string]string{"code": "WELCOME10", "discount": "10"},
		},
		{
			name:     "code keyword",
			text:     "make a voucher with code SPRING-20 worth 20 percent",
			expected: map[string]string{"code": "SPRING-20", "discount": "20"},
		},
		{
			name:     "no entities",
			text:     "create a discount voucher",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractVoucherCreate(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("extractVoucherCreate(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractEmailTemplate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]string
	}{
		{
			name:     "word before template",
			text:     "open the welcome email template",
			expected: map[string]string{"name": "welcome"},
		},
		{
			name:     "quoted template name",
			text:     `edit the "Order Confirmation" template`,
			expected: map[string]string{"name": "Order Confirmation"},
		},
		{
			name:     "filler word is not a name",
			text:     "edit the email template",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractEmailTemplate(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("extractEmailTemplate(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestExtractStatsOverview(t *testing.T) {
	got := extractStatsOverview("show me the stats for This Month")
	if got["period"] != "this month" {
		t.Errorf("period = %q, want %q", got["period"], "this month")
	}

	got = extractStatsOverview("show me the stats")
	if _, ok := got["period"]; ok {
		t.Errorf("unexpected period extracted: %v", got)
	}
}

func TestExtractorsNeverPanic(t *testing.T) {
	extractors := map[string]ExtractorFunc{
		"campaign.create": extractCampaignCreate,
		"campaign.name":   extractCampaignName,
		"customer.add":    extractCustomerAdd,
		"voucher.create":  extractVoucherCreate,
		"telegram.send":   extractTelegramSend,
		"email.template":  extractEmailTemplate,
		"stats.overview":  extractStatsOverview,
	}

	inputs := []string{"", `"`, "@@@@", "named ", "code  %", "a b c d e f g"}

	for name, fn := range extractors {
		for _, input := range inputs {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%s panicked on %q: %v", name, input, r)
					}
				}()
				fn(input)
			}()
		}
	}
}
