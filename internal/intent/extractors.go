package intent

import (
	"regexp"
	"strings"
)

// ExtractorFunc pulls structured entities out of user text. Extractors are
// pure: no state, no side effects, and a pattern that fails to match simply
// omits its field. Captured values keep the user's original casing.
type ExtractorFunc func(text string) map[string]string

var (
	quotedRe   = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
	namedRe    = regexp.MustCompile(`(?i)(?:named|called|titled)\s+"?([\w][\w -]*?)"?\s*(?:$|[.,!?])`)
	isoDateRe  = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	slashDate  = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`)
	monthDate  = regexp.MustCompile(`(?i)\b((?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(?:st|nd|rd|th)?)\b`)
	chatRe     = regexp.MustCompile(`@([A-Za-z0-9_]+)`)
	toChatRe   = regexp.MustCompile(`(?i)to\s+(?:chat|channel|group)\s+@?([A-Za-z0-9_]+)`)
	emailRe    = regexp.MustCompile(`\b([\w.+-]+@[\w-]+\.[\w.-]+)\b`)
	codeRe     = regexp.MustCompile(`(?i)code\s+"?([A-Za-z0-9_-]+)"?`)
	percentRe  = regexp.MustCompile(`(\d+)\s*(?:%|percent)`)
	periodRe   = regexp.MustCompile(`(?i)\b(today|yesterday|this week|last week|this month|last month|this year)\b`)
	templateRe = regexp.MustCompile(`(?i)([\w-]+)\s+(?:email\s+)?template`)
)

func extractQuoted(text string) (string, bool) {
	m := quotedRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

func extractName(text string) (string, bool) {
	if v, ok := extractQuoted(text); ok {
		return v, true
	}
	// "named X" without trailing punctuation requires its own pass
	if m := namedRe.FindStringSubmatch(text + "."); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func extractDate(text string) (string, bool) {
	for _, re := range []*regexp.Regexp{isoDateRe, slashDate, monthDate} {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func extractCampaignCreate(text string) map[string]string {
	e := map[string]string{}
	if name, ok := extractName(text); ok {
		e["name"] = name
	}
	if date, ok := extractDate(text); ok {
		e["start_date"] = date
	}
	return e
}

func extractCampaignName(text string) map[string]string {
	e := map[string]string{}
	if name, ok := extractName(text); ok {
		e["name"] = name
	}
	return e
}

func extractCustomerAdd(text string) map[string]string {
	e := map[string]string{}
	if m := emailRe.FindStringSubmatch(text); m != nil {
		e["email"] = m[1]
	}
	// strip the email before name matching so "named jo@x.com" cases
	// do not leak the address into the name
	stripped := emailRe.ReplaceAllString(text, "")
	if name, ok := extractName(stripped); ok {
		e["name"] = name
	}
	return e
}

func extractVoucherCreate(text string) map[string]string {
	e := map[string]string{}
	if v, ok := extractQuoted(text); ok {
		e["code"] = v
	} else if m := codeRe.FindStringSubmatch(text); m != nil {
		e["code"] = m[1]
	}
	if m := percentRe.FindStringSubmatch(text); m != nil {
		e["discount"] = m[1]
	}
	return e
}

func extractTelegramSend(text string) map[string]string {
	e := map[string]string{}
	if m := toChatRe.FindStringSubmatch(text); m != nil {
		e["chat_id"] = m[1]
	} else if m := chatRe.FindStringSubmatch(text); m != nil {
		e["chat_id"] = m[1]
	}
	if msg, ok := extractQuoted(text); ok {
		e["message"] = msg
	}
	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "markdown") || strings.Contains(lowered, "formatted") {
		e["markdown"] = "true"
	}
	return e
}

func extractEmailTemplate(text string) map[string]string {
	e := map[string]string{}
	if name, ok := extractName(text); ok {
		e["name"] = name
		return e
	}
	if m := templateRe.FindStringSubmatch(text); m != nil {
		// the word before "template" is usually the template name, unless
		// it is just sentence filler
		switch strings.ToLower(m[1]) {
		case "the", "a", "an", "my", "this", "that", "new", "email":
		default:
			e["name"] = m[1]
		}
	}
	return e
}

func extractStatsOverview(text string) map[string]string {
	e := map[string]string{}
	if m := periodRe.FindStringSubmatch(text); m != nil {
		e["period"] = strings.ToLower(m[1])
	}
	return e
}
