package notification

import (
	"net/url"
	"strings"

	"asclepius/config"
)

// BuildWhatsAppURL constructs a wa.me deep link. Formatting characters
// are stripped from the phone number and the configured country code is
// prefixed when the number carries none.
func (s *DefaultNotificationService) BuildWhatsAppURL(phone, message string) string {
	number := normalizePhone(phone)
	link := "https://wa.me/" + number
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// FillTemplate substitutes {placeholder} tokens. Unknown placeholders are
// left in place so a misconfigured template stays visible.
func (s *DefaultNotificationService) FillTemplate(template string, values map[string]string) string {
	out := template
	for key, value := range values {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

// normalizePhone reduces a phone number to digits, keeping a leading "+"
// only to detect an existing country code. wa.me links carry the number
// without the plus sign.
func normalizePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	hasCode := strings.HasPrefix(trimmed, "+")

	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if hasCode {
		return number
	}

	code := config.AppConfig.WhatsAppCountryCode
	code = strings.TrimPrefix(strings.TrimSpace(code), "+")
	return code + number
}
