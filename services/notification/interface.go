package notification

// NotificationService prepares reminder messages and WhatsApp deep links.
// It never sends anything over the network; the client opens the link.
type NotificationService interface {
	// BuildWhatsAppURL constructs a wa.me deep link for a phone number
	// and pre-filled message.
	BuildWhatsAppURL(phone, message string) string
	// FillTemplate substitutes {placeholder} tokens in a message template.
	FillTemplate(template string, values map[string]string) string
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct{}
