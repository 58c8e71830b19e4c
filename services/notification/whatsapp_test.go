package notification

import (
	"testing"

	"asclepius/config"
	"asclepius/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildWhatsAppURL(t *testing.T) {
	config.AppConfig.WhatsAppCountryCode = "+91"
	svc := &DefaultNotificationService{}

	tests := []struct {
		name    string
		phone   string
		message string
		want    string
	}{
		{
			name:    "bare local number gets country code",
			phone:   "9876543210",
			message: "Hello",
			want:    "https://wa.me/919876543210?text=Hello",
		},
		{
			name:    "existing country code kept",
			phone:   "+14155550123",
			message: "Hello",
			want:    "https://wa.me/14155550123?text=Hello",
		},
		{
			name:    "formatting stripped",
			phone:   " 98765-43210 ",
			message: "Hello",
			want:    "https://wa.me/919876543210?text=Hello",
		},
		{
			name:    "message url-encoded",
			phone:   "9876543210",
			message: "See you at 2:05 PM & bring reports",
			want:    "https://wa.me/919876543210?text=See+you+at+2%3A05+PM+%26+bring+reports",
		},
		{
			name:  "empty message omits text parameter",
			phone: "9876543210",
			want:  "https://wa.me/919876543210",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.BuildWhatsAppURL(tt.phone, tt.message))
		})
	}
}

func TestFillTemplate(t *testing.T) {
	svc := &DefaultNotificationService{}

	got := svc.FillTemplate(
		"Hi {patientName}, see Dr. {doctorName} on {date}.",
		map[string]string{"patientName": "Asha", "doctorName": "Iyer", "date": "2025-06-02"},
	)
	assert.Equal(t, "Hi Asha, see Dr. Iyer on 2025-06-02.", got)

	// Unknown placeholders survive so broken templates are noticed.
	got = svc.FillTemplate("Hi {patientName}, tests: {testNames}.", map[string]string{"patientName": "Asha"})
	assert.Equal(t, "Hi Asha, tests: {testNames}.", got)
}

func TestDefaultTemplatesFill(t *testing.T) {
	svc := &DefaultNotificationService{}
	templates := models.DefaultWhatsAppTemplates()

	got := svc.FillTemplate(templates.FollowUpReminder, map[string]string{
		"patientName": "Asha Rao",
		"doctorName":  "Meena Iyer",
		"date":        "2025-06-09",
	})
	assert.Equal(t,
		"Hi Asha Rao, this is a reminder for your follow-up appointment with Dr. Meena Iyer on 2025-06-09. Please confirm your availability.",
		got)
}
