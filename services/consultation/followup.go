package consultation

import (
	"fmt"

	"asclepius/models"
	"asclepius/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// PrepareFollowUpReminder builds the WhatsApp deep link for a
// consultation's follow-up using the doctor's message template, then
// marks the consultation notified so the daily sweep skips it.
func (s *DefaultConsultationService) PrepareFollowUpReminder(consultationID string) (*FollowUpReminder, error) {
	consultation, err := s.Repo.GetByID(consultationID)
	if err != nil {
		return nil, err
	}
	if consultation.FollowUpDate == "" {
		return nil, ErrNoFollowUp
	}
	if consultation.FollowUpNotificationSent {
		return nil, ErrAlreadyNotified
	}

	patient, err := s.Patients.GetByID(consultation.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	doctor, err := s.Doctors.GetByID(consultation.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}

	template := doctor.WhatsAppTemplates.FollowUpReminder
	if template == "" {
		template = models.DefaultWhatsAppTemplates().FollowUpReminder
	}
	message := s.Notifier.FillTemplate(template, map[string]string{
		"patientName": patient.Name,
		"doctorName":  doctor.Name,
		"date":        consultation.FollowUpDate,
	})

	if err := s.Repo.UpdateSetDocument(consultationID, bson.M{"followUpNotificationSent": true}); err != nil {
		return nil, fmt.Errorf("failed to mark follow-up notified: %w", err)
	}

	utils.GetLogger().Info("Prepared follow-up reminder",
		zap.String("consultationID", consultationID),
		zap.String("doctorID", consultation.DoctorID),
		zap.String("followUpDate", consultation.FollowUpDate))

	return &FollowUpReminder{
		ConsultationID: consultationID,
		PatientName:    patient.Name,
		Phone:          patient.Phone,
		Message:        message,
		WhatsAppURL:    s.Notifier.BuildWhatsAppURL(patient.Phone, message),
	}, nil
}
