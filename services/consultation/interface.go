package consultation

import (
	consultationRepo "asclepius/database/repository/consultation"
	doctorRepo "asclepius/database/repository/doctor"
	patientRepo "asclepius/database/repository/patient"
	"asclepius/models"
	"asclepius/services/notification"
)

// FollowUpReminder is the result of preparing a reminder: the WhatsApp
// deep link the client opens plus the message it carries.
type FollowUpReminder struct {
	ConsultationID string `json:"consultationId"`
	PatientName    string `json:"patientName"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	WhatsAppURL    string `json:"whatsAppUrl"`
}

// ConsultationService defines clinical record management methods.
type ConsultationService interface {
	// RecordConsultation persists a new consultation record.
	RecordConsultation(consultation models.Consultation) (*models.Consultation, error)
	// GetConsultationByID retrieves a single consultation.
	GetConsultationByID(id string) (*models.Consultation, error)
	// ListByDoctor retrieves a doctor's consultations, newest first.
	ListByDoctor(doctorID string) ([]models.Consultation, error)
	// ListByPatient retrieves a patient's consultation history.
	ListByPatient(patientID string) ([]models.Consultation, error)
	// GetByAppointment retrieves the consultation for an appointment,
	// nil if none was recorded.
	GetByAppointment(appointmentID string) (*models.Consultation, error)
	// UpdateConsultation applies an explicit update command.
	UpdateConsultation(id string, update models.ConsultationUpdate) (*models.Consultation, error)
	// PendingFollowUps lists a doctor's due, unnotified follow-ups as of
	// the given date.
	PendingFollowUps(doctorID, date string) ([]models.Consultation, error)
	// PrepareFollowUpReminder builds the WhatsApp reminder link for a
	// consultation's follow-up and marks the consultation notified.
	PrepareFollowUpReminder(consultationID string) (*FollowUpReminder, error)
}

// DefaultConsultationService is the production implementation.
type DefaultConsultationService struct {
	Repo     consultationRepo.ConsultationRepository
	Doctors  doctorRepo.DoctorRepository
	Patients patientRepo.PatientRepository
	Notifier notification.NotificationService
}
