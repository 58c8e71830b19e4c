package consultationRepo

import (
	"asclepius/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ConsultationRepository defines methods for consultation data access.
type ConsultationRepository interface {
	// GetByID retrieves a consultation by its unique ID.
	GetByID(id string) (*models.Consultation, error)
	// GetByDoctor retrieves all consultations recorded by a doctor.
	GetByDoctor(doctorID string) ([]models.Consultation, error)
	// GetByPatient retrieves all consultations for a patient.
	GetByPatient(patientID string) ([]models.Consultation, error)
	// GetByAppointment retrieves the consultation referencing an
	// appointment, nil if none exists.
	GetByAppointment(appointmentID string) (*models.Consultation, error)
	// GetPendingFollowUps retrieves a doctor's consultations whose
	// follow-up date is on or before the given date and which have not
	// been notified yet.
	GetPendingFollowUps(doctorID, date string) ([]models.Consultation, error)
	// GetDueFollowUps retrieves due, unnotified follow-ups across all
	// doctors, for the daily reminder sweep.
	GetDueFollowUps(date string) ([]models.Consultation, error)
	// Create inserts a new consultation record.
	Create(consultation *models.Consultation) error
	// UpdateSetDocument applies a $set of exactly the given fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
