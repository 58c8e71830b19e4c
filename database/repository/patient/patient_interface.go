package patientRepo

import (
	"asclepius/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PatientRepository defines methods for patient data access.
type PatientRepository interface {
	// GetByID retrieves a patient by its unique ID.
	GetByID(id string) (*models.Patient, error)
	// GetByPhone retrieves a patient by phone number, nil if none exists.
	GetByPhone(phone string) (*models.Patient, error)
	// GetByDoctor retrieves all patients registered by a doctor.
	GetByDoctor(doctorID string) ([]models.Patient, error)
	// Search finds a doctor's patients matching the query against name,
	// phone or email (case-insensitive substring).
	Search(doctorID, query string) ([]models.Patient, error)
	// Create inserts a new patient record.
	Create(patient *models.Patient) error
	// UpdateSetDocument applies a $set of exactly the given fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
