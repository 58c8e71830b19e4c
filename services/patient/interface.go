package patient

import (
	patientRepo "asclepius/database/repository/patient"
	"asclepius/models"
)

// PatientService defines patient record management methods.
type PatientService interface {
	// RegisterPatient creates a new patient record for a doctor.
	RegisterPatient(doctorID string, patient models.Patient) (*models.Patient, error)
	// GetPatientByID retrieves a patient record.
	GetPatientByID(id string) (*models.Patient, error)
	// GetPatientByPhone retrieves a patient by phone, nil if none exists.
	GetPatientByPhone(phone string) (*models.Patient, error)
	// ListByDoctor retrieves all of a doctor's patients.
	ListByDoctor(doctorID string) ([]models.Patient, error)
	// Search finds a doctor's patients by name, phone or email.
	Search(doctorID, query string) ([]models.Patient, error)
	// UpdatePatient applies an explicit update command.
	UpdatePatient(id string, update models.PatientUpdate) (*models.Patient, error)
}

// DefaultPatientService is the production implementation.
type DefaultPatientService struct {
	Repo patientRepo.PatientRepository
}
