package patient

import (
	"fmt"
	"strings"
	"time"

	"asclepius/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// RegisterPatient validates and persists a new patient record owned by
// the given doctor. Phone numbers are unique across the practice so a
// returning patient is not registered twice.
func (s *DefaultPatientService) RegisterPatient(doctorID string, patient models.Patient) (*models.Patient, error) {
	patient.Name = strings.TrimSpace(patient.Name)
	patient.Phone = strings.TrimSpace(patient.Phone)
	patient.Email = strings.ToLower(strings.TrimSpace(patient.Email))

	if patient.Name == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if patient.Phone == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if patient.Gender != "" && !models.ValidGenders[patient.Gender] {
		return nil, fmt.Errorf("unknown gender %q", patient.Gender)
	}
	if patient.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", patient.DateOfBirth); err != nil {
			return nil, fmt.Errorf("invalid date of birth %q", patient.DateOfBirth)
		}
	}

	existing, err := s.Repo.GetByPhone(patient.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing patient: %w", err)
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	patient.ID = uuid.New().String()
	patient.CreatedBy = doctorID

	if err := s.Repo.Create(&patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return &patient, nil
}

// GetPatientByID retrieves a patient record.
func (s *DefaultPatientService) GetPatientByID(id string) (*models.Patient, error) {
	patient, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// GetPatientByPhone retrieves a patient by phone, nil if none exists.
func (s *DefaultPatientService) GetPatientByPhone(phone string) (*models.Patient, error) {
	return s.Repo.GetByPhone(strings.TrimSpace(phone))
}

// ListByDoctor retrieves all of a doctor's patients sorted by name.
func (s *DefaultPatientService) ListByDoctor(doctorID string) ([]models.Patient, error) {
	return s.Repo.GetByDoctor(doctorID)
}

// Search finds a doctor's patients by name, phone or email. An empty
// query returns the full list.
func (s *DefaultPatientService) Search(doctorID, query string) ([]models.Patient, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Repo.GetByDoctor(doctorID)
	}
	return s.Repo.Search(doctorID, query)
}

// UpdatePatient applies an explicit update command. Only the fields set
// on the command are written.
func (s *DefaultPatientService) UpdatePatient(id string, update models.PatientUpdate) (*models.Patient, error) {
	updateDoc := bson.M{}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("patient name cannot be empty")
		}
		updateDoc["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Phone != nil {
		phone := strings.TrimSpace(*update.Phone)
		if phone == "" {
			return nil, fmt.Errorf("phone number cannot be empty")
		}
		existing, err := s.Repo.GetByPhone(phone)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing patient: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, ErrPhoneTaken
		}
		updateDoc["phone"] = phone
	}
	if update.Email != nil {
		updateDoc["email"] = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.Address != nil {
		updateDoc["address"] = *update.Address
	}
	if update.MedicalHistory != nil {
		updateDoc["medicalHistory"] = *update.MedicalHistory
	}
	if update.Allergies != nil {
		updateDoc["allergies"] = *update.Allergies
	}
	if len(updateDoc) == 0 {
		return s.Repo.GetByID(id)
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}
