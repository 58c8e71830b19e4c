package consultation

import (
	"fmt"
	"time"

	"asclepius/models"
	"asclepius/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// RecordConsultation validates and persists a new consultation. The
// appointment reference is not checked: a consultation may outlive its
// appointment, and walk-in visits have none.
func (s *DefaultConsultationService) RecordConsultation(consultation models.Consultation) (*models.Consultation, error) {
	if consultation.PatientID == "" || consultation.DoctorID == "" {
		return nil, fmt.Errorf("patient and doctor IDs are required")
	}
	if consultation.Date == "" {
		consultation.Date = utils.Today()
	}
	if _, err := time.Parse("2006-01-02", consultation.Date); err != nil {
		return nil, fmt.Errorf("invalid consultation date %q", consultation.Date)
	}
	if consultation.FollowUpDate != "" {
		if _, err := time.Parse("2006-01-02", consultation.FollowUpDate); err != nil {
			return nil, fmt.Errorf("invalid follow-up date %q", consultation.FollowUpDate)
		}
	}

	if _, err := s.Patients.GetByID(consultation.PatientID); err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}

	now := time.Now()
	for i := range consultation.LabTests {
		if consultation.LabTests[i].Status == "" {
			consultation.LabTests[i].Status = models.LabTestOrdered
		}
		if consultation.LabTests[i].OrderedAt.IsZero() {
			consultation.LabTests[i].OrderedAt = now
		}
	}

	consultation.ID = uuid.New().String()
	consultation.FollowUpNotificationSent = false

	if err := s.Repo.Create(&consultation); err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}
	return &consultation, nil
}

// GetConsultationByID retrieves a single consultation.
func (s *DefaultConsultationService) GetConsultationByID(id string) (*models.Consultation, error) {
	return s.Repo.GetByID(id)
}

// ListByDoctor retrieves a doctor's consultations, newest first.
func (s *DefaultConsultationService) ListByDoctor(doctorID string) ([]models.Consultation, error) {
	return s.Repo.GetByDoctor(doctorID)
}

// ListByPatient retrieves a patient's consultation history.
func (s *DefaultConsultationService) ListByPatient(patientID string) ([]models.Consultation, error) {
	return s.Repo.GetByPatient(patientID)
}

// GetByAppointment retrieves the consultation for an appointment, nil if
// none was recorded.
func (s *DefaultConsultationService) GetByAppointment(appointmentID string) (*models.Consultation, error) {
	return s.Repo.GetByAppointment(appointmentID)
}

// UpdateConsultation applies an explicit update command. Setting a new
// follow-up date re-arms the reminder.
func (s *DefaultConsultationService) UpdateConsultation(id string, update models.ConsultationUpdate) (*models.Consultation, error) {
	updateDoc := bson.M{}
	if update.Examinations != nil {
		updateDoc["examinations"] = *update.Examinations
	}
	if update.Diagnosis != nil {
		updateDoc["diagnosis"] = *update.Diagnosis
	}
	if update.PrescribedMedications != nil {
		updateDoc["prescribedMedications"] = *update.PrescribedMedications
	}
	if update.LabTests != nil {
		updateDoc["labTests"] = *update.LabTests
	}
	if update.Advice != nil {
		updateDoc["advice"] = *update.Advice
	}
	if update.FollowUpDate != nil {
		if *update.FollowUpDate != "" {
			if _, err := time.Parse("2006-01-02", *update.FollowUpDate); err != nil {
				return nil, fmt.Errorf("invalid follow-up date %q", *update.FollowUpDate)
			}
		}
		updateDoc["followUpDate"] = *update.FollowUpDate
		updateDoc["followUpNotificationSent"] = false
	}
	if len(updateDoc) == 0 {
		return s.Repo.GetByID(id)
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// PendingFollowUps lists a doctor's due, unnotified follow-ups as of the
// given date. An empty date means today.
func (s *DefaultConsultationService) PendingFollowUps(doctorID, date string) ([]models.Consultation, error) {
	if date == "" {
		date = utils.Today()
	}
	return s.Repo.GetPendingFollowUps(doctorID, date)
}
