package appointment

import (
	"fmt"

	"asclepius/models"
	"asclepius/services/scheduling"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// BookAppointment validates the request against the doctor's availability
// and existing bookings, then persists it. Scheduled appointments must
// land on a generated slot; walk-ins only need a well-formed time. Either
// way the slot must not already hold an active appointment. A unique
// partial index on (doctorId, date, time) backstops the conflict check
// against concurrent bookings.
func (s *DefaultAppointmentService) BookAppointment(appointment models.Appointment) (*models.Appointment, error) {
	if appointment.Type == "" {
		appointment.Type = models.TypeScheduled
	}
	if appointment.Type != models.TypeScheduled && appointment.Type != models.TypeWalkIn {
		return nil, fmt.Errorf("unknown appointment type %q", appointment.Type)
	}
	if appointment.PatientID == "" || appointment.DoctorID == "" {
		return nil, fmt.Errorf("patient and doctor IDs are required")
	}
	if _, _, err := scheduling.ParseHHMM(appointment.Time); err != nil {
		return nil, err
	}

	if _, err := s.Patients.GetByID(appointment.PatientID); err != nil {
		return nil, fmt.Errorf("failed to fetch patient: %w", err)
	}
	doctor, err := s.Doctors.GetByID(appointment.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctor: %w", err)
	}

	windows := doctor.AppointmentAvailability
	if appointment.Type == models.TypeWalkIn {
		windows = doctor.WalkInAvailability
	}
	slots, err := scheduling.GenerateSlots(windows, doctor.AppointmentDuration, appointment.Date)
	if err != nil {
		return nil, err
	}
	if appointment.Type == models.TypeScheduled && !contains(slots, appointment.Time) {
		return nil, ErrSlotUnavailable
	}

	existing, err := s.Repo.GetByDoctorAndDate(appointment.DoctorID, appointment.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing appointments: %w", err)
	}
	booked := scheduling.BookedSet(existing, appointment.DoctorID, appointment.Date)
	if _, taken := booked[appointment.Time]; taken {
		return nil, ErrSlotTaken
	}

	appointment.ID = uuid.New().String()
	appointment.Status = models.StatusScheduled

	if err := s.Repo.Create(&appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appointment, nil
}

// GetAppointmentByID retrieves a single appointment.
func (s *DefaultAppointmentService) GetAppointmentByID(id string) (*models.Appointment, error) {
	return s.Repo.GetByID(id)
}

// ListByDoctor retrieves all appointments for a doctor.
func (s *DefaultAppointmentService) ListByDoctor(doctorID string) ([]models.Appointment, error) {
	return s.Repo.GetByDoctor(doctorID)
}

// ListByDoctorAndDate retrieves a doctor's appointments on a date.
func (s *DefaultAppointmentService) ListByDoctorAndDate(doctorID, date string) ([]models.Appointment, error) {
	return s.Repo.GetByDoctorAndDate(doctorID, date)
}

// ListByPatient retrieves all appointments for a patient.
func (s *DefaultAppointmentService) ListByPatient(patientID string) ([]models.Appointment, error) {
	return s.Repo.GetByPatient(patientID)
}

// UpdateStatus applies a status transition. Only appointments still in
// the scheduled state may move, and only to a valid terminal status.
func (s *DefaultAppointmentService) UpdateStatus(id string, update models.AppointmentStatusUpdate) (*models.Appointment, error) {
	if !models.ValidStatuses[update.Status] {
		return nil, fmt.Errorf("unknown appointment status %q", update.Status)
	}

	appointment, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment.Status != models.StatusScheduled {
		return nil, ErrInvalidTransition
	}
	if update.Status == models.StatusScheduled {
		return appointment, nil
	}

	if err := s.Repo.UpdateSetDocument(id, bson.M{"status": update.Status}); err != nil {
		return nil, err
	}
	appointment.Status = update.Status
	return appointment, nil
}

func contains(slots []string, t string) bool {
	for _, slot := range slots {
		if slot == t {
			return true
		}
	}
	return false
}
