package appointment

import (
	appointmentRepo "asclepius/database/repository/appointment"
	consultationRepo "asclepius/database/repository/consultation"
	doctorRepo "asclepius/database/repository/doctor"
	patientRepo "asclepius/database/repository/patient"
	"asclepius/models"
	"asclepius/services/scheduling"
)

// SlotView is a single bookable slot as rendered to the client. Booked
// slots are kept in the list and shown disabled, never removed.
type SlotView struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// PeriodSlots groups a day's slots under one display period. Periods with
// no slots are omitted from responses.
type PeriodSlots struct {
	Period scheduling.Period `json:"period"`
	Slots  []SlotView        `json:"slots"`
}

// DashboardStats is the practice summary shown on the doctor's dashboard.
type DashboardStats struct {
	Date              string `json:"date"`
	TodayAppointments int    `json:"todayAppointments"`
	TotalPatients     int    `json:"totalPatients"`
	PendingFollowUps  int    `json:"pendingFollowUps"`
}

// AppointmentService defines booking and schedule management methods.
type AppointmentService interface {
	// BookAppointment validates the requested slot and creates the booking.
	BookAppointment(appointment models.Appointment) (*models.Appointment, error)
	// GetAppointmentByID retrieves a single appointment.
	GetAppointmentByID(id string) (*models.Appointment, error)
	// ListByDoctor retrieves all appointments for a doctor.
	ListByDoctor(doctorID string) ([]models.Appointment, error)
	// ListByDoctorAndDate retrieves a doctor's appointments on a date.
	ListByDoctorAndDate(doctorID, date string) ([]models.Appointment, error)
	// ListByPatient retrieves all appointments for a patient.
	ListByPatient(patientID string) ([]models.Appointment, error)
	// DaySlots returns the doctor's bookable slots for a date, grouped by
	// period in display order, each flagged with its booked state.
	DaySlots(doctorID, date string) ([]PeriodSlots, error)
	// UpdateStatus transitions an appointment out of the scheduled state.
	UpdateStatus(id string, update models.AppointmentStatusUpdate) (*models.Appointment, error)
	// DashboardStats computes today's practice summary for a doctor.
	DashboardStats(doctorID string) (*DashboardStats, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo          appointmentRepo.AppointmentRepository
	Doctors       doctorRepo.DoctorRepository
	Patients      patientRepo.PatientRepository
	Consultations consultationRepo.ConsultationRepository
}
