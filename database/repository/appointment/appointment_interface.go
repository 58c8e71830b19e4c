package appointmentRepo

import (
	"asclepius/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetByDoctor retrieves all appointments for a doctor.
	GetByDoctor(doctorID string) ([]models.Appointment, error)
	// GetByDoctorAndDate retrieves a doctor's appointments on a calendar
	// date, sorted by slot time.
	GetByDoctorAndDate(doctorID, date string) ([]models.Appointment, error)
	// GetByPatient retrieves all appointments for a patient.
	GetByPatient(patientID string) ([]models.Appointment, error)
	// Create inserts a new appointment record.
	Create(appointment *models.Appointment) error
	// UpdateSetDocument applies a $set of exactly the given fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
