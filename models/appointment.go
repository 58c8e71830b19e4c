package models

import "time"

// AppointmentType distinguishes pre-booked visits from walk-ins.
type AppointmentType string

const (
	TypeScheduled AppointmentType = "scheduled"
	TypeWalkIn    AppointmentType = "walkin"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

// ValidStatuses enumerates accepted appointment statuses.
var ValidStatuses = map[AppointmentStatus]bool{
	StatusScheduled: true, StatusCompleted: true,
	StatusCancelled: true, StatusNoShow: true,
}

// Occupies reports whether an appointment in this status still holds its
// slot. Cancelled and no-show appointments free the slot for re-booking.
func (s AppointmentStatus) Occupies() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// Appointment is a single booked (or walk-in) visit. Date is "YYYY-MM-DD"
// and Time is the "HH:MM" slot start on the doctor's calendar.
type Appointment struct {
	ID                  string            `bson:"id" json:"id"`
	SchemaVersion       int               `bson:"schemaVersion" json:"-"`
	PatientID           string            `bson:"patientId" json:"patientId"`
	DoctorID            string            `bson:"doctorId" json:"doctorId"`
	Type                AppointmentType   `bson:"type" json:"type"`
	Date                string            `bson:"date" json:"date"`
	Time                string            `bson:"time" json:"time"`
	Status              AppointmentStatus `bson:"status" json:"status"`
	ReasonForVisit      string            `bson:"reasonForVisit,omitempty" json:"reasonForVisit,omitempty"`
	RemarksForReception string            `bson:"remarksForReception,omitempty" json:"remarksForReception,omitempty"`
	CreatedAt           time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time         `bson:"updated_at" json:"updated_at"`
}

// AppointmentStatusUpdate is the only mutation an appointment supports
// after creation: a status transition out of "scheduled".
type AppointmentStatusUpdate struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
