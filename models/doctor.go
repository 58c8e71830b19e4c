package models

import "time"

// Speciality is the doctor's medical speciality.
type Speciality string

const (
	Cardiologist     Speciality = "Cardiologist"
	Oncologist       Speciality = "Oncologist"
	GeneralPhysician Speciality = "General Physician"
	Pulmonologist    Speciality = "Pulmonologist"
)

// ValidSpecialities enumerates the specialities accepted at signup.
var ValidSpecialities = map[Speciality]bool{
	Cardiologist: true, Oncologist: true, GeneralPhysician: true, Pulmonologist: true,
}

// AvailabilityWindow is a recurring weekly interval during which a doctor
// accepts bookings. Times are "HH:MM" on a 24-hour clock, end exclusive.
type AvailabilityWindow struct {
	Day       DayOfWeek `bson:"day" json:"day" binding:"required"`
	StartTime string    `bson:"startTime" json:"startTime" binding:"required"`
	EndTime   string    `bson:"endTime" json:"endTime" binding:"required"`
}

// WhatsAppTemplates holds the per-doctor reminder message templates.
// Placeholders use {name} syntax and are filled by the notification service.
type WhatsAppTemplates struct {
	FollowUpReminder    string `bson:"followUpReminder,omitempty" json:"followUpReminder,omitempty"`
	AppointmentReminder string `bson:"appointmentReminder,omitempty" json:"appointmentReminder,omitempty"`
	LabTestReminder     string `bson:"labTestReminder,omitempty" json:"labTestReminder,omitempty"`
}

// DefaultWhatsAppTemplates returns the reminder templates seeded onto new
// doctor accounts.
func DefaultWhatsAppTemplates() WhatsAppTemplates {
	return WhatsAppTemplates{
		FollowUpReminder:    "Hi {patientName}, this is a reminder for your follow-up appointment with Dr. {doctorName} on {date}. Please confirm your availability.",
		AppointmentReminder: "Hi {patientName}, you have an appointment with Dr. {doctorName} tomorrow at {time}. Please arrive 10 minutes early.",
		LabTestReminder:     "Hi {patientName}, please remember to get your lab tests done as prescribed by Dr. {doctorName}. Tests: {testNames}.",
	}
}

// Doctor is a practitioner account. Passwords are stored only as bcrypt
// hashes; the plaintext Password field is accepted on registration and
// cleared before the record is persisted.
type Doctor struct {
	ID                      string               `bson:"id" json:"id"`
	SchemaVersion           int                  `bson:"schemaVersion" json:"-"`
	Email                   string               `bson:"email" json:"email"`
	Password                string               `bson:"-" json:"password,omitempty"`
	PasswordHash            string               `bson:"password_hash" json:"-"`
	Name                    string               `bson:"name" json:"name"`
	Phone                   string               `bson:"phone" json:"phone"`
	Address                 Address              `bson:"address" json:"address"`
	Speciality              Speciality           `bson:"speciality" json:"speciality"`
	GovtIDType              string               `bson:"govtIdType" json:"govtIdType"`
	GovtIDNumber            string               `bson:"govtIdNumber" json:"govtIdNumber"`
	MedicalLicenseNumber    string               `bson:"medicalLicenseNumber" json:"medicalLicenseNumber"`
	WalkInAvailability      []AvailabilityWindow `bson:"walkInAvailability" json:"walkInAvailability"`
	AppointmentAvailability []AvailabilityWindow `bson:"appointmentAvailability" json:"appointmentAvailability"`
	AppointmentDuration     int                  `bson:"appointmentDuration" json:"appointmentDuration"`
	WhatsAppTemplates       WhatsAppTemplates    `bson:"whatsAppTemplates" json:"whatsAppTemplates"`
	TokenHash               string               `bson:"token_hash,omitempty" json:"-"`
	CreatedAt               time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt               time.Time            `bson:"updated_at" json:"updated_at"`
}

// DoctorProfileUpdate enumerates the profile fields a doctor may change.
// Nil pointers mean "leave unchanged"; nothing outside this set is touched.
type DoctorProfileUpdate struct {
	Name    *string  `json:"name,omitempty"`
	Phone   *string  `json:"phone,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// AvailabilityUpdate replaces a doctor's availability configuration
// wholesale. Windows are validated before persisting.
type AvailabilityUpdate struct {
	WalkInAvailability      []AvailabilityWindow `json:"walkInAvailability"`
	AppointmentAvailability []AvailabilityWindow `json:"appointmentAvailability"`
	AppointmentDuration     int                  `json:"appointmentDuration"`
}

// TemplatesUpdate replaces the doctor's WhatsApp reminder templates.
type TemplatesUpdate struct {
	FollowUpReminder    *string `json:"followUpReminder,omitempty"`
	AppointmentReminder *string `json:"appointmentReminder,omitempty"`
	LabTestReminder     *string `json:"labTestReminder,omitempty"`
}
