package models

import "time"

// Gender of a patient.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

// ValidGenders enumerates accepted gender values.
var ValidGenders = map[Gender]bool{Male: true, Female: true, Other: true}

// Patient is a patient record. CreatedBy holds the registering doctor's ID
// and is empty for self-registered patients.
type Patient struct {
	ID             string    `bson:"id" json:"id"`
	SchemaVersion  int       `bson:"schemaVersion" json:"-"`
	Name           string    `bson:"name" json:"name"`
	Phone          string    `bson:"phone" json:"phone"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	DateOfBirth    string    `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender         Gender    `bson:"gender" json:"gender"`
	Address        Address   `bson:"address" json:"address"`
	GovtIDType     string    `bson:"govtIdType,omitempty" json:"govtIdType,omitempty"`
	GovtIDNumber   string    `bson:"govtIdNumber,omitempty" json:"govtIdNumber,omitempty"`
	MedicalHistory string    `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	Allergies      []string  `bson:"allergies,omitempty" json:"allergies,omitempty"`
	CreatedBy      string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// PatientUpdate enumerates the patient fields that may change after
// registration. Nil pointers mean "leave unchanged".
type PatientUpdate struct {
	Name           *string   `json:"name,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Address        *Address  `json:"address,omitempty"`
	MedicalHistory *string   `json:"medicalHistory,omitempty"`
	Allergies      *[]string `json:"allergies,omitempty"`
}
