package models

import "time"

// Vitals captured during a consultation. All fields optional.
type Vitals struct {
	BloodPressure string  `bson:"bloodPressure,omitempty" json:"bloodPressure,omitempty"`
	Pulse         int     `bson:"pulse,omitempty" json:"pulse,omitempty"`
	Temperature   float64 `bson:"temperature,omitempty" json:"temperature,omitempty"`
	Weight        float64 `bson:"weight,omitempty" json:"weight,omitempty"`
	Height        float64 `bson:"height,omitempty" json:"height,omitempty"`
	SpO2          int     `bson:"spo2,omitempty" json:"spo2,omitempty"`
}

// Medication is a single prescribed medication line.
type Medication struct {
	Name         string `bson:"name" json:"name"`
	Dosage       string `bson:"dosage" json:"dosage"`
	Frequency    string `bson:"frequency" json:"frequency"`
	Duration     string `bson:"duration" json:"duration"`
	Instructions string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// LabTestStatus tracks whether an ordered test has results back.
type LabTestStatus string

const (
	LabTestOrdered   LabTestStatus = "ordered"
	LabTestCompleted LabTestStatus = "completed"
)

// LabTest is a test ordered during a consultation.
type LabTest struct {
	Name        string        `bson:"name" json:"name"`
	Status      LabTestStatus `bson:"status" json:"status"`
	Results     string        `bson:"results,omitempty" json:"results,omitempty"`
	OrderedAt   time.Time     `bson:"orderedAt" json:"orderedAt"`
	CompletedAt *time.Time    `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// Consultation is the clinical record of a visit. AppointmentID may
// reference an appointment that no longer exists; orphaned references are
// tolerated rather than rejected.
type Consultation struct {
	ID                       string       `bson:"id" json:"id"`
	SchemaVersion            int          `bson:"schemaVersion" json:"-"`
	AppointmentID            string       `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	PatientID                string       `bson:"patientId" json:"patientId"`
	DoctorID                 string       `bson:"doctorId" json:"doctorId"`
	Date                     string       `bson:"date" json:"date"`
	PlaceOfConsultation      string       `bson:"placeOfConsultation" json:"placeOfConsultation"`
	Symptoms                 []string     `bson:"symptoms" json:"symptoms"`
	Vitals                   Vitals       `bson:"vitals" json:"vitals"`
	Examinations             string       `bson:"examinations,omitempty" json:"examinations,omitempty"`
	Diagnosis                []string     `bson:"diagnosis" json:"diagnosis"`
	PrescribedMedications    []Medication `bson:"prescribedMedications" json:"prescribedMedications"`
	LabTests                 []LabTest    `bson:"labTests" json:"labTests"`
	Advice                   string       `bson:"advice,omitempty" json:"advice,omitempty"`
	FollowUpDate             string       `bson:"followUpDate,omitempty" json:"followUpDate,omitempty"`
	FollowUpNotificationSent bool         `bson:"followUpNotificationSent" json:"followUpNotificationSent"`
	CreatedAt                time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt                time.Time    `bson:"updated_at" json:"updated_at"`
}

// ConsultationUpdate enumerates the consultation fields that may change
// after the record is written (amendments and lab-test results).
type ConsultationUpdate struct {
	Examinations          *string       `json:"examinations,omitempty"`
	Diagnosis             *[]string     `json:"diagnosis,omitempty"`
	PrescribedMedications *[]Medication `json:"prescribedMedications,omitempty"`
	LabTests              *[]LabTest    `json:"labTests,omitempty"`
	Advice                *string       `json:"advice,omitempty"`
	FollowUpDate          *string       `json:"followUpDate,omitempty"`
}
