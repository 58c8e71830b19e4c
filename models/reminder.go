package models

// ReminderPayload is the asynq task payload for a follow-up reminder.
// The worker never sends messages itself; it prepares the WhatsApp link
// and parks it in the cache for the doctor's next dashboard load.
type ReminderPayload struct {
	ConsultationID string `json:"consultationId"`
	DoctorID       string `json:"doctorId"`
	PatientID      string `json:"patientId"`
	FollowUpDate   string `json:"followUpDate"`
}
