package handlers

import (
	doctorRepoPkg "asclepius/database/repository/doctor"
	"asclepius/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, assembled
// once at the composition root and handed to route registration.
type HandlerBundle struct {
	DoctorRepo doctorRepoPkg.DoctorRepository
	Sessions   *utils.SessionStore

	// Doctor account endpoints
	RegisterDoctorHandler     gin.HandlerFunc
	AuthenticateDoctorHandler gin.HandlerFunc
	GetDoctorHandler          gin.HandlerFunc
	UpdateProfileHandler      gin.HandlerFunc
	UpdateAvailabilityHandler gin.HandlerFunc
	UpdateTemplatesHandler    gin.HandlerFunc
	UpdatePasswordHandler     gin.HandlerFunc
	LogoutHandler             gin.HandlerFunc

	// Patient endpoints
	RegisterPatientHandler gin.HandlerFunc
	ListPatientsHandler    gin.HandlerFunc
	GetPatientHandler      gin.HandlerFunc
	UpdatePatientHandler   gin.HandlerFunc

	// Appointment endpoints
	DaySlotsHandler                gin.HandlerFunc
	BookAppointmentHandler         gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
	GetAppointmentHandler          gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc

	// Consultation endpoints
	RecordConsultationHandler gin.HandlerFunc
	ListConsultationsHandler  gin.HandlerFunc
	GetConsultationHandler    gin.HandlerFunc
	UpdateConsultationHandler gin.HandlerFunc
	PendingFollowUpsHandler   gin.HandlerFunc
	FollowUpReminderHandler   gin.HandlerFunc

	// Dashboard
	DashboardStatsHandler gin.HandlerFunc
}
