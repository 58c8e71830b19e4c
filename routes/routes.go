package routes

import (
	"time"

	"asclepius/handlers"
	"asclepius/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers doctor account endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("/register", hb.RegisterDoctorHandler)
		api.POST("/login", hb.AuthenticateDoctorHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo, hb.Sessions))
		protected.GET("/me", hb.GetDoctorHandler)
		protected.PUT("/me/profile", hb.UpdateProfileHandler)
		protected.PUT("/me/availability", hb.UpdateAvailabilityHandler)
		protected.PUT("/me/templates", hb.UpdateTemplatesHandler)
		protected.PUT("/me/password", hb.UpdatePasswordHandler)
		protected.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterPatientRoutes registers patient record endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo, hb.Sessions))
		api.POST("", hb.RegisterPatientHandler)
		api.GET("", hb.ListPatientsHandler)
		api.GET("/:id", hb.GetPatientHandler)
		api.PUT("/:id", hb.UpdatePatientHandler)
	}
}

// RegisterAppointmentRoutes registers booking and slot endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo, hb.Sessions))
		api.GET("/slots", hb.DaySlotsHandler)
		api.POST("", hb.BookAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PUT("/:id/status", hb.UpdateAppointmentStatusHandler)
	}
}

// RegisterConsultationRoutes registers clinical record endpoints.
func RegisterConsultationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultations")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo, hb.Sessions))
		api.POST("", hb.RecordConsultationHandler)
		api.GET("", hb.ListConsultationsHandler)
		api.GET("/followups", hb.PendingFollowUpsHandler)
		api.GET("/:id", hb.GetConsultationHandler)
		api.PUT("/:id", hb.UpdateConsultationHandler)
		api.POST("/:id/followup-reminder", hb.FollowUpReminderHandler)
	}
}

// RegisterDashboardRoutes registers the practice summary endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthDoctorMiddleware(hb.DoctorRepo, hb.Sessions))
		api.GET("/stats", hb.DashboardStatsHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/healthz", handlers.HealthzHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterConsultationRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
