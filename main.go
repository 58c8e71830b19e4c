package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asclepius/config"
	"asclepius/cron"
	"asclepius/database"
	appointmentRepoPkg "asclepius/database/repository/appointment"
	consultationRepoPkg "asclepius/database/repository/consultation"
	doctorRepoPkg "asclepius/database/repository/doctor"
	patientRepoPkg "asclepius/database/repository/patient"
	"asclepius/handlers"
	"asclepius/middleware"
	"asclepius/routes"
	"asclepius/services/appointment"
	"asclepius/services/consultation"
	"asclepius/services/doctor"
	"asclepius/services/notification"
	"asclepius/services/patient"
	"asclepius/utils"

	"github.com/gin-gonic/gin"
)

const sessionTTL = 24 * time.Hour

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	sessionStore := utils.NewSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	consRepo := consultationRepoPkg.NewMongoConsultationRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{}

	doctorService := &doctor.DefaultDoctorService{
		Repo:     docRepo,
		Sessions: sessionStore,
	}
	patientService := &patient.DefaultPatientService{
		Repo: patRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Repo:          apptRepo,
		Doctors:       docRepo,
		Patients:      patRepo,
		Consultations: consRepo,
	}
	consultationService := &consultation.DefaultConsultationService{
		Repo:     consRepo,
		Doctors:  docRepo,
		Patients: patRepo,
		Notifier: notificationService,
	}

	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		DoctorRepo: docRepo,
		Sessions:   sessionStore,

		RegisterDoctorHandler:     doctorHandler.RegisterDoctorHandler,
		AuthenticateDoctorHandler: doctorHandler.AuthenticateDoctorHandler,
		GetDoctorHandler:          doctorHandler.GetDoctorHandler,
		UpdateProfileHandler:      doctorHandler.UpdateProfileHandler,
		UpdateAvailabilityHandler: doctorHandler.UpdateAvailabilityHandler,
		UpdateTemplatesHandler:    doctorHandler.UpdateTemplatesHandler,
		UpdatePasswordHandler:     doctorHandler.UpdatePasswordHandler,
		LogoutHandler:             doctorHandler.LogoutHandler,

		RegisterPatientHandler: patientHandler.RegisterPatientHandler,
		ListPatientsHandler:    patientHandler.ListPatientsHandler,
		GetPatientHandler:      patientHandler.GetPatientHandler,
		UpdatePatientHandler:   patientHandler.UpdatePatientHandler,

		DaySlotsHandler:                appointmentHandler.DaySlotsHandler,
		BookAppointmentHandler:         appointmentHandler.BookAppointmentHandler,
		ListAppointmentsHandler:        appointmentHandler.ListAppointmentsHandler,
		GetAppointmentHandler:          appointmentHandler.GetAppointmentHandler,
		UpdateAppointmentStatusHandler: appointmentHandler.UpdateAppointmentStatusHandler,

		RecordConsultationHandler: consultationHandler.RecordConsultationHandler,
		ListConsultationsHandler:  consultationHandler.ListConsultationsHandler,
		GetConsultationHandler:    consultationHandler.GetConsultationHandler,
		UpdateConsultationHandler: consultationHandler.UpdateConsultationHandler,
		PendingFollowUpsHandler:   consultationHandler.PendingFollowUpsHandler,
		FollowUpReminderHandler:   consultationHandler.FollowUpReminderHandler,

		DashboardStatsHandler: appointmentHandler.DashboardStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background follow-up reminder worker and health monitor.
	cron.InitReminderWorker(consRepo)
	utils.StartHealthMonitor(
		utils.GetCacheClient(),
		utils.GetSessionCacheClient(),
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
