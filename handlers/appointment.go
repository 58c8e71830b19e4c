package handlers

import (
	"errors"
	"net/http"

	"asclepius/models"
	"asclepius/services/appointment"
	"asclepius/services/scheduling"
	"asclepius/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes booking and schedule endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler returns an AppointmentHandler backed by the given
// service.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// DaySlotsHandler handles GET /api/appointments/slots?date=. The date
// defaults to today.
func (h *AppointmentHandler) DaySlotsHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = utils.Today()
	}

	periods, err := h.Service.DaySlots(docID, date)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidDate) || errors.Is(err, scheduling.ErrInvalidDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Slot computation failed", zap.String("doctorID", docID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "periods": periods})
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.Appointment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.DoctorID = docID

	created, err := h.Service.BookAppointment(req)
	if err != nil {
		switch {
		case errors.Is(err, appointment.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, appointment.ErrSlotUnavailable),
			errors.Is(err, scheduling.ErrInvalidDate),
			errors.Is(err, scheduling.ErrInvalidTimeFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Booking failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListAppointmentsHandler handles GET /api/appointments with optional
// "date" or "patientId" filters.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var (
		appointments []models.Appointment
		err          error
	)
	switch {
	case c.Query("patientId") != "":
		appointments, err = h.Service.ListByPatient(c.Query("patientId"))
	case c.Query("date") != "":
		appointments, err = h.Service.ListByDoctorAndDate(docID, c.Query("date"))
	default:
		appointments, err = h.Service.ListByDoctor(docID)
	}
	if err != nil {
		logger.Error("Appointment listing failed", zap.String("doctorID", docID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	appt, err := h.Service.GetAppointmentByID(id)
	if err != nil {
		logger.Error("Appointment not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentStatusHandler handles PUT /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req models.AppointmentStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateStatus(id, req)
	if err != nil {
		if errors.Is(err, appointment.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Status update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DashboardStatsHandler handles GET /api/dashboard/stats.
func (h *AppointmentHandler) DashboardStatsHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.Service.DashboardStats(docID)
	if err != nil {
		logger.Error("Dashboard stats failed", zap.String("doctorID", docID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
