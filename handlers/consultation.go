package handlers

import (
	"errors"
	"net/http"

	"asclepius/models"
	"asclepius/services/consultation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsultationHandler exposes clinical record endpoints.
type ConsultationHandler struct {
	Service consultation.ConsultationService
}

// NewConsultationHandler returns a ConsultationHandler backed by the
// given service.
func NewConsultationHandler(svc consultation.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{Service: svc}
}

// RecordConsultationHandler handles POST /api/consultations.
func (h *ConsultationHandler) RecordConsultationHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.Consultation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.DoctorID = docID

	created, err := h.Service.RecordConsultation(req)
	if err != nil {
		logger.Error("Consultation recording failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListConsultationsHandler handles GET /api/consultations with optional
// "patientId" or "appointmentId" filters.
func (h *ConsultationHandler) ListConsultationsHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if appointmentID := c.Query("appointmentId"); appointmentID != "" {
		cons, err := h.Service.GetByAppointment(appointmentID)
		if err != nil {
			logger.Error("Consultation lookup failed", zap.String("appointmentId", appointmentID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if cons == nil {
			c.JSON(http.StatusOK, []models.Consultation{})
			return
		}
		c.JSON(http.StatusOK, []models.Consultation{*cons})
		return
	}

	var (
		consultations []models.Consultation
		err           error
	)
	if patientID := c.Query("patientId"); patientID != "" {
		consultations, err = h.Service.ListByPatient(patientID)
	} else {
		consultations, err = h.Service.ListByDoctor(docID)
	}
	if err != nil {
		logger.Error("Consultation listing failed", zap.String("doctorID", docID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if consultations == nil {
		consultations = []models.Consultation{}
	}
	c.JSON(http.StatusOK, consultations)
}

// GetConsultationHandler handles GET /api/consultations/:id.
func (h *ConsultationHandler) GetConsultationHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	cons, err := h.Service.GetConsultationByID(id)
	if err != nil {
		logger.Error("Consultation not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cons)
}

// UpdateConsultationHandler handles PUT /api/consultations/:id.
func (h *ConsultationHandler) UpdateConsultationHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req models.ConsultationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateConsultation(id, req)
	if err != nil {
		logger.Error("Consultation update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PendingFollowUpsHandler handles GET /api/consultations/followups with
// an optional "date" (defaults to today).
func (h *ConsultationHandler) PendingFollowUpsHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pending, err := h.Service.PendingFollowUps(docID, c.Query("date"))
	if err != nil {
		logger.Error("Follow-up listing failed", zap.String("doctorID", docID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if pending == nil {
		pending = []models.Consultation{}
	}
	c.JSON(http.StatusOK, pending)
}

// FollowUpReminderHandler handles POST /api/consultations/:id/followup-reminder.
func (h *ConsultationHandler) FollowUpReminderHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	reminder, err := h.Service.PrepareFollowUpReminder(id)
	if err != nil {
		switch {
		case errors.Is(err, consultation.ErrNoFollowUp):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, consultation.ErrAlreadyNotified):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Reminder preparation failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, reminder)
}
