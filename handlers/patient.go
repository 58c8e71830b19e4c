package handlers

import (
	"errors"
	"net/http"

	"asclepius/models"
	"asclepius/services/patient"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientHandler exposes patient record endpoints.
type PatientHandler struct {
	Service patient.PatientService
}

// NewPatientHandler returns a PatientHandler backed by the given service.
func NewPatientHandler(svc patient.PatientService) *PatientHandler {
	return &PatientHandler{Service: svc}
}

// RegisterPatientHandler handles POST /api/patients.
func (h *PatientHandler) RegisterPatientHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.Patient
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid patient payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.RegisterPatient(docID, req)
	if err != nil {
		if errors.Is(err, patient.ErrPhoneTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Patient registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPatientsHandler handles GET /api/patients. An optional "q" query
// searches name, phone and email.
func (h *PatientHandler) ListPatientsHandler(c *gin.Context) {
	logger := getLogger(c)
	docID, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	patients, err := h.Service.Search(docID, c.Query("q"))
	if err != nil {
		logger.Error("Patient listing failed", zap.String("doctorID", docID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	c.JSON(http.StatusOK, patients)
}

// GetPatientHandler handles GET /api/patients/:id.
func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	p, err := h.Service.GetPatientByID(id)
	if err != nil {
		logger.Error("Patient not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePatientHandler handles PUT /api/patients/:id.
func (h *PatientHandler) UpdatePatientHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var req models.PatientUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdatePatient(id, req)
	if err != nil {
		if errors.Is(err, patient.ErrPhoneTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Patient update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
