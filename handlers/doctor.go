package handlers

import (
	"errors"
	"net/http"

	"asclepius/models"
	"asclepius/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes doctor account endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler returns a DoctorHandler backed by the given service.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// RegisterDoctorHandler handles POST /api/doctors/register.
func (h *DoctorHandler) RegisterDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Doctor
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.RegisterDoctor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, doctor.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Doctor registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateDoctorHandler handles POST /api/doctors/login.
func (h *DoctorHandler) AuthenticateDoctorHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateDoctor(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetDoctorHandler handles GET /api/doctors/me.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	doc, err := h.Service.GetDoctorByID(id)
	if err != nil {
		logger.Error("Doctor not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateProfileHandler handles PUT /api/doctors/me/profile.
func (h *DoctorHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.DoctorProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateProfile(id, req)
	if err != nil {
		logger.Error("Profile update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateAvailabilityHandler handles PUT /api/doctors/me/availability.
func (h *DoctorHandler) UpdateAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AvailabilityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateAvailability(id, req)
	if err != nil {
		logger.Error("Availability update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateTemplatesHandler handles PUT /api/doctors/me/templates.
func (h *DoctorHandler) UpdateTemplatesHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.TemplatesUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateTemplates(id, req)
	if err != nil {
		logger.Error("Templates update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdatePasswordHandler handles PUT /api/doctors/me/password. It expects
// a JSON payload with "currentPassword" and "newPassword".
func (h *DoctorHandler) UpdatePasswordHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdatePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, doctor.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Password update failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated, please sign in again"})
}

// LogoutHandler handles POST /api/doctors/logout. The auth middleware has
// already validated the token; its hash identifies the session to end.
func (h *DoctorHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)
	id, ok := doctorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	tokenHash, exists := c.Get("tokenHash")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.RevokeAuthToken(c.Request.Context(), id, tokenHash.(string)); err != nil {
		logger.Error("Logout failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
