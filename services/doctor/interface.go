package doctor

import (
	"context"
	"time"

	doctorRepo "asclepius/database/repository/doctor"
	"asclepius/models"
	"asclepius/utils"
)

// AuthResponse is returned after registration or authentication.
type AuthResponse struct {
	ID        string         `json:"id"`
	Token     string         `json:"token"`
	Doctor    *models.Doctor `json:"doctor"`
	CreatedAt time.Time      `json:"created_at"`
}

// DoctorService defines doctor account management methods.
type DoctorService interface {
	// RegisterDoctor creates a new doctor account and opens a session.
	RegisterDoctor(ctx context.Context, doctor models.Doctor) (*AuthResponse, error)
	// AuthenticateDoctor verifies credentials and opens a session.
	AuthenticateDoctor(ctx context.Context, email, password string) (*AuthResponse, error)
	// RevokeAuthToken ends the session for the given token hash.
	RevokeAuthToken(ctx context.Context, doctorID, tokenHash string) error
	// GetDoctorByID retrieves a doctor record without credential fields.
	GetDoctorByID(id string) (*models.Doctor, error)
	// UpdateProfile applies an explicit profile update command.
	UpdateProfile(id string, update models.DoctorProfileUpdate) (*models.Doctor, error)
	// UpdateAvailability replaces the availability configuration.
	UpdateAvailability(id string, update models.AvailabilityUpdate) (*models.Doctor, error)
	// UpdateTemplates replaces the WhatsApp reminder templates.
	UpdateTemplates(id string, update models.TemplatesUpdate) (*models.Doctor, error)
	// UpdatePassword verifies the current password and sets a new one.
	UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo     doctorRepo.DoctorRepository
	Sessions *utils.SessionStore
}
