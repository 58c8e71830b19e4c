package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"asclepius/models"
	"asclepius/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 24 * time.Hour

// RegisterDoctor creates a new doctor account, hashes the password,
// persists the record, issues a JWT and opens a session.
func (s *DefaultDoctorService) RegisterDoctor(ctx context.Context, doctor models.Doctor) (*AuthResponse, error) {
	doctor.Email = strings.ToLower(strings.TrimSpace(doctor.Email))

	if doctor.Email == "" || doctor.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if doctor.Name == "" {
		return nil, fmt.Errorf("doctor name is required")
	}
	if doctor.Phone == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if !models.ValidSpecialities[doctor.Speciality] {
		return nil, fmt.Errorf("unknown speciality %q", doctor.Speciality)
	}
	if doctor.MedicalLicenseNumber == "" {
		return nil, fmt.Errorf("medical license number is required")
	}
	if err := validateAvailability(doctor.AppointmentAvailability, doctor.AppointmentDuration); err != nil {
		return nil, err
	}
	if err := validateWindows(doctor.WalkInAvailability); err != nil {
		return nil, err
	}
	if err := VerifyPasswordComplexity(doctor.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(doctor.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	doctor.PasswordHash = string(hashedPassword)
	doctor.Password = ""

	if doctor.WhatsAppTemplates == (models.WhatsAppTemplates{}) {
		doctor.WhatsAppTemplates = models.DefaultWhatsAppTemplates()
	}

	doctor.ID = uuid.New().String()

	existing, err := s.Repo.GetByEmailWithProjection(doctor.Email, bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing doctor: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if err := s.Repo.Create(&doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	token, err := s.openSession(ctx, &doctor)
	if err != nil {
		return nil, err
	}

	doctor.PasswordHash = ""
	return &AuthResponse{
		ID:        doctor.ID,
		Token:     token,
		Doctor:    &doctor,
		CreatedAt: doctor.CreatedAt,
	}, nil
}

// openSession issues a JWT, persists its hash on the doctor record and
// creates the explicit session entry.
func (s *DefaultDoctorService) openSession(ctx context.Context, doctor *models.Doctor) (string, error) {
	token, err := utils.GenerateToken(doctor.ID, doctor.Email, tokenValidity)
	if err != nil {
		return "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(doctor.ID, bson.M{"token_hash": tokenHash}); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}

	sess := utils.Session{
		DoctorID:  doctor.ID,
		Email:     doctor.Email,
		State:     utils.SessionAuthenticated,
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Save(ctx, tokenHash, sess); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}
