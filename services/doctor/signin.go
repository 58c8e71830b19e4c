package doctor

import (
	"context"
	"fmt"
	"strings"

	"asclepius/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateDoctor verifies credentials, rotates the auth token and
// opens a fresh session.
func (s *DefaultDoctorService) AuthenticateDoctor(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	doctor, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch doctor", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if doctor == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Any previous session for the old token dies with the rotation.
	if doctor.TokenHash != "" {
		if err := s.Sessions.Delete(ctx, doctor.TokenHash); err != nil {
			utils.GetLogger().Warn("Failed to clear previous session", zap.Error(err))
		}
	}

	token, err := s.openSession(ctx, doctor)
	if err != nil {
		utils.GetLogger().Error("Failed to open session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	doctor.PasswordHash = ""
	doctor.TokenHash = ""
	return &AuthResponse{
		ID:        doctor.ID,
		Token:     token,
		Doctor:    doctor,
		CreatedAt: doctor.CreatedAt,
	}, nil
}

// RevokeAuthToken ends the session for the given token hash and clears the
// stored hash, returning the doctor to the anonymous state.
func (s *DefaultDoctorService) RevokeAuthToken(ctx context.Context, doctorID, tokenHash string) error {
	if err := s.Sessions.Delete(ctx, tokenHash); err != nil {
		utils.GetLogger().Warn("Failed to delete session", zap.Error(err))
	}
	if err := s.Repo.UpdateSetDocument(doctorID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to clear token hash: %w", err)
	}
	return nil
}
