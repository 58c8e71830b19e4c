package doctor

import (
	"context"
	"fmt"

	"asclepius/models"
	"asclepius/utils"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// GetDoctorByID retrieves a doctor record with credential fields cleared.
func (s *DefaultDoctorService) GetDoctorByID(id string) (*models.Doctor, error) {
	doctor, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	doctor.PasswordHash = ""
	doctor.TokenHash = ""
	return doctor, nil
}

// UpdateProfile applies an explicit profile update command. Only the
// fields set on the command are written.
func (s *DefaultDoctorService) UpdateProfile(id string, update models.DoctorProfileUpdate) (*models.Doctor, error) {
	updateDoc := bson.M{}
	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("doctor name cannot be empty")
		}
		updateDoc["name"] = *update.Name
	}
	if update.Phone != nil {
		if *update.Phone == "" {
			return nil, fmt.Errorf("phone number cannot be empty")
		}
		updateDoc["phone"] = *update.Phone
	}
	if update.Address != nil {
		updateDoc["address"] = *update.Address
	}
	if len(updateDoc) == 0 {
		return s.GetDoctorByID(id)
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, err
	}
	return s.GetDoctorByID(id)
}

// UpdateTemplates replaces the WhatsApp reminder templates named on the
// command.
func (s *DefaultDoctorService) UpdateTemplates(id string, update models.TemplatesUpdate) (*models.Doctor, error) {
	updateDoc := bson.M{}
	if update.FollowUpReminder != nil {
		updateDoc["whatsAppTemplates.followUpReminder"] = *update.FollowUpReminder
	}
	if update.AppointmentReminder != nil {
		updateDoc["whatsAppTemplates.appointmentReminder"] = *update.AppointmentReminder
	}
	if update.LabTestReminder != nil {
		updateDoc["whatsAppTemplates.labTestReminder"] = *update.LabTestReminder
	}
	if len(updateDoc) == 0 {
		return s.GetDoctorByID(id)
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, err
	}
	return s.GetDoctorByID(id)
}

// UpdatePassword verifies the current password, sets the new hash and
// invalidates the active session so every device must sign in again.
func (s *DefaultDoctorService) UpdatePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	doctor, err := s.Repo.GetByIDWithProjection(id, bson.M{"id": 1, "password_hash": 1, "token_hash": 1})
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if doctor.TokenHash != "" {
		if err := s.Sessions.Delete(ctx, doctor.TokenHash); err != nil {
			utils.GetLogger().Warn("Failed to delete session during password change")
		}
	}

	return s.Repo.UpdateSetDocument(id, bson.M{
		"password_hash": string(hashed),
		"token_hash":    "",
	})
}
