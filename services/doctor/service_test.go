package doctor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"asclepius/models"
	"asclepius/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[string]*models.Doctor{}}
}

func (r *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, errors.New("doctor not found")
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	for _, d := range r.doctors {
		if d.Email == email {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Doctor, error) {
	return r.GetByID(id)
}

func (r *fakeDoctorRepo) GetByEmailWithProjection(email string, _ bson.M) (*models.Doctor, error) {
	return r.GetByEmail(email)
}

func (r *fakeDoctorRepo) Create(doctor *models.Doctor) error {
	copied := *doctor
	copied.CreatedAt = time.Now()
	r.doctors[doctor.ID] = &copied
	return nil
}

func (r *fakeDoctorRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	d, ok := r.doctors[id]
	if !ok {
		return errors.New("doctor not found")
	}
	for key, value := range updateDoc {
		switch key {
		case "name":
			d.Name = value.(string)
		case "phone":
			d.Phone = value.(string)
		case "address":
			d.Address = value.(models.Address)
		case "token_hash":
			d.TokenHash = value.(string)
		case "password_hash":
			d.PasswordHash = value.(string)
		case "walkInAvailability":
			d.WalkInAvailability = value.([]models.AvailabilityWindow)
		case "appointmentAvailability":
			d.AppointmentAvailability = value.([]models.AvailabilityWindow)
		case "appointmentDuration":
			d.AppointmentDuration = value.(int)
		case "whatsAppTemplates.followUpReminder":
			d.WhatsAppTemplates.FollowUpReminder = value.(string)
		case "whatsAppTemplates.appointmentReminder":
			d.WhatsAppTemplates.AppointmentReminder = value.(string)
		case "whatsAppTemplates.labTestReminder":
			d.WhatsAppTemplates.LabTestReminder = value.(string)
		}
	}
	return nil
}

func (r *fakeDoctorRepo) Delete(id string) error {
	delete(r.doctors, id)
	return nil
}

func newTestService(t *testing.T) (*DefaultDoctorService, *fakeDoctorRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := newFakeDoctorRepo()
	return &DefaultDoctorService{
		Repo:     repo,
		Sessions: utils.NewSessionStore(client, time.Hour),
	}, repo
}

func validDoctor() models.Doctor {
	return models.Doctor{
		Email:                "meena@example.com",
		Password:             "passw0rd",
		Name:                 "Meena Iyer",
		Phone:                "9876543210",
		Speciality:           models.GeneralPhysician,
		MedicalLicenseNumber: "MH-12345",
		AppointmentDuration:  30,
		AppointmentAvailability: []models.AvailabilityWindow{
			{Day: models.Monday, StartTime: "09:00", EndTime: "12:00"},
		},
	}
}

func TestRegisterDoctor(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	resp, err := svc.RegisterDoctor(ctx, validDoctor())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.Doctor.Password, "plaintext never survives registration")
	assert.Empty(t, resp.Doctor.PasswordHash)

	stored := repo.doctors[resp.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("passw0rd")))
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
	assert.NotEmpty(t, stored.WhatsAppTemplates.FollowUpReminder, "default templates seeded")

	sess, err := svc.Sessions.Get(ctx, stored.TokenHash)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, sess.DoctorID)
	assert.Equal(t, utils.SessionAuthenticated, sess.State)
}

func TestRegisterDoctorNormalizesEmail(t *testing.T) {
	svc, repo := newTestService(t)

	d := validDoctor()
	d.Email = " Meena@Example.COM "
	resp, err := svc.RegisterDoctor(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "meena@example.com", repo.doctors[resp.ID].Email)
}

func TestRegisterDoctorDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterDoctor(ctx, validDoctor())
	require.NoError(t, err)

	_, err = svc.RegisterDoctor(ctx, validDoctor())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterDoctorValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Doctor)
		wantErr string
	}{
		{"missing email", func(d *models.Doctor) { d.Email = "" }, "email and password are required"},
		{"missing name", func(d *models.Doctor) { d.Name = "" }, "name is required"},
		{"unknown speciality", func(d *models.Doctor) { d.Speciality = "Dentist" }, "unknown speciality"},
		{"missing license", func(d *models.Doctor) { d.MedicalLicenseNumber = "" }, "license number is required"},
		{"weak password", func(d *models.Doctor) { d.Password = "short1" }, "at least 8 characters"},
		{"digit-free password", func(d *models.Doctor) { d.Password = "passwords" }, "one letter and one digit"},
		{"duration out of range", func(d *models.Doctor) { d.AppointmentDuration = 5 }, "appointment duration"},
		{"window start after end", func(d *models.Doctor) {
			d.AppointmentAvailability = []models.AvailabilityWindow{
				{Day: models.Monday, StartTime: "12:00", EndTime: "09:00"},
			}
		}, "start must be before end"},
		{"malformed window time", func(d *models.Doctor) {
			d.AppointmentAvailability = []models.AvailabilityWindow{
				{Day: models.Monday, StartTime: "9:00", EndTime: "12:00"},
			}
		}, "time must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDoctor()
			tt.mutate(&d)
			_, err := svc.RegisterDoctor(ctx, d)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAuthenticateDoctor(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	reg, err := svc.RegisterDoctor(ctx, validDoctor())
	require.NoError(t, err)
	firstHash := repo.doctors[reg.ID].TokenHash

	resp, err := svc.AuthenticateDoctor(ctx, "meena@example.com", "passw0rd")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	// Login rotates the token; the old session is gone.
	newHash := repo.doctors[reg.ID].TokenHash
	assert.NotEqual(t, firstHash, newHash)
	_, err = svc.Sessions.Get(ctx, firstHash)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	_, err = svc.Sessions.Get(ctx, newHash)
	assert.NoError(t, err)
}

func TestAuthenticateDoctorBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterDoctor(ctx, validDoctor())
	require.NoError(t, err)

	_, err = svc.AuthenticateDoctor(ctx, "meena@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AuthenticateDoctor(ctx, "nobody@example.com", "passw0rd")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeAuthToken(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	resp, err := svc.RegisterDoctor(ctx, validDoctor())
	require.NoError(t, err)
	hash := repo.doctors[resp.ID].TokenHash

	require.NoError(t, svc.RevokeAuthToken(ctx, resp.ID, hash))
	assert.Empty(t, repo.doctors[resp.ID].TokenHash)
	_, err = svc.Sessions.Get(ctx, hash)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.RegisterDoctor(context.Background(), validDoctor())
	require.NoError(t, err)

	phone := "9000000001"
	updated, err := svc.UpdateProfile(resp.ID, models.DoctorProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "Meena Iyer", updated.Name, "unset fields stay unchanged")

	empty := ""
	_, err = svc.UpdateProfile(resp.ID, models.DoctorProfileUpdate{Name: &empty})
	assert.ErrorContains(t, err, "cannot be empty")
}

func TestUpdateAvailability(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.RegisterDoctor(context.Background(), validDoctor())
	require.NoError(t, err)

	updated, err := svc.UpdateAvailability(resp.ID, models.AvailabilityUpdate{
		AppointmentAvailability: []models.AvailabilityWindow{
			{Day: models.Tuesday, StartTime: "10:00", EndTime: "13:00"},
		},
		WalkInAvailability:  []models.AvailabilityWindow{},
		AppointmentDuration: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.AppointmentDuration)
	require.Len(t, updated.AppointmentAvailability, 1)
	assert.Equal(t, models.Tuesday, updated.AppointmentAvailability[0].Day)

	_, err = svc.UpdateAvailability(resp.ID, models.AvailabilityUpdate{
		AppointmentDuration: 200,
	})
	assert.ErrorContains(t, err, "appointment duration")
}

func TestUpdatePassword(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	resp, err := svc.RegisterDoctor(ctx, validDoctor())
	require.NoError(t, err)
	oldHash := repo.doctors[resp.ID].TokenHash

	err = svc.UpdatePassword(ctx, resp.ID, "passw0rd", "n3w-password")
	require.NoError(t, err)

	stored := repo.doctors[resp.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("n3w-password")))
	assert.Empty(t, stored.TokenHash, "sessions invalidated on password change")
	_, err = svc.Sessions.Get(ctx, oldHash)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	err = svc.UpdatePassword(ctx, resp.ID, "wrong-old1", "another-pass2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.NoError(t, VerifyPasswordComplexity("passw0rd"))
	assert.Error(t, VerifyPasswordComplexity("short1"))
	assert.Error(t, VerifyPasswordComplexity("12345678"))
	assert.Error(t, VerifyPasswordComplexity("passwords"))
	assert.NoError(t, VerifyPasswordComplexity(strings.Repeat("a", 7)+"1"))
}
