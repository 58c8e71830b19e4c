package patient

import (
	"strings"
	"testing"

	"asclepius/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakePatientRepo is an in-memory PatientRepository for service tests.
type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: map[string]*models.Patient{}}
}

func (r *fakePatientRepo) GetByID(id string) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePatientRepo) GetByPhone(phone string) (*models.Patient, error) {
	for _, p := range r.patients {
		if p.Phone == phone {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) GetByDoctor(doctorID string) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range r.patients {
		if p.CreatedBy == doctorID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Search(doctorID, query string) ([]models.Patient, error) {
	q := strings.ToLower(query)
	var out []models.Patient
	for _, p := range r.patients {
		if p.CreatedBy != doctorID {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Phone), q) ||
			strings.Contains(strings.ToLower(p.Email), q) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Create(patient *models.Patient) error {
	copied := *patient
	r.patients[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	p, ok := r.patients[id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range updateDoc {
		switch key {
		case "name":
			p.Name = value.(string)
		case "phone":
			p.Phone = value.(string)
		case "email":
			p.Email = value.(string)
		case "address":
			p.Address = value.(models.Address)
		case "medicalHistory":
			p.MedicalHistory = value.(string)
		case "allergies":
			p.Allergies = value.([]string)
		}
	}
	return nil
}

func newTestService() (*DefaultPatientService, *fakePatientRepo) {
	repo := newFakePatientRepo()
	return &DefaultPatientService{Repo: repo}, repo
}

func validPatient() models.Patient {
	return models.Patient{
		Name:        "Asha Rao",
		Phone:       "9876543210",
		Email:       "asha@example.com",
		DateOfBirth: "1990-04-12",
		Gender:      models.Female,
	}
}

func TestRegisterPatient(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.RegisterPatient("doc-1", validPatient())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "doc-1", created.CreatedBy)
	assert.Len(t, repo.patients, 1)
}

func TestRegisterPatientNormalizesFields(t *testing.T) {
	svc, _ := newTestService()

	p := validPatient()
	p.Name = "  Asha Rao  "
	p.Phone = " 9876543210 "
	p.Email = " Asha@Example.COM "

	created, err := svc.RegisterPatient("doc-1", p)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", created.Name)
	assert.Equal(t, "9876543210", created.Phone)
	assert.Equal(t, "asha@example.com", created.Email)
}

func TestRegisterPatientValidation(t *testing.T) {
	svc, _ := newTestService()

	missingName := validPatient()
	missingName.Name = "  "
	_, err := svc.RegisterPatient("doc-1", missingName)
	assert.ErrorContains(t, err, "name is required")

	missingPhone := validPatient()
	missingPhone.Phone = ""
	_, err = svc.RegisterPatient("doc-1", missingPhone)
	assert.ErrorContains(t, err, "phone number is required")

	badGender := validPatient()
	badGender.Gender = "unknown"
	_, err = svc.RegisterPatient("doc-1", badGender)
	assert.ErrorContains(t, err, "unknown gender")

	badDOB := validPatient()
	badDOB.DateOfBirth = "12-04-1990"
	_, err = svc.RegisterPatient("doc-1", badDOB)
	assert.ErrorContains(t, err, "invalid date of birth")
}

func TestRegisterPatientDuplicatePhone(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.RegisterPatient("doc-1", validPatient())
	require.NoError(t, err)

	dup := validPatient()
	dup.Name = "Someone Else"
	_, err = svc.RegisterPatient("doc-1", dup)
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestSearchEmptyQueryListsAll(t *testing.T) {
	svc, _ := newTestService()

	first := validPatient()
	_, err := svc.RegisterPatient("doc-1", first)
	require.NoError(t, err)

	second := validPatient()
	second.Name = "Ravi Kumar"
	second.Phone = "9000000001"
	second.Email = "ravi@example.com"
	_, err = svc.RegisterPatient("doc-1", second)
	require.NoError(t, err)

	results, err := svc.Search("doc-1", "  ")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = svc.Search("doc-1", "ravi")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ravi Kumar", results[0].Name)
}

func TestUpdatePatient(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.RegisterPatient("doc-1", validPatient())
	require.NoError(t, err)

	history := "Type 2 diabetes"
	allergies := []string{"penicillin"}
	updated, err := svc.UpdatePatient(created.ID, models.PatientUpdate{
		MedicalHistory: &history,
		Allergies:      &allergies,
	})
	require.NoError(t, err)
	assert.Equal(t, history, updated.MedicalHistory)
	assert.Equal(t, allergies, updated.Allergies)
	assert.Equal(t, "Asha Rao", updated.Name, "unset fields stay unchanged")
}

func TestUpdatePatientPhoneConflict(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.RegisterPatient("doc-1", validPatient())
	require.NoError(t, err)

	second := validPatient()
	second.Phone = "9000000001"
	other, err := svc.RegisterPatient("doc-1", second)
	require.NoError(t, err)

	taken := first.Phone
	_, err = svc.UpdatePatient(other.ID, models.PatientUpdate{Phone: &taken})
	assert.ErrorIs(t, err, ErrPhoneTaken)

	// Re-submitting a patient's own number is not a conflict.
	own := other.Phone
	_, err = svc.UpdatePatient(other.ID, models.PatientUpdate{Phone: &own})
	assert.NoError(t, err)
}

func TestUpdatePatientEmptyCommandIsNoOp(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.RegisterPatient("doc-1", validPatient())
	require.NoError(t, err)

	updated, err := svc.UpdatePatient(created.ID, models.PatientUpdate{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Name, updated.Name)
}
