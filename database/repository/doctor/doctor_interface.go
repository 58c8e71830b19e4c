package doctorRepo

import (
	"asclepius/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetByEmail retrieves a doctor by email, nil if none exists.
	GetByEmail(email string) (*models.Doctor, error)
	// GetByIDWithProjection retrieves a doctor by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Doctor, error)
	// GetByEmailWithProjection retrieves a doctor by email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// UpdateSetDocument applies a $set of exactly the given fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a doctor record by its ID.
	Delete(id string) error
}
