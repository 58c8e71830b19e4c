package doctorRepo

import (
	"fmt"
	"time"

	"asclepius/database"
	"asclepius/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a doctor by its unique ID.
func (r *MongoDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a doctor by email. Returns nil, nil when no doctor
// exists with that email.
func (r *MongoDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	return r.GetByEmailWithProjection(email, nil)
}

// GetByIDWithProjection retrieves a doctor by its unique ID using a
// projection. Pass nil for projection to retrieve the full document.
func (r *MongoDoctorRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&doctor); err != nil {
		return nil, fmt.Errorf("failed to fetch doctor with id %s: %w", id, err)
	}
	if err := database.CheckSchemaVersion(doctor.SchemaVersion); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// GetByEmailWithProjection retrieves a doctor by email using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoDoctorRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Doctor, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var doctor models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&doctor); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch doctor with email %s: %w", email, err)
	}
	if err := database.CheckSchemaVersion(doctor.SchemaVersion); err != nil {
		return nil, err
	}
	return &doctor, nil
}
