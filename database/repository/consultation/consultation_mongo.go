package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"asclepius/database"
	"asclepius/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConsultationRepo implements ConsultationRepository using MongoDB.
type MongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo creates a new instance of ConsultationRepository using MongoDB.
func NewMongoConsultationRepo() ConsultationRepository {
	coll := database.Collection("consultations")
	repo := &MongoConsultationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConsultationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// Partial index over unnotified follow-ups keeps the reminder sweep
	// cheap even as the collection grows.
	followUpOpts := options.Index().SetPartialFilterExpression(bson.M{
		"followUpNotificationSent": false,
		"followUpDate":             bson.M{"$exists": true},
	})
	followUpIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "followUpDate", Value: 1},
		},
		Options: followUpOpts,
	}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}}},
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
		{Keys: bson.D{{Key: "appointmentId", Value: 1}}},
		followUpIdx,
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new consultation document, stamping the schema version.
func (r *MongoConsultationRepo) Create(consultation *models.Consultation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	consultation.SchemaVersion = models.CurrentSchemaVersion
	consultation.CreatedAt = now
	consultation.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, consultation); err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a $set of exactly the given fields.
func (r *MongoConsultationRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update consultation with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("consultation with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a consultation by its unique ID.
func (r *MongoConsultationRepo) GetByID(id string) (*models.Consultation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var consultation models.Consultation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&consultation); err != nil {
		return nil, fmt.Errorf("failed to fetch consultation with id %s: %w", id, err)
	}
	if err := database.CheckSchemaVersion(consultation.SchemaVersion); err != nil {
		return nil, err
	}
	return &consultation, nil
}

// GetByAppointment retrieves the consultation referencing an appointment.
// Returns nil, nil when no consultation references it.
func (r *MongoConsultationRepo) GetByAppointment(appointmentID string) (*models.Consultation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var consultation models.Consultation
	err := r.coll.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch consultation for appointment %s: %w", appointmentID, err)
	}
	if err := database.CheckSchemaVersion(consultation.SchemaVersion); err != nil {
		return nil, err
	}
	return &consultation, nil
}

// GetByDoctor retrieves all consultations recorded by a doctor.
func (r *MongoConsultationRepo) GetByDoctor(doctorID string) ([]models.Consultation, error) {
	return r.find(bson.M{"doctorId": doctorID})
}

// GetByPatient retrieves all consultations for a patient.
func (r *MongoConsultationRepo) GetByPatient(patientID string) ([]models.Consultation, error) {
	return r.find(bson.M{"patientId": patientID})
}

// GetPendingFollowUps retrieves consultations whose follow-up is due on or
// before the given date and has not been notified. Date strings compare
// lexicographically in "YYYY-MM-DD" form.
func (r *MongoConsultationRepo) GetPendingFollowUps(doctorID, date string) ([]models.Consultation, error) {
	filter := bson.M{
		"doctorId":                 doctorID,
		"followUpNotificationSent": false,
		"followUpDate":             bson.M{"$gt": "", "$lte": date},
	}
	return r.find(filter)
}

// GetDueFollowUps retrieves due, unnotified follow-ups across all doctors.
func (r *MongoConsultationRepo) GetDueFollowUps(date string) ([]models.Consultation, error) {
	filter := bson.M{
		"followUpNotificationSent": false,
		"followUpDate":             bson.M{"$gt": "", "$lte": date},
	}
	return r.find(filter)
}

func (r *MongoConsultationRepo) find(filter bson.M) ([]models.Consultation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	for cursor.Next(ctx) {
		var c models.Consultation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode consultation: %w", err)
		}
		consultations = append(consultations, c)
	}
	return consultations, nil
}
