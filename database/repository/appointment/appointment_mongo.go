package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// Partial unique index: at most one scheduled appointment may hold a
	// given doctor/date/time slot. Cancelled and no-show rows fall outside
	// the filter, freeing the slot for re-booking.
	slotOpts := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{"status": string(models.StatusScheduled)})
	slotIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: slotOpts,
	}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
		slotIdx,
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new appointment document, stamping the schema version.
func (r *MongoAppointmentRepo) Create(appointment *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	appointment.SchemaVersion = models.CurrentSchemaVersion
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appointment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slot %s %s is already booked: %w", appointment.Date, appointment.Time, err)
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a $set of exactly the given fields.
func (r *MongoAppointmentRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appointment models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	if err := database.CheckSchemaVersion(appointment.SchemaVersion); err != nil {
		return nil, err
	}
	return &appointment, nil
}

// GetByDoctor retrieves all appointments for a doctor, newest date first.
func (r *MongoAppointmentRepo) GetByDoctor(doctorID string) ([]models.Appointment, error) {
	return r.find(bson.M{"doctorId": doctorID}, bson.D{{Key: "date", Value: -1}, {Key: "time", Value: 1}})
}

// GetByDoctorAndDate retrieves a doctor's appointments on a calendar date,
// sorted by slot time.
func (r *MongoAppointmentRepo) GetByDoctorAndDate(doctorID, date string) ([]models.Appointment, error) {
	return r.find(bson.M{"doctorId": doctorID, "date": date}, bson.D{{Key: "time", Value: 1}})
}

// GetByPatient retrieves all appointments for a patient, newest date first.
func (r *MongoAppointmentRepo) GetByPatient(patientID string) ([]models.Appointment, error) {
	return r.find(bson.M{"patientId": patientID}, bson.D{{Key: "date", Value: -1}, {Key: "time", Value: 1}})
}

func (r *MongoAppointmentRepo) find(filter bson.M, sort bson.D) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(sort)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}
