package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"asclepius/config"
	"asclepius/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// Collection returns a handle to a named collection in the configured
// database.
func Collection(name string) *mongo.Collection {
	return MongoClient.Database(config.AppConfig.DatabaseName).Collection(name)
}

// CheckSchemaVersion rejects documents written by a newer binary. Versions
// below current (including the unversioned zero of legacy records) are
// readable.
func CheckSchemaVersion(v int) error {
	if v > models.CurrentSchemaVersion {
		return fmt.Errorf("document schema version %d is newer than supported version %d", v, models.CurrentSchemaVersion)
	}
	return nil
}
