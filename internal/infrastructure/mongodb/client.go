package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the store.
const (
	DoctorCollection       = "doctor"
	PatientCollection      = "patient"
	PrescriptionCollection = "prescription"
)

// Connect opens and pings a MongoDB client.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the indexes the store relies on. The unique index
// on doctor email is the one schema-level invariant; the doctor_id indexes
// just keep the scoped queries cheap. Runs once at process startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(DoctorCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	for _, name := range []string{PatientCollection, PrescriptionCollection} {
		_, err = db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "doctor_id", Value: 1}},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
