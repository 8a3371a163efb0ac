package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the API depends on. Safe to run
// repeatedly; Mongo treats identical index definitions as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type spec struct {
		collection string
		model      mongo.IndexModel
	}

	specs := []spec{
		// Duplicate registrations are rejected at the storage layer,
		// so the check-then-insert in the auth service cannot race.
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"clinics", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		// Clinic dashboards filter by the AI-assigned specialization label.
		{"chats", mongo.IndexModel{
			Keys: bson.D{{Key: "specialization", Value: 1}},
		}},
		{"chats", mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timeOfQuestionAsked", Value: 1}},
		}},
		{"chats", mongo.IndexModel{
			Keys: bson.D{{Key: "verifiedByClinic.clinicId", Value: 1}},
		}},
	}

	for _, s := range specs {
		if _, err := db.Collection(s.collection).Indexes().CreateOne(ctx, s.model); err != nil {
			return fmt.Errorf("create index on %s: %w", s.collection, err)
		}
	}
	return nil
}
