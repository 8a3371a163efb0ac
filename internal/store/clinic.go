package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medisage/medisage_backend/internal/model"
)

type ClinicStore struct {
	col *mongo.Collection
}

func NewClinicStore(db *mongo.Database) *ClinicStore {
	return &ClinicStore{col: db.Collection(clinicsCollection)}
}

func (s *ClinicStore) Insert(ctx context.Context, c *model.Clinic) (*model.Clinic, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	res, err := s.col.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert clinic: %w", err)
	}

	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

func (s *ClinicStore) FindByEmail(ctx context.Context, email string) (*model.Clinic, error) {
	var c model.Clinic
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find clinic by email: %w", err)
	}
	return &c, nil
}

func (s *ClinicStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Clinic, error) {
	var c model.Clinic
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find clinic by id: %w", err)
	}
	return &c, nil
}

// CounterDelta names the review counters to bump. Applied in one atomic
// $inc, never read-modify-write.
type CounterDelta struct {
	Resolved  int64
	Questions int64
	Emergency int64
	Total     int64
}

func (s *ClinicStore) IncrementCounters(ctx context.Context, id primitive.ObjectID, d CounterDelta) error {
	inc := bson.M{}
	if d.Resolved != 0 {
		inc["numberOfResolved"] = d.Resolved
	}
	if d.Questions != 0 {
		inc["numberOfQuestions"] = d.Questions
	}
	if d.Emergency != 0 {
		inc["numberOfEmergencyPrompts"] = d.Emergency
	}
	if d.Total != 0 {
		inc["numberOfTotalPrompts"] = d.Total
	}
	if len(inc) == 0 {
		return nil
	}

	res, err := s.col.UpdateByID(ctx, id, bson.M{"$inc": inc})
	if err != nil {
		return fmt.Errorf("increment clinic counters: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
