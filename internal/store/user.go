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

type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection(usersCollection)}
}

// Insert stores a new user. A unique-index violation on email surfaces as
// ErrDuplicate so the registration race stays closed at the storage layer.
func (s *UserStore) Insert(ctx context.Context, u *model.User) (*model.User, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var u model.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}
