package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a patient account. Users are never deleted and own their chats
// by reference: chats live in the chats collection keyed by userId.
type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}
