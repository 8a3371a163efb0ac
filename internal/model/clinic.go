package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clinic is a reviewing account. ClinicID is the clinic's registry/license
// identifier supplied at registration, distinct from the Mongo _id.
type Clinic struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FullName       string             `json:"fullName" bson:"fullName"`
	Email          string             `json:"email" bson:"email"`
	PasswordHash   string             `json:"-" bson:"passwordHash"`
	Specialization string             `json:"specialization" bson:"specialization"`
	ClinicID       string             `json:"clinicId" bson:"clinicId"`
	LicensePhoto   string             `json:"licensePhoto" bson:"licensePhoto"`
	ProfilePic     string             `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
	Address        string             `json:"address" bson:"address"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`

	// Review counters, updated with atomic $inc on every review.
	// Resolved counts every review regardless of outcome.
	NumberOfResolved         int64 `json:"numberOfResolved" bson:"numberOfResolved"`
	NumberOfQuestions        int64 `json:"numberOfQuestions" bson:"numberOfQuestions"`
	NumberOfEmergencyPrompts int64 `json:"numberOfEmergencyPrompts" bson:"numberOfEmergencyPrompts"`
	NumberOfTotalPrompts     int64 `json:"numberOfTotalPrompts" bson:"numberOfTotalPrompts"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Stats is the counters-only view served to the analytics dashboard.
type Stats struct {
	NumberOfResolved         int64 `json:"numberOfResolved"`
	NumberOfQuestions        int64 `json:"numberOfQuestions"`
	NumberOfEmergencyPrompts int64 `json:"numberOfEmergencyPrompts"`
	NumberOfTotalPrompts     int64 `json:"numberOfTotalPrompts"`
}
