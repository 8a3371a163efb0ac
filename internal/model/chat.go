package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VerificationType classifies an AI answer after clinic review.
type VerificationType string

const (
	VerificationUnverified VerificationType = "Unverified"
	VerificationCorrect    VerificationType = "correct"
	VerificationIncorrect  VerificationType = "incorrect"
)

// Valid reports whether v is a reviewable target state. Unverified is the
// initial state only; no transition leads back to it.
func (v VerificationType) Valid() bool {
	return v == VerificationCorrect || v == VerificationIncorrect
}

// ClinicSnapshot is the denormalized copy of the reviewing clinic's profile
// stored on the chat at review time. It is deliberately not a live
// reference: a later profile edit does not rewrite past reviews.
type ClinicSnapshot struct {
	Name           string `json:"name" bson:"name"`
	Specialization string `json:"specialization" bson:"specialization"`
	ClinicID       string `json:"clinicId" bson:"clinicId"`
	Description    string `json:"description,omitempty" bson:"description,omitempty"`
	ProfilePic     string `json:"profilePic,omitempty" bson:"profilePic,omitempty"`
}

// Chat is one question/answer/review exchange. The chats collection is the
// single authoritative copy; user and clinic views are resolved by query,
// never by embedded duplicates.
type Chat struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID primitive.ObjectID `json:"userId" bson:"userId"`

	// Set at creation, never mutated afterwards.
	ChatName            string    `json:"chatName" bson:"chatName"`
	QuestionAsked       string    `json:"questionAsked" bson:"questionAsked"`
	AnswerByAI          string    `json:"answerByAI" bson:"answerByAI"`
	Specialization      string    `json:"specialization" bson:"specialization"`
	IsEmergency         bool      `json:"isEmergency" bson:"isEmergency"`
	TimeOfQuestionAsked time.Time `json:"timeOfQuestionAsked" bson:"timeOfQuestionAsked"`
	TimeOfResponse      time.Time `json:"timeOfResponse" bson:"timeOfResponse"`

	// Review fields. Each review overwrites these wholesale; there is no
	// guard against re-review or a second clinic replacing the first.
	VerificationType          VerificationType `json:"verificationType" bson:"verificationType"`
	CorrectedResponseByClinic string           `json:"correctedResponseByClinic,omitempty" bson:"correctedResponseByClinic,omitempty"`
	TimeOfReview              *time.Time       `json:"timeOfReview,omitempty" bson:"timeOfReview,omitempty"`
	VerifiedByClinic          *ClinicSnapshot  `json:"verifiedByClinic,omitempty" bson:"verifiedByClinic,omitempty"`
}
