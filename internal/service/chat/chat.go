package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medisage/medisage_backend/internal/model"
	"github.com/medisage/medisage_backend/internal/store"
)

// ---------------------------------------------------------------------------
// Store and AI interfaces
// ---------------------------------------------------------------------------

type ChatStore interface {
	Insert(ctx context.Context, c *model.Chat) (*model.Chat, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Chat, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]*model.Chat, error)
	ApplyReview(ctx context.Context, chatID primitive.ObjectID, upd store.ReviewUpdate) (*model.Chat, error)
}

type ClinicStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Clinic, error)
	IncrementCounters(ctx context.Context, id primitive.ObjectID, d store.CounterDelta) error
}

// Assistant is the slice of the AI gateway this service needs.
type Assistant interface {
	AskQuestion(ctx context.Context, question string) (string, error)
	ClassifySpecialization(ctx context.Context, question string) string
	TitleFor(ctx context.Context, answer string) string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service interface {
	Send(ctx context.Context, userID string, text string, isEmergency bool) (*model.Chat, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Chat, error)
	ListForClinic(ctx context.Context, clinicID string) ([]*model.Chat, error)
	Review(ctx context.Context, clinicID, chatID string, verification model.VerificationType, updatedText string) (*model.Chat, error)
}

type chatService struct {
	chats     ChatStore
	clinics   ClinicStore
	assistant Assistant
	log       *slog.Logger
}

func New(chats ChatStore, clinics ClinicStore, assistant Assistant, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &chatService{chats: chats, clinics: clinics, assistant: assistant, log: log}
}

// Send runs the three-step AI pipeline and persists the resulting chat in
// the Unverified state. Only an answer transport failure is fatal; every
// other degradation resolves to a fallback inside the gateway.
func (s *chatService) Send(ctx context.Context, userID string, text string, isEmergency bool) (*model.Chat, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyQuestion
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}

	askedAt := time.Now().UTC()

	answer, err := s.assistant.AskQuestion(ctx, text)
	if err != nil {
		s.log.Error("answer generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAnswerUnavailable, err)
	}

	specialization := s.assistant.ClassifySpecialization(ctx, text)
	title := s.assistant.TitleFor(ctx, answer)

	chat := &model.Chat{
		UserID:              uid,
		ChatName:            title,
		QuestionAsked:       text,
		AnswerByAI:          answer,
		Specialization:      specialization,
		IsEmergency:         isEmergency,
		TimeOfQuestionAsked: askedAt,
		TimeOfResponse:      time.Now().UTC(),
		VerificationType:    model.VerificationUnverified,
	}

	saved, err := s.chats.Insert(ctx, chat)
	if err != nil {
		return nil, fmt.Errorf("save chat: %w", err)
	}

	s.log.Info("chat created",
		"chatId", saved.ID.Hex(),
		"specialization", saved.Specialization,
		"isEmergency", saved.IsEmergency,
	)
	return saved, nil
}

func (s *chatService) ListForUser(ctx context.Context, userID string) ([]*model.Chat, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("parse user id: %w", err)
	}
	return s.chats.ListByUser(ctx, uid)
}

// ListForClinic resolves the clinic's specialization and returns every chat
// labeled with exactly that specialization, regardless of review state.
func (s *chatService) ListForClinic(ctx context.Context, clinicID string) ([]*model.Chat, error) {
	cid, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		return nil, fmt.Errorf("parse clinic id: %w", err)
	}

	clinic, err := s.clinics.FindByID(ctx, cid)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("find clinic: %w", err)
	}

	return s.chats.ListBySpecialization(ctx, clinic.Specialization)
}

// Review records a clinic's verdict on a chat and bumps the clinic's
// counters. Re-reviews are allowed and overwrite the previous verdict.
func (s *chatService) Review(ctx context.Context, clinicID, chatID string, verification model.VerificationType, updatedText string) (*model.Chat, error) {
	if !verification.Valid() {
		return nil, ErrBadVerification
	}
	updatedText = strings.TrimSpace(updatedText)
	if verification == model.VerificationIncorrect && updatedText == "" {
		return nil, ErrCorrectionRequired
	}
	if verification == model.VerificationCorrect {
		updatedText = ""
	}

	chatOID, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return nil, ErrNotFound
	}
	clinicOID, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		return nil, ErrClinicNotFound
	}

	clinic, err := s.clinics.FindByID(ctx, clinicOID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("find clinic: %w", err)
	}

	updated, err := s.chats.ApplyReview(ctx, chatOID, store.ReviewUpdate{
		Verification:  verification,
		CorrectedText: updatedText,
		ReviewedAt:    time.Now().UTC(),
		Snapshot: model.ClinicSnapshot{
			Name:           clinic.FullName,
			Specialization: clinic.Specialization,
			ClinicID:       clinic.ClinicID,
			Description:    clinic.Description,
			ProfilePic:     clinic.ProfilePic,
		},
	})
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("apply review: %w", err)
	}

	// Resolved counts every review, incorrect verdicts included; the
	// dashboard reads it as "reviews performed", not "answers upheld".
	delta := store.CounterDelta{Resolved: 1, Questions: 1, Total: 1}
	if updated.IsEmergency {
		delta.Emergency = 1
	}
	if err := s.clinics.IncrementCounters(ctx, clinicOID, delta); err != nil {
		// The review itself is already committed; a counter failure is
		// logged rather than surfaced as a failed review.
		s.log.Error("counter increment failed", "clinicId", clinicID, "error", err)
	}

	s.log.Info("chat reviewed",
		"chatId", chatID,
		"clinicId", clinic.ClinicID,
		"verificationType", verification,
	)
	return updated, nil
}
