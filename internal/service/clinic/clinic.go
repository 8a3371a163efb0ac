package clinic

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medisage/medisage_backend/internal/model"
	"github.com/medisage/medisage_backend/internal/store"
)

type Store interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Clinic, error)
}

// Service serves the clinic dashboard: the profile card and the review
// counters. All writes to clinics happen elsewhere (registration, review
// counter bumps); this service is read-only.
type Service interface {
	Profile(ctx context.Context, clinicID string) (*model.Clinic, error)
	Stats(ctx context.Context, clinicID string) (*model.Stats, error)
}

type clinicService struct {
	clinics Store
}

func New(clinics Store) Service {
	return &clinicService{clinics: clinics}
}

func (s *clinicService) Profile(ctx context.Context, clinicID string) (*model.Clinic, error) {
	id, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		return nil, ErrNotFound
	}

	c, err := s.clinics.FindByID(ctx, id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find clinic: %w", err)
	}
	return c, nil
}

func (s *clinicService) Stats(ctx context.Context, clinicID string) (*model.Stats, error) {
	c, err := s.Profile(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	return &model.Stats{
		NumberOfResolved:         c.NumberOfResolved,
		NumberOfQuestions:        c.NumberOfQuestions,
		NumberOfEmergencyPrompts: c.NumberOfEmergencyPrompts,
		NumberOfTotalPrompts:     c.NumberOfTotalPrompts,
	}, nil
}
