package clinic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medisage/medisage_backend/internal/model"
	"github.com/medisage/medisage_backend/internal/store"
)

type fakeStore struct {
	clinics map[primitive.ObjectID]*model.Clinic
}

func (f *fakeStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.Clinic, error) {
	c, ok := f.clinics[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func TestProfile(t *testing.T) {
	id := primitive.NewObjectID()
	svc := New(&fakeStore{clinics: map[primitive.ObjectID]*model.Clinic{
		id: {ID: id, FullName: "Heart Center", Specialization: "Cardiology", ClinicID: "CL-1001"},
	}})

	c, err := svc.Profile(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Heart Center", c.FullName)

	_, err = svc.Profile(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Profile(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStats(t *testing.T) {
	id := primitive.NewObjectID()
	svc := New(&fakeStore{clinics: map[primitive.ObjectID]*model.Clinic{
		id: {
			ID:                       id,
			NumberOfResolved:         3,
			NumberOfQuestions:        4,
			NumberOfEmergencyPrompts: 1,
			NumberOfTotalPrompts:     4,
		},
	}})

	s, err := svc.Stats(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.NumberOfResolved)
	assert.Equal(t, int64(4), s.NumberOfQuestions)
	assert.Equal(t, int64(1), s.NumberOfEmergencyPrompts)
	assert.Equal(t, int64(4), s.NumberOfTotalPrompts)
}
