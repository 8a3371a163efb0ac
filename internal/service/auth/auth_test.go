package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medisage/medisage_backend/internal/model"
	"github.com/medisage/medisage_backend/internal/store"
	"github.com/medisage/medisage_backend/pkg/token"
	"github.com/medisage/medisage_backend/pkg/util/password"
)

type fakeUserStore struct {
	byEmail map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*model.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, u *model.User) (*model.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, store.ErrDuplicate
	}
	u.ID = primitive.NewObjectID()
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

type fakeClinicStore struct {
	byEmail map[string]*model.Clinic
}

func newFakeClinicStore() *fakeClinicStore {
	return &fakeClinicStore{byEmail: map[string]*model.Clinic{}}
}

func (f *fakeClinicStore) Insert(_ context.Context, c *model.Clinic) (*model.Clinic, error) {
	if _, ok := f.byEmail[c.Email]; ok {
		return nil, store.ErrDuplicate
	}
	c.ID = primitive.NewObjectID()
	f.byEmail[c.Email] = c
	return c, nil
}

func (f *fakeClinicStore) FindByEmail(_ context.Context, email string) (*model.Clinic, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func newTestService(t *testing.T) (Service, *fakeUserStore, *fakeClinicStore, *token.Manager) {
	t.Helper()

	tm, err := token.New(token.Config{
		Issuer:    "medisage-test",
		Audience:  "medisage-app",
		AccessTTL: time.Hour,
	}, paseto.NewV4SymmetricKey())
	require.NoError(t, err)

	users := newFakeUserStore()
	clinics := newFakeClinicStore()
	return New(users, clinics, tm, testHashParams()), users, clinics, tm
}

// Low-cost argon2 parameters keep the suite fast.
func testHashParams() *password.Params {
	return &password.Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestRegisterUser(t *testing.T) {
	svc, users, _, _ := newTestService(t)
	ctx := context.Background()

	err := svc.RegisterUser(ctx, RegisterUserRequest{
		Name:     "Sam Patient",
		Email:    "  Sam@Example.COM ",
		Password: "correct horse",
	})
	require.NoError(t, err)

	u, err := users.FindByEmail(ctx, "sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Sam Patient", u.Name)
	assert.True(t, password.Match(u.PasswordHash, "correct horse"))
}

func TestRegisterUserUsesConfiguredHashParams(t *testing.T) {
	tm, err := token.New(token.Config{
		Issuer:    "medisage-test",
		Audience:  "medisage-app",
		AccessTTL: time.Hour,
	}, paseto.NewV4SymmetricKey())
	require.NoError(t, err)

	users := newFakeUserStore()
	svc := New(users, newFakeClinicStore(), tm, testHashParams())
	ctx := context.Background()

	require.NoError(t, svc.RegisterUser(ctx, RegisterUserRequest{
		Name: "a", Email: "params@example.com", Password: "longenough",
	}))

	u, err := users.FindByEmail(ctx, "params@example.com")
	require.NoError(t, err)
	assert.Contains(t, u.PasswordHash, "$m=8192,t=1,p=1$")
}

func TestRegisterUserValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	err := svc.RegisterUser(ctx, RegisterUserRequest{Email: "a@b.co", Password: "longenough"})
	assert.ErrorIs(t, err, ErrMissingField)

	err = svc.RegisterUser(ctx, RegisterUserRequest{Name: "x", Email: "not-an-email", Password: "longenough"})
	assert.ErrorIs(t, err, ErrInvalidEmail)

	err = svc.RegisterUser(ctx, RegisterUserRequest{Name: "x", Email: "a@b.co", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	req := RegisterUserRequest{Name: "a", Email: "dup@example.com", Password: "longenough"}
	require.NoError(t, svc.RegisterUser(ctx, req))

	err := svc.RegisterUser(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginUser(t *testing.T) {
	svc, _, _, tm := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RegisterUser(ctx, RegisterUserRequest{
		Name: "a", Email: "login@example.com", Password: "longenough",
	}))

	sess, err := svc.LoginUser(ctx, LoginRequest{Email: "LOGIN@example.com", Password: "longenough"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.UserID)

	claims, err := tm.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, claims.AccountID)
	assert.Equal(t, token.KindUser, claims.Kind)
}

func TestLoginUserFailures(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.LoginUser(ctx, LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.RegisterUser(ctx, RegisterUserRequest{
		Name: "a", Email: "who@example.com", Password: "longenough",
	}))
	_, err = svc.LoginUser(ctx, LoginRequest{Email: "who@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func validClinicRequest() RegisterClinicRequest {
	return RegisterClinicRequest{
		FullName:       "Heart Center",
		Email:          "clinic@example.com",
		Password:       "longenough",
		Specialization: "Cardiology",
		ClinicID:       "CL-1001",
		LicensePhoto:   "https://cdn.example.com/license.png",
		Address:        "1 Main St",
	}
}

func TestRegisterClinic(t *testing.T) {
	svc, _, clinics, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RegisterClinic(ctx, validClinicRequest()))

	c, err := clinics.FindByEmail(ctx, "clinic@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", c.Specialization)
	assert.Equal(t, "CL-1001", c.ClinicID)
	assert.Zero(t, c.NumberOfResolved)
}

func TestRegisterClinicMissingFields(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	for _, mutate := range []func(*RegisterClinicRequest){
		func(r *RegisterClinicRequest) { r.FullName = "" },
		func(r *RegisterClinicRequest) { r.Specialization = "" },
		func(r *RegisterClinicRequest) { r.ClinicID = "" },
		func(r *RegisterClinicRequest) { r.LicensePhoto = "" },
		func(r *RegisterClinicRequest) { r.Address = "" },
	} {
		req := validClinicRequest()
		mutate(&req)
		assert.ErrorIs(t, svc.RegisterClinic(ctx, req), ErrMissingField)
	}
}

func TestLoginClinic(t *testing.T) {
	svc, _, _, tm := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RegisterClinic(ctx, validClinicRequest()))

	sess, err := svc.LoginClinic(ctx, LoginRequest{Email: "clinic@example.com", Password: "longenough"})
	require.NoError(t, err)
	require.NotNil(t, sess.Profile)
	assert.Equal(t, "Heart Center", sess.Profile.FullName)

	claims, err := tm.Verify(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, token.KindClinic, claims.Kind)
	assert.Equal(t, sess.ClinicID, claims.AccountID)
}

func TestLoginClinicWrongPassword(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.RegisterClinic(ctx, validClinicRequest()))

	_, err := svc.LoginClinic(ctx, LoginRequest{Email: "clinic@example.com", Password: "nope-nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, errors.Is(err, ErrNotFound))
}
