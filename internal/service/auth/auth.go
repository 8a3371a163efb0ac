package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/medisage/medisage_backend/internal/model"
	"github.com/medisage/medisage_backend/internal/store"
	"github.com/medisage/medisage_backend/pkg/token"
	"github.com/medisage/medisage_backend/pkg/util/password"
)

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterUserRequest struct {
	Name     string
	Email    string
	Password string
}

type RegisterClinicRequest struct {
	FullName       string
	Email          string
	Password       string
	Specialization string
	ClinicID       string
	LicensePhoto   string
	ProfilePic     string
	Address        string
	Description    string
}

type LoginRequest struct {
	Email    string
	Password string
}

// UserSession is the login result for a patient account.
type UserSession struct {
	Token  string
	UserID string
}

// ClinicSession is the login result for a clinic account, including the
// profile the dashboard renders immediately after login.
type ClinicSession struct {
	Token    string
	ClinicID string
	Profile  *model.Clinic
}

// ---------------------------------------------------------------------------
// Store interfaces
// ---------------------------------------------------------------------------

type UserStore interface {
	Insert(ctx context.Context, u *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type ClinicStore interface {
	Insert(ctx context.Context, c *model.Clinic) (*model.Clinic, error)
	FindByEmail(ctx context.Context, email string) (*model.Clinic, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) error
	LoginUser(ctx context.Context, req LoginRequest) (*UserSession, error)
	RegisterClinic(ctx context.Context, req RegisterClinicRequest) error
	LoginClinic(ctx context.Context, req LoginRequest) (*ClinicSession, error)
}

type authService struct {
	users      UserStore
	clinics    ClinicStore
	tokens     *token.Manager
	hashParams *password.Params
}

func New(users UserStore, clinics ClinicStore, tokens *token.Manager, hashParams *password.Params) Service {
	if hashParams == nil {
		hashParams = password.DefaultParams()
	}
	return &authService{users: users, clinics: clinics, tokens: tokens, hashParams: hashParams}
}

func (s *authService) RegisterUser(ctx context.Context, req RegisterUserRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	if req.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if !reEmail.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := password.HashWithParams(req.Password, s.hashParams)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// The unique index on email turns the insert into the duplicate check;
	// there is no racy find-then-insert.
	_, err = s.users.Insert(ctx, &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if err == store.ErrDuplicate {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *authService) LoginUser(ctx context.Context, req LoginRequest) (*UserSession, error) {
	email := normalizeEmail(req.Email)

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !password.Match(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(u.ID.Hex(), token.KindUser)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &UserSession{Token: tok, UserID: u.ID.Hex()}, nil
}

func (s *authService) RegisterClinic(ctx context.Context, req RegisterClinicRequest) error {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = normalizeEmail(req.Email)
	req.Specialization = strings.TrimSpace(req.Specialization)

	switch {
	case req.FullName == "":
		return fmt.Errorf("%w: fullName", ErrMissingField)
	case req.Specialization == "":
		return fmt.Errorf("%w: specialization", ErrMissingField)
	case req.ClinicID == "":
		return fmt.Errorf("%w: clinicId", ErrMissingField)
	case req.LicensePhoto == "":
		return fmt.Errorf("%w: licensePhoto", ErrMissingField)
	case req.Address == "":
		return fmt.Errorf("%w: address", ErrMissingField)
	}
	if !reEmail.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := password.HashWithParams(req.Password, s.hashParams)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.clinics.Insert(ctx, &model.Clinic{
		FullName:       req.FullName,
		Email:          req.Email,
		PasswordHash:   hash,
		Specialization: req.Specialization,
		ClinicID:       req.ClinicID,
		LicensePhoto:   req.LicensePhoto,
		ProfilePic:     req.ProfilePic,
		Address:        req.Address,
		Description:    req.Description,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		if err == store.ErrDuplicate {
			return ErrEmailTaken
		}
		return fmt.Errorf("create clinic: %w", err)
	}
	return nil
}

func (s *authService) LoginClinic(ctx context.Context, req LoginRequest) (*ClinicSession, error) {
	email := normalizeEmail(req.Email)

	c, err := s.clinics.FindByEmail(ctx, email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find clinic: %w", err)
	}

	if !password.Match(c.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(c.ID.Hex(), token.KindClinic)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &ClinicSession{Token: tok, ClinicID: c.ID.Hex(), Profile: c}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
