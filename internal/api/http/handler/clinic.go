package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medisage/medisage_backend/internal/api/http/middleware"
	"github.com/medisage/medisage_backend/internal/service/auth"
	"github.com/medisage/medisage_backend/internal/service/clinic"
)

type ClinicHandler struct {
	authSvc   auth.Service
	clinicSvc clinic.Service
}

func NewClinicHandler(authSvc auth.Service, clinicSvc clinic.Service) *ClinicHandler {
	return &ClinicHandler{authSvc: authSvc, clinicSvc: clinicSvc}
}

// POST /clinic/register
func (h *ClinicHandler) Register(c fiber.Ctx) error {
	var body struct {
		FullName       string `json:"fullName"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		Specialization string `json:"specialization"`
		ClinicID       string `json:"clinicId"`
		LicensePhoto   string `json:"licensePhoto"`
		ProfilePic     string `json:"profilePic"`
		Address        string `json:"address"`
		Description    string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.authSvc.RegisterClinic(c.Context(), auth.RegisterClinicRequest{
		FullName:       body.FullName,
		Email:          body.Email,
		Password:       body.Password,
		Specialization: body.Specialization,
		ClinicID:       body.ClinicID,
		LicensePhoto:   body.LicensePhoto,
		ProfilePic:     body.ProfilePic,
		Address:        body.Address,
		Description:    body.Description,
	}); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "clinic registered"})
}

// POST /clinic/login
func (h *ClinicHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	sess, err := h.authSvc.LoginClinic(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"token":    sess.Token,
		"clinicId": sess.ClinicID,
		"profile":  sess.Profile,
	})
}

// GET /clinic/profile
func (h *ClinicHandler) Profile(c fiber.Ctx) error {
	claims, okClaims := middleware.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c, "missing token")
	}

	profile, err := h.clinicSvc.Profile(c.Context(), claims.AccountID)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, profile)
}

// GET /clinic/stats
func (h *ClinicHandler) Stats(c fiber.Ctx) error {
	claims, okClaims := middleware.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c, "missing token")
	}

	stats, err := h.clinicSvc.Stats(c.Context(), claims.AccountID)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, stats)
}

func mapClinicError(c fiber.Ctx, err error) error {
	if errors.Is(err, clinic.ErrNotFound) {
		return notFound(c, err.Error())
	}
	return internalError(c, err.Error())
}
