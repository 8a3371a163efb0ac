package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medisage/medisage_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.RegisterUser(c.Context(), auth.RegisterUserRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	}); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "user registered"})
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	sess, err := h.svc.LoginUser(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{
		"token":  sess.Token,
		"userId": sess.UserID,
	})
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrMissingField):
		return badRequest(c, err.Error())
	// Login failures are 400s like every other validation error; 401 is
	// reserved for token middleware rejections.
	case errors.Is(err, auth.ErrNotFound):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err.Error())
	}
}
