package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medisage/medisage_backend/internal/api/http/middleware"
	"github.com/medisage/medisage_backend/internal/model"
	"github.com/medisage/medisage_backend/internal/service/chat"
)

type ChatHandler struct {
	svc chat.Service
}

func NewChatHandler(svc chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// POST /chat/send
func (h *ChatHandler) Send(c fiber.Ctx) error {
	claims, okClaims := middleware.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c, "missing token")
	}

	var body struct {
		Text        string `json:"text"`
		IsEmergency bool   `json:"isEmergency"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	sent, err := h.svc.Send(c.Context(), claims.AccountID, body.Text, body.IsEmergency)
	if err != nil {
		return mapChatError(c, err)
	}
	return ok(c, sent)
}

// GET /chat/user
func (h *ChatHandler) ListForUser(c fiber.Ctx) error {
	claims, okClaims := middleware.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c, "missing token")
	}

	chats, err := h.svc.ListForUser(c.Context(), claims.AccountID)
	if err != nil {
		return mapChatError(c, err)
	}
	return ok(c, chats)
}

// GET /chat/clinic/chats
func (h *ChatHandler) ListForClinic(c fiber.Ctx) error {
	claims, okClaims := middleware.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c, "missing token")
	}

	chats, err := h.svc.ListForClinic(c.Context(), claims.AccountID)
	if err != nil {
		return mapChatError(c, err)
	}
	return ok(c, chats)
}

// PUT /chat/review/:chatId
func (h *ChatHandler) Review(c fiber.Ctx) error {
	claims, okClaims := middleware.ClaimsFromFiber(c)
	if !okClaims {
		return unauthorized(c, "missing token")
	}

	var body struct {
		UpdatedText      string `json:"updatedText"`
		VerificationType string `json:"verificationType"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	reviewed, err := h.svc.Review(
		c.Context(),
		claims.AccountID,
		c.Params("chatId"),
		model.VerificationType(body.VerificationType),
		body.UpdatedText,
	)
	if err != nil {
		return mapChatError(c, err)
	}

	return ok(c, fiber.Map{
		"message": "chat reviewed",
		"chat":    reviewed,
	})
}

func mapChatError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyQuestion):
		return badRequest(c, err.Error())
	case errors.Is(err, chat.ErrBadVerification):
		return badRequest(c, err.Error())
	case errors.Is(err, chat.ErrCorrectionRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, chat.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, chat.ErrClinicNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c, err.Error())
	}
}
