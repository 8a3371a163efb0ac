package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medisage/medisage_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(app *fiber.App, h *handler.AuthHandler) {
	group := app.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
}
