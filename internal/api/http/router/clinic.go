package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medisage/medisage_backend/internal/api/http/handler"
)

func (r *Router) registerClinicRoutes(app *fiber.App, h *handler.ClinicHandler, clinicOnly fiber.Handler) {
	group := app.Group("/clinic")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
	group.Get("/profile", clinicOnly, h.Profile)
	group.Get("/stats", clinicOnly, h.Stats)
}
