package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medisage/medisage_backend/internal/api/http/handler"
)

func (r *Router) registerChatRoutes(app *fiber.App, h *handler.ChatHandler, userOnly, clinicOnly fiber.Handler) {
	group := app.Group("/chat")
	group.Post("/send", userOnly, h.Send)
	group.Get("/user", userOnly, h.ListForUser)
	group.Get("/clinic/chats", clinicOnly, h.ListForClinic)
	group.Put("/review/:chatId", clinicOnly, h.Review)
}
