package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/handlers"
	"github.com/ujjwalnp/ZenithTREKS/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/session", middleware.OptionalAuth(), h.Session)
}
