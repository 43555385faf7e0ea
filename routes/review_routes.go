package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/handlers"
)

func ReviewRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	reviews := api.Group("/reviews")
	reviews.Get("", h.ListReviews)
	reviews.Post("", h.CreateReview)
}
