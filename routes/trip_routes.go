package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/handlers"
	"github.com/ujjwalnp/ZenithTREKS/middleware"
)

func TripRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	api.Get("/trips", h.ListTrips)
	api.Get("/trips/:slugOrId", h.GetTrip)
	api.Get("/destinations/:country", h.ListDestinationTrips)

	api.Post("/trips", middleware.Protected(), middleware.AdminRequired(), h.CreateTrip)
	api.Put("/trips/:id", middleware.Protected(), middleware.AdminRequired(), h.UpdateTrip)
	api.Delete("/trips/:id", middleware.Protected(), middleware.AdminRequired(), h.DeleteTrip)
}
