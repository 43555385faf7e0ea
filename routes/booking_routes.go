package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/handlers"
	"github.com/ujjwalnp/ZenithTREKS/middleware"
)

func BookingRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	bookings := api.Group("/bookings")
	bookings.Post("", middleware.OptionalAuth(), h.CreateBooking)
	bookings.Get("", middleware.Protected(), h.ListBookings)
	bookings.Patch("/:id", middleware.Protected(), middleware.AdminRequired(), h.UpdateBookingStatus)
}
