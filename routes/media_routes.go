package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/handlers"
	"github.com/ujjwalnp/ZenithTREKS/middleware"
)

func MediaRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	gallery := api.Group("/gallery")
	gallery.Get("", h.ListGalleryImages)
	gallery.Get("/:filename", h.ServeGalleryImage)
	gallery.Post("", middleware.Protected(), middleware.AdminRequired(), h.UploadGalleryImage)
	gallery.Delete("/:filename", middleware.Protected(), middleware.AdminRequired(), h.DeleteGalleryImage)

	api.Post("/upload", middleware.Protected(), middleware.AdminRequired(), h.UploadImage)
	api.Get("/images/:filename", h.ServeImage)

	uploads := api.Group("/uploads", middleware.Protected(), middleware.AdminRequired())
	uploads.Get("/signature", h.GenerateUploadSignature)
}
