package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// UploadImage stores a trip thumbnail and returns the URL it will be
// served from.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	name, err := saveUpload(c, h.Media)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": "/api/images/" + name})
}

func (h *Handler) ServeImage(c *fiber.Ctx) error {
	return serveImage(c, h.Media, c.Params("filename"))
}
