package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/storage"
)

const imageCacheControl = "public, max-age=31536000, immutable"

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// saveUpload stores the request's multipart "file" field in the given
// store and returns the stored filename.
func saveUpload(c *fiber.Ctx, store storage.Store) (string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "No file received")
	}

	data, err := readUpload(file)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to read uploaded file")
	}

	name, err := store.Save(file.Filename, data)
	if errors.Is(err, storage.ErrInvalidName) {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid file type")
	}
	if err != nil {
		log.Printf("[ERROR] upload failed: %v", err)
		return "", fiber.NewError(fiber.StatusInternalServerError, "Upload failed")
	}
	return name, nil
}

func serveImage(c *fiber.Ctx, store storage.Store, name string) error {
	data, err := store.Read(name)
	if errors.Is(err, storage.ErrInvalidName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filename"})
	}
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to serve image"})
	}

	c.Set(fiber.HeaderContentType, storage.ContentType(name))
	c.Set(fiber.HeaderCacheControl, imageCacheControl)
	return c.Send(data)
}

func (h *Handler) ListGalleryImages(c *fiber.Ctx) error {
	names, err := h.Gallery.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list gallery images"})
	}

	images := make([]fiber.Map, 0, len(names))
	for _, name := range names {
		images = append(images, fiber.Map{
			"filename": name,
			"url":      "/api/gallery/" + name,
		})
	}
	return c.JSON(images)
}

func (h *Handler) UploadGalleryImage(c *fiber.Ctx) error {
	name, err := saveUpload(c, h.Gallery)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"filename": name,
		"url":      "/api/gallery/" + name,
	})
}

func (h *Handler) ServeGalleryImage(c *fiber.Ctx) error {
	return serveImage(c, h.Gallery, c.Params("filename"))
}

func (h *Handler) DeleteGalleryImage(c *fiber.Ctx) error {
	err := h.Gallery.Delete(c.Params("filename"))
	if errors.Is(err, storage.ErrInvalidName) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filename"})
	}
	if errors.Is(err, storage.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "File not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete image"})
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}
