package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/models"
	"github.com/ujjwalnp/ZenithTREKS/utils"
	"gorm.io/gorm"
)

type TripRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Slug        string  `json:"slug"`
	Country     string  `json:"country" validate:"required,oneof=trips treks"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Duration    string  `json:"duration"`
	Thumbnail   string  `json:"thumbnail"`
}

// tripSlug falls back to deriving the slug from the title when the admin
// did not supply one.
func tripSlug(req TripRequest) string {
	if s := strings.TrimSpace(req.Slug); s != "" {
		return s
	}
	return utils.Slugify(req.Title)
}

func (h *Handler) ListTrips(c *fiber.Ctx) error {
	var trips []models.Trip
	if err := h.DB.Order("created_at DESC").Find(&trips).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trips"})
	}
	return c.JSON(trips)
}

// GetTrip looks a trip up by slug first, then by numeric id for backward
// compatibility with pre-slug URLs.
func (h *Handler) GetTrip(c *fiber.Ctx) error {
	slugOrID := c.Params("slugOrId")

	var trip models.Trip
	err := h.DB.Where("slug = ?", slugOrID).First(&trip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if id, convErr := strconv.Atoi(slugOrID); convErr == nil {
			err = h.DB.First(&trip, id).Error
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trip"})
	}

	return c.JSON(trip)
}

func (h *Handler) ListDestinationTrips(c *fiber.Ctx) error {
	country := c.Params("country")

	var trips []models.Trip
	if err := h.DB.Where("LOWER(country) = ?", strings.ToLower(country)).
		Order("title ASC").Find(&trips).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trips"})
	}
	return c.JSON(trips)
}

func (h *Handler) CreateTrip(c *fiber.Ctx) error {
	var req TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	trip := models.Trip{
		Title:       req.Title,
		Slug:        tripSlug(req),
		Country:     req.Country,
		Description: utils.SanitizeHTML(req.Description),
		Price:       req.Price,
		Duration:    req.Duration,
		Thumbnail:   req.Thumbnail,
	}
	if err := h.DB.Create(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A trip with this slug already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create trip"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": trip.ID, "message": "Trip created successfully"})
}

func (h *Handler) UpdateTrip(c *fiber.Ctx) error {
	tripID := c.Params("id")

	var trip models.Trip
	if err := h.DB.First(&trip, "id = ?", tripID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	var req TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	trip.Title = req.Title
	trip.Slug = tripSlug(req)
	trip.Country = req.Country
	trip.Description = utils.SanitizeHTML(req.Description)
	trip.Price = req.Price
	trip.Duration = req.Duration
	trip.Thumbnail = req.Thumbnail

	if err := h.DB.Save(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A trip with this slug already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trip"})
	}

	return c.JSON(fiber.Map{"message": "Trip updated successfully"})
}

func (h *Handler) DeleteTrip(c *fiber.Ctx) error {
	tripID := c.Params("id")

	result := h.DB.Delete(&models.Trip{}, "id = ?", tripID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete trip"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	return c.JSON(fiber.Map{"message": "Trip deleted successfully"})
}
