package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/models"
)

type ReviewRequest struct {
	Name        string `json:"name"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
}

const (
	defaultReviewLimit = 3
	maxReviewLimit     = 20
)

// ListReviews returns reviews newest first with limit/page pagination and
// a hasMore flag for the frontend's incremental loading.
func (h *Handler) ListReviews(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultReviewLimit)
	if limit < 1 {
		limit = defaultReviewLimit
	}
	if limit > maxReviewLimit {
		limit = maxReviewLimit
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := h.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}

	var total int64
	if err := h.DB.Model(&models.Review{}).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}

	return c.JSON(fiber.Map{
		"data": reviews,
		"meta": fiber.Map{
			"total":   total,
			"page":    page,
			"limit":   limit,
			"hasMore": int64(offset+len(reviews)) < total,
		},
	})
}

func (h *Handler) CreateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)
	if name == "" || description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, rating, and review are required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rating must be between 1 and 5 stars"})
	}

	review := models.Review{
		Name:        name,
		Rating:      req.Rating,
		Description: description,
	}
	if err := h.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit review"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": review.ID, "message": "Thank you for your review!"})
}
