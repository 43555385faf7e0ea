package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/ujjwalnp/ZenithTREKS/middleware"
	"github.com/ujjwalnp/ZenithTREKS/models"
	"github.com/ujjwalnp/ZenithTREKS/services"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	TripID       uint   `json:"tripId" validate:"required"`
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Participants int    `json:"participants"`
	BookingDate  string `json:"bookingDate" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateBooking takes a customer booking request, prices it against the
// trip's current unit price and persists it as pending. The total is
// computed once here and never re-derived, even if the trip price changes
// later.
func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}
	if req.Participants < 1 {
		return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{"error": "Participants cannot be less than 1"})
	}

	var trip models.Trip
	if err := h.DB.First(&trip, req.TripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process booking"})
	}

	totalPrice, err := services.TotalPrice(trip.Price, req.Participants)
	if err != nil {
		return c.Status(fiber.StatusNotAcceptable).JSON(fiber.Map{"error": err.Error()})
	}

	booking := models.Booking{
		TripID:       trip.ID,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		Participants: req.Participants,
		TotalPrice:   totalPrice,
		BookingDate:  req.BookingDate,
		Status:       models.BookingPending,
	}

	// Anonymous bookings are allowed; attach the user only when a valid
	// session cookie came with the request.
	if userID, ok := middleware.SessionUserID(c); ok {
		booking.UserID = &userID
	}

	if err := h.DB.Create(&booking).Error; err != nil {
		log.Printf("[ERROR] booking create failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process booking"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": booking.ID, "message": "Booking successful"})
}

// ListBookings returns the caller's own bookings, or every booking joined
// with trip and customer display data when the caller is an admin.
func (h *Handler) ListBookings(c *fiber.Ctx) error {
	claims := middleware.SessionClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	query := h.DB.Preload("Trip").Order("created_at DESC")
	if claims["role"] == models.RoleAdmin {
		query = query.Preload("User")
	} else {
		userID, ok := middleware.SessionUserID(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		query = query.Where("user_id = ?", userID)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}

// UpdateBookingStatus writes a new status for a booking. Routed behind
// AdminRequired; nothing besides the status field is mutable.
func (h *Handler) UpdateBookingStatus(c *fiber.Ctx) error {
	bookingID := c.Params("id")

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if !models.ValidBookingStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	result := h.DB.Model(&models.Booking{}).Where("id = ?", bookingID).Update("status", req.Status)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	return c.JSON(fiber.Map{"message": "Booking status updated successfully"})
}
